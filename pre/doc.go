// Package pre compiles a Parallel Regular Expression — a regular
// expression extended with a binary shuffle operator — into a
// deterministic finite automaton whose accepted strings enumerate every
// sequentially consistent interleaving the expression admits.
//
// The pipeline is: Compile (parse) -> Pipeline.PFA (Thompson-style
// fragments plus λ-paired shuffle, kept for inspection) and, separately
// from the same expression tree, an unexported lowering to an ε-NFA
// (shuffle lowered to a product automaton) -> Pipeline.DFA (subset construction, optional
// Hopcroft minimization, sink trimming) -> NewEnumerator (lazy,
// deterministic enumeration of accepted strings).
package pre
