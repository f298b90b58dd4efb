package pre

// Pipeline holds a single compiled PRE and memoizes each stage of its
// derivation — PFA, lowered NFA, raw and minimized trimmed DFA — so that
// asking for the minimized DFA after already asking for the raw one
// doesn't repeat work, and so diagnostics can inspect an earlier stage
// without forcing the later ones.
type Pipeline struct {
	root *exprNode

	pfa *PFA
	n   *nfa

	rawDFA     *DFA
	rawTrimmed *DFA
	minTrimmed *DFA
}

// Compile parses src as a PRE and returns a Pipeline ready to derive its
// automata. It does no automaton construction itself; that happens lazily
// on the first call to PFA or DFA.
func Compile(src string) (*Pipeline, error) {
	root, err := parsePRE(src)
	if err != nil {
		return nil, err
	}
	return &Pipeline{root: root}, nil
}

// PFA returns the Parallel Finite Automaton for the compiled expression.
// Construction is linear in expression size and cannot fail.
func (p *Pipeline) PFA() *PFA {
	if p.pfa == nil {
		p.pfa = buildPFA(p.root)
	}
	return p.pfa
}

func (p *Pipeline) nfa() (*nfa, error) {
	if p.n != nil {
		return p.n, nil
	}
	n, err := lower(p.root)
	if err != nil {
		return nil, err
	}
	p.n = n
	return n, nil
}

func (p *Pipeline) rawDFAOf(n *nfa) (*DFA, error) {
	if p.rawDFA != nil {
		return p.rawDFA, nil
	}
	d, err := determinize(n)
	if err != nil {
		return nil, err
	}
	p.rawDFA = d
	return d, nil
}

// DFA returns the compiled expression's deterministic finite automaton,
// sink-trimmed in either case. With minimize set it is additionally
// reduced by Hopcroft-style partition refinement before trimming.
func (p *Pipeline) DFA(minimize bool) (*DFA, error) {
	n, err := p.nfa()
	if err != nil {
		return nil, err
	}
	if minimize {
		if p.minTrimmed != nil {
			return p.minTrimmed, nil
		}
		raw, err := p.rawDFAOf(n)
		if err != nil {
			return nil, err
		}
		p.minTrimmed = trimDFA(minimizeDFA(raw))
		return p.minTrimmed, nil
	}
	if p.rawTrimmed != nil {
		return p.rawTrimmed, nil
	}
	raw, err := p.rawDFAOf(n)
	if err != nil {
		return nil, err
	}
	p.rawTrimmed = trimDFA(raw)
	return p.rawTrimmed, nil
}

// Reset discards every memoized stage past the parsed expression tree,
// forcing the next PFA or DFA call to rebuild from scratch. Useful after
// mutating shared state that automaton construction depends on — there is
// none today, but Configure in the driver package calls this whenever it
// changes an option that would otherwise leave a stale cached DFA behind.
func (p *Pipeline) Reset() {
	p.pfa = nil
	p.n = nil
	p.rawDFA = nil
	p.rawTrimmed = nil
	p.minTrimmed = nil
}
