package pre

import "sort"

// Plan is one accepted string, in order: the sequence of symbols a walk
// from the DFA's start state to some accepting state spelled out. The
// driver package dispatches a Plan's symbols as named actions in order.
type Plan []string

// String renders a Plan the way an external consumer is expected to parse
// it back: symbols separated by single spaces, with a trailing space so a
// consumer can split on whitespace and discard empty tokens uniformly.
func (p Plan) String() string {
	var b []byte
	for _, sym := range p {
		b = append(b, sym...)
		b = append(b, ' ')
	}
	return string(b)
}

type sortedEdge struct {
	sym string
	to  int
}

func sortedEdgesOf(d *DFA, id int) []sortedEdge {
	s := d.States[id]
	edges := make([]sortedEdge, 0, len(s.Trans))
	for sym, to := range s.Trans {
		edges = append(edges, sortedEdge{sym, to})
	}
	sort.Slice(edges, func(i, j int) bool { return edges[i].sym < edges[j].sym })
	return edges
}

type frame struct {
	id         int
	edges      []sortedEdge
	nextEdge   int
	justPushed bool
}

type enumState int

const (
	enumFresh enumState = iota
	enumReady
	enumExhausted
)

// Enumerator walks a DFA depth-first, symbols taken in lexicographic
// order at every branch, yielding one Plan per call to Next. It is a pull
// iterator rather than a goroutine-backed generator: state lives entirely
// in stack and path, so two Enumerators over the same DFA never share
// anything and Next never blocks.
//
// A freshly pushed accepting state is reported exactly once, the instant
// it's reached, before its own outgoing edges are explored — so a Plan
// that is a prefix of a longer one is yielded before the longer one, and
// the empty Plan (start state accepting) comes first of all.
type Enumerator struct {
	dfa      *DFA
	maxDepth int // 0 means unbounded
	stack    []frame
	path     []string
	state    enumState
}

// NewEnumerator builds an enumerator over d. maxDepth caps the number of
// symbols a yielded Plan may contain; 0 means unbounded, which is only
// safe to pass when d is known acyclic (see DFA.HasCycle). Passing a
// positive maxDepth against a cyclic DFA turns the enumeration into a
// bounded fair prefix of the infinite language: the enumerator refuses to
// recurse past the cap rather than hanging or running unbounded.
func NewEnumerator(d *DFA, maxDepth int) *Enumerator {
	e := &Enumerator{dfa: d, maxDepth: maxDepth, state: enumFresh}
	if d == nil || d.Empty() {
		e.state = enumExhausted
	}
	return e
}

// Reset rewinds the enumerator to start over from the beginning,
// reproducing the exact same sequence of Plans on the next round of Next
// calls.
func (e *Enumerator) Reset() {
	e.stack = nil
	e.path = nil
	if e.dfa == nil || e.dfa.Empty() {
		e.state = enumExhausted
		return
	}
	e.state = enumFresh
}

func (e *Enumerator) push(id int) {
	e.stack = append(e.stack, frame{id: id, edges: sortedEdgesOf(e.dfa, id), justPushed: true})
}

// Next returns the next Plan in lexicographic DFS order, or ok=false once
// every accepting state reachable within maxDepth has been yielded.
func (e *Enumerator) Next() (Plan, bool) {
	if e.state == enumExhausted {
		return nil, false
	}
	if e.state == enumFresh {
		e.push(e.dfa.Start)
		e.state = enumReady
	}

	for len(e.stack) > 0 {
		top := &e.stack[len(e.stack)-1]
		if top.justPushed {
			top.justPushed = false
			if e.dfa.States[top.id].Accept {
				plan := make(Plan, len(e.path))
				copy(plan, e.path)
				return plan, true
			}
		}

		canDescend := top.nextEdge < len(top.edges) && (e.maxDepth <= 0 || len(e.path) < e.maxDepth)
		if canDescend {
			edge := top.edges[top.nextEdge]
			top.nextEdge++
			e.path = append(e.path, edge.sym)
			e.push(edge.to)
			continue
		}

		beforeLen := len(e.stack)
		e.stack = e.stack[:beforeLen-1]
		if beforeLen > 1 {
			e.path = e.path[:len(e.path)-1]
		}
	}

	e.state = enumExhausted
	return nil, false
}
