package pre

// productStateCeiling bounds the number of state pairs a single shuffle's
// product construction may visit. It is advisory, not a correctness limit:
// crossing it means the PRE is almost certainly not the mistakenly-huge
// expression a caller meant to compile.
const productStateCeiling = 200000

// nfa is the ε-NFA a PRE lowers to. Unlike the PFA, it carries no λ-pair
// bookkeeping: a shuffle node lowers straight to its product automaton, so
// by the time an nfa exists, the shuffle structure has already been
// resolved into ordinary ε and symbol edges.
type nfa struct {
	states []nfaState
	start  int
	accept int
}

type nfaEdge struct {
	to  int
	sym string // "" denotes ε
}

type nfaState struct {
	id    int
	edges []nfaEdge
}

type nfaFrag struct {
	start, exit int
}

type nfaBuilder struct {
	n   *nfa
	err error
}

func newNFABuilder() *nfaBuilder {
	return &nfaBuilder{n: &nfa{}}
}

func (b *nfaBuilder) newState() int {
	id := len(b.n.states)
	b.n.states = append(b.n.states, nfaState{id: id})
	return id
}

func (b *nfaBuilder) addEdge(from, to int, sym string) {
	b.n.states[from].edges = append(b.n.states[from].edges, nfaEdge{to: to, sym: sym})
}

func (b *nfaBuilder) build(node *exprNode) nfaFrag {
	if b.err != nil {
		return nfaFrag{}
	}
	switch node.kind {
	case kEmpty:
		s := b.newState()
		return nfaFrag{s, s}
	case kSym:
		s0, s1 := b.newState(), b.newState()
		b.addEdge(s0, s1, node.sym)
		return nfaFrag{s0, s1}
	case kConcat:
		l := b.build(node.left)
		r := b.build(node.right)
		if b.err != nil {
			return nfaFrag{}
		}
		b.addEdge(l.exit, r.start, "")
		return nfaFrag{l.start, r.exit}
	case kUnion:
		s0, s1 := b.newState(), b.newState()
		l := b.build(node.left)
		r := b.build(node.right)
		if b.err != nil {
			return nfaFrag{}
		}
		b.addEdge(s0, l.start, "")
		b.addEdge(s0, r.start, "")
		b.addEdge(l.exit, s1, "")
		b.addEdge(r.exit, s1, "")
		return nfaFrag{s0, s1}
	case kStar:
		s0, s1 := b.newState(), b.newState()
		l := b.build(node.left)
		if b.err != nil {
			return nfaFrag{}
		}
		b.addEdge(s0, l.start, "")
		b.addEdge(s0, s1, "")
		b.addEdge(l.exit, l.start, "")
		b.addEdge(l.exit, s1, "")
		return nfaFrag{s0, s1}
	case kShuffle:
		l := b.build(node.left)
		r := b.build(node.right)
		if b.err != nil {
			return nfaFrag{}
		}
		return b.shuffleProduct(l, r)
	default:
		panic("pre: unreachable exprNode kind")
	}
}

// shuffleProduct lowers a shuffle of two already-built fragments to the
// product automaton over their state pairs, discovered by BFS from
// (l.start, r.start) rather than materialized in full: a pair is only
// created once something actually transitions into it. A move in the
// product advances exactly one arm — on an ε edge or a symbol edge alike —
// which is precisely the definition of shuffle: each arm's own order is
// preserved, the two arms interleave freely.
func (b *nfaBuilder) shuffleProduct(l, r nfaFrag) nfaFrag {
	type pair struct{ a, b int }
	seen := make(map[pair]int)
	var queue []pair

	get := func(p pair) int {
		if id, ok := seen[p]; ok {
			return id
		}
		id := b.newState()
		seen[p] = id
		queue = append(queue, p)
		return id
	}

	start := get(pair{l.start, r.start})
	for len(queue) > 0 {
		if len(seen) > productStateCeiling {
			b.err = &TooLargeError{Stage: "shuffle product", Limit: productStateCeiling}
			return nfaFrag{}
		}
		p := queue[0]
		queue = queue[1:]
		pid := seen[p]
		for _, e := range b.n.states[p.a].edges {
			nxt := get(pair{e.to, p.b})
			b.addEdge(pid, nxt, e.sym)
		}
		for _, e := range b.n.states[p.b].edges {
			nxt := get(pair{p.a, e.to})
			b.addEdge(pid, nxt, e.sym)
		}
	}
	exit := get(pair{l.exit, r.exit})
	return nfaFrag{start, exit}
}

// lower compiles a parsed PRE's expression tree directly to an ε-NFA.
func lower(root *exprNode) (*nfa, error) {
	b := newNFABuilder()
	frag := b.build(root)
	if b.err != nil {
		return nil, b.err
	}
	b.n.start = frag.start
	b.n.accept = frag.exit
	return b.n, nil
}
