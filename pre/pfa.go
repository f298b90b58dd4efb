package pre

// PFA is a Parallel Finite Automaton: an ε-NFA in which the fork and join
// edges introduced by a shuffle are additionally linked as λ-pairs (mates).
// A fork edge's mate is the sibling fork edge leaving the same state; a
// join edge's mate is the sibling join edge entering the same state. The
// mate relation exists purely for structural inspection — diagnostics and
// the invariant tests that verify the encoding — it plays no role in the
// NFA lowering in lower.go, which walks the expression tree directly.
type PFA struct {
	States []pfaState
	Start  int
	Accept int
}

type pfaEdge struct {
	ID   int
	To   int
	Sym  string // "" denotes λ (epsilon)
	Mate int    // -1 unless this edge is one half of a shuffle λ-pair
}

type pfaState struct {
	ID    int
	Edges []pfaEdge
}

type pfaFrag struct {
	start, exit int
}

type pfaBuilder struct {
	pfa    *PFA
	nextID int
}

func newPFABuilder() *pfaBuilder {
	return &pfaBuilder{pfa: &PFA{}}
}

func (b *pfaBuilder) newState() int {
	id := len(b.pfa.States)
	b.pfa.States = append(b.pfa.States, pfaState{ID: id})
	return id
}

func (b *pfaBuilder) addEdge(from, to int, sym string) int {
	id := b.nextID
	b.nextID++
	b.pfa.States[from].Edges = append(b.pfa.States[from].Edges, pfaEdge{ID: id, To: to, Sym: sym, Mate: -1})
	return id
}

// addLambdaPair adds two ε edges, (from1->to1) and (from2->to2), and links
// them as mates of each other.
func (b *pfaBuilder) addLambdaPair(from1, to1, from2, to2 int) {
	id1 := b.nextID
	b.nextID++
	id2 := b.nextID
	b.nextID++
	b.pfa.States[from1].Edges = append(b.pfa.States[from1].Edges, pfaEdge{ID: id1, To: to1, Mate: id2})
	b.pfa.States[from2].Edges = append(b.pfa.States[from2].Edges, pfaEdge{ID: id2, To: to2, Mate: id1})
}

func (b *pfaBuilder) build(n *exprNode) pfaFrag {
	switch n.kind {
	case kEmpty:
		s := b.newState()
		return pfaFrag{s, s}
	case kSym:
		s0, s1 := b.newState(), b.newState()
		b.addEdge(s0, s1, n.sym)
		return pfaFrag{s0, s1}
	case kConcat:
		l := b.build(n.left)
		r := b.build(n.right)
		b.addEdge(l.exit, r.start, "")
		return pfaFrag{l.start, r.exit}
	case kUnion:
		s0, s1 := b.newState(), b.newState()
		l := b.build(n.left)
		r := b.build(n.right)
		b.addEdge(s0, l.start, "")
		b.addEdge(s0, r.start, "")
		b.addEdge(l.exit, s1, "")
		b.addEdge(r.exit, s1, "")
		return pfaFrag{s0, s1}
	case kStar:
		s0, s1 := b.newState(), b.newState()
		l := b.build(n.left)
		b.addEdge(s0, l.start, "")
		b.addEdge(s0, s1, "")
		b.addEdge(l.exit, l.start, "")
		b.addEdge(l.exit, s1, "")
		return pfaFrag{s0, s1}
	case kShuffle:
		s0, s1 := b.newState(), b.newState()
		l := b.build(n.left)
		r := b.build(n.right)
		b.addLambdaPair(s0, l.start, s0, r.start)
		b.addLambdaPair(l.exit, s1, r.exit, s1)
		return pfaFrag{s0, s1}
	default:
		panic("pre: unreachable exprNode kind")
	}
}

// buildPFA compiles a parsed PRE into its PFA form.
func buildPFA(n *exprNode) *PFA {
	b := newPFABuilder()
	frag := b.build(n)
	b.pfa.Start = frag.start
	b.pfa.Accept = frag.exit
	return b.pfa
}
