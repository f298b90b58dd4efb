package pre

import "testing"

// ------------------------------------------------------------------ PFA

// findEdge scans every state's outgoing edges for the one with the given
// id, also returning the state it left from.
func findEdge(p *PFA, id int) (from int, edge pfaEdge, ok bool) {
	for _, s := range p.States {
		for _, e := range s.Edges {
			if e.ID == id {
				return s.ID, e, true
			}
		}
	}
	return 0, pfaEdge{}, false
}

func TestPFAShuffleLambdaPairsAreInvolutions(t *testing.T) {
	p := compile(t, "a&b").PFA()

	var lambdaEdges int
	for _, s := range p.States {
		for _, e := range s.Edges {
			if e.Mate == -1 {
				continue
			}
			lambdaEdges++
			_, mate, ok := findEdge(p, e.Mate)
			if !ok {
				t.Fatalf("edge %d names mate %d, which doesn't exist", e.ID, e.Mate)
			}
			if mate.Mate != e.ID {
				t.Fatalf("mate relation not involutive: edge %d -> %d -> %d", e.ID, e.Mate, mate.Mate)
			}
		}
	}
	// the shuffle contributes exactly two λ-pairs (fork and join), four
	// edges in total.
	if lambdaEdges != 4 {
		t.Fatalf("want 4 λ-pair edges (2 pairs), got %d", lambdaEdges)
	}
}

func TestPFAShuffleForkSharesSource(t *testing.T) {
	p := compile(t, "a&b").PFA()

	fromByID := map[int]int{}
	for _, s := range p.States {
		for _, e := range s.Edges {
			fromByID[e.ID] = s.ID
		}
	}

	var sawForkPair, sawJoinPair bool
	for _, s := range p.States {
		for _, e := range s.Edges {
			if e.Mate == -1 || e.ID > e.Mate {
				continue // visit each pair once, from the lower id
			}
			_, mate, _ := findEdge(p, e.Mate)
			fromA, fromB := fromByID[e.ID], fromByID[mate.ID]
			if fromA == fromB {
				sawForkPair = true
			}
			if e.To == mate.To {
				sawJoinPair = true
			}
		}
	}
	if !sawForkPair {
		t.Fatalf("expected a λ-pair whose edges share a source state (the fork)")
	}
	if !sawJoinPair {
		t.Fatalf("expected a λ-pair whose edges share a destination state (the join)")
	}
}

func TestPFAConcatHasNoLambdaPairs(t *testing.T) {
	p := compile(t, "ab").PFA()
	for _, s := range p.States {
		for _, e := range s.Edges {
			if e.Mate != -1 {
				t.Fatalf("concat introduced a λ-pair, want none")
			}
		}
	}
}

func TestPFASingleExitPerFragment(t *testing.T) {
	// every combinator produces a fragment with exactly one exit state;
	// this just checks that the whole expression's PFA names a single
	// Accept state that lies within its state range.
	p := compile(t, "(a&b)|(c*d)").PFA()
	if p.Accept < 0 || p.Accept >= len(p.States) {
		t.Fatalf("accept state %d out of range (states=%d)", p.Accept, len(p.States))
	}
}
