package pre

import (
	"fmt"
	"sort"

	"github.com/emirpasic/gods/sets/treeset"
	"github.com/emirpasic/gods/utils"
)

// determinizeCeiling bounds the number of DFA states the subset
// construction may produce for a single compile, the same advisory role
// productStateCeiling plays for the shuffle product.
const determinizeCeiling = 200000

func newIntSet(ids ...int) *treeset.Set {
	s := treeset.NewWith(utils.IntComparator)
	for _, id := range ids {
		s.Add(id)
	}
	return s
}

// setValues returns a set's members in ascending order. treeset already
// keeps them sorted by the comparator; Values just exposes that order
// instead of re-deriving it, which is what the teacher's subset
// construction did with its own sort.Ints+fmt.Sprint key.
func setValues(s *treeset.Set) []int {
	raw := s.Values()
	out := make([]int, len(raw))
	for i, v := range raw {
		out[i] = v.(int)
	}
	return out
}

// setKey renders a set's sorted members as a canonical map key, so that
// two epsilon closures containing the same NFA states always collapse to
// the same DFA state regardless of discovery order.
func setKey(s *treeset.Set) string {
	return fmt.Sprint(setValues(s))
}

func epsilonClosure(n *nfa, set *treeset.Set) *treeset.Set {
	closure := treeset.NewWith(utils.IntComparator)
	closure.Add(set.Values()...)
	stack := setValues(set)
	for len(stack) > 0 {
		id := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, e := range n.states[id].edges {
			if e.sym == "" && !closure.Contains(e.to) {
				closure.Add(e.to)
				stack = append(stack, e.to)
			}
		}
	}
	return closure
}

func moveSet(n *nfa, set *treeset.Set, sym string) *treeset.Set {
	moved := treeset.NewWith(utils.IntComparator)
	for _, id := range setValues(set) {
		for _, e := range n.states[id].edges {
			if e.sym == sym {
				moved.Add(e.to)
			}
		}
	}
	return moved
}

func hasAccept(n *nfa, set *treeset.Set) bool {
	return set.Contains(n.accept)
}

func alphabetOf(n *nfa) []string {
	seen := map[string]bool{}
	var alpha []string
	for _, s := range n.states {
		for _, e := range s.edges {
			if e.sym != "" && !seen[e.sym] {
				seen[e.sym] = true
				alpha = append(alpha, e.sym)
			}
		}
	}
	sort.Strings(alpha)
	return alpha
}

// determinize runs the subset construction over an ε-NFA, producing an
// equivalent DFA. State identity in the result is purely positional — the
// order DFA states were first discovered in the BFS — since nothing
// downstream depends on a DFA state's id meaning anything beyond "the
// set of NFA states it stands for".
func determinize(n *nfa) (*DFA, error) {
	alpha := alphabetOf(n)
	initClosure := epsilonClosure(n, newIntSet(n.start))
	initKey := setKey(initClosure)

	byKey := map[string]int{initKey: 0}
	d := &DFA{Alphabet: alpha, Start: 0}
	d.States = append(d.States, dfaState{ID: 0, Accept: hasAccept(n, initClosure), Trans: map[string]int{}})

	type queued struct {
		id  int
		set *treeset.Set
	}
	queue := []queued{{0, initClosure}}

	for len(queue) > 0 {
		if len(d.States) > determinizeCeiling {
			return nil, &TooLargeError{Stage: "determinize", Limit: determinizeCeiling}
		}
		cur := queue[0]
		queue = queue[1:]
		for _, sym := range alpha {
			moved := moveSet(n, cur.set, sym)
			if moved.Empty() {
				continue
			}
			closure := epsilonClosure(n, moved)
			k := setKey(closure)
			id, ok := byKey[k]
			if !ok {
				id = len(d.States)
				byKey[k] = id
				d.States = append(d.States, dfaState{ID: id, Accept: hasAccept(n, closure), Trans: map[string]int{}})
				queue = append(queue, queued{id, closure})
			}
			d.States[cur.id].Trans[sym] = id
		}
	}
	return d, nil
}
