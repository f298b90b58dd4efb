package pre

import "sort"

// minimizeDFA partitions a DFA's states by Hopcroft-style refinement and
// rebuilds it over the resulting blocks. The teacher's version of this
// picked a block's representative and the final state ordering by map
// iteration, which is nondeterministic in Go; minimization is supposed to
// be a pure function of the input language, so here every block is sorted
// by state id and the lowest id in a block is always its representative,
// and the output states are ordered by that representative — two
// structurally distinct but language-equivalent DFAs minimize to the same
// automaton up to nothing but input order.
func minimizeDFA(d *DFA) *DFA {
	n := len(d.States)
	if n == 0 {
		return d
	}

	var blocks [][]int
	var acc, non []int
	for _, s := range d.States {
		if s.Accept {
			acc = append(acc, s.ID)
		} else {
			non = append(non, s.ID)
		}
	}
	if len(acc) > 0 {
		blocks = append(blocks, acc)
	}
	if len(non) > 0 {
		blocks = append(blocks, non)
	}

	work := make([]int, len(blocks))
	for i := range work {
		work[i] = i
	}

	for len(work) > 0 {
		idx := work[0]
		work = work[1:]
		A := blocks[idx]
		inA := make(map[int]bool, len(A))
		for _, s := range A {
			inA[s] = true
		}

		for _, c := range d.Alphabet {
			pre := make(map[int]bool)
			for _, s := range d.States {
				if to, ok := s.Trans[c]; ok && inA[to] {
					pre[s.ID] = true
				}
			}

			for pIdx := 0; pIdx < len(blocks); pIdx++ {
				Y := blocks[pIdx]
				var inter, diff []int
				for _, s := range Y {
					if pre[s] {
						inter = append(inter, s)
					} else {
						diff = append(diff, s)
					}
				}
				if len(inter) == 0 || len(diff) == 0 {
					continue
				}
				blocks[pIdx] = inter
				blocks = append(blocks, diff)
				newIdx := len(blocks) - 1
				// A block still waiting in the worklist needs both halves
				// queued; pIdx (now inter) already is, so queue diff.
				pending := false
				for _, w := range work {
					if w == pIdx {
						pending = true
						break
					}
				}
				if !pending && len(inter) < len(diff) {
					work = append(work, pIdx)
				} else {
					work = append(work, newIdx)
				}
			}
		}
	}

	for i := range blocks {
		sort.Ints(blocks[i])
	}
	sort.Slice(blocks, func(i, j int) bool { return blocks[i][0] < blocks[j][0] })

	repOf := make([]int, n)
	for newID, b := range blocks {
		for _, old := range b {
			repOf[old] = newID
		}
	}

	out := &DFA{Alphabet: d.Alphabet}
	for newID, b := range blocks {
		rep := d.States[b[0]]
		out.States = append(out.States, dfaState{ID: newID, Accept: rep.Accept, Trans: map[string]int{}})
	}
	for newID, b := range blocks {
		rep := d.States[b[0]]
		for c, to := range rep.Trans {
			out.States[newID].Trans[c] = repOf[to]
		}
	}
	out.Start = repOf[d.Start]
	return out
}
