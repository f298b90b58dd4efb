package pre

import "testing"

// ------------------------------------------------------------------ minimize

func TestMinimizeReducesStates(t *testing.T) {
	// the two branches reach language-equivalent states after a/c and
	// after ab/cb, which subset construction keeps apart: 5 raw states, 3
	// minimal.
	p := compile(t, "ab|cb")
	raw, err := p.DFA(false)
	if err != nil {
		t.Fatalf("dfa: %v", err)
	}
	min, err := p.DFA(true)
	if err != nil {
		t.Fatalf("min dfa: %v", err)
	}
	if len(min.States) >= len(raw.States) {
		t.Fatalf("want fewer states after minimizing, raw=%d min=%d", len(raw.States), len(min.States))
	}
}

func TestMinimizePreservesLanguage(t *testing.T) {
	p := compile(t, "(ab|a)*c")
	raw, err := p.DFA(false)
	if err != nil {
		t.Fatalf("dfa: %v", err)
	}
	min, err := p.DFA(true)
	if err != nil {
		t.Fatalf("min dfa: %v", err)
	}

	alphabet := []string{"a", "b", "c"}
	for _, w := range allWords(alphabet, 5) {
		if accepts(raw, w...) != accepts(min, w...) {
			t.Fatalf("minimize changed acceptance of %v", w)
		}
	}
}

func TestMinimizeIsDeterministicAcrossRuns(t *testing.T) {
	src := "(ab|a)*c&d"
	m1, err := compile(t, src).DFA(true)
	if err != nil {
		t.Fatalf("dfa 1: %v", err)
	}
	m2, err := compile(t, src).DFA(true)
	if err != nil {
		t.Fatalf("dfa 2: %v", err)
	}
	if len(m1.States) != len(m2.States) {
		t.Fatalf("two compiles of the same PRE minimized to different state counts: %d vs %d", len(m1.States), len(m2.States))
	}
	if m1.Start != m2.Start {
		t.Fatalf("two compiles of the same PRE minimized to different start ids: %d vs %d", m1.Start, m2.Start)
	}
	for i := range m1.States {
		a, b := m1.States[i], m2.States[i]
		if a.Accept != b.Accept {
			t.Fatalf("state %d accept mismatch between runs", i)
		}
		for sym, to := range a.Trans {
			if b.Trans[sym] != to {
				t.Fatalf("state %d transition on %q mismatch between runs: %d vs %d", i, sym, to, b.Trans[sym])
			}
		}
	}
}

func allWords(alphabet []string, maxLen int) [][]string {
	var out [][]string
	out = append(out, nil)
	frontier := [][]string{nil}
	for depth := 0; depth < maxLen; depth++ {
		var next [][]string
		for _, w := range frontier {
			for _, sym := range alphabet {
				nw := append(append([]string{}, w...), sym)
				out = append(out, nw)
				next = append(next, nw)
			}
		}
		frontier = next
	}
	return out
}
