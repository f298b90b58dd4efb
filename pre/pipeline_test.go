package pre

import "testing"

// ------------------------------------------------------------------ pipeline

func TestPipelineCachesDFA(t *testing.T) {
	p := compile(t, "a&b")
	d1, err := p.DFA(false)
	if err != nil {
		t.Fatalf("dfa: %v", err)
	}
	d2, err := p.DFA(false)
	if err != nil {
		t.Fatalf("dfa: %v", err)
	}
	if d1 != d2 {
		t.Fatalf("want the same *DFA pointer from two calls without Reset")
	}
}

func TestPipelineResetForcesRebuild(t *testing.T) {
	p := compile(t, "a&b")
	d1, err := p.DFA(false)
	if err != nil {
		t.Fatalf("dfa: %v", err)
	}
	p.Reset()
	d2, err := p.DFA(false)
	if err != nil {
		t.Fatalf("dfa: %v", err)
	}
	if d1 == d2 {
		t.Fatalf("want a freshly built *DFA after Reset")
	}
	if len(d1.States) != len(d2.States) {
		t.Fatalf("rebuild changed the DFA's shape: %d vs %d states", len(d1.States), len(d2.States))
	}
}

func TestPipelinePFAIndependentOfDFA(t *testing.T) {
	p := compile(t, "a&b")
	pfa := p.PFA()
	if pfa.Start < 0 || pfa.Start >= len(pfa.States) {
		t.Fatalf("pfa start out of range")
	}
	if _, err := p.DFA(true); err != nil {
		t.Fatalf("dfa: %v", err)
	}
}

func TestCompileRejectsBadSyntax(t *testing.T) {
	if _, err := Compile("a||b"); err == nil {
		t.Fatalf("want a parse error for \"a||b\"")
	}
}
