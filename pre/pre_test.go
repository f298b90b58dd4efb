package pre

import "testing"

// ------------------------------------------------------------------ helpers

func compile(t *testing.T, src string) *Pipeline {
	p, err := Compile(src)
	if err != nil {
		t.Fatalf("compile %q: %v", src, err)
	}
	return p
}

// accepts walks d deterministically on syms and reports whether the walk
// ends on an accepting state.
func accepts(d *DFA, syms ...string) bool {
	if d.Empty() {
		return false
	}
	cur := d.Start
	for _, s := range syms {
		to, ok := d.States[cur].Trans[s]
		if !ok {
			return false
		}
		cur = to
	}
	return d.States[cur].Accept
}

func takeAll(e *Enumerator, limit int) []Plan {
	var out []Plan
	for i := 0; i < limit; i++ {
		p, ok := e.Next()
		if !ok {
			break
		}
		out = append(out, p)
	}
	return out
}

func planStrings(plans []Plan) []string {
	out := make([]string, len(plans))
	for i, p := range plans {
		s := ""
		for _, sym := range p {
			s += sym
		}
		out[i] = s
	}
	return out
}
