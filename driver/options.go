package driver

// Options configures a Compiled value. Its fields are the driver-level
// options spec'd for the core: Minimize and AllowInfinite each change
// which automaton is cached, so changing either between Configure calls
// implies a Reset even if the caller doesn't ask for one explicitly — see
// Compiled.Configure.
type Options struct {
	// Minimize applies Hopcroft minimization before trimming. Off by
	// default: the first DFA access without it returns an unminimized
	// trimmed DFA.
	Minimize bool

	// Reset discards the cached DFA and enumerator before this call's
	// options take effect. It is consumed immediately by Configure and
	// never persists in the stored Options.
	Reset bool

	// AllowInfinite suppresses the cyclic-DFA warning and lets the
	// enumerator run unbounded over a cyclic DFA. Left false, a cyclic
	// DFA still enumerates, but only a bounded fair prefix of it.
	AllowInfinite bool

	// Namespace is passed verbatim as the first argument to every
	// dispatch call.
	Namespace string

	// Verbose enables diagnostic logging to the Sink, one line per
	// dispatched symbol.
	Verbose bool
}

// DefaultOptions returns the documented defaults: no minimization, no
// infinite-language opt-in, the empty namespace, and no verbose logging.
func DefaultOptions() Options {
	return Options{}
}

// DispatchFunc is the collaborator-supplied action dispatcher. The core
// treats scope opaquely; dispatch threads it forward and any error it
// returns aborts the current plan.
type DispatchFunc func(namespace, name string, scope any) (any, error)
