// Package driver wraps a compiled PRE pipeline with the options,
// enumerator lifecycle, and action-dispatch loop described for the core's
// outermost layer: compile once, pull plans, run each plan's symbols
// through a host-supplied dispatcher, threading an opaque scope value.
//
// It mirrors the two-layer split the teacher repo uses between its
// automaton engine and its interpreter: pre is the engine, driver is the
// Context/Environment-style layer that actually walks a result and calls
// out to collaborator code.
package driver

import (
	"fmt"

	"parallelregex/pre"
)

// boundedPrefixDepth caps enumeration of a cyclic DFA when AllowInfinite
// is false: the documented "bounded fair prefix" resolution of the core's
// open question about Star without an infinite-language opt-in.
const boundedPrefixDepth = 32

// Compiled is a compiled PRE together with its driver-level options, its
// cached DFA and enumerator, and the dispatcher used to run plans.
type Compiled struct {
	pipeline *pre.Pipeline
	dispatch DispatchFunc
	opts     Options
	sink     Sink

	dfa          *pre.DFA
	enum         *pre.Enumerator
	warnedCyclic bool
	warnedEmpty  bool
	lastWarning  error
}

// Compile parses src as a PRE and returns a Compiled value ready to
// derive its DFA and run plans through dispatch. No automaton is built
// yet; that happens lazily on the first DFA or NextPlan call.
func Compile(src string, dispatch DispatchFunc, opts Options) (*Compiled, error) {
	p, err := pre.Compile(src)
	if err != nil {
		return nil, err
	}
	opts.Reset = false
	return &Compiled{pipeline: p, dispatch: dispatch, opts: opts, sink: ptermSink{}}, nil
}

// SetSink overrides where diagnostics go. The default is a pterm-backed
// console sink; pass NoopSink{} to silence it.
func (c *Compiled) SetSink(s Sink) { c.sink = s }

// Configure replaces the active options. A change to Minimize or
// AllowInfinite invalidates whatever DFA and enumerator are cached, even
// if Reset wasn't explicitly requested, per the core's recommended policy
// for resolving its own ambiguity about implicit resets.
func (c *Compiled) Configure(opts Options) {
	changed := opts.Minimize != c.opts.Minimize || opts.AllowInfinite != c.opts.AllowInfinite
	wantReset := opts.Reset || changed
	opts.Reset = false
	c.opts = opts
	if wantReset {
		c.Reset()
	}
}

// Reset discards the cached DFA and enumerator; the next DFA or NextPlan
// call rebuilds both from the parsed expression tree.
func (c *Compiled) Reset() {
	c.pipeline.Reset()
	c.dfa = nil
	c.enum = nil
	c.warnedCyclic = false
	c.warnedEmpty = false
	c.lastWarning = nil
}

// LastWarning returns the most recent non-fatal condition diagnosed while
// building or enumerating the DFA — an *InfiniteLanguageWarning or a
// *pre.EmptyLanguageError — or nil if none has fired yet. Neither
// condition is ever returned as an error from DFA, NextPlan, or RunOnce;
// this is how a caller inspects one with errors.As instead of parsing the
// sink's message text.
func (c *Compiled) LastWarning() error { return c.lastWarning }

// PFA returns the compiled expression's Parallel Finite Automaton, for
// diagnostic inspection.
func (c *Compiled) PFA() *pre.PFA { return c.pipeline.PFA() }

// DFA returns the cached DFA, building it (per the current Minimize
// option) on first access. Building it is also where the cyclic-DFA
// warning, if any, fires — exactly once per cache lifetime.
func (c *Compiled) DFA() (*pre.DFA, error) {
	if c.dfa != nil {
		return c.dfa, nil
	}
	d, err := c.pipeline.DFA(c.opts.Minimize)
	if err != nil {
		return nil, err
	}
	if !c.opts.AllowInfinite && !c.warnedCyclic && d.HasCycle() {
		c.warnedCyclic = true
		w := &InfiniteLanguageWarning{MaxDepth: boundedPrefixDepth}
		c.lastWarning = w
		c.sink.Warn(w.Error())
	}
	if !c.warnedEmpty && d.Empty() {
		c.warnedEmpty = true
		c.lastWarning = pre.ErrEmptyLanguage
	}
	c.dfa = d
	return d, nil
}

// NextPlan advances the enumerator, initializing it on first call. ok is
// false once every plan has been produced; that covers both ordinary
// exhaustion and a compiled expression whose language is empty from the
// start — neither is an error, matching the core's propagation policy.
// Call LastWarning to tell the two apart.
func (c *Compiled) NextPlan() (pre.Plan, bool, error) {
	if c.enum == nil {
		d, err := c.DFA()
		if err != nil {
			return nil, false, err
		}
		maxDepth := 0
		if d.HasCycle() && !c.opts.AllowInfinite {
			maxDepth = boundedPrefixDepth
		}
		c.enum = pre.NewEnumerator(d, maxDepth)
	}
	plan, ok := c.enum.Next()
	return plan, ok, nil
}

// RunOnce consumes the next plan and dispatches its symbols in order,
// threading scope through each call to dispatch. It stops at the first
// DispatchError and returns the scope as of the last successful symbol.
// If there is no next plan, scope is returned unchanged.
func (c *Compiled) RunOnce(scope any) (any, error) {
	plan, ok, err := c.NextPlan()
	if err != nil {
		return scope, err
	}
	if !ok {
		return scope, nil
	}
	for _, sym := range plan {
		next, err := c.dispatch(c.opts.Namespace, sym, scope)
		if err != nil {
			return scope, &DispatchError{Namespace: c.opts.Namespace, Symbol: sym, cause: err}
		}
		scope = next
		if c.opts.Verbose {
			c.sink.Info(fmt.Sprintf("dispatched %q in namespace %q", sym, c.opts.Namespace))
		}
	}
	return scope, nil
}

// RunAny is RunOnce under the name the core's spec gives the same
// operation: initialize the enumerator if needed, take one plan, run it.
func (c *Compiled) RunAny(scope any) (any, error) {
	return c.RunOnce(scope)
}
