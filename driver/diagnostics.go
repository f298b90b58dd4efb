package driver

import "github.com/pterm/pterm"

// Sink receives human-readable diagnostics: the cyclic-DFA warning
// (always, regardless of the verbose option) and, when verbose is set,
// a line per dispatched symbol. Hosts that want their own log pipeline
// instead of the default colored console output implement Sink and pass
// it to Compiled.SetSink.
type Sink interface {
	Info(msg string)
	Warn(msg string)
}

// ptermSink is the default Sink, printing through pterm's styled
// Info/Warning prefixes the way npillmayer-gorgo's REPL does for its own
// console diagnostics.
type ptermSink struct{}

func (ptermSink) Info(msg string) { pterm.Info.Println(msg) }
func (ptermSink) Warn(msg string) { pterm.Warning.Println(msg) }

// NoopSink discards every diagnostic. Pass it to SetSink to silence a
// Compiled value entirely, including the cyclic-DFA warning.
type NoopSink struct{}

func (NoopSink) Info(string) {}
func (NoopSink) Warn(string) {}
