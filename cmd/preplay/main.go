// Command preplay compiles a PRE from the command line and runs a handful
// of its plans through a trivial in-memory action registry, printing each
// plan and then the symbols dispatched for it. It exists only to exercise the pre and
// driver packages end to end; it is not a general-purpose CLI wrapper.
package main

import (
	"flag"
	"fmt"
	"log"
	"strings"

	"parallelregex/driver"
)

// registry is the A3 example dispatcher: a plain map from symbol name to
// an action closure over a shared log. A host wiring its own actions
// would shape its registry the same way and pass registry.dispatch as
// the driver.DispatchFunc.
type registry struct {
	actions map[string]func(scope any) (any, error)
}

func newRegistry() *registry {
	return &registry{actions: map[string]func(scope any) (any, error){}}
}

func (r *registry) on(name string, fn func(scope any) (any, error)) {
	r.actions[name] = fn
}

func (r *registry) dispatch(namespace, name string, scope any) (any, error) {
	if fn, ok := r.actions[name]; ok {
		return fn(scope)
	}
	log := scope.([]string)
	return append(log, namespace+name), nil
}

func main() {
	pattern := flag.String("re", "", "PRE pattern (required)")
	namespace := flag.String("namespace", "", "namespace prefix passed to dispatch")
	minimize := flag.Bool("minimize", false, "minimize the DFA before trimming")
	allowInfinite := flag.Bool("allow-infinite", false, "allow enumeration of a cyclic DFA")
	verbose := flag.Bool("verbose", false, "enable diagnostic logging")
	count := flag.Int("n", 1, "number of plans to run")
	flag.Parse()

	if *pattern == "" {
		fmt.Println("usage: preplay -re <pattern> [-namespace ns] [-minimize] [-allow-infinite] [-verbose] [-n count]")
		flag.PrintDefaults()
		log.Fatal("missing -re")
	}

	reg := newRegistry()
	opts := driver.DefaultOptions()
	opts.Namespace = *namespace
	opts.Minimize = *minimize
	opts.AllowInfinite = *allowInfinite
	opts.Verbose = *verbose

	c, err := driver.Compile(*pattern, reg.dispatch, opts)
	if err != nil {
		log.Fatalf("compile %q: %v", *pattern, err)
	}

	for i := 0; i < *count; i++ {
		plan, ok, err := c.NextPlan()
		if err != nil {
			log.Fatalf("run %d: %v", i, err)
		}
		if !ok {
			fmt.Println("(no more plans)")
			break
		}
		fmt.Printf("plan %d: %s\n", i, plan.String())

		var scope any = []string{}
		for _, sym := range plan {
			scope, err = reg.dispatch(*namespace, sym, scope)
			if err != nil {
				log.Fatalf("dispatch %d: %v", i, err)
			}
		}
		fmt.Printf("  dispatched: %s\n", strings.Join(scope.([]string), " "))
	}
}
