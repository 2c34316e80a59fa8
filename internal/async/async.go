// Package async provides utilities for parallel sub-unit execution.
//
// Tasks whose work decomposes into independent, order-irrelevant sub-units
// (installing N plugins, for example) run them through [Run] and aggregate
// the per-unit results into their own outcome.
package async

import "context"

// Unit is one independent sub-operation with a name and function.
type Unit struct {
	Name string
	Func func(context.Context) error
}

// Result is the isolated outcome of one unit.
type Result struct {
	Name string
	Err  error
}

// Run executes all units concurrently, one goroutine per unit, and waits for
// every unit to finish. Results are returned in unit order regardless of
// completion order, each unit's failure isolated from the others.
func Run(ctx context.Context, units []Unit) []Result {
	if len(units) == 0 {
		return nil
	}

	results := make([]Result, len(units))
	done := make(chan struct{}, len(units))

	for i, unit := range units {
		go func() {
			results[i] = Result{Name: unit.Name, Err: unit.Func(ctx)}
			done <- struct{}{}
		}()
	}

	for range units {
		<-done
	}
	return results
}

// Failures filters the results down to the units that failed.
func Failures(results []Result) []Result {
	var failed []Result
	for _, r := range results {
		if r.Err != nil {
			failed = append(failed, r)
		}
	}
	return failed
}
