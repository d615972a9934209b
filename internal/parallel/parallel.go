// Package parallel runs independent generator workloads across goroutines.
// Each task owns its own Generator, so nothing here shares random state.
package parallel

import (
	"context"
	"runtime"
	"sync/atomic"

	"golang.org/x/sync/errgroup"
)

// Workers resolves a configured worker count. Zero or negative means one
// worker per usable CPU.
func Workers(n int) int {
	if n > 0 {
		return n
	}
	return runtime.GOMAXPROCS(0)
}

// Map calls fn for every index in [0, n) on up to workers goroutines and
// returns the results in index order. Indices are handed out one at a time,
// so a slow task does not hold back a whole block of others.
func Map[T any](n, workers int, fn func(i int) T) []T {
	results := make([]T, max(n, 0))
	if n <= 0 {
		return results
	}
	workers = min(Workers(workers), n)

	var next atomic.Int64
	var g errgroup.Group
	for range workers {
		g.Go(func() error {
			for {
				i := int(next.Add(1) - 1)
				if i >= n {
					return nil
				}
				results[i] = fn(i)
			}
		})
	}
	g.Wait()
	return results
}

// Run runs every task concurrently and returns the first error. Once a task
// fails, ctx passed to the others is cancelled.
func Run(ctx context.Context, tasks ...func(ctx context.Context) error) error {
	g, ctx := errgroup.WithContext(ctx)
	for _, task := range tasks {
		g.Go(func() error { return task(ctx) })
	}
	return g.Wait()
}
