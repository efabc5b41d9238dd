// Package parallel splits index ranges across goroutines.
package parallel

import (
	"context"

	"golang.org/x/sync/errgroup"
)

// Chunks returns how many chunks For would use for n elements.
func Chunks(n, grain, workers int) int {
	if n <= 0 {
		return 0
	}
	if grain < 1 {
		grain = 1
	}
	if workers < 1 {
		workers = 1
	}
	c := (n + grain - 1) / grain
	if c > workers {
		c = workers
	}
	return c
}

// For calls fn on disjoint, contiguous sub-ranges [lo, hi) that cover
// [0, n). Each chunk holds at least grain elements and at most workers
// chunks run at once. A single chunk runs on the calling goroutine.
//
// fn must only touch its own range. The first error is returned after all
// started chunks finish.
func For(ctx context.Context, n, grain, workers int, fn func(lo, hi int) error) error {
	chunks := Chunks(n, grain, workers)
	switch chunks {
	case 0:
		return nil
	case 1:
		return fn(0, n)
	}

	size := (n + chunks - 1) / chunks

	g, _ := errgroup.WithContext(ctx)
	g.SetLimit(chunks)

	for lo := 0; lo < n; lo += size {
		hi := min(lo+size, n)
		g.Go(func() error {
			return fn(lo, hi)
		})
	}

	return g.Wait()
}
