package rvec

import (
	"context"
	"time"

	"github.com/cluffa/rvec/internal/parallel"
)

// Executor runs vector operations. It carries the logger, the metrics
// collector and the parallel execution settings. An Executor is immutable
// and safe for concurrent use.
//
// The Vector methods run on a package-level default executor with logging
// and metrics disabled. Create an Executor with NewExecutor to observe
// operations or tune parallelism.
type Executor struct {
	opts options
}

var defaultExecutor = NewExecutor()

// NewExecutor creates an Executor configured by optFns.
func NewExecutor(optFns ...Option) *Executor {
	return &Executor{opts: applyOptions(optFns)}
}

// DefaultExecutor returns the executor used by the Vector methods.
func DefaultExecutor() *Executor {
	return defaultExecutor
}

// ParallelThreshold returns the length at which kernels fan out.
func (e *Executor) ParallelThreshold() int {
	return e.opts.parallelThreshold
}

// Workers returns the maximum number of goroutines per operation.
func (e *Executor) Workers() int {
	return e.opts.workers
}

// observe reports a finished operation to the logger and the metrics
// collector.
func (e *Executor) observe(ctx context.Context, op string, n int, start time.Time, err error) {
	e.opts.metricsCollector.RecordOp(op, n, time.Since(start), err)
	e.opts.logger.LogOp(ctx, op, n, err)
}

// workersFor returns how many goroutines may process n elements.
func (e *Executor) workersFor(n int) int {
	if e.opts.parallelThreshold <= 0 || n < e.opts.parallelThreshold {
		return 1
	}
	return e.opts.workers
}

// grain is the smallest chunk handed to one goroutine.
func (e *Executor) grain() int {
	return max(1, e.opts.parallelThreshold/max(1, e.opts.workers))
}

// split runs fn over disjoint sub-ranges covering [0, n). Short inputs run
// inline on the calling goroutine.
func (e *Executor) split(ctx context.Context, op string, n int, fn func(lo, hi int)) error {
	workers := e.workersFor(n)
	if workers > 1 {
		e.opts.logger.LogDispatch(ctx, op, n, parallel.Chunks(n, e.grain(), workers))
	}
	return parallel.For(ctx, n, e.grain(), workers, func(lo, hi int) error {
		fn(lo, hi)
		return nil
	})
}
