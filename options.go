package rvec

import (
	"log/slog"
	"runtime"
)

const (
	// DefaultParallelThreshold is the element count at which elementwise
	// kernels start fanning out across goroutines.
	DefaultParallelThreshold = 1 << 16
)

type options struct {
	metricsCollector  MetricsCollector
	logger            *Logger
	parallelThreshold int
	workers           int
}

// Option configures an Executor.
type Option func(*options)

// WithMetricsCollector configures a metrics collector for monitoring operations.
// Pass nil to disable metrics collection.
//
// Example with BasicMetricsCollector:
//
//	metrics := &rvec.BasicMetricsCollector{}
//	ex := rvec.NewExecutor(rvec.WithMetricsCollector(metrics))
//	// ... use ex ...
//	stats := metrics.GetStats()
//	fmt.Printf("Ops: %d, Avg latency: %dns\n", stats.OpCount, stats.AvgNanos)
func WithMetricsCollector(mc MetricsCollector) Option {
	return func(o *options) {
		if mc == nil {
			mc = NoopMetricsCollector{}
		}
		o.metricsCollector = mc
	}
}

// WithLogger configures structured logging for operations.
// Pass nil to disable logging.
//
// Example with JSON logging:
//
//	logger := rvec.NewJSONLogger(slog.LevelDebug)
//	ex := rvec.NewExecutor(rvec.WithLogger(logger))
func WithLogger(logger *Logger) Option {
	return func(o *options) {
		if logger == nil {
			logger = NoopLogger()
		}
		o.logger = logger
	}
}

// WithLogLevel creates a text logger with the specified level and sets it.
// Convenience wrapper for WithLogger(NewTextLogger(level)).
func WithLogLevel(level slog.Level) Option {
	return func(o *options) {
		o.logger = NewTextLogger(level)
	}
}

// WithParallelThreshold sets the minimum length at which elementwise
// kernels are split across goroutines. Values <= 0 disable parallel
// execution.
func WithParallelThreshold(n int) Option {
	return func(o *options) {
		o.parallelThreshold = n
	}
}

// WithWorkers caps the number of goroutines used by one operation.
// Values < 1 are treated as 1.
func WithWorkers(n int) Option {
	return func(o *options) {
		if n < 1 {
			n = 1
		}
		o.workers = n
	}
}

func applyOptions(optFns []Option) options {
	o := options{
		metricsCollector:  NoopMetricsCollector{},
		logger:            NoopLogger(),
		parallelThreshold: DefaultParallelThreshold,
		workers:           runtime.GOMAXPROCS(0),
	}
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
