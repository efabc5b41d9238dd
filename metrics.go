package rvec

import (
	"sync/atomic"
	"time"
)

// MetricsCollector defines an interface for collecting operational metrics.
// Implement this interface to integrate with monitoring systems like Prometheus.
//
// Example Prometheus integration:
//
//	type PrometheusCollector struct {
//	    ops *prometheus.CounterVec
//	}
//
//	func (p *PrometheusCollector) RecordOp(op string, n int, d time.Duration, err error) {
//	    p.ops.WithLabelValues(op).Inc()
//	}
type MetricsCollector interface {
	// RecordOp is called after each executor operation.
	// op names the operation, n is the number of input elements,
	// err is nil if successful.
	RecordOp(op string, n int, duration time.Duration, err error)
}

// NoopMetricsCollector is a no-op implementation of MetricsCollector.
type NoopMetricsCollector struct{}

// RecordOp implements MetricsCollector.
func (NoopMetricsCollector) RecordOp(string, int, time.Duration, error) {}

// BasicMetricsCollector provides simple in-memory metrics collection.
// Useful for debugging and basic monitoring without external dependencies.
type BasicMetricsCollector struct {
	OpCount    atomic.Int64
	OpErrors   atomic.Int64
	Elements   atomic.Int64
	TotalNanos atomic.Int64
}

// RecordOp implements MetricsCollector.
func (b *BasicMetricsCollector) RecordOp(_ string, n int, duration time.Duration, err error) {
	b.OpCount.Add(1)
	b.Elements.Add(int64(n))
	b.TotalNanos.Add(duration.Nanoseconds())
	if err != nil {
		b.OpErrors.Add(1)
	}
}

// GetStats returns a snapshot of current metrics.
func (b *BasicMetricsCollector) GetStats() BasicMetricsStats {
	count := b.OpCount.Load()
	var avg int64
	if count > 0 {
		avg = b.TotalNanos.Load() / count
	}
	return BasicMetricsStats{
		OpCount:  count,
		OpErrors: b.OpErrors.Load(),
		Elements: b.Elements.Load(),
		AvgNanos: avg,
	}
}

// BasicMetricsStats is a point-in-time snapshot of BasicMetricsCollector.
type BasicMetricsStats struct {
	OpCount  int64
	OpErrors int64
	Elements int64
	AvgNanos int64
}
