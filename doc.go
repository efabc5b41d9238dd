// Package rvec provides homogeneous vectors with elementwise arithmetic,
// Python-style indexing and a small set of statistics and text helpers.
//
// Every Vector has a Kind (Int64, Float64, Bool or Text) that is fixed at
// construction. New infers the kind from the first element and rejects any
// element that does not match it:
//
//	v, _ := rvec.New([]any{1, 2, 7, 15, 35})
//	w, _ := rvec.New([]any{5, 10, 15, 20, 25})
//	q, _ := v.Divide(w)      // [0.2, 0.2, 0.4666666666666667, 0.75, 1.4]
//	f, _ := v.FloorDivide(w) // [0, 0, 0, 0, 1]
//
// # Indexing
//
// Get and Set accept negative indices counting from the end and fail with
// *ErrIndexOutOfRange outside [-Len, Len). Slice clamps its bounds and never
// fails; it always returns a copy.
//
// # Arithmetic
//
// Binary operations promote their operands: Divide always yields Float64,
// a Float64 operand yields Float64 and everything else (Int64, Bool) yields
// Int64. Text has no arithmetic. FloorDivide and Modulo use floor semantics
// so the remainder takes the divisor's sign. A zero divisor fails with
// *ErrDivisionByZero before any result is computed. Integer overflow wraps.
//
// # Executors
//
// The Vector methods run on a default Executor with logging and metrics
// disabled. An Executor created with NewExecutor adds structured logging,
// metrics and goroutine fan-out for long vectors:
//
//	metrics := &rvec.BasicMetricsCollector{}
//	ex := rvec.NewExecutor(
//	    rvec.WithLogger(rvec.NewJSONLogger(slog.LevelDebug)),
//	    rvec.WithMetricsCollector(metrics),
//	    rvec.WithParallelThreshold(1<<15),
//	)
//	sum, _ := ex.Binary(ctx, rvec.OpAdd, v, w)
//
// # Environment
//
// RVEC_SIMD selects the kernel set (generic, neon, sve2, avx2, avx512). It is
// ignored when the CPU lacks the requested instruction set.
package rvec
