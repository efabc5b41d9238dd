package simd

// The unrolled kernels process four lanes per iteration and re-slice their
// inputs to len(dst) up front so the compiler drops the bounds checks.

func addUnrolled[T Number](dst, a, b []T) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + b[i]
		dst[i+1] = a[i+1] + b[i+1]
		dst[i+2] = a[i+2] + b[i+2]
		dst[i+3] = a[i+3] + b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] + b[i]
	}
}

func subUnrolled[T Number](dst, a, b []T) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] - b[i]
		dst[i+1] = a[i+1] - b[i+1]
		dst[i+2] = a[i+2] - b[i+2]
		dst[i+3] = a[i+3] - b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] - b[i]
	}
}

func mulUnrolled[T Number](dst, a, b []T) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] * b[i]
		dst[i+1] = a[i+1] * b[i+1]
		dst[i+2] = a[i+2] * b[i+2]
		dst[i+3] = a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] * b[i]
	}
}

func divUnrolled(dst, a, b []float64) {
	n := len(dst)
	a, b = a[:n], b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] / b[i]
		dst[i+1] = a[i+1] / b[i+1]
		dst[i+2] = a[i+2] / b[i+2]
		dst[i+3] = a[i+3] / b[i+3]
	}
	for ; i < n; i++ {
		dst[i] = a[i] / b[i]
	}
}

func addScalarUnrolled[T Number](dst, a []T, s T) {
	n := len(dst)
	a = a[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] + s
		dst[i+1] = a[i+1] + s
		dst[i+2] = a[i+2] + s
		dst[i+3] = a[i+3] + s
	}
	for ; i < n; i++ {
		dst[i] = a[i] + s
	}
}

func subScalarUnrolled[T Number](dst, a []T, s T) {
	n := len(dst)
	a = a[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] - s
		dst[i+1] = a[i+1] - s
		dst[i+2] = a[i+2] - s
		dst[i+3] = a[i+3] - s
	}
	for ; i < n; i++ {
		dst[i] = a[i] - s
	}
}

func mulScalarUnrolled[T Number](dst, a []T, s T) {
	n := len(dst)
	a = a[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] * s
		dst[i+1] = a[i+1] * s
		dst[i+2] = a[i+2] * s
		dst[i+3] = a[i+3] * s
	}
	for ; i < n; i++ {
		dst[i] = a[i] * s
	}
}

func divScalarUnrolled(dst, a []float64, s float64) {
	n := len(dst)
	a = a[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		dst[i] = a[i] / s
		dst[i+1] = a[i+1] / s
		dst[i+2] = a[i+2] / s
		dst[i+3] = a[i+3] / s
	}
	for ; i < n; i++ {
		dst[i] = a[i] / s
	}
}

func sumUnrolled[T Number](a []T) T {
	var s0, s1, s2, s3 T
	n := len(a)
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i]
		s1 += a[i+1]
		s2 += a[i+2]
		s3 += a[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i]
	}
	return (s0 + s1) + (s2 + s3)
}

func dotUnrolled[T Number](a, b []T) T {
	var s0, s1, s2, s3 T
	n := len(a)
	b = b[:n]
	i := 0
	for ; i+4 <= n; i += 4 {
		s0 += a[i] * b[i]
		s1 += a[i+1] * b[i+1]
		s2 += a[i+2] * b[i+2]
		s3 += a[i+3] * b[i+3]
	}
	for ; i < n; i++ {
		s0 += a[i] * b[i]
	}
	return (s0 + s1) + (s2 + s3)
}
