package simd

// Number is the set of element types the arithmetic kernels operate on.
type Number interface {
	~int64 | ~float64
}

// Kernel function pointers. The generic loops are the defaults; init swaps
// in the unrolled set when a vector ISA is active.
var (
	kernelAddF64       = addGeneric[float64]
	kernelSubF64       = subGeneric[float64]
	kernelMulF64       = mulGeneric[float64]
	kernelDivF64       = divGeneric
	kernelAddScalarF64 = addScalarGeneric[float64]
	kernelSubScalarF64 = subScalarGeneric[float64]
	kernelMulScalarF64 = mulScalarGeneric[float64]
	kernelDivScalarF64 = divScalarGeneric
	kernelSumF64       = sumGeneric[float64]
	kernelDotF64       = dotGeneric[float64]

	kernelAddI64       = addGeneric[int64]
	kernelSubI64       = subGeneric[int64]
	kernelMulI64       = mulGeneric[int64]
	kernelAddScalarI64 = addScalarGeneric[int64]
	kernelSubScalarI64 = subScalarGeneric[int64]
	kernelMulScalarI64 = mulScalarGeneric[int64]
	kernelSumI64       = sumGeneric[int64]
)

func init() {
	selectKernels(activeISA)
}

// selectKernels installs the kernel set for isa.
func selectKernels(isa ISA) {
	if isa == Generic {
		setGenericKernels()
		return
	}
	setUnrolledKernels()
}

func setGenericKernels() {
	kernelAddF64 = addGeneric[float64]
	kernelSubF64 = subGeneric[float64]
	kernelMulF64 = mulGeneric[float64]
	kernelDivF64 = divGeneric
	kernelAddScalarF64 = addScalarGeneric[float64]
	kernelSubScalarF64 = subScalarGeneric[float64]
	kernelMulScalarF64 = mulScalarGeneric[float64]
	kernelDivScalarF64 = divScalarGeneric
	kernelSumF64 = sumGeneric[float64]
	kernelDotF64 = dotGeneric[float64]

	kernelAddI64 = addGeneric[int64]
	kernelSubI64 = subGeneric[int64]
	kernelMulI64 = mulGeneric[int64]
	kernelAddScalarI64 = addScalarGeneric[int64]
	kernelSubScalarI64 = subScalarGeneric[int64]
	kernelMulScalarI64 = mulScalarGeneric[int64]
	kernelSumI64 = sumGeneric[int64]
}

func setUnrolledKernels() {
	kernelAddF64 = addUnrolled[float64]
	kernelSubF64 = subUnrolled[float64]
	kernelMulF64 = mulUnrolled[float64]
	kernelDivF64 = divUnrolled
	kernelAddScalarF64 = addScalarUnrolled[float64]
	kernelSubScalarF64 = subScalarUnrolled[float64]
	kernelMulScalarF64 = mulScalarUnrolled[float64]
	kernelDivScalarF64 = divScalarUnrolled
	kernelSumF64 = sumUnrolled[float64]
	kernelDotF64 = dotUnrolled[float64]

	kernelAddI64 = addUnrolled[int64]
	kernelSubI64 = subUnrolled[int64]
	kernelMulI64 = mulUnrolled[int64]
	kernelAddScalarI64 = addScalarUnrolled[int64]
	kernelSubScalarI64 = subScalarUnrolled[int64]
	kernelMulScalarI64 = mulScalarUnrolled[int64]
	kernelSumI64 = sumUnrolled[int64]
}

// KernelSet names the installed kernel family.
func KernelSet() string {
	if activeISA == Generic {
		return "generic"
	}
	return "unrolled"
}

// ============================================================================
// float64
// ============================================================================

// AddF64 stores a[i] + b[i] in dst[i].
//
// SAFETY: len(a) and len(b) must be >= len(dst).
func AddF64(dst, a, b []float64) { kernelAddF64(dst, a, b) }

// SubF64 stores a[i] - b[i] in dst[i].
func SubF64(dst, a, b []float64) { kernelSubF64(dst, a, b) }

// MulF64 stores a[i] * b[i] in dst[i].
func MulF64(dst, a, b []float64) { kernelMulF64(dst, a, b) }

// DivF64 stores a[i] / b[i] in dst[i]. Zero divisors follow IEEE 754; callers
// that must reject them scan with IndexZero first.
func DivF64(dst, a, b []float64) { kernelDivF64(dst, a, b) }

// AddScalarF64 stores a[i] + s in dst[i].
func AddScalarF64(dst, a []float64, s float64) { kernelAddScalarF64(dst, a, s) }

// SubScalarF64 stores a[i] - s in dst[i].
func SubScalarF64(dst, a []float64, s float64) { kernelSubScalarF64(dst, a, s) }

// MulScalarF64 stores a[i] * s in dst[i].
func MulScalarF64(dst, a []float64, s float64) { kernelMulScalarF64(dst, a, s) }

// DivScalarF64 stores a[i] / s in dst[i].
func DivScalarF64(dst, a []float64, s float64) { kernelDivScalarF64(dst, a, s) }

// SumF64 returns the sum of a. The summation order depends on the kernel set.
func SumF64(a []float64) float64 { return kernelSumF64(a) }

// DotF64 returns the dot product of a and b.
//
// SAFETY: Assumes len(a) == len(b).
func DotF64(a, b []float64) float64 { return kernelDotF64(a, b) }

// ============================================================================
// int64 (two's complement wrap on overflow)
// ============================================================================

// AddI64 stores a[i] + b[i] in dst[i].
func AddI64(dst, a, b []int64) { kernelAddI64(dst, a, b) }

// SubI64 stores a[i] - b[i] in dst[i].
func SubI64(dst, a, b []int64) { kernelSubI64(dst, a, b) }

// MulI64 stores a[i] * b[i] in dst[i].
func MulI64(dst, a, b []int64) { kernelMulI64(dst, a, b) }

// AddScalarI64 stores a[i] + s in dst[i].
func AddScalarI64(dst, a []int64, s int64) { kernelAddScalarI64(dst, a, s) }

// SubScalarI64 stores a[i] - s in dst[i].
func SubScalarI64(dst, a []int64, s int64) { kernelSubScalarI64(dst, a, s) }

// MulScalarI64 stores a[i] * s in dst[i].
func MulScalarI64(dst, a []int64, s int64) { kernelMulScalarI64(dst, a, s) }

// SumI64 returns the wrapping sum of a.
func SumI64(a []int64) int64 { return kernelSumI64(a) }

// ============================================================================
// Function-parameter kernels for the operators without a dedicated loop
// ============================================================================

// Binary stores f(a[i], b[i]) in dst[i].
func Binary[T Number](dst, a, b []T, f func(x, y T) T) {
	a = a[:len(dst)]
	b = b[:len(dst)]
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}

// Scalar stores f(a[i], s) in dst[i].
func Scalar[T Number](dst, a []T, s T, f func(x, y T) T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = f(a[i], s)
	}
}

// ScalarLeft stores f(s, a[i]) in dst[i].
func ScalarLeft[T Number](dst []T, s T, a []T, f func(x, y T) T) {
	a = a[:len(dst)]
	for i := range dst {
		dst[i] = f(s, a[i])
	}
}

// IndexZero returns the index of the first zero in a, or -1. Negative zero
// counts as zero.
func IndexZero[T Number](a []T) int {
	for i, v := range a {
		if v == 0 {
			return i
		}
	}
	return -1
}
