package mem

import (
	"unsafe"
)

// Alignment is the byte alignment of every buffer returned by this package.
const Alignment = 64

// Word is the set of element types that can live in an aligned buffer.
// They must not contain pointers: the backing array is a []byte that the
// garbage collector does not scan.
type Word interface {
	~int64 | ~float64
}

// AllocAligned allocates a zeroed byte slice of the given size whose first
// byte sits on an Alignment boundary. It returns nil for size <= 0.
func AllocAligned(size int) []byte {
	if size <= 0 {
		return nil
	}

	buf := make([]byte, size+Alignment)

	addr := uintptr(unsafe.Pointer(&buf[0])) //nolint:gosec // unsafe is required for memory alignment
	offset := int((Alignment - (addr & (Alignment - 1))) & (Alignment - 1))

	return buf[offset : offset+size : offset+size]
}

// Aligned returns a zeroed slice of n elements starting on an Alignment
// boundary. n <= 0 yields an empty, non-nil slice.
func Aligned[T Word](n int) []T {
	if n <= 0 {
		return []T{}
	}
	var zero T
	b := AllocAligned(n * int(unsafe.Sizeof(zero)))
	return unsafe.Slice((*T)(unsafe.Pointer(&b[0])), n) //nolint:gosec // unsafe is required for memory alignment
}

// IsAligned reports whether the first element of s sits on an Alignment
// boundary. Empty slices are considered aligned.
func IsAligned[T Word](s []T) bool {
	if len(s) == 0 {
		return true
	}
	return uintptr(unsafe.Pointer(&s[0]))%Alignment == 0 //nolint:gosec // unsafe is required for memory alignment
}
