package mem

import (
	"testing"
	"unsafe"

	"github.com/stretchr/testify/assert"
)

func TestAllocAligned(t *testing.T) {
	sizes := []int{1, 10, 63, 64, 65, 100, 1024}

	for _, size := range sizes {
		buf := AllocAligned(size)
		assert.Len(t, buf, size)
		assert.Equal(t, size, cap(buf))

		addr := uintptr(unsafe.Pointer(&buf[0]))
		assert.Equal(t, uintptr(0), addr%Alignment, "size %d", size)
	}

	assert.Nil(t, AllocAligned(0))
	assert.Nil(t, AllocAligned(-1))
}

func TestAligned(t *testing.T) {
	for _, n := range []int{1, 7, 8, 9, 100, 4097} {
		f := Aligned[float64](n)
		assert.Len(t, f, n)
		assert.True(t, IsAligned(f), "float64 n=%d", n)

		i := Aligned[int64](n)
		assert.Len(t, i, n)
		assert.True(t, IsAligned(i), "int64 n=%d", n)
		for _, x := range i {
			assert.Zero(t, x)
		}

		f[n-1] = 1.5
		assert.Equal(t, 1.5, f[n-1])
	}

	empty := Aligned[float64](0)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)
	assert.True(t, IsAligned(empty))
}
