package rvec

import (
	"fmt"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/bits-and-blooms/bitset"

	"github.com/cluffa/rvec/internal/conv"
	"github.com/cluffa/rvec/internal/storage"
)

// Filter returns the elements whose mask entry is true. mask must be a Bool
// vector of the same length.
func (v *Vector) Filter(mask *Vector) (*Vector, error) {
	m, err := mask.bools("filter")
	if err != nil {
		return nil, err
	}
	if len(m) != v.Len() {
		return nil, &ErrLengthMismatch{Left: v.Len(), Right: len(m)}
	}
	idx := make([]int, 0, len(m))
	for i, keep := range m {
		if keep {
			idx = append(idx, i)
		}
	}
	return gatherVector(v, idx), nil
}

// Take returns the elements at indices, in order. Negative indices count
// from the end; any index out of range fails.
func (v *Vector) Take(indices []int) (*Vector, error) {
	n := v.Len()
	idx := make([]int, len(indices))
	for i, j := range indices {
		k, ok := storage.NormalizeIndex(j, n)
		if !ok {
			return nil, &ErrIndexOutOfRange{Index: j, Length: n}
		}
		idx[i] = k
	}
	return gatherVector(v, idx), nil
}

// Where returns the positions of the true elements of a Bool vector as a
// compressed bitmap.
func (v *Vector) Where() (*roaring.Bitmap, error) {
	m, err := v.bools("where")
	if err != nil {
		return nil, err
	}
	bm := roaring.New()
	for i, b := range m {
		if !b {
			continue
		}
		id, err := conv.IntToUint32(i)
		if err != nil {
			return nil, fmt.Errorf("where: %w", err)
		}
		bm.Add(id)
	}
	return bm, nil
}

// Select returns the elements at the positions set in bm, in ascending
// order. Every position must be in range.
func (v *Vector) Select(bm *roaring.Bitmap) (*Vector, error) {
	n := v.Len()
	idx := make([]int, 0, bm.GetCardinality())
	it := bm.Iterator()
	for it.HasNext() {
		pos, err := conv.Uint32ToInt(it.Next())
		if err != nil {
			return nil, fmt.Errorf("select: %w", err)
		}
		if pos >= n {
			return nil, &ErrIndexOutOfRange{Index: pos, Length: n}
		}
		idx = append(idx, pos)
	}
	return gatherVector(v, idx), nil
}

// Bits returns a Bool vector as a dense bit set of length Len.
func (v *Vector) Bits() (*bitset.BitSet, error) {
	m, err := v.bools("bits")
	if err != nil {
		return nil, err
	}
	bs := bitset.New(uint(len(m)))
	for i, b := range m {
		if b {
			bs.Set(uint(i))
		}
	}
	return bs, nil
}

// FromBits builds a Bool vector of length n from the first n bits of b.
// Bits beyond b's length read as false.
func FromBits(b *bitset.BitSet, n int) (*Vector, error) {
	if n < 0 {
		return nil, &ErrInvalidLength{Length: n}
	}
	out := make([]bool, n)
	for i := range out {
		out[i] = b.Test(uint(i))
	}
	return wrapSlice(out), nil
}
