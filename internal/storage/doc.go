// Package storage owns the backing buffers of rvec vectors.
//
// A Storage holds the elements of exactly one Kind in a contiguous Go slice.
// It only stores, reads, copies and validates elements; all arithmetic lives
// in the rvec package so that every algorithm is written once per element
// type rather than once per storage kind.
//
// Indices passed to Get and Set may be negative and count from the end
// (-1 is the last element). Slice bounds are clamped instead of rejected.
package storage
