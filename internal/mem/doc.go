// Package mem provides memory allocation utilities.
//
// # Aligned Allocation
//
// Kernel result buffers are allocated on 64-byte boundaries so that the
// first element of every vector starts on a cache line.
package mem
