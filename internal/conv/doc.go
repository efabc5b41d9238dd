// Package conv provides checked numeric conversions.
//
// rvec uses them where a value crosses a width or domain boundary: vector
// positions stored in 32-bit bitmaps, and float elements cast to int64.
// Conversions that are safe by construction (loop indices, lengths) use
// plain casts.
package conv
