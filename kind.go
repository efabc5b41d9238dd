package rvec

import "github.com/cluffa/rvec/internal/storage"

// Kind is the fixed element type of a Vector.
type Kind = storage.Kind

const (
	// Int64 vectors hold signed 64-bit integers.
	Int64 = storage.KindInt64
	// Float64 vectors hold 64-bit IEEE floats.
	Float64 = storage.KindFloat64
	// Bool vectors hold booleans; arithmetic treats them as 0 and 1.
	Bool = storage.KindBool
	// Text vectors hold strings; no arithmetic is defined on them.
	Text = storage.KindText
)

// ParseKind parses a kind name ("int64", "float64", "bool", "text" and the
// aliases "int", "float", "str", "string").
func ParseKind(s string) (Kind, bool) {
	return storage.ParseKind(s)
}

// Element is the set of Go types a Vector stores natively.
type Element = storage.Element
