package storage

import "fmt"

// TypeError reports a value whose type does not match a storage kind.
type TypeError struct {
	// Index is the position the value was destined for, or -1.
	Index    int
	Got      string
	Expected Kind
}

func (e *TypeError) Error() string {
	if e.Index < 0 {
		return fmt.Sprintf("storage: %s value does not match kind %s", e.Got, e.Expected)
	}
	return fmt.Sprintf("storage: element %d is %s, expected %s", e.Index, e.Got, e.Expected)
}

// RangeError reports an index outside [0, Length) after normalization.
type RangeError struct {
	Index  int
	Length int
}

func (e *RangeError) Error() string {
	return fmt.Sprintf("storage: index %d out of range for length %d", e.Index, e.Length)
}

// KindError reports an operation that needs two storages of the same kind.
type KindError struct {
	Left  Kind
	Right Kind
}

func (e *KindError) Error() string {
	return fmt.Sprintf("storage: kind %s does not match kind %s", e.Left, e.Right)
}

// TypeName describes the type of v for error messages. Accepted scalars are
// named by their kind, everything else by its Go type.
func TypeName(v any) string {
	if k, _, ok := Normalize(v); ok {
		return k.String()
	}
	if v == nil {
		return "nil"
	}
	return fmt.Sprintf("%T", v)
}
