package rvec

import (
	"fmt"

	"github.com/cluffa/rvec/internal/storage"
)

// Op is a binary arithmetic operator.
type Op uint8

const (
	// OpAdd is elementwise addition.
	OpAdd Op = iota
	// OpSubtract is elementwise subtraction.
	OpSubtract
	// OpMultiply is elementwise multiplication.
	OpMultiply
	// OpDivide is true division. The result is always Float64.
	OpDivide
	// OpFloorDivide rounds the quotient toward negative infinity.
	OpFloorDivide
	// OpModulo returns a remainder with the sign of the divisor.
	OpModulo
)

var opNames = [...]string{
	OpAdd:         "add",
	OpSubtract:    "subtract",
	OpMultiply:    "multiply",
	OpDivide:      "divide",
	OpFloorDivide: "floor_divide",
	OpModulo:      "modulo",
}

func (o Op) String() string {
	if int(o) < len(opNames) {
		return opNames[o]
	}
	return fmt.Sprintf("Op(%d)", o)
}

func (o Op) divides() bool {
	return o == OpDivide || o == OpFloorDivide || o == OpModulo
}

// Comparison is an elementwise comparison operator.
type Comparison uint8

const (
	CmpEqual Comparison = iota
	CmpNotEqual
	CmpLess
	CmpLessEqual
	CmpGreater
	CmpGreaterEqual
)

var comparisonNames = [...]string{
	CmpEqual:        "eq",
	CmpNotEqual:     "ne",
	CmpLess:         "lt",
	CmpLessEqual:    "le",
	CmpGreater:      "gt",
	CmpGreaterEqual: "ge",
}

func (c Comparison) String() string {
	if int(c) < len(comparisonNames) {
		return comparisonNames[c]
	}
	return fmt.Sprintf("Comparison(%d)", c)
}

// resultKind applies the promotion table: divide always yields Float64, any
// Float64 operand yields Float64 and everything else (Int64, Bool) yields
// Int64. Text has no arithmetic.
func resultKind(op Op, left, right Kind) (Kind, error) {
	if left == Text || right == Text {
		return 0, &ErrUnsupportedOperator{Op: op.String(), Kind: Text}
	}
	if op == OpDivide || left == Float64 || right == Float64 {
		return Float64, nil
	}
	return Int64, nil
}

// compareKind picks the domain two kinds are compared in.
func compareKind(c Comparison, left, right Kind) (Kind, error) {
	switch {
	case left == Text && right == Text:
		return Text, nil
	case left == Text || right == Text:
		return 0, &ErrUnsupportedOperator{Op: c.String(), Kind: Text}
	case left == Float64 || right == Float64:
		return Float64, nil
	default:
		return Int64, nil
	}
}

// int64View returns the elements of an Int64 or Bool storage as int64. Int64
// storage is returned without copying.
func int64View(s storage.Storage) []int64 {
	switch b := s.(type) {
	case *storage.Buffer[int64]:
		return b.Raw()
	case *storage.Buffer[bool]:
		out := make([]int64, b.Len())
		for i, x := range b.Raw() {
			if x {
				out[i] = 1
			}
		}
		return out
	}
	return nil
}

// float64View returns the elements of a numeric storage as float64. Float64
// storage is returned without copying.
func float64View(s storage.Storage) []float64 {
	switch b := s.(type) {
	case *storage.Buffer[float64]:
		return b.Raw()
	case *storage.Buffer[int64]:
		out := make([]float64, b.Len())
		for i, x := range b.Raw() {
			out[i] = float64(x)
		}
		return out
	case *storage.Buffer[bool]:
		out := make([]float64, b.Len())
		for i, x := range b.Raw() {
			if x {
				out[i] = 1
			}
		}
		return out
	}
	return nil
}

// scalar is a normalized scalar operand.
type scalar struct {
	kind  Kind
	value any
}

func newScalar(v any, against Kind) (scalar, error) {
	k, x, ok := storage.Normalize(v)
	if !ok {
		return scalar{}, scalarMismatch(v, against)
	}
	return scalar{kind: k, value: x}, nil
}

func (s scalar) asInt64() int64 {
	switch x := s.value.(type) {
	case int64:
		return x
	case bool:
		if x {
			return 1
		}
	}
	return 0
}

func (s scalar) asFloat64() float64 {
	switch x := s.value.(type) {
	case float64:
		return x
	case int64:
		return float64(x)
	case bool:
		if x {
			return 1
		}
	}
	return 0
}

func (s scalar) isZero() bool {
	return s.asFloat64() == 0
}
