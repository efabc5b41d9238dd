package rvec

import (
	"errors"
	"fmt"

	"github.com/cluffa/rvec/internal/storage"
)

var (
	// ErrEmptyInput is returned by New when no element is available to infer
	// the kind from. Use NewOf or Zeros to build an empty vector.
	ErrEmptyInput = errors.New("rvec: cannot infer kind from empty input")

	// ErrEmptyVector is returned by reductions that are undefined on an
	// empty vector (Min, Max, Mean, ...).
	ErrEmptyVector = errors.New("rvec: empty vector")

	// ErrZeroStep is returned by SliceStep when step is zero.
	ErrZeroStep = errors.New("rvec: slice step cannot be zero")
)

// ErrTypeMismatch indicates an element or scalar whose type disagrees with a
// vector's kind.
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrTypeMismatch struct {
	// Index is the offending element position, or -1 for a scalar operand.
	Index    int
	Got      string
	Expected Kind
	// unsupported is set when the value has no kind at all.
	unsupported bool
	cause       error
}

func (e *ErrTypeMismatch) Error() string {
	switch {
	case e.unsupported && e.Index >= 0:
		return fmt.Sprintf("type mismatch: element %d has unsupported type %s", e.Index, e.Got)
	case e.unsupported:
		return fmt.Sprintf("type mismatch: unsupported scalar type %s", e.Got)
	case e.Index >= 0:
		return fmt.Sprintf("type mismatch: element %d is %s, expected %s", e.Index, e.Got, e.Expected)
	default:
		return fmt.Sprintf("type mismatch: scalar is %s, expected %s", e.Got, e.Expected)
	}
}

func (e *ErrTypeMismatch) Unwrap() error { return e.cause }

// ErrKindMismatch indicates an operation that requires two vectors of the
// same kind.
type ErrKindMismatch struct {
	Left  Kind
	Right Kind
	cause error
}

func (e *ErrKindMismatch) Error() string {
	return fmt.Sprintf("kind mismatch: %s and %s", e.Left, e.Right)
}

func (e *ErrKindMismatch) Unwrap() error { return e.cause }

// ErrLengthMismatch indicates an elementwise operation on vectors of
// different lengths.
type ErrLengthMismatch struct {
	Left  int
	Right int
}

func (e *ErrLengthMismatch) Error() string {
	return fmt.Sprintf("length mismatch: %d and %d", e.Left, e.Right)
}

// ErrIndexOutOfRange indicates an index outside [-Length, Length).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrIndexOutOfRange struct {
	Index  int
	Length int
	cause  error
}

func (e *ErrIndexOutOfRange) Error() string {
	return fmt.Sprintf("index out of range: %d with length %d", e.Index, e.Length)
}

func (e *ErrIndexOutOfRange) Unwrap() error { return e.cause }

// ErrDivisionByZero indicates a zero divisor in Divide, FloorDivide or
// Modulo.
type ErrDivisionByZero struct {
	// Index is the position of the first zero divisor, or -1 for a scalar.
	Index int
}

func (e *ErrDivisionByZero) Error() string {
	if e.Index < 0 {
		return "division by zero: scalar divisor"
	}
	return fmt.Sprintf("division by zero: divisor element %d", e.Index)
}

// ErrUnsupportedOperator indicates an operation that is not defined for a
// kind, such as arithmetic on text.
type ErrUnsupportedOperator struct {
	Op   string
	Kind Kind
}

func (e *ErrUnsupportedOperator) Error() string {
	return fmt.Sprintf("unsupported operator: %s on %s", e.Op, e.Kind)
}

// ErrInvalidLength indicates a negative length passed to Zeros.
type ErrInvalidLength struct {
	Length int
}

func (e *ErrInvalidLength) Error() string {
	return fmt.Sprintf("invalid length: %d", e.Length)
}

// ErrConversion indicates an element that cannot be converted to the target
// kind (for example NaN to Int64).
//
// The original underlying error (if any) can be accessed via errors.Unwrap.
type ErrConversion struct {
	Index  int
	Target Kind
	cause  error
}

func (e *ErrConversion) Error() string {
	return fmt.Sprintf("conversion: element %d cannot be converted to %s: %v", e.Index, e.Target, e.cause)
}

func (e *ErrConversion) Unwrap() error { return e.cause }

// translateError maps storage errors onto the public error types.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var te *storage.TypeError
	if errors.As(err, &te) {
		return &ErrTypeMismatch{Index: te.Index, Got: te.Got, Expected: te.Expected, cause: err}
	}
	var re *storage.RangeError
	if errors.As(err, &re) {
		return &ErrIndexOutOfRange{Index: re.Index, Length: re.Length, cause: err}
	}
	var ke *storage.KindError
	if errors.As(err, &ke) {
		return &ErrKindMismatch{Left: ke.Left, Right: ke.Right, cause: err}
	}

	return err
}

func scalarMismatch(v any, expected Kind) error {
	_, _, ok := storage.Normalize(v)
	return &ErrTypeMismatch{Index: -1, Got: storage.TypeName(v), Expected: expected, unsupported: !ok}
}
