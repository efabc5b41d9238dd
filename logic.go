package rvec

func (v *Vector) bools(op string) ([]bool, error) {
	if v.Kind() != Bool {
		return nil, &ErrUnsupportedOperator{Op: op, Kind: v.Kind()}
	}
	return raw[bool](v), nil
}

func (v *Vector) logical(op string, other *Vector, f func(x, y bool) bool) (*Vector, error) {
	x, err := v.bools(op)
	if err != nil {
		return nil, err
	}
	y, err := other.bools(op)
	if err != nil {
		return nil, err
	}
	if len(x) != len(y) {
		return nil, &ErrLengthMismatch{Left: len(x), Right: len(y)}
	}
	out := make([]bool, len(x))
	for i := range out {
		out[i] = f(x[i], y[i])
	}
	return wrapSlice(out), nil
}

// And returns the elementwise conjunction of two Bool vectors.
func (v *Vector) And(other *Vector) (*Vector, error) {
	return v.logical("and", other, func(x, y bool) bool { return x && y })
}

// Or returns the elementwise disjunction of two Bool vectors.
func (v *Vector) Or(other *Vector) (*Vector, error) {
	return v.logical("or", other, func(x, y bool) bool { return x || y })
}

// Xor returns the elementwise exclusive or of two Bool vectors.
func (v *Vector) Xor(other *Vector) (*Vector, error) {
	return v.logical("xor", other, func(x, y bool) bool { return x != y })
}

// Not returns the elementwise negation of a Bool vector.
func (v *Vector) Not() (*Vector, error) {
	x, err := v.bools("not")
	if err != nil {
		return nil, err
	}
	out := make([]bool, len(x))
	for i, b := range x {
		out[i] = !b
	}
	return wrapSlice(out), nil
}

// All reports whether every element of a Bool vector is true. It is true
// for an empty vector.
func (v *Vector) All() (bool, error) {
	x, err := v.bools("all")
	if err != nil {
		return false, err
	}
	for _, b := range x {
		if !b {
			return false, nil
		}
	}
	return true, nil
}

// Any reports whether at least one element of a Bool vector is true.
func (v *Vector) Any() (bool, error) {
	x, err := v.bools("any")
	if err != nil {
		return false, err
	}
	for _, b := range x {
		if b {
			return true, nil
		}
	}
	return false, nil
}

// Count returns the number of true elements of a Bool vector.
func (v *Vector) Count() (int, error) {
	x, err := v.bools("count")
	if err != nil {
		return 0, err
	}
	n := 0
	for _, b := range x {
		if b {
			n++
		}
	}
	return n, nil
}
