package storage

import (
	"strconv"
	"strings"
)

// A Kind is the element type of a Storage. It is fixed at construction.
type Kind uint8

const (
	KindInt64   Kind = iota // KindInt64 stores signed 64-bit integers.
	KindFloat64             // KindFloat64 stores 64-bit IEEE floats.
	KindBool                // KindBool stores booleans.
	KindText                // KindText stores UTF-8 strings.
)

var kindNames = [...]string{
	KindInt64:   "int64",
	KindFloat64: "float64",
	KindBool:    "bool",
	KindText:    "text",
}

// String returns the string representation of k.
func (k Kind) String() string {
	if int(k) < len(kindNames) {
		return kindNames[k]
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Valid reports whether k is one of the four defined kinds.
func (k Kind) Valid() bool {
	return int(k) < len(kindNames)
}

// IsNumeric reports whether arithmetic is defined on k. Bool counts as 0/1.
func (k Kind) IsNumeric() bool {
	return k == KindInt64 || k == KindFloat64 || k == KindBool
}

// Zero returns the additive identity of k.
func (k Kind) Zero() any {
	switch k {
	case KindInt64:
		return int64(0)
	case KindFloat64:
		return float64(0)
	case KindBool:
		return false
	case KindText:
		return ""
	default:
		return nil
	}
}

// ParseKind parses a kind name. Matching is case-insensitive.
func ParseKind(s string) (Kind, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "int64", "int":
		return KindInt64, true
	case "float64", "float":
		return KindFloat64, true
	case "bool":
		return KindBool, true
	case "text", "str", "string":
		return KindText, true
	default:
		return KindInt64, false
	}
}
