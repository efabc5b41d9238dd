package rvec

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

func (v *Vector) texts(op string) ([]string, error) {
	if v.Kind() != Text {
		return nil, &ErrUnsupportedOperator{Op: op, Kind: v.Kind()}
	}
	return raw[string](v), nil
}

func (v *Vector) mapText(op string, f func(string) string) (*Vector, error) {
	return textTo(v, op, f)
}

func textTo[T Element](v *Vector, op string, f func(string) T) (*Vector, error) {
	src, err := v.texts(op)
	if err != nil {
		return nil, err
	}
	out := make([]T, len(src))
	for i, s := range src {
		out[i] = f(s)
	}
	return wrapSlice(out), nil
}

// Upper returns every element upper-cased.
func (v *Vector) Upper() (*Vector, error) {
	return v.mapText("upper", strings.ToUpper)
}

// Lower returns every element lower-cased.
func (v *Vector) Lower() (*Vector, error) {
	return v.mapText("lower", strings.ToLower)
}

// Strip removes leading and trailing white space.
func (v *Vector) Strip() (*Vector, error) {
	return v.mapText("strip", strings.TrimSpace)
}

// LStrip removes leading white space.
func (v *Vector) LStrip() (*Vector, error) {
	return v.mapText("lstrip", func(s string) string {
		return strings.TrimLeftFunc(s, unicode.IsSpace)
	})
}

// RStrip removes trailing white space.
func (v *Vector) RStrip() (*Vector, error) {
	return v.mapText("rstrip", func(s string) string {
		return strings.TrimRightFunc(s, unicode.IsSpace)
	})
}

// Capitalize upper-cases the first rune of every element and lower-cases
// the rest.
func (v *Vector) Capitalize() (*Vector, error) {
	return v.mapText("capitalize", capitalize)
}

func capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToTitle(r)) + strings.ToLower(s[size:])
}

// Center pads every element with fill to width runes, splitting the
// padding between both sides. Elements at least width runes long are
// returned unchanged.
func (v *Vector) Center(width int, fill rune) (*Vector, error) {
	return v.mapText("center", func(s string) string {
		return center(s, width, fill)
	})
}

func center(s string, width int, fill rune) string {
	marg := width - utf8.RuneCountInString(s)
	if marg <= 0 {
		return s
	}
	left := marg/2 + (marg & width & 1)
	pad := string(fill)
	return strings.Repeat(pad, left) + s + strings.Repeat(pad, marg-left)
}

// Replace replaces every non-overlapping occurrence of from with to.
func (v *Vector) Replace(from, to string) (*Vector, error) {
	return v.mapText("replace", func(s string) string {
		return strings.ReplaceAll(s, from, to)
	})
}

// StartsWith reports, per element, whether it begins with prefix.
func (v *Vector) StartsWith(prefix string) (*Vector, error) {
	return textTo(v, "startswith", func(s string) bool {
		return strings.HasPrefix(s, prefix)
	})
}

// EndsWith reports, per element, whether it ends with suffix.
func (v *Vector) EndsWith(suffix string) (*Vector, error) {
	return textTo(v, "endswith", func(s string) bool {
		return strings.HasSuffix(s, suffix)
	})
}

// CountSubstring returns, per element, the number of non-overlapping
// occurrences of sub. An empty sub counts rune boundaries.
func (v *Vector) CountSubstring(sub string) (*Vector, error) {
	return textTo(v, "count", func(s string) int64 {
		return int64(strings.Count(s, sub))
	})
}

// Find returns, per element, the rune index of the first occurrence of
// sub, or -1.
func (v *Vector) Find(sub string) (*Vector, error) {
	return textTo(v, "find", func(s string) int64 {
		i := strings.Index(s, sub)
		if i < 0 {
			return -1
		}
		return int64(utf8.RuneCountInString(s[:i]))
	})
}

// RuneLen returns the number of runes in every element.
func (v *Vector) RuneLen() (*Vector, error) {
	return textTo(v, "len", func(s string) int64 {
		return int64(utf8.RuneCountInString(s))
	})
}

// Join concatenates the elements of a Text vector separated by sep.
func (v *Vector) Join(sep string) (string, error) {
	src, err := v.texts("join")
	if err != nil {
		return "", err
	}
	return strings.Join(src, sep), nil
}
