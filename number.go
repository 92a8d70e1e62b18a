package combine

import (
	"strconv"
	"strings"
)

// Domain is the numeric domain of a Number.
type Domain uint8

// Numbers are either integers or floating point numbers.
const (
	IntDomain Domain = iota
	FloatDomain
)

func (d Domain) String() string {
	switch d {
	case IntDomain:
		return "int"
	case FloatDomain:
		return "float"
	}
	return "<unknown domain>"
}

// Number is a scalar numeric value. The zero value is the integer 0.
type Number struct {
	domain Domain
	i      int64
	f      float64
}

// Int creates an integer number.
func Int(i int64) Number {
	return Number{domain: IntDomain, i: i}
}

// Float creates a floating point number.
func Float(f float64) Number {
	return Number{domain: FloatDomain, f: f}
}

// Domain returns the numeric domain of n.
func (n Number) Domain() Domain {
	return n.domain
}

// IsFloat is true for numbers of the floating point domain.
func (n Number) IsFloat() bool {
	return n.domain == FloatDomain
}

// Int64 returns n as an integer. Floating point numbers are truncated.
func (n Number) Int64() int64 {
	if n.IsFloat() {
		return int64(n.f)
	}
	return n.i
}

// Float64 returns n as a floating point number.
func (n Number) Float64() float64 {
	if n.IsFloat() {
		return n.f
	}
	return float64(n.i)
}

// Plus returns n + m. Integer addition wraps around on overflow, just like
// Go's native addition does. If either operand is floating point, so is the
// result.
func (n Number) Plus(m Number) Number {
	if n.IsFloat() || m.IsFloat() {
		return Float(n.Float64() + m.Float64())
	}
	return Int(n.i + m.i)
}

// Equal is true if n and m are of the same domain and have equal values.
func (n Number) Equal(m Number) bool {
	if n.domain != m.domain {
		return false
	}
	if n.IsFloat() {
		return n.f == m.f
	}
	return n.i == m.i
}

// String renders n. Floating point numbers always contain a decimal point
// or an exponent, to be distinguishable from integers.
func (n Number) String() string {
	if !n.IsFloat() {
		return strconv.FormatInt(n.i, 10)
	}
	s := strconv.FormatFloat(n.f, 'g', -1, 64)
	if strings.ContainsAny(s, ".eEnN") { // N for NaN and Inf
		return s
	}
	return s + ".0"
}
