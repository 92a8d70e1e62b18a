package combine

import "strings"

// Kind is the category of an operand.
type Kind uint8

// Operands are either scalars or sequences. NoKind marks the zero Operand,
// which represents any unsupported input.
const (
	NoKind Kind = iota
	ScalarKind
	SequenceKind
)

func (k Kind) String() string {
	switch k {
	case ScalarKind:
		return "scalar"
	case SequenceKind:
		return "sequence"
	}
	return "unsupported"
}

// Flavor distinguishes the two kinds of sequences. Flavors differ in
// mutability only, but are preserved by Combine.
type Flavor uint8

// FixedArray is a tuple-like sequence of fixed size, GrowableList a
// list-like one.
const (
	FixedArray Flavor = iota
	GrowableList
)

func (f Flavor) String() string {
	switch f {
	case FixedArray:
		return "array"
	case GrowableList:
		return "list"
	}
	return "<unknown flavor>"
}

// Operand is a value which may be passed to Combine. It is either a scalar
// Number or a sequence of Numbers with a flavor.
//
// Operands are immutable. The zero value is an unsupported operand.
type Operand struct {
	kind   Kind
	num    Number
	seq    []Number
	flavor Flavor
}

// Scalar creates a scalar operand.
func Scalar(n Number) Operand {
	return Operand{kind: ScalarKind, num: n}
}

// Sequence creates a sequence operand of flavor f. The elements are copied.
func Sequence(f Flavor, elems ...Number) Operand {
	seq := make([]Number, len(elems))
	copy(seq, elems)
	return Operand{kind: SequenceKind, seq: seq, flavor: f}
}

// List is a shortcut for Sequence(GrowableList, elems...).
func List(elems ...Number) Operand {
	return Sequence(GrowableList, elems...)
}

// Tuple is a shortcut for Sequence(FixedArray, elems...).
func Tuple(elems ...Number) Operand {
	return Sequence(FixedArray, elems...)
}

// Kind returns the category of o.
func (o Operand) Kind() Kind {
	return o.kind
}

// IsValid is false for the zero Operand.
func (o Operand) IsValid() bool {
	return o.kind != NoKind
}

// Flavor returns the flavor of a sequence operand. For other operands the
// return value is meaningless.
func (o Operand) Flavor() Flavor {
	return o.flavor
}

// Value returns the number of a scalar operand.
func (o Operand) Value() Number {
	return o.num
}

// Len returns the number of elements of a sequence operand and 0 otherwise.
func (o Operand) Len() int {
	return len(o.seq)
}

// At returns the i-th element of a sequence operand. It panics if i is out
// of range.
func (o Operand) At(i int) Number {
	return o.seq[i]
}

// Elements returns a copy of the elements of a sequence operand.
func (o Operand) Elements() []Number {
	if o.kind != SequenceKind {
		return nil
	}
	elems := make([]Number, len(o.seq))
	copy(elems, o.seq)
	return elems
}

// Equal is true if o and p are of the same kind, flavor and value.
func (o Operand) Equal(p Operand) bool {
	if o.kind != p.kind {
		return false
	}
	switch o.kind {
	case ScalarKind:
		return o.num.Equal(p.num)
	case SequenceKind:
		if o.flavor != p.flavor || len(o.seq) != len(p.seq) {
			return false
		}
		for i, n := range o.seq {
			if !n.Equal(p.seq[i]) {
				return false
			}
		}
	}
	return true
}

// String renders o: scalars as numbers, lists as [1, 2], arrays as (1, 2).
// An array of length 1 is rendered with a trailing comma, as in (1,).
func (o Operand) String() string {
	switch o.kind {
	case ScalarKind:
		return o.num.String()
	case SequenceKind:
		opening, closing := "[", "]"
		if o.flavor == FixedArray {
			opening, closing = "(", ")"
		}
		var b strings.Builder
		b.WriteString(opening)
		for i, n := range o.seq {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(n.String())
		}
		if o.flavor == FixedArray && len(o.seq) == 1 {
			b.WriteString(",")
		}
		b.WriteString(closing)
		return b.String()
	}
	return "<unsupported>"
}
