package native

import (
	"fmt"

	"github.com/npillmayer/combine"
	"golang.org/x/exp/constraints"
)

// Number is the set of types Scalars and Slices operate on.
type Number interface {
	constraints.Integer | constraints.Float
}

// Scalars returns a + b. It is the statically typed counterpart of Add for
// scalar operands and cannot fail.
func Scalars[T Number](a, b T) T {
	return a + b
}

// Slices adds two slices element-wise and returns a new slice of the same
// type. If the lengths of a and b differ, Slices returns an error wrapping
// combine.ErrIncompatibleOperands.
func Slices[S ~[]E, E Number](a, b S) (S, error) {
	if len(a) != len(b) {
		return nil, fmt.Errorf("%w: sequence lengths %d and %d differ",
			combine.ErrIncompatibleOperands, len(a), len(b))
	}
	sum := make(S, len(a))
	for i := range a {
		sum[i] = a[i] + b[i]
	}
	return sum, nil
}
