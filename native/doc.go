/*
Package native applies package combine to plain Go values.

Go scalars of any integer or floating point type are scalar operands, slices are
sequences of flavor GrowableList and arrays are sequences of flavor FixedArray.
Add mirrors Go's own rules for the + operator: both scalars, or both element
types, must have the identical type. Results have the Go type of the first
operand.

	native.Add(2, 3)                       // 5
	native.Add([]int{1, 2}, []int{3, 4})   // []int{4, 6}
	native.Add([2]int{1, 2}, [2]int{3, 4}) // [2]int{4, 6}
	native.Add("a", "b")                   // error: incompatible operands

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package native

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer, as package combine does.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
