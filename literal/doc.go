/*
Package literal reads operands from text.

The notation follows the rendering of combine.Operand.String:

	42  -7  2.5  1e-3      scalars
	+Inf  -Inf  NaN        non-finite floats
	[1, 2, 3]              sequence of flavor GrowableList
	(1, 2)  (1,)  ()       sequence of flavor FixedArray

Text, either quoted or as a bare word, is accepted as well. It is read as an
unsupported operand, so that combining it fails with
combine.ErrIncompatibleOperands.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

Please refer to the LICENSE file for details.
*/
package literal

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces to the global core-tracer, as package combine does.
func tracer() tracing.Trace {
	return gtrace.CoreTracer
}
