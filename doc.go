/*
Package combine adds numbers, or ordered sequences of numbers, to each other.

Operands

An Operand is either a scalar number or a sequence of numbers. Numbers live in
one of two domains, integer or floating point, and follow the usual rules:
adding two integers yields an integer, as soon as a floating point number takes
part the result is floating point.

Sequences come in two flavors, FixedArray and GrowableList. They differ only in
mutability on the client side; package combine treats both as immutable values.

	a := combine.Sequence(combine.GrowableList, combine.Int(1), combine.Int(2))
	b := combine.Sequence(combine.GrowableList, combine.Int(3), combine.Int(4))
	c, err := combine.Combine(a, b)   // c = [4, 6]

Combine

Combine dispatches on the categories of its operands. Two scalars are added
arithmetically, two sequences of equal length are added element-wise. Every
other pairing fails with ErrIncompatibleOperands: a scalar paired with a
sequence, sequences of differing length, or an operand which is neither (the
zero Operand, which stands for unsupported inputs such as text).

The result of adding two sequences carries the flavor of the first operand.
The flavor of the second operand is not checked.

_________________________________________________________________________

BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.

*/
package combine

import (
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
)

// T traces to a global core-tracer.
func T() tracing.Trace {
	return gtrace.CoreTracer
}
