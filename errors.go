package combine

// CombineError is an error type for the combine module
type CombineError string

func (e CombineError) Error() string {
	return string(e)
}

// ErrIncompatibleOperands is flagged whenever two operands cannot be added:
// a scalar is paired with a sequence, two sequences differ in length, or
// an operand is of an unsupported type.
//
// Clients should test for it with errors.Is, as Combine wraps it with
// details about the offending operands.
const ErrIncompatibleOperands = CombineError("incompatible operands")
