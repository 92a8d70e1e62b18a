package combine

import "fmt"

// Combine adds two operands.
//
// Two scalars are added arithmetically. Two sequences of equal length are
// added element-wise; the result is a new sequence with the flavor of a.
// In every other case Combine returns an error wrapping
// ErrIncompatibleOperands.
//
// Combine does not modify its operands and is safe for concurrent use.
func Combine(a, b Operand) (Operand, error) {
	if err := compatible(a, b); err != nil {
		T().Debugf("cannot combine %s and %s: %v", a, b, err)
		return Operand{}, err
	}
	if a.kind == ScalarKind {
		return Scalar(a.num.Plus(b.num)), nil
	}
	if a.flavor != b.flavor {
		T().Debugf("combining %s with %s, result will be %s", a.flavor, b.flavor, a.flavor)
	}
	sum := make([]Number, len(a.seq))
	for i := range a.seq {
		sum[i] = a.seq[i].Plus(b.seq[i])
	}
	return Operand{kind: SequenceKind, seq: sum, flavor: a.flavor}, nil
}

// compatible checks if a and b may be added to each other. Sequence flavors
// are not compared.
func compatible(a, b Operand) error {
	if !a.IsValid() || !b.IsValid() {
		return fmt.Errorf("%w: unsupported operand type", ErrIncompatibleOperands)
	}
	if a.kind != b.kind {
		return fmt.Errorf("%w: cannot add %s and %s", ErrIncompatibleOperands, a.kind, b.kind)
	}
	if a.kind == SequenceKind && len(a.seq) != len(b.seq) {
		return fmt.Errorf("%w: sequence lengths %d and %d differ",
			ErrIncompatibleOperands, len(a.seq), len(b.seq))
	}
	return nil
}
