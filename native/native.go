package native

import (
	"fmt"
	"reflect"

	"github.com/npillmayer/combine"
)

// Add adds two Go values using combine.Combine.
//
// a and b must either both be numbers of the same type, or both be slices or
// arrays of equal length and with the same numeric element type. Slices and
// arrays may be mixed; the result is of the type of a. For all other inputs
// Add returns an error wrapping combine.ErrIncompatibleOperands.
func Add(a, b any) (any, error) {
	va, vb := reflect.ValueOf(a), reflect.ValueOf(b)
	if err := sameElementType(va, vb); err != nil {
		tracer().Debugf("cannot add %T and %T: %v", a, b, err)
		return nil, err
	}
	opa, err := fromValue(va)
	if err != nil {
		return nil, err
	}
	opb, err := fromValue(vb)
	if err != nil {
		return nil, err
	}
	sum, err := combine.Combine(opa, opb)
	if err != nil {
		return nil, err
	}
	return toValue(sum, va.Type()).Interface(), nil
}

// Operand converts a Go value to an operand. Integers are converted to
// numbers of the integer domain, floats to numbers of the floating point
// domain. Numbers are stored as int64, so unsigned values above
// math.MaxInt64 come back as their two's complement value, e.g.
// uint64(math.MaxUint64) becomes -1. Values of all other types result in an
// error wrapping combine.ErrIncompatibleOperands.
func Operand(v any) (combine.Operand, error) {
	return fromValue(reflect.ValueOf(v))
}

func fromValue(v reflect.Value) (combine.Operand, error) {
	if n, ok := number(v); ok {
		return combine.Scalar(n), nil
	}
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		if !isNumeric(v.Type().Elem()) {
			return combine.Operand{}, unsupported(v)
		}
		elems := make([]combine.Number, v.Len())
		for i := range elems {
			elems[i], _ = number(v.Index(i))
		}
		if v.Kind() == reflect.Array {
			return combine.Sequence(combine.FixedArray, elems...), nil
		}
		return combine.Sequence(combine.GrowableList, elems...), nil
	}
	return combine.Operand{}, unsupported(v)
}

// toValue converts an operand back to a Go value of type t. t has been
// checked to fit the operand.
func toValue(op combine.Operand, t reflect.Type) reflect.Value {
	if op.Kind() == combine.ScalarKind {
		return numberValue(op.Value(), t)
	}
	var seq reflect.Value
	if t.Kind() == reflect.Array {
		seq = reflect.New(t).Elem()
	} else {
		seq = reflect.MakeSlice(t, op.Len(), op.Len())
	}
	for i := 0; i < op.Len(); i++ {
		seq.Index(i).Set(numberValue(op.At(i), t.Elem()))
	}
	return seq
}

// sameElementType checks the precondition Go places on the + operator: both
// operands must be of identical type. For sequences, the element types
// must be identical.
func sameElementType(a, b reflect.Value) error {
	if !a.IsValid() || !b.IsValid() {
		return fmt.Errorf("%w: nil operand", combine.ErrIncompatibleOperands)
	}
	ta, tb := a.Type(), b.Type()
	if isNumeric(ta) || isNumeric(tb) {
		if ta != tb {
			return fmt.Errorf("%w: mismatched types %s and %s", combine.ErrIncompatibleOperands, ta, tb)
		}
		return nil
	}
	if isSequence(ta) && isSequence(tb) && ta.Elem() != tb.Elem() {
		return fmt.Errorf("%w: mismatched element types %s and %s",
			combine.ErrIncompatibleOperands, ta.Elem(), tb.Elem())
	}
	return nil
}

func unsupported(v reflect.Value) error {
	return fmt.Errorf("%w: unsupported type %s", combine.ErrIncompatibleOperands, v.Type())
}

// --- Numbers ---------------------------------------------------------------

func isNumeric(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64:
		return true
	}
	return false
}

func isSequence(t reflect.Type) bool {
	return t.Kind() == reflect.Slice || t.Kind() == reflect.Array
}

// number converts a numeric Go value. Unsigned integers are stored as their
// two's complement bit pattern, which keeps wrap-around addition intact.
func number(v reflect.Value) (combine.Number, bool) {
	switch v.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return combine.Int(v.Int()), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return combine.Int(int64(v.Uint())), true
	case reflect.Float32, reflect.Float64:
		return combine.Float(v.Float()), true
	}
	return combine.Number{}, false
}

// numberValue converts n to a Go value of numeric type t, truncating integers
// to the width of t.
func numberValue(n combine.Number, t reflect.Type) reflect.Value {
	v := reflect.New(t).Elem()
	switch t.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v.SetInt(n.Int64())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		v.SetUint(uint64(n.Int64()))
	case reflect.Float32, reflect.Float64:
		v.SetFloat(n.Float64())
	}
	return v
}
