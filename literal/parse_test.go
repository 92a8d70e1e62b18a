package literal

import (
	"errors"
	"math"
	"testing"

	"github.com/npillmayer/combine"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestParse(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	I, F := combine.Int, combine.Float
	tests := []struct {
		text string
		op   combine.Operand
	}{
		{"2", combine.Scalar(I(2))},
		{"-1", combine.Scalar(I(-1))},
		{" +3 ", combine.Scalar(I(3))},
		{"0x10", combine.Scalar(I(16))},
		{"2.5", combine.Scalar(F(2.5))},
		{"6.0", combine.Scalar(F(6))},
		{"-1e-3", combine.Scalar(F(-0.001))},
		{"[1, 2]", combine.List(I(1), I(2))},
		{"[1,2,]", combine.List(I(1), I(2))},
		{"[]", combine.List()},
		{"[0.5, -2]", combine.List(F(0.5), I(-2))},
		{"(1, 2)", combine.Tuple(I(1), I(2))},
		{"(1,)", combine.Tuple(I(1))},
		{"(1)", combine.Tuple(I(1))},
		{"()", combine.Tuple()},
		{`"a"`, combine.Operand{}},
		{"'b'", combine.Operand{}},
		{"word", combine.Operand{}},
	}
	for _, test := range tests {
		op, err := Parse(test.text)
		if err != nil {
			t.Errorf("%q: unexpected error: %v", test.text, err)
			continue
		}
		if !op.Equal(test.op) {
			t.Errorf("%q: expected %s, have %s", test.text, test.op, op)
		}
	}
}

func TestParseErrors(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	for _, text := range []string{
		"",
		"[1, 2",
		"[1 2]",
		"[1,,2]",
		"(1, 2]",
		"[[1], [2]]",
		"1 2",
		"--1",
		`"unterminated`,
		"99999999999999999999",
		"[1, x]",
	} {
		op, err := Parse(text)
		if err == nil {
			t.Errorf("%q: expected syntax error, have %s", text, op)
			continue
		}
		if !errors.Is(err, ErrSyntax) {
			t.Errorf("%q: expected ErrSyntax, have %v", text, err)
		}
		t.Logf("%q: %v", text, err)
	}
}

func TestParseRoundTrip(t *testing.T) {
	I, F := combine.Int, combine.Float
	for _, op := range []combine.Operand{
		combine.Scalar(I(-12)),
		combine.Scalar(F(6)),
		combine.Scalar(F(1e21)),
		combine.List(I(4), F(6)),
		combine.Tuple(F(0.1)),
		combine.Tuple(),
		combine.Scalar(F(math.Inf(1))),
		combine.List(F(math.Inf(-1)), I(1)),
	} {
		back, err := Parse(op.String())
		if err != nil {
			t.Errorf("%s: %v", op, err)
			continue
		}
		if !back.Equal(op) {
			t.Errorf("expected %s, have %s", op, back)
		}
	}
}

func TestParsedOperandsCombine(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelInfo)
	//
	sum, err := combine.Combine(MustParse("(1, 2)"), MustParse("(3, 4)"))
	if err != nil {
		t.Fatal(err.Error())
	}
	if sum.String() != "(4, 6)" {
		t.Errorf("expected (4, 6), have %s", sum)
	}
	_, err = combine.Combine(MustParse(`"a"`), MustParse(`"b"`))
	if !errors.Is(err, combine.ErrIncompatibleOperands) {
		t.Errorf("expected text operands to be incompatible, have %v", err)
	}
}

func TestParseNonFinite(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	gtrace.CoreTracer.SetTraceLevel(tracing.LevelDebug)
	//
	huge := MustParse("1e308")
	sum, err := combine.Combine(huge, huge)
	if err != nil {
		t.Fatal(err.Error())
	}
	back, err := Parse(sum.String())
	if err != nil {
		t.Fatalf("cannot read back %s: %v", sum, err)
	}
	if !back.Equal(combine.Scalar(combine.Float(math.Inf(1)))) {
		t.Errorf("expected +Inf, have %s", back)
	}
	if op := MustParse("Inf"); !math.IsInf(op.Value().Float64(), 1) {
		t.Errorf("expected Inf to read as +Inf, have %s", op)
	}
	if op := MustParse("-Inf"); !math.IsInf(op.Value().Float64(), -1) {
		t.Errorf("expected -Inf, have %s", op)
	}
	if op := MustParse("(NaN,)"); op.Len() != 1 || !math.IsNaN(op.At(0).Float64()) {
		t.Errorf("expected (NaN,), have %s", op)
	}
	if _, err = Parse("-word"); !errors.Is(err, ErrSyntax) {
		t.Errorf("expected signed word to be a syntax error, have %v", err)
	}
}

func TestTracerFollowsCoreTracer(t *testing.T) {
	gtrace.CoreTracer = gotestingadapter.New(t)
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	//
	if tracer() != gtrace.CoreTracer {
		t.Errorf("expected package tracer to be the core tracer")
	}
}
