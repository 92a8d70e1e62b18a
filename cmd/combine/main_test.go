package main

import (
	"bytes"
	"strings"
	"testing"
)

func TestRun(t *testing.T) {
	tests := []struct {
		args   []string
		status int
		out    string
	}{
		{[]string{"2", "3"}, 0, "5\n"},
		{[]string{"--", "-1", "1"}, 0, "0\n"},
		{[]string{"2.5", "3.5"}, 0, "6.0\n"},
		{[]string{"[1, 2]", "[3, 4]"}, 0, "[4, 6]\n"},
		{[]string{"--no-color", "(1, 2)", "(3, 4)"}, 0, "(4, 6)\n"},
		{[]string{"[1, 2]", "[3]"}, 1, ""},
		{[]string{"2", "[3]"}, 1, ""},
		{[]string{`"a"`, `"b"`}, 1, ""},
		{[]string{"[1, 2", "[3]"}, 2, ""},
		{[]string{"1"}, 2, ""},
		{[]string{"--trace=verbose", "1", "2"}, 2, ""},
		{[]string{"--help"}, 0, ""},
		{[]string{"-h"}, 0, ""},
		{[]string{"--", "1e308", "1e308"}, 0, "+Inf\n"},
	}
	for _, test := range tests {
		var stdout, stderr bytes.Buffer
		status := run(test.args, &stdout, &stderr)
		if status != test.status {
			t.Errorf("%v: expected exit status %d, have %d (%s)", test.args, test.status,
				status, strings.TrimSpace(stderr.String()))
		}
		if stdout.String() != test.out {
			t.Errorf("%v: expected output %q, have %q", test.args, test.out, stdout.String())
		}
	}
}

func TestRunReportsIncompatibleOperands(t *testing.T) {
	var stdout, stderr bytes.Buffer
	if run([]string{"2", "[3]"}, &stdout, &stderr) != 1 {
		t.Fatalf("expected exit status 1")
	}
	if !strings.Contains(stderr.String(), "incompatible operands") {
		t.Errorf("expected error message on stderr, have %q", stderr.String())
	}
}
