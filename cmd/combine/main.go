/*
Command combine adds two operands given on the command line.

	combine [--trace=level] [--no-color] A B

Operands are written as numbers (2, -1, 2.5), lists ([1, 2]) or arrays
((1, 2)). Negative scalars have to be separated from flags by "--":

	combine -- -1 1

Exit status is 0 on success, 1 for incompatible operands and 2 for
malformed input.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/npillmayer/combine"
	"github.com/npillmayer/combine/console"
	"github.com/npillmayer/combine/literal"
	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	flag "github.com/spf13/pflag"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("combine", flag.ContinueOnError)
	fs.SetOutput(stderr)
	traceLevel := fs.StringP("trace", "t", "error", "trace level (error, info, debug)")
	noColor := fs.Bool("no-color", false, "do not color the output")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "usage: combine [flags] A B\n")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	level, ok := traceLevels[strings.ToLower(*traceLevel)]
	if !ok {
		fmt.Fprintf(stderr, "unknown trace level %q\n", *traceLevel)
		return 2
	}
	gtrace.CoreTracer = gologadapter.New()
	gtrace.CoreTracer.SetTraceLevel(level)
	if fs.NArg() != 2 {
		fs.Usage()
		return 2
	}
	out := console.NewPrinter(stdout, nil)
	errOut := console.NewPrinter(stderr, nil)
	if *noColor {
		out.Plain(true)
		errOut.Plain(true)
	}
	var operands [2]combine.Operand
	for i, arg := range fs.Args() {
		op, err := literal.Parse(arg)
		if err != nil {
			errOut.PrintError(err)
			return 2
		}
		operands[i] = op
	}
	sum, err := combine.Combine(operands[0], operands[1])
	if err != nil {
		errOut.PrintError(err)
		if errors.Is(err, combine.ErrIncompatibleOperands) {
			return 1
		}
		return 2
	}
	gtrace.CoreTracer.Infof("%s + %s = %s", operands[0], operands[1], sum)
	if err = out.Print(sum); err != nil {
		return 2
	}
	return 0
}

var traceLevels = map[string]tracing.TraceLevel{
	"error": tracing.LevelError,
	"info":  tracing.LevelInfo,
	"debug": tracing.LevelDebug,
}
