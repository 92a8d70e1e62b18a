package literal

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"text/scanner"

	"github.com/npillmayer/combine"
)

// ErrSyntax is flagged for malformed operand literals.
var ErrSyntax = errors.New("literal: syntax error")

// Parse reads a single operand from s.
func Parse(s string) (combine.Operand, error) {
	p := newParser(s)
	op, err := p.operand()
	if err == nil {
		if tok := p.next(); tok != scanner.EOF {
			err = p.unexpected(tok)
		}
	}
	if err == nil && p.err != nil {
		err = p.err
	}
	if err != nil {
		tracer().Debugf("cannot parse %q: %v", s, err)
		return combine.Operand{}, err
	}
	return op, nil
}

// MustParse is like Parse, but panics on malformed input.
func MustParse(s string) combine.Operand {
	op, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return op
}

type parser struct {
	scan scanner.Scanner
	err  error // first error reported by the scanner
}

func newParser(s string) *parser {
	p := &parser{}
	p.scan.Init(strings.NewReader(s))
	p.scan.Mode = scanner.ScanIdents | scanner.ScanInts | scanner.ScanFloats |
		scanner.ScanChars | scanner.ScanStrings | scanner.ScanRawStrings
	p.scan.Error = func(s *scanner.Scanner, msg string) {
		if p.err == nil {
			p.err = fmt.Errorf("%w at %s: %s", ErrSyntax, s.Position, msg)
		}
	}
	return p
}

func (p *parser) next() rune {
	return p.scan.Scan()
}

func (p *parser) unexpected(tok rune) error {
	return fmt.Errorf("%w at %s: unexpected %s", ErrSyntax, p.scan.Position, scanner.TokenString(tok))
}

func (p *parser) operand() (combine.Operand, error) {
	tok := p.next()
	switch tok {
	case '[':
		return p.sequence(combine.GrowableList, ']')
	case '(':
		return p.sequence(combine.FixedArray, ')')
	case scanner.String, scanner.RawString, scanner.Char, scanner.Ident:
		if tok == scanner.Ident && isNonFinite(p.scan.TokenText()) {
			break
		}
		tracer().Debugf("text operand %s", p.scan.TokenText())
		return combine.Operand{}, nil
	}
	n, err := p.number(tok)
	if err != nil {
		return combine.Operand{}, err
	}
	return combine.Scalar(n), nil
}

// sequence reads the elements of a sequence up to the closing delimiter.
// A trailing comma is allowed.
func (p *parser) sequence(f combine.Flavor, closing rune) (combine.Operand, error) {
	var elems []combine.Number
	tok := p.next()
	for tok != closing {
		n, err := p.number(tok)
		if err != nil {
			return combine.Operand{}, err
		}
		elems = append(elems, n)
		switch tok = p.next(); tok {
		case ',':
			tok = p.next()
		case closing:
		default:
			return combine.Operand{}, p.unexpected(tok)
		}
	}
	return combine.Sequence(f, elems...), nil
}

// number reads an optionally signed number, starting at tok.
func (p *parser) number(tok rune) (combine.Number, error) {
	sign := ""
	if tok == '-' || tok == '+' {
		sign = string(tok)
		tok = p.next()
	}
	switch tok {
	case scanner.Int:
		i, err := strconv.ParseInt(sign+p.scan.TokenText(), 0, 64)
		if err != nil {
			return combine.Number{}, fmt.Errorf("%w at %s: %v", ErrSyntax, p.scan.Position, err)
		}
		return combine.Int(i), nil
	case scanner.Float, scanner.Ident:
		if tok == scanner.Ident && !isNonFinite(p.scan.TokenText()) {
			break
		}
		f, err := strconv.ParseFloat(sign+p.scan.TokenText(), 64)
		if err != nil {
			return combine.Number{}, fmt.Errorf("%w at %s: %v", ErrSyntax, p.scan.Position, err)
		}
		return combine.Float(f), nil
	}
	return combine.Number{}, p.unexpected(tok)
}

// isNonFinite is true for the words Number.String uses for infinities and
// not-a-number.
func isNonFinite(word string) bool {
	return word == "Inf" || word == "NaN"
}
