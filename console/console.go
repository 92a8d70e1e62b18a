package console

import (
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/npillmayer/combine"
	"golang.org/x/term"
)

// Palette holds the colors used for the parts of an operand.
type Palette struct {
	Number    *color.Color
	Delimiter *color.Color
	Error     *color.Color
}

// DefaultPalette is the palette a Printer uses if no other is given.
func DefaultPalette() *Palette {
	return &Palette{
		Number:    color.New(color.FgBlue),
		Delimiter: color.New(color.FgHiBlack),
		Error:     color.New(color.FgRed, color.Bold),
	}
}

// Printer writes operands to an io.Writer, one per line.
type Printer struct {
	Palette *Palette
	w       io.Writer
	plain   bool // suppress colors
}

// NewPrinter creates a printer for w. If palette is nil, DefaultPalette is
// used. Colors are suppressed unless w is a terminal.
func NewPrinter(w io.Writer, palette *Palette) *Printer {
	p := &Printer{
		Palette: palette,
		w:       w,
		plain:   !IsTerminal(w),
	}
	if p.Palette == nil {
		p.Palette = DefaultPalette()
	}
	T().P("format", "console").Debugf("printer created, plain=%v", p.plain)
	return p
}

// Stdout creates a printer for os.Stdout with the default palette.
func Stdout() *Printer {
	return NewPrinter(os.Stdout, nil)
}

// Plain switches coloring off (true) or on (false).
func (p *Printer) Plain(plain bool) {
	p.plain = plain
}

// Print writes op, followed by a newline. The text equals op.String(),
// with added color escape sequences.
func (p *Printer) Print(op combine.Operand) error {
	_, err := io.WriteString(p.w, p.render(op)+"\n")
	return err
}

// PrintError writes err, followed by a newline.
func (p *Printer) PrintError(err error) error {
	_, werr := io.WriteString(p.w, p.paint(p.Palette.Error, "error: "+err.Error())+"\n")
	return werr
}

func (p *Printer) render(op combine.Operand) string {
	switch op.Kind() {
	case combine.ScalarKind:
		return p.paint(p.Palette.Number, op.Value().String())
	case combine.SequenceKind:
		opening, closing := "[", "]"
		if op.Flavor() == combine.FixedArray {
			opening, closing = "(", ")"
		}
		var b strings.Builder
		b.WriteString(p.paint(p.Palette.Delimiter, opening))
		for i := 0; i < op.Len(); i++ {
			if i > 0 {
				b.WriteString(", ")
			}
			b.WriteString(p.paint(p.Palette.Number, op.At(i).String()))
		}
		if op.Flavor() == combine.FixedArray && op.Len() == 1 {
			b.WriteString(",")
		}
		b.WriteString(p.paint(p.Palette.Delimiter, closing))
		return b.String()
	}
	return p.paint(p.Palette.Error, op.String())
}

func (p *Printer) paint(c *color.Color, s string) string {
	if p.plain || c == nil {
		return s
	}
	return c.Sprint(s)
}

// IsTerminal checks whether w is a file connected to a terminal.
func IsTerminal(w io.Writer) bool {
	if f, ok := w.(*os.File); ok {
		return term.IsTerminal(int(f.Fd()))
	}
	return false
}
