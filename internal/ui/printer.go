package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/Johannes-Berggren/branchgoblin/internal/flow"
)

// Printer writes user-facing text. Reports and results go to out, warnings
// and errors to errOut.
type Printer struct {
	out    io.Writer
	errOut io.Writer
	theme  *Theme
}

var _ flow.Reporter = (*Printer)(nil)

func NewPrinter(out, errOut io.Writer, theme *Theme) *Printer {
	return &Printer{out: out, errOut: errOut, theme: theme}
}

// Output echoes raw git output when verbose.
func (p *Printer) Output(text string, opts flow.Options) {
	if !opts.Verbose || strings.TrimSpace(text) == "" {
		return
	}
	fmt.Fprintln(p.out, strings.TrimRight(text, "\n"))
}

// Info prints a progress line when verbose.
func (p *Printer) Info(msg string, opts flow.Options) {
	if !opts.Verbose {
		return
	}
	fmt.Fprintln(p.out, p.theme.Info.Render(msg))
}

// Notice prints an informational line regardless of verbosity.
func (p *Printer) Notice(msg string) {
	fmt.Fprintln(p.out, p.theme.Info.Render(msg))
}

func (p *Printer) Warn(msg string) {
	fmt.Fprintln(p.errOut, p.theme.Warn.Render(msg))
}

func (p *Printer) Error(err error) {
	fmt.Fprintln(p.errOut, p.theme.Error.Render(err.Error()))
}

// Line prints s unstyled.
func (p *Printer) Line(s string) {
	fmt.Fprintln(p.out, s)
}
