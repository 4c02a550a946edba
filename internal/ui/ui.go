// Package ui renders cptb's user-facing output.
package ui

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pterm/pterm"
	"golang.org/x/term"
)

// Printer writes styled lines to a writer. Styling is only applied when
// the writer is a terminal.
type Printer struct {
	w     io.Writer
	color bool
}

// New returns a Printer for w.
func New(w io.Writer) *Printer {
	return &Printer{w: w, color: IsTerminal(w)}
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w any) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

func (p *Printer) style(fn func(a ...any) string, s string) string {
	if !p.color {
		return s
	}
	return fn(s)
}

// Header prints a section title followed by a blank line.
func (p *Printer) Header(title string) {
	fmt.Fprintf(p.w, "%s\n\n", p.style(pterm.Cyan, title))
}

// Item prints "name (id)" at the given indentation level.
func (p *Printer) Item(level int, name, id string) {
	fmt.Fprintf(p.w, "%s%s (%s)\n", indent(level), name, p.style(pterm.Gray, id))
}

// Field prints "label: value" at the given indentation level.
func (p *Printer) Field(level int, label, value string) {
	fmt.Fprintf(p.w, "%s%s: %s\n", indent(level), label, value)
}

// Problem prints a per-item problem without aborting the surrounding output.
func (p *Printer) Problem(level int, msg string) {
	fmt.Fprintf(p.w, "%s%s\n", indent(level), p.style(pterm.Red, "! "+msg))
}

// Blank prints an empty line.
func (p *Printer) Blank() { fmt.Fprintln(p.w) }

// Success prints a success line.
func (p *Printer) Success(format string, args ...any) {
	p.prefixed(pterm.Success, "✓ ", format, args...)
}

// Warning prints a warning line.
func (p *Printer) Warning(format string, args ...any) {
	p.prefixed(pterm.Warning, "! ", format, args...)
}

// Info prints an informational line.
func (p *Printer) Info(format string, args ...any) {
	p.prefixed(pterm.Info, "→ ", format, args...)
}

func (p *Printer) prefixed(pp pterm.PrefixPrinter, plain, format string, args ...any) {
	msg := fmt.Sprintf(format, args...)
	if !p.color {
		fmt.Fprintln(p.w, plain+msg)
		return
	}
	fmt.Fprintln(p.w, strings.TrimRight(pp.Sprint(msg), "\n"))
}

func indent(level int) string {
	return strings.Repeat("    ", level)
}
