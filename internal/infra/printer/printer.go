// Package printer provides the diagnostic output implementation.
// Informational lines go to stdout; warnings and errors go to stderr
// with a marker glyph prefix, colored only when the stream is a
// terminal.
package printer

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/runoshun/shellmate/internal/domain"
)

// Ensure Printer implements domain.DiagnosticPrinter interface.
var _ domain.DiagnosticPrinter = (*Printer)(nil)

// styles holds the lipgloss styles for marker glyphs.
type styles struct {
	warn  lipgloss.Style
	error lipgloss.Style
}

// newStyles returns marker styles. When color is false the styles are
// pass-through.
func newStyles(color bool) styles {
	if !color {
		return styles{warn: lipgloss.NewStyle(), error: lipgloss.NewStyle()}
	}
	return styles{
		warn:  lipgloss.NewStyle().Foreground(lipgloss.Color("11")).Bold(true),
		error: lipgloss.NewStyle().Foreground(lipgloss.Color("9")).Bold(true),
	}
}

// Printer writes diagnostics to the configured streams.
// Write errors are ignored on purpose: consumers frequently pipe to
// tools that close early (for example `head`), and diagnostics must
// never fail the operation they describe.
type Printer struct {
	stdout      io.Writer
	stderr      io.Writer
	warnMarker  string
	errorMarker string
	styles      styles
}

// New creates a Printer writing to the given streams.
func New(stdout, stderr io.Writer, cfg domain.OutputConfig) *Printer {
	return &Printer{
		stdout:      stdout,
		stderr:      stderr,
		warnMarker:  cfg.WarnMarker,
		errorMarker: cfg.ErrorMarker,
		styles:      newStyles(colorEnabled(cfg.Color, stderr)),
	}
}

// colorEnabled decides marker coloring for the given stderr stream.
// In auto mode color requires a terminal and an unset NO_COLOR.
func colorEnabled(mode string, stderr io.Writer) bool {
	switch mode {
	case domain.ColorAlways:
		return true
	case domain.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return false
	}
	f, ok := stderr.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Println formats args to stdout using the first argument as a format
// template and unconditionally appends a newline. With no args it
// writes only the newline.
func (p *Printer) Println(args ...string) {
	if len(args) > 0 {
		rest := make([]any, len(args)-1)
		for i, a := range args[1:] {
			rest[i] = a
		}
		_, _ = fmt.Fprintf(p.stdout, args[0], rest...)
	}
	_, _ = fmt.Fprintln(p.stdout)
}

// Warn writes the message to stderr prefixed with the warning marker.
func (p *Printer) Warn(message string) {
	_, _ = fmt.Fprintf(p.stderr, "%s %s\n", p.styles.warn.Render(p.warnMarker), message)
}

// Error writes the message to stderr prefixed with the error marker.
func (p *Printer) Error(message string) {
	_, _ = fmt.Fprintf(p.stderr, "%s %s\n", p.styles.error.Render(p.errorMarker), message)
}
