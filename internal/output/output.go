// Package output handles user-facing terminal output for the mortar CLI.
package output

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

var (
	infoStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("3"))
	errorStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("1"))
	refStyle   = lipgloss.NewStyle().Bold(true)
)

// Printer writes user-facing messages, styled when the destination is a
// terminal and plain otherwise
type Printer struct {
	writer io.Writer
	styled bool
}

// NewPrinter creates a Printer on stdout
func NewPrinter() *Printer {
	return &Printer{
		writer: os.Stdout,
		styled: isatty.IsTerminal(os.Stdout.Fd()),
	}
}

// NewPrinterTo creates a Printer on an arbitrary writer, unstyled
func NewPrinterTo(w io.Writer) *Printer {
	return &Printer{writer: w}
}

// IsTerminal reports whether output goes to an interactive terminal
func (p *Printer) IsTerminal() bool {
	return p.styled
}

// Info writes an informational message
func (p *Printer) Info(format string, args ...interface{}) {
	p.println(infoStyle, fmt.Sprintf(format, args...))
}

// Warn writes a warning message
func (p *Printer) Warn(format string, args ...interface{}) {
	p.println(warnStyle, fmt.Sprintf(format, args...))
}

// Error writes an error message
func (p *Printer) Error(format string, args ...interface{}) {
	p.println(errorStyle, fmt.Sprintf(format, args...))
}

// Plain writes a message with no styling in any mode
func (p *Printer) Plain(format string, args ...interface{}) {
	fmt.Fprintf(p.writer, format+"\n", args...)
}

// Ref writes a commit reference, emphasized on terminals so it stands out
// as the result of the command
func (p *Printer) Ref(sha string) {
	p.println(refStyle, sha)
}

func (p *Printer) println(style lipgloss.Style, msg string) {
	if p.styled {
		msg = style.Render(msg)
	}
	fmt.Fprintln(p.writer, msg)
}
