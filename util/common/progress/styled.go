package progress

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"

	"github.com/harness/pubcheck/internal/style"
)

// StyledReporter implements Reporter with themed output.
type StyledReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewStyledReporter creates a reporter with lipgloss-styled output on w.
func NewStyledReporter(w io.Writer) *StyledReporter {
	return &StyledReporter{w: w}
}

// NewAutoReporter returns a StyledReporter when f is a TTY and colours
// are enabled, otherwise the plain ConsoleReporter.
func NewAutoReporter(f *os.File) Reporter {
	if term.IsTerminal(int(f.Fd())) && style.Enabled {
		return NewStyledReporter(f)
	}
	return NewConsoleReporter(f)
}

var (
	startStyle   = lipgloss.NewStyle().Bold(true).Foreground(style.Cyan)
	stepStyle    = lipgloss.NewStyle().Foreground(style.Dim).PaddingLeft(2)
	errorStyle   = lipgloss.NewStyle().Foreground(style.Red).Bold(true).PaddingLeft(2)
	successStyle = lipgloss.NewStyle().Foreground(style.Green).Bold(true).PaddingLeft(2)
)

func (r *StyledReporter) println(s string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintln(r.w, s)
}

func (r *StyledReporter) Start(message string) {
	r.println(startStyle.Render("⚡ " + message + "..."))
}

func (r *StyledReporter) Step(message string) {
	r.println(stepStyle.Render("→ " + message + "..."))
}

func (r *StyledReporter) Error(message string) {
	r.println(errorStyle.Render("✗ " + message))
}

func (r *StyledReporter) Success(message string) {
	r.println(successStyle.Render("✓ " + message))
}

func (r *StyledReporter) End(message string) {
	if message != "" {
		r.println(style.Bold.Render(message))
	}
}
