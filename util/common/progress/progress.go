// Package progress reports the stages of a long-running operation.
package progress

import (
	"fmt"
	"io"
	"sync"
)

// Reporter defines the interface for reporting progress.
// Implementations are safe for concurrent use.
type Reporter interface {
	// Start begins progress reporting with an initial message
	Start(message string)

	// Step reports a new step in the operation
	Step(message string)

	// Error reports a failed step
	Error(message string)

	// Success reports a successful step
	Success(message string)

	// End finalizes progress reporting with a closing line
	End(message string)
}

// ConsoleReporter implements Reporter by printing plain lines to w
type ConsoleReporter struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsoleReporter creates a new ConsoleReporter writing to w
func NewConsoleReporter(w io.Writer) *ConsoleReporter {
	return &ConsoleReporter{w: w}
}

func (r *ConsoleReporter) printf(format string, args ...any) {
	r.mu.Lock()
	defer r.mu.Unlock()
	fmt.Fprintf(r.w, format, args...)
}

func (r *ConsoleReporter) Start(message string) {
	r.printf("⚡ %s...\n", message)
}

func (r *ConsoleReporter) Step(message string) {
	r.printf("  ▶ %s...\n", message)
}

func (r *ConsoleReporter) Error(message string) {
	r.printf("  ❌ %s\n", message)
}

func (r *ConsoleReporter) Success(message string) {
	r.printf("  ✅ %s\n", message)
}

func (r *ConsoleReporter) End(message string) {
	if message != "" {
		r.printf("%s\n", message)
	}
}
