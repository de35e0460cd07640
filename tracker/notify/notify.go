// Package notify is the terminal stand-in for the in-page message
// list: submission outcomes append one status line each, in whatever
// order they complete.
package notify

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"
)

type Severity int

const (
	Info Severity = iota
	Success
	Warning
	Error
)

func (s Severity) color() text.Color {
	switch s {
	case Success:
		return text.FgGreen
	case Warning:
		return text.FgYellow
	case Error:
		return text.FgRed
	}
	return text.FgCyan
}

// Surface appends status lines to a single sink. Appending is safe
// from concurrently completing submissions; lines land in completion
// order.
type Surface struct {
	mu     sync.Mutex
	out    io.Writer
	styled bool
}

func New(out io.Writer, styled bool) *Surface {
	return &Surface{out: out, styled: styled}
}

var (
	defaultOnce    sync.Once
	defaultSurface *Surface
)

// Default returns the process-wide surface, initialized once per run.
// Styling falls back to plain text when stdout is not a terminal.
func Default() *Surface {
	defaultOnce.Do(func() {
		defaultSurface = New(os.Stdout, isatty.IsTerminal(os.Stdout.Fd()))
	})
	return defaultSurface
}

func (s *Surface) Notify(message string, severity Severity) {
	s.mu.Lock()
	defer s.mu.Unlock()

	prefix := "tracker:"
	if s.styled {
		prefix = severity.color().Sprint(prefix)
	}
	fmt.Fprintf(s.out, "%s %s\n", prefix, message)
}

func (s *Surface) Notifyf(severity Severity, format string, args ...any) {
	s.Notify(fmt.Sprintf(format, args...), severity)
}

// Styled reports whether table emphasis should use terminal escapes.
func (s *Surface) Styled() bool {
	return s.styled
}
