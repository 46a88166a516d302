// Package austinio holds the terminal plumbing of the austin command: where
// output goes and whether it may be colored.
package austinio

import (
	stdio "io"
	"os"
	"strings"
)

// IOManager centralizes the output streams and their color capabilities.
type IOManager struct {
	out stdio.Writer
	err stdio.Writer

	forceColor bool
	noColor    bool

	getenv func(string) string
}

// New returns a manager bound to process stdio
func New() *IOManager {
	return &IOManager{out: os.Stdout, err: os.Stderr, getenv: os.Getenv}
}

// WithOut sets the standard output writer and returns the manager for chaining.
func (m *IOManager) WithOut(w stdio.Writer) *IOManager { m.out = w; return m }

// WithErr sets the standard error writer and returns the manager for chaining.
func (m *IOManager) WithErr(w stdio.Writer) *IOManager { m.err = w; return m }

// WithEnv replaces the environment lookup, mostly for tests.
func (m *IOManager) WithEnv(getenv func(string) string) *IOManager { m.getenv = getenv; return m }

// ForceColor forces color output on, regardless of environment.
func (m *IOManager) ForceColor() *IOManager { m.forceColor = true; m.noColor = false; return m }

// NoColor disables color output, regardless of environment.
func (m *IOManager) NoColor() *IOManager { m.noColor = true; m.forceColor = false; return m }

// ColorAuto uses environment heuristics to determine color support.
func (m *IOManager) ColorAuto() *IOManager { m.noColor = false; m.forceColor = false; return m }

// Out returns the configured standard output writer.
func (m *IOManager) Out() stdio.Writer { return m.out }

// Err returns the configured standard error writer.
func (m *IOManager) Err() stdio.Writer { return m.err }

// IsTTY reports whether standard output is a terminal.
func (m *IOManager) IsTTY() bool { return isTerminal(m.out) }

// SupportsColor reports whether ANSI sequences may be written. NO_COLOR and
// FORCE_COLOR are honoured; otherwise stdout must be a terminal whose TERM is
// set and not "dumb".
func (m *IOManager) SupportsColor() bool {
	if m.noColor || m.getenv("NO_COLOR") != "" {
		return false
	}
	if m.forceColor || m.getenv("FORCE_COLOR") != "" {
		return true
	}
	if !m.IsTTY() {
		return false
	}
	term := m.getenv("TERM")
	return term != "" && term != "dumb"
}

// ColorLevel returns 0 for none, 1 for basic, 2 for 256 colors, and 3 for truecolor.
func (m *IOManager) ColorLevel() int {
	if !m.SupportsColor() {
		return 0
	}
	if ct := m.getenv("COLORTERM"); ct == "truecolor" || ct == "24bit" {
		return 3
	}
	term := m.getenv("TERM")
	if strings.Contains(term, "truecolor") || strings.Contains(term, "24bit") {
		return 3
	}
	if strings.Contains(term, "256color") {
		return 2
	}
	return 1
}

// isTerminal reports whether w is a character device. Only *os.File values
// can be terminals.
func isTerminal(w stdio.Writer) bool {
	f, ok := w.(*os.File)
	if !ok || f == nil {
		return false
	}
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
