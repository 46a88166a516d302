// Package middleware wraps argparse handlers with cross-cutting behaviour:
// panic recovery and tracing of the events a handler receives.
package middleware

import (
	"fmt"

	"github.com/vishalbelsare/austin/argparse"
)

// Middleware decorates an argparse.Handler.
type Middleware func(next argparse.Handler) argparse.Handler

// Chain is an ordered list of middleware.
type Chain []Middleware

// Apply wraps h with the chain. The first middleware is the outermost one and
// sees every event before the others.
func (c Chain) Apply(h argparse.Handler) argparse.Handler {
	for i := len(c) - 1; i >= 0; i-- {
		h = c[i](h)
	}
	return h
}

// Use returns a new chain with the provided middleware appended.
func (c Chain) Use(mw ...Middleware) Chain {
	out := make(Chain, 0, len(c)+len(mw))
	out = append(out, c...)
	return append(out, mw...)
}

// RecoveryError reports a handler that panicked while processing an option
// or positional argument.
type RecoveryError struct {
	Panic  any
	Option string // option name, or the positional token
	Index  int    // argv index of the event
	Stack  []byte
}

func (e *RecoveryError) Error() string {
	return fmt.Sprintf("handler panicked on '%s' (argument %d): %s", e.Option, e.Index, toString(e.Panic))
}

// Config holds the tunables shared by the middleware in this package.
type Config struct {
	CaptureStack bool
	StackSize    int
}

// Option configures a middleware.
type Option func(*Config)

// DefaultConfig returns the configuration used when no option is given.
func DefaultConfig() *Config {
	return &Config{
		CaptureStack: true,
		StackSize:    4096,
	}
}

// WithStackTrace enables or disables capturing the goroutine stack on panic.
func WithStackTrace(enabled bool) Option {
	return func(c *Config) { c.CaptureStack = enabled }
}

// WithStackSize bounds the captured stack, in bytes.
func WithStackSize(n int) Option {
	return func(c *Config) {
		if n > 0 {
			c.StackSize = n
		}
	}
}

func newConfig(options []Option) *Config {
	cfg := DefaultConfig()
	for _, opt := range options {
		opt(cfg)
	}
	return cfg
}

func toString(v any) string {
	switch v := v.(type) {
	case nil:
		return "<nil>"
	case string:
		return v
	case error:
		return v.Error()
	case fmt.Stringer:
		return v.String()
	default:
		return fmt.Sprintf("%v", v)
	}
}

// eventName is the name used for ev in logs and errors.
func eventName(ev argparse.Event) string {
	if ev.Positional() {
		return ev.Value
	}
	return ev.Option.Name()
}
