package middleware

import (
	"runtime"

	"github.com/vishalbelsare/austin/argparse"
)

// Recovery turns a panic in the wrapped handler into a *RecoveryError, which
// ends the parse as a failure.
func Recovery(options ...Option) Middleware {
	cfg := newConfig(options)

	return func(next argparse.Handler) argparse.Handler {
		return func(ev argparse.Event) (act argparse.Action, err error) {
			defer func() {
				r := recover()
				if r == nil {
					return
				}
				var stack []byte
				if cfg.CaptureStack {
					stack = make([]byte, cfg.StackSize)
					stack = stack[:runtime.Stack(stack, false)]
				}
				act = argparse.Continue
				err = &RecoveryError{
					Panic:  r,
					Option: eventName(ev),
					Index:  ev.Index,
					Stack:  stack,
				}
			}()

			return next(ev)
		}
	}
}
