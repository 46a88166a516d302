package middleware

import (
	"github.com/vishalbelsare/austin/argparse"
	austinio "github.com/vishalbelsare/austin/io"
)

// Trace logs every event at debug level, together with the handler's
// decision. Nothing is formatted when log has debug output disabled.
func Trace(log *austinio.Logger) Middleware {
	return func(next argparse.Handler) argparse.Handler {
		return func(ev argparse.Event) (argparse.Action, error) {
			act, err := next(ev)
			if !log.Enabled(austinio.LevelDebug) {
				return act, err
			}

			name := eventName(ev)
			switch {
			case err != nil:
				log.Debug("argv[%d] %s: %v", ev.Index, name, err)
			case ev.HasValue && !ev.Positional():
				log.Debug("argv[%d] %s=%q: %s", ev.Index, name, ev.Value, act)
			default:
				log.Debug("argv[%d] %s: %s", ev.Index, name, act)
			}
			return act, err
		}
	}
}
