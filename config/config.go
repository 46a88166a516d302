// Package config turns the austin command line into a sampler configuration.
//
// Parsing stops at the first token that does not start with '-': that token
// and everything after it form the command austin runs and samples, and are
// kept verbatim in Config.Command.
package config

import (
	"fmt"
	"slices"
	"strconv"

	"github.com/vishalbelsare/austin/argparse"
	"github.com/vishalbelsare/austin/middleware"
)

const (
	ProgramName = "austin"

	// DefaultInterval is the sampling interval in microseconds.
	DefaultInterval = 100

	SampleFormatNormal      = ";%s (%s);L%d"
	SampleFormatAlternative = ";%s (%s:%d)"
)

// Version is the program version, overridable at link time.
var Version = "0.6.1"

// Request is an informational action asked for on the command line. The
// caller prints the matching text and exits with status 0.
type Request int

const (
	RequestNone Request = iota
	RequestHelp
	RequestUsage
	RequestVersion
)

func (r Request) String() string {
	switch r {
	case RequestNone:
		return "none"
	case RequestHelp:
		return "help"
	case RequestUsage:
		return "usage"
	case RequestVersion:
		return "version"
	default:
		return "unknown"
	}
}

// Config is the sampler configuration built from the command line.
type Config struct {
	Interval     int64  // Sampling interval in microseconds
	PID          int    // Process to attach to, 0 when a command is run instead
	Format       string // Collapsed stack sample format
	ExcludeEmpty bool
	Sleepless    bool

	Request Request

	// Command is the program to run with its arguments. CommandIndex is the
	// index in argv where it starts, 0 when there is no command.
	Command      []string
	CommandIndex int
}

// Default returns the configuration used when no option is given.
func Default() *Config {
	return &Config{
		Interval: DefaultInterval,
		Format:   SampleFormatNormal,
	}
}

// AltFormat reports whether the alternative sample format is selected.
func (c *Config) AltFormat() bool { return c.Format == SampleFormatAlternative }

var parser = argparse.NewParser(Options)

// Parse builds a configuration from argv, where argv[0] is the program name.
// When argv holds nothing else the result asks for the usage message.
//
// The middleware, if any, wrap the handler that records options, outermost
// first. On error the returned configuration is the partially applied one and
// must not be used to start sampling.
func Parse(argv []string, mw ...middleware.Middleware) (*Config, error) {
	cfg := Default()
	if len(argv) <= 1 {
		cfg.Request = RequestUsage
		return cfg, nil
	}

	res, err := parser.Parse(argv, middleware.Chain(mw).Apply(cfg.apply))
	if err != nil {
		return cfg, err
	}

	if res.State == argparse.StateSuspended && cfg.Request == RequestNone {
		cfg.CommandIndex = res.Index
		cfg.Command = slices.Clone(res.Remainder)
	}
	return cfg, cfg.validate()
}

// apply is the argparse handler that records each option into c.
func (c *Config) apply(ev argparse.Event) (argparse.Action, error) {
	switch ev.Code() {
	case 'i':
		n, err := strconv.ParseInt(ev.Value, 10, 64)
		if err != nil || n < 0 {
			return argparse.Continue, ev.Errorf(argparse.ErrorTypeInvalidValue,
				"the sampling interval must be a positive integer, got %q", ev.Value).WithCause(err)
		}
		c.Interval = n

	case 'a':
		c.Format = SampleFormatAlternative

	case 'e':
		c.ExcludeEmpty = true

	case 's':
		c.Sleepless = true

	case 'p':
		n, err := strconv.ParseInt(ev.Value, 10, 32)
		if err != nil || n <= 0 {
			return argparse.Continue, ev.Errorf(argparse.ErrorTypeInvalidValue,
				"invalid PID %q", ev.Value).WithCause(err)
		}
		c.PID = int(n)

	case '?':
		c.Request = RequestHelp
		return argparse.Suspend, nil

	case CodeUsage:
		c.Request = RequestUsage
		return argparse.Suspend, nil

	case 'V':
		c.Request = RequestVersion
		return argparse.Suspend, nil

	case argparse.CodePositional:
		if c.PID != 0 {
			return argparse.Continue, incompatible(ev.Index)
		}
		return argparse.Suspend, nil

	default:
		return argparse.Continue, ev.Errorf(argparse.ErrorTypeUnrecognizedOption,
			"option '%s' is not handled", ev.Option.Name())
	}

	return argparse.Continue, nil
}

func (c *Config) validate() error {
	if c.PID != 0 && len(c.Command) > 0 {
		return incompatible(c.CommandIndex)
	}
	return nil
}

func incompatible(index int) error {
	err := argparse.Errorf(argparse.ErrorTypeIncompatibleOptions,
		"the -p option is incompatible with the command argument")
	err.Option = "--pid"
	err.Index = index
	return err
}

// String summarizes the configuration for logging.
func (c *Config) String() string {
	target := fmt.Sprintf("command %q", c.Command)
	if c.PID != 0 {
		target = fmt.Sprintf("pid %d", c.PID)
	}
	return fmt.Sprintf("%s interval=%dus alt-format=%t exclude-empty=%t sleepless=%t",
		target, c.Interval, c.AltFormat(), c.ExcludeEmpty, c.Sleepless)
}
