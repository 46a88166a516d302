// Command austin parses the austin command line and reports the sampler
// configuration it resolves to.
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

	"github.com/vishalbelsare/austin/argparse"
	"github.com/vishalbelsare/austin/config"
	austinio "github.com/vishalbelsare/austin/io"
	"github.com/vishalbelsare/austin/middleware"
)

// exitSoftware is the sysexits.h code for an internal error.
const exitSoftware = 70

func main() {
	os.Exit(run(os.Args, austinio.New(), os.Getenv))
}

// run executes the command line in args and returns the process exit status.
func run(args []string, io *austinio.IOManager, getenv func(string) string) int {
	log := austinio.NewLogger(io).WithName(config.ProgramName)
	if getenv("AUSTIN_DEBUG") != "" {
		log.WithLevel(austinio.LevelDebug)
	}
	exitCodes := argparse.NewExitCodeManager().
		DefineError(&middleware.RecoveryError{}, exitSoftware)

	cfg, err := config.Parse(args, middleware.Recovery(), middleware.Trace(log))
	if err != nil {
		log.Error("%v", err)
		fmt.Fprint(io.Out(), config.Usage())
		return exitCodes.Resolve(err)
	}

	switch cfg.Request {
	case config.RequestHelp:
		fmt.Fprint(io.Out(), config.Help())
		return exitCodes.Resolve(nil)
	case config.RequestUsage:
		fmt.Fprint(io.Out(), config.Usage())
		return exitCodes.Resolve(nil)
	case config.RequestVersion:
		fmt.Fprintln(io.Out(), config.VersionLine())
		return exitCodes.Resolve(nil)
	case config.RequestNone:
	}

	log.Debug("configuration: %s", cfg)

	every := humanize.SI(float64(cfg.Interval)/1e6, "s")
	switch {
	case cfg.PID != 0:
		log.Info("sampling process %d every %s", cfg.PID, every)
	case len(cfg.Command) > 0:
		log.Info("sampling command %q every %s", cfg.Command, every)
	default:
		log.Warning("no command to run and no process to attach to")
	}
	return exitCodes.Resolve(nil)
}
