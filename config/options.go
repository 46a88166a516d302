package config

import "github.com/vishalbelsare/austin/argparse"

// CodeUsage identifies --usage, which has no short form.
const CodeUsage rune = -1

// Options is the option table of the austin command line.
var Options = argparse.MustTable(
	argparse.Option{
		Long: "alt-format", Code: 'a',
		Description: "alternative collapsed stack sample format.",
	},
	argparse.Option{
		Long: "exclude-empty", Code: 'e',
		Description: "do not output samples of threads with no frame stacks.",
	},
	argparse.Option{
		Long: "interval", Code: 'i', HasArg: true, ArgName: "n_usec",
		Description: "Sampling interval (default is 100 usec).",
	},
	argparse.Option{
		Long: "pid", Code: 'p', HasArg: true, ArgName: "PID",
		Description: "The ID of the process to which Austin should attach.",
	},
	argparse.Option{
		Long: "sleepless", Code: 's',
		Description: "suppress idle samples.",
	},
	argparse.Option{Long: "help", Code: '?', Description: "Give this help list"},
	argparse.Option{Long: "usage", Code: CodeUsage, Description: "Give a short usage message"},
	argparse.Option{Long: "version", Code: 'V', Description: "Print program version"},
)

// HelpFormatter renders the austin help and usage text from Options.
var HelpFormatter = &argparse.Help{
	Program:    ProgramName,
	ArgsDoc:    "command [ARG...]",
	Doc:        "Austin -- A frame stack sampler for Python.",
	BugAddress: "<https://github.com/P403n1x87/austin/issues>",
}

// Usage returns the short usage message.
func Usage() string { return HelpFormatter.Usage(Options) }

// Help returns the full help text.
func Help() string { return HelpFormatter.Help(Options) }

// VersionLine returns "austin <version>".
func VersionLine() string { return ProgramName + " " + Version }
