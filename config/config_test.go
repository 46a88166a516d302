//nolint:testpackage // using package name 'config' to access unexported fields for testing
package config

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/vishalbelsare/austin/argparse"
	"github.com/vishalbelsare/austin/middleware"
)

type wantConfig struct {
	Interval     *int64   `yaml:"interval"`
	PID          int      `yaml:"pid"`
	AltFormat    bool     `yaml:"alt_format"`
	ExcludeEmpty bool     `yaml:"exclude_empty"`
	Sleepless    bool     `yaml:"sleepless"`
	Command      []string `yaml:"command"`
	CommandIndex int      `yaml:"command_index"`
}

type parseCase struct {
	Name    string             `yaml:"name"`
	Args    []string           `yaml:"args"`
	Request string             `yaml:"request"`
	Error   argparse.ErrorType `yaml:"error"`
	Want    wantConfig         `yaml:"want"`
}

func loadCases(t *testing.T) []parseCase {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", "cases.yaml"))
	if err != nil {
		t.Fatalf("read cases: %v", err)
	}
	var cases []parseCase
	if err := yaml.Unmarshal(data, &cases); err != nil {
		t.Fatalf("decode cases: %v", err)
	}
	if len(cases) == 0 {
		t.Fatal("no cases loaded")
	}
	return cases
}

func argv(args ...string) []string {
	return append([]string{ProgramName}, args...)
}

func TestParseCases(t *testing.T) {
	for _, tc := range loadCases(t) {
		t.Run(tc.Name, func(t *testing.T) {
			cfg, err := Parse(argv(tc.Args...))

			if tc.Error != "" {
				if !argparse.IsType(err, tc.Error) {
					t.Fatalf("expected %s error, got %v", tc.Error, err)
				}
			} else if err != nil {
				t.Fatalf("Parse failed: %v", err)
			}

			request := tc.Request
			if request == "" {
				request = "none"
			}
			if cfg.Request.String() != request {
				t.Errorf("request = %s, want %s", cfg.Request, request)
			}

			want := Default()
			if tc.Want.Interval != nil {
				want.Interval = *tc.Want.Interval
			}
			want.PID = tc.Want.PID
			if tc.Want.AltFormat {
				want.Format = SampleFormatAlternative
			}
			want.ExcludeEmpty = tc.Want.ExcludeEmpty
			want.Sleepless = tc.Want.Sleepless
			want.Command = tc.Want.Command
			want.CommandIndex = tc.Want.CommandIndex
			want.Request = cfg.Request

			if !reflect.DeepEqual(cfg, want) {
				t.Errorf("config = %+v, want %+v", cfg, want)
			}
		})
	}
}

func TestShortAndLongSpellingsAgree(t *testing.T) {
	pairs := [][2][]string{
		{{"-i", "100"}, {"--interval=100"}},
		{{"-i", "100"}, {"--interval", "100"}},
		{{"-a"}, {"--alt-format"}},
		{{"-e"}, {"--exclude-empty"}},
		{{"-s"}, {"--sleepless"}},
		{{"-p", "7"}, {"--pid=7"}},
		{{"-aes"}, {"--alt-format", "--exclude-empty", "--sleepless"}},
		{{"-?"}, {"--help"}},
		{{"-V"}, {"--version"}},
	}

	for _, pair := range pairs {
		short, errShort := Parse(argv(pair[0]...))
		long, errLong := Parse(argv(pair[1]...))
		if errShort != nil || errLong != nil {
			t.Fatalf("%q / %q: unexpected errors %v / %v", pair[0], pair[1], errShort, errLong)
		}
		if !reflect.DeepEqual(short, long) {
			t.Errorf("%q gives %+v but %q gives %+v", pair[0], short, pair[1], long)
		}
	}
}

func TestParseIsIdempotent(t *testing.T) {
	vectors := [][]string{
		argv("-ae", "-i", "50", "python3", "-c", "pass"),
		argv("-p", "123", "cmd"),
		argv("--interval=-1"),
	}
	for _, v := range vectors {
		cfg1, err1 := Parse(v)
		cfg2, err2 := Parse(v)
		if !reflect.DeepEqual(cfg1, cfg2) {
			t.Errorf("%q: configs differ: %+v / %+v", v, cfg1, cfg2)
		}
		if (err1 == nil) != (err2 == nil) || (err1 != nil && err1.Error() != err2.Error()) {
			t.Errorf("%q: errors differ: %v / %v", v, err1, err2)
		}
	}
}

func TestParseAppliesMiddleware(t *testing.T) {
	var seen []rune
	record := func(next argparse.Handler) argparse.Handler {
		return func(ev argparse.Event) (argparse.Action, error) {
			seen = append(seen, ev.Code())
			return next(ev)
		}
	}

	cfg, err := Parse(argv("-a", "--pid=9"), record)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if string(seen) != "ap" || cfg.PID != 9 || !cfg.AltFormat() {
		t.Errorf("seen %q, config %+v", string(seen), cfg)
	}

	_, err = Parse(argv("-s"), middleware.Recovery(), func(argparse.Handler) argparse.Handler {
		return func(argparse.Event) (argparse.Action, error) { panic("boom") }
	})
	var re *middleware.RecoveryError
	if !errors.As(err, &re) || re.Option != "--sleepless" {
		t.Errorf("expected a recovered panic on --sleepless, got %v", err)
	}
}

func TestCommandDoesNotAliasArgv(t *testing.T) {
	args := argv("-s", "python3", "app.py")
	cfg, err := Parse(args)
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	cfg.Command[0] = "changed"
	if args[2] != "python3" {
		t.Error("modifying Config.Command must not modify argv")
	}
}

func TestInvalidValueError(t *testing.T) {
	_, err := Parse(argv("-a", "--pid=x1"))

	var pe *argparse.ParseError
	if !errors.As(err, &pe) {
		t.Fatalf("expected *ParseError, got %v", err)
	}
	if pe.Option != "--pid" || pe.Index != 2 {
		t.Errorf("option/index = %q/%d, want --pid/2", pe.Option, pe.Index)
	}
	if pe.Cause == nil {
		t.Error("expected the strconv error as cause")
	}
}

func TestUsageText(t *testing.T) {
	want := "Usage: austin [-aes?V] [-i n_usec] [-p PID] [--alt-format] [--exclude-empty]\n" +
		"            [--interval=n_usec] [--pid=PID] [--sleepless] [--help] [--usage]\n" +
		"            [--version] command [ARG...]\n"
	if got := Usage(); got != want {
		t.Errorf("Usage() =\n%s\nwant\n%s", got, want)
	}
}

func TestHelpText(t *testing.T) {
	help := Help()

	for _, want := range []string{
		"Usage: austin [OPTION...] command [ARG...]\nAustin -- A frame stack sampler for Python.\n\n",
		"  -a, --alt-format           alternative collapsed stack sample format.\n",
		"  -i, --interval=n_usec      Sampling interval (default is 100 usec).\n",
		"  -p, --pid=PID              The ID of the process to which Austin should\n" +
			"                             attach.\n",
		"  -?, --help                 Give this help list\n",
		"      --usage                Give a short usage message\n",
		"  -V, --version              Print program version\n",
		"Report bugs to <https://github.com/P403n1x87/austin/issues>.\n",
	} {
		if !strings.Contains(help, want) {
			t.Errorf("help text is missing %q:\n%s", want, help)
		}
	}
}

func TestVersionLine(t *testing.T) {
	if got := VersionLine(); got != "austin "+Version {
		t.Errorf("VersionLine() = %q", got)
	}
}

func TestConfigString(t *testing.T) {
	cfg := Default()
	cfg.PID = 42
	cfg.Sleepless = true
	if got := cfg.String(); got != "pid 42 interval=100us alt-format=false exclude-empty=false sleepless=true" {
		t.Errorf("String() = %q", got)
	}

	cfg = Default()
	cfg.Command = []string{"python3", "x.py"}
	if got := cfg.String(); !strings.HasPrefix(got, `command ["python3" "x.py"] `) {
		t.Errorf("String() = %q", got)
	}
}
