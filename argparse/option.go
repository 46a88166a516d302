package argparse

import (
	"fmt"
	"strings"
	"unicode"
)

// CodePositional is the code reported for tokens that are not options.
// Tables may not use it.
const CodePositional rune = 0

// Option describes a single command-line option. Code is the short option
// character when it is a positive printable rune; long-only options use a
// negative code that never matches a short option.
type Option struct {
	Long        string
	Code        rune
	HasArg      bool
	ArgName     string // Name shown in help for the argument, e.g. "PID"
	Description string
}

// IsShort reports whether the option can be spelled as -c.
func (o *Option) IsShort() bool {
	return o.Code > 0 && unicode.IsPrint(o.Code) && o.Code != '-' && o.Code != '='
}

// Name returns the most descriptive spelling of the option, used in messages.
func (o *Option) Name() string {
	if o.Long != "" {
		return "--" + o.Long
	}
	return "-" + string(o.Code)
}

func (o *Option) argName() string {
	if o.ArgName != "" {
		return o.ArgName
	}
	return "VALUE"
}

// Table is an ordered, validated collection of options. It is read-only once
// built and safe to share between parses.
type Table struct {
	options []Option
}

// NewTable validates the given options and returns a table holding a copy of
// them. Duplicate codes, duplicate long names and unusable names are rejected.
func NewTable(options ...Option) (*Table, error) {
	codes := make(map[rune]int, len(options))
	names := make(map[string]int, len(options))

	for i := range options {
		opt := &options[i]
		switch {
		case opt.Code == CodePositional:
			return nil, fmt.Errorf("option %d: code 0 is reserved", i)
		case opt.Code > 0 && !opt.IsShort():
			return nil, fmt.Errorf("option %d: %q cannot be used as a short option", i, opt.Code)
		case opt.Code < 0 && opt.Long == "":
			return nil, fmt.Errorf("option %d: long-only option needs a long name", i)
		case strings.HasPrefix(opt.Long, "-") || strings.ContainsRune(opt.Long, '='):
			return nil, fmt.Errorf("option %d: invalid long name %q", i, opt.Long)
		}
		if j, dup := codes[opt.Code]; dup {
			return nil, fmt.Errorf("options %d and %d share code %q", j, i, opt.Code)
		}
		codes[opt.Code] = i
		if opt.Long != "" {
			if j, dup := names[opt.Long]; dup {
				return nil, fmt.Errorf("options %d and %d share long name %q", j, i, opt.Long)
			}
			names[opt.Long] = i
		}
	}

	t := &Table{options: make([]Option, len(options))}
	copy(t.options, options)
	return t, nil
}

// MustTable is like NewTable but panics on an invalid table. Intended for
// package-level tables defined in source.
func MustTable(options ...Option) *Table {
	t, err := NewTable(options...)
	if err != nil {
		panic("argparse: " + err.Error())
	}
	return t
}

// Options returns the options in table order. The slice must not be modified.
func (t *Table) Options() []Option {
	return t.options
}

// Len returns the number of options in the table.
func (t *Table) Len() int {
	return len(t.options)
}

// FindByCode returns the option whose short code is c, or nil.
func (t *Table) FindByCode(c rune) *Option {
	for i := range t.options {
		if t.options[i].Code == c && t.options[i].IsShort() {
			return &t.options[i]
		}
	}
	return nil
}

// FindByLongName returns the option whose long name matches name, ignoring
// anything from the first '=' onwards, or nil.
func (t *Table) FindByLongName(name string) *Option {
	if eq := strings.IndexByte(name, '='); eq != -1 {
		name = name[:eq]
	}
	if name == "" {
		return nil
	}
	for i := range t.options {
		if t.options[i].Long == name {
			return &t.options[i]
		}
	}
	return nil
}

// longNames collects long names in table order for suggestions.
func (t *Table) longNames() []string {
	names := make([]string, 0, len(t.options))
	for i := range t.options {
		if t.options[i].Long != "" {
			names = append(names, t.options[i].Long)
		}
	}
	return names
}
