package argparse

import (
	"io"
	"strings"
)

const (
	defaultHelpWidth = 79
	usageIndent      = 12 // Continuation indent of the usage line
	descColumn       = 29 // Column where option descriptions start
)

// Help renders help and usage text from an option table in the layout of
// GNU argp. It only formats; printing and exiting are left to the caller.
type Help struct {
	Program    string // Program name shown after "Usage:"
	ArgsDoc    string // Positional arguments, e.g. "command [ARG...]"
	Doc        string // One line description shown under the usage line
	BugAddress string // Shown as "Report bugs to <BugAddress>."
	Width      int    // Maximum line width; 79 when zero
}

func (h *Help) width() int {
	if h.Width > 0 {
		return h.Width
	}
	return defaultHelpWidth
}

// Usage returns the compact usage message listing every option of the table.
func (h *Help) Usage(t *Table) string {
	var flags strings.Builder
	var items []string
	for i := range t.options {
		opt := &t.options[i]
		if opt.IsShort() && !opt.HasArg {
			flags.WriteRune(opt.Code)
		}
	}
	if flags.Len() > 0 {
		items = append(items, "[-"+flags.String()+"]")
	}
	for i := range t.options {
		opt := &t.options[i]
		if opt.IsShort() && opt.HasArg {
			items = append(items, "[-"+string(opt.Code)+" "+opt.argName()+"]")
		}
	}
	for i := range t.options {
		opt := &t.options[i]
		switch {
		case opt.Long == "":
		case opt.HasArg:
			items = append(items, "[--"+opt.Long+"="+opt.argName()+"]")
		default:
			items = append(items, "[--"+opt.Long+"]")
		}
	}
	if h.ArgsDoc != "" {
		items = append(items, h.ArgsDoc)
	}

	var b strings.Builder
	line := "Usage: " + h.Program
	for _, item := range items {
		if len(line)+1+len(item) > h.width() {
			b.WriteString(line)
			b.WriteByte('\n')
			line = strings.Repeat(" ", usageIndent) + item
			continue
		}
		line += " " + item
	}
	b.WriteString(line)
	b.WriteByte('\n')
	return b.String()
}

// Help returns the full help text: usage synopsis, description, one entry per
// option and the bug report footer.
func (h *Help) Help(t *Table) string {
	var b strings.Builder

	b.WriteString("Usage: " + h.Program + " [OPTION...]")
	if h.ArgsDoc != "" {
		b.WriteString(" " + h.ArgsDoc)
	}
	b.WriteByte('\n')
	if h.Doc != "" {
		b.WriteString(h.Doc)
		b.WriteByte('\n')
	}
	b.WriteByte('\n')

	hasArgs := false
	for i := range t.options {
		opt := &t.options[i]
		hasArgs = hasArgs || (opt.HasArg && opt.Long != "")
		h.writeOption(&b, opt)
	}

	if hasArgs {
		b.WriteByte('\n')
		b.WriteString(wrap("Mandatory or optional arguments to long options are also mandatory or "+
			"optional for any corresponding short options.", 0, 0, h.width()))
	}
	if h.BugAddress != "" {
		b.WriteByte('\n')
		b.WriteString("Report bugs to " + h.BugAddress + ".\n")
	}
	return b.String()
}

// WriteUsage writes the usage message to w.
func (h *Help) WriteUsage(w io.Writer, t *Table) error {
	_, err := io.WriteString(w, h.Usage(t))
	return err
}

// WriteHelp writes the help text to w.
func (h *Help) WriteHelp(w io.Writer, t *Table) error {
	_, err := io.WriteString(w, h.Help(t))
	return err
}

func (h *Help) writeOption(b *strings.Builder, opt *Option) {
	label := "  "
	if opt.IsShort() {
		label += "-" + string(opt.Code)
		if opt.Long != "" {
			label += ", "
		}
	} else {
		label += "    "
	}
	if opt.Long != "" {
		label += "--" + opt.Long
		if opt.HasArg {
			label += "=" + opt.argName()
		}
	} else if opt.HasArg {
		label += " " + opt.argName()
	}

	if opt.Description == "" {
		b.WriteString(label + "\n")
		return
	}
	desc := wrap(opt.Description, descColumn, descColumn, h.width())
	if len(label) > descColumn-2 {
		// Too wide to share a line with the description.
		b.WriteString(label + "\n")
		b.WriteString(desc)
		return
	}
	b.WriteString(label)
	b.WriteString(desc[len(label):])
}

// wrap word-wraps text so that no line exceeds width, indenting the first
// line by first and the following lines by rest. The result ends in '\n'.
func wrap(text string, first, rest, width int) string {
	var b strings.Builder
	line := strings.Repeat(" ", first)
	empty := true
	for _, word := range strings.Fields(text) {
		if !empty && len(line)+1+len(word) > width {
			b.WriteString(line)
			b.WriteByte('\n')
			line = strings.Repeat(" ", rest) + word
			continue
		}
		if empty {
			line += word
			empty = false
			continue
		}
		line += " " + word
	}
	b.WriteString(line)
	b.WriteByte('\n')
	return b.String()
}
