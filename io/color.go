package austinio

import (
	"strconv"
	"strings"
)

// ColorSpec represents a color in one of three spaces: basic (16), indexed (256), or truecolor (RGB)
type ColorSpec struct {
	kind    int // 1=basic, 2=indexed, 3=truecolor
	index   int // for basic (0-15) and indexed (0-255)
	r, g, b uint8
}

// Basic color helpers (8-15 are the bright variants)
var (
	Red     = basic(1)
	Green   = basic(2)
	Yellow  = basic(3)
	Blue    = basic(4)
	Magenta = basic(5)
	Cyan    = basic(6)

	BrightBlack   = basic(8)
	BrightRed     = basic(9)
	BrightGreen   = basic(10)
	BrightYellow  = basic(11)
	BrightMagenta = basic(13)
	BrightCyan    = basic(14)
)

func basic(i int) ColorSpec { return ColorSpec{kind: 1, index: i} }

// Indexed returns a 256-color palette spec (0–255).
func Indexed(i int) ColorSpec { return ColorSpec{kind: 2, index: i} }

// Truecolor returns a 24-bit RGB color spec.
func Truecolor(r, g, b uint8) ColorSpec { return ColorSpec{kind: 3, r: r, g: g, b: b} }

// Style is a fluent builder for a foreground color and the bold attribute.
type Style struct {
	fg   *ColorSpec
	bold bool
}

// NewStyle creates a new empty style builder.
func NewStyle() *Style                 { return &Style{} }
func (s *Style) Fg(c ColorSpec) *Style { s.fg = &c; return s }
func (s *Style) Bold() *Style          { s.bold = true; return s }

// Sprint returns a styled string if color is supported; otherwise it returns
// the text unchanged.
func (s *Style) Sprint(io *IOManager, text string) string {
	if !io.SupportsColor() {
		return text
	}
	seq := s.sgr(io.ColorLevel())
	if seq == "" {
		return text
	}
	return "\x1b[" + seq + "m" + text + "\x1b[0m"
}

func (s *Style) sgr(level int) string {
	codes := make([]string, 0, 2)
	if s.bold {
		codes = append(codes, "1")
	}
	if s.fg != nil {
		if c := colorCode(*s.fg, level); c != "" {
			codes = append(codes, c)
		}
	}
	return strings.Join(codes, ";")
}

// colorCode returns the foreground SGR parameters of c, or "" when the
// terminal cannot show it.
func colorCode(c ColorSpec, level int) string {
	switch c.kind {
	case 1:
		idx := min(max(c.index, 0), 15)
		if idx < 8 {
			return strconv.Itoa(30 + idx)
		}
		return strconv.Itoa(90 + idx - 8)
	case 2:
		if level >= 2 {
			return "38;5;" + strconv.Itoa(c.index)
		}
	case 3:
		if level >= 3 {
			return "38;2;" + strconv.Itoa(int(c.r)) + ";" + strconv.Itoa(int(c.g)) + ";" + strconv.Itoa(int(c.b))
		}
	}
	return ""
}

// Theme provides semantic colors for log levels.
type Theme struct {
	Success, Warning, Error, Info, Debug ColorSpec
}

// DefaultTheme returns the theme matching the manager's color level.
func DefaultTheme(io *IOManager) Theme {
	switch io.ColorLevel() {
	case 3:
		return Theme{
			Success: Truecolor(80, 250, 123),
			Warning: Truecolor(255, 184, 108),
			Error:   Truecolor(255, 85, 85),
			Info:    Truecolor(139, 233, 253),
			Debug:   Truecolor(189, 147, 249),
		}
	case 2:
		return Theme{
			Success: BrightGreen,
			Warning: BrightYellow,
			Error:   BrightRed,
			Info:    BrightCyan,
			Debug:   Indexed(141),
		}
	default:
		return Theme{
			Success: BrightGreen,
			Warning: BrightYellow,
			Error:   BrightRed,
			Info:    BrightCyan,
			Debug:   BrightMagenta,
		}
	}
}
