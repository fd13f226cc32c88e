package output

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// ColorMode represents the color output mode
type ColorMode int

const (
	// ColorAuto enables colors if output is a TTY
	ColorAuto ColorMode = iota
	// ColorAlways forces colors on
	ColorAlways
	// ColorNever disables colors
	ColorNever
)

type sprintf func(format string, a ...interface{}) string

// Colors holds the color functions for the parts of a rendered train
type Colors struct {
	Title    sprintf
	Section  sprintf
	Station  sprintf
	Time     sprintf
	Platform sprintf
	Symbol   sprintf
	Missing  sprintf
	Message  sprintf
	Error    sprintf
	Muted    sprintf
}

// NewColors creates a new Colors instance for output written to stdout
func NewColors(mode ColorMode) *Colors {
	return NewColorsFor(mode, os.Stdout)
}

// NewColorsFor creates a Colors instance for output written to w. In auto
// mode colors are used only when w is a terminal.
func NewColorsFor(mode ColorMode, w io.Writer) *Colors {
	useColors := false
	switch mode {
	case ColorAlways:
		useColors = true
	case ColorNever:
		useColors = false
	case ColorAuto:
		useColors = isTerminal(w)
	}

	if !useColors {
		plain := func(format string, a ...interface{}) string {
			if len(a) == 0 {
				return format
			}
			return fmt.Sprintf(format, a...)
		}
		return &Colors{
			Title:    plain,
			Section:  plain,
			Station:  plain,
			Time:     plain,
			Platform: plain,
			Symbol:   plain,
			Missing:  plain,
			Message:  plain,
			Error:    plain,
			Muted:    plain,
		}
	}

	return &Colors{
		Title:    colored(color.FgWhite, color.Bold),
		Section:  colored(color.FgCyan, color.Bold),
		Station:  colored(color.FgWhite, color.Bold),
		Time:     colored(color.FgGreen),
		Platform: colored(color.FgMagenta),
		Symbol:   colored(color.FgBlue, color.Bold),
		Missing:  colored(color.FgHiBlack),
		Message:  colored(color.FgYellow),
		Error:    colored(color.FgRed),
		Muted:    colored(color.FgHiBlack),
	}
}

// colored forces color on regardless of what color.NoColor detected for stdout
func colored(attrs ...color.Attribute) sprintf {
	c := color.New(attrs...)
	c.EnableColor()
	return c.SprintfFunc()
}

// isTerminal reports whether w is a file attached to a terminal
func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Value renders s, or a muted N/A when s is empty
func (c *Colors) Value(s string, style sprintf) string {
	if s == "" {
		return c.Missing(NotAvailable)
	}
	return style("%s", s)
}

// ParseColorMode parses a color mode string
func ParseColorMode(s string) ColorMode {
	switch s {
	case "always":
		return ColorAlways
	case "never":
		return ColorNever
	default:
		return ColorAuto
	}
}
