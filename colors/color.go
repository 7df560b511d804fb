package colors

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
)

// COLOR is a set of SGR attributes, e.g. {38, 5, 208} for a 256-color shade.
type COLOR []color.Attribute

var (
	RESET = COLOR{color.Reset}

	// Basic Colors
	RED    = COLOR{color.FgRed}
	GREEN  = COLOR{color.FgGreen}
	YELLOW = COLOR{color.FgYellow}
	BLUE   = COLOR{color.FgBlue}
	PURPLE = COLOR{color.FgMagenta}
	CYAN   = COLOR{color.FgCyan}
	WHITE  = COLOR{color.FgWhite}
	GREY   = COLOR{color.FgHiBlack}

	// Bright Colors
	BRIGHT_RED    = COLOR{color.FgHiRed}
	BRIGHT_GREEN  = COLOR{color.FgHiGreen}
	BRIGHT_YELLOW = COLOR{color.FgHiYellow}
	BRIGHT_BLUE   = COLOR{color.FgHiBlue}

	// Bold Variants
	BOLD       = COLOR{color.Bold}
	BOLD_RED   = COLOR{color.Bold, color.FgRed}
	BOLD_GREEN = COLOR{color.Bold, color.FgGreen}
	BOLD_WHITE = COLOR{color.Bold, color.FgWhite}

	// Extended 256-color shades
	ORANGE     = COLOR{38, 5, 208}
	LIGHT_BLUE = COLOR{38, 5, 81}
)

// Output is where all colored printing goes. It is a colorable stdout so the
// escape codes also work on Windows consoles.
var Output io.Writer = colorable.NewColorableStdout()

func init() {
	color.NoColor = !isatty.IsTerminal(os.Stdout.Fd())
}

// SetEnabled forces colors on or off. Colors are never enabled when stdout is
// not a terminal.
func SetEnabled(enabled bool) {
	color.NoColor = !enabled || !isatty.IsTerminal(os.Stdout.Fd())
}

// SetOutput redirects printing and returns a func restoring the previous writer.
func SetOutput(w io.Writer) (restore func()) {
	prev := Output
	Output = w
	return func() { Output = prev }
}

func (c COLOR) color() *color.Color {
	return color.New(c...)
}

func (c COLOR) Print(a ...any) {
	c.color().Fprint(Output, a...)
}

func (c COLOR) Println(a ...any) {
	c.color().Fprintln(Output, a...)
}

func (c COLOR) Printf(format string, a ...any) {
	c.color().Fprintf(Output, format, a...)
}

func (c COLOR) Sprint(a ...any) string {
	return c.color().Sprint(a...)
}

func (c COLOR) Sprintln(a ...any) string {
	return c.color().Sprintln(a...)
}

func (c COLOR) Sprintf(format string, a ...any) string {
	return c.color().Sprintf(format, a...)
}

// Plain prints without any attributes, through the same writer.
func Plain(a ...any) {
	fmt.Fprint(Output, a...)
}

func Plainf(format string, a ...any) {
	fmt.Fprintf(Output, format, a...)
}
