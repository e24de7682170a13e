// Package cli provides terminal formatting helpers for the fgobj command.
package cli

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// colorEnabled is true when stdout is a terminal and NO_COLOR (no-color.org)
// is unset.
var colorEnabled = os.Getenv("NO_COLOR") == "" && term.IsTerminal(int(os.Stdout.Fd()))

// SetColor forces colored output on or off.
func SetColor(on bool) {
	colorEnabled = on
}

// ColorEnabled reports whether color codes are emitted.
func ColorEnabled() bool {
	return colorEnabled
}

func paint(code, s string) string {
	if !colorEnabled {
		return s
	}
	return "\033[" + code + "m" + s + "\033[0m"
}

// Green wraps s in ANSI green.
func Green(s string) string { return paint("32", s) }

// Yellow wraps s in ANSI yellow.
func Yellow(s string) string { return paint("33", s) }

// Red wraps s in ANSI red.
func Red(s string) string { return paint("31", s) }

// Bold wraps s in ANSI bold.
func Bold(s string) string { return paint("1", s) }

// Dim wraps s in ANSI dim.
func Dim(s string) string { return paint("2", s) }

// Status returns a colored OK or FAIL marker.
func Status(ok bool) string {
	if ok {
		return Green("OK")
	}
	return Red("FAIL")
}

// DotPad pads name with dots to the given width.
// Example: DotPad("interface port1", 24) → "interface port1 ........"
func DotPad(name string, width int) string {
	if width <= 0 || len(name) >= width-1 {
		return name
	}
	dots := width - len(name) - 1
	return name + " " + strings.Repeat(".", dots)
}
