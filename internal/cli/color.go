// internal/cli/color.go

package cli

import (
	"errors"
	"os"
)

type colorMode string

const (
	colorAuto   colorMode = "auto"
	colorAlways colorMode = "always"
	colorNever  colorMode = "never"
)

func resolveColorEnabled(mode string, out *os.File) (bool, error) {
	if mode == "" {
		mode = string(colorAuto)
	}
	switch colorMode(mode) {
	case colorAuto, colorAlways, colorNever:
		// valid
	default:
		return false, errors.New("error: invalid --color value (expected auto|always|never)")
	}
	if colorMode(mode) == colorNever {
		return false, nil
	}
	if colorMode(mode) == colorAlways {
		return true, nil
	}
	if out == nil || !isTTY(out) {
		return false, nil
	}
	if os.Getenv("CI") != "" || os.Getenv("NO_COLOR") != "" {
		return false, nil
	}
	return true, nil
}

func isTTY(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return (info.Mode() & os.ModeCharDevice) != 0
}

const (
	ansiReset  = "\x1b[0m"
	ansiGreen  = "\x1b[32m"
	ansiYellow = "\x1b[33m"
	ansiRed    = "\x1b[31m"
)

// paint wraps s in the given ANSI color when enabled.
func paint(enabled bool, color, s string) string {
	if !enabled {
		return s
	}
	return color + s + ansiReset
}
