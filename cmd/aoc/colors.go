package main

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"

	"github.com/aledsdavies/advent/internal/config"
)

// ANSI color codes
const (
	ColorReset  = "\033[0m"
	ColorRed    = "\033[31m"
	ColorGreen  = "\033[32m"
	ColorYellow = "\033[33m"
	ColorCyan   = "\033[36m"
	ColorGray   = "\033[90m"
)

// Colorize wraps text in ANSI color codes if color is enabled
func Colorize(text, color string, useColor bool) string {
	if !useColor {
		return text
	}
	return color + text + ColorReset
}

// ShouldUseColor determines if color output should be used for w.
// The --no-color flag and NO_COLOR always win, then the config's color mode;
// in auto mode only terminals get color.
func ShouldUseColor(mode string, noColorFlag bool, w io.Writer) bool {
	if noColorFlag || os.Getenv("NO_COLOR") != "" {
		return false
	}
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func (a *app) useColor(w io.Writer) bool {
	mode := config.ColorAuto
	if a.cfg != nil {
		mode = a.cfg.Color
	}
	return ShouldUseColor(mode, a.noColor, w)
}
