package main

import (
	"errors"
	"fmt"
	"io"
	"strings"

	adverrors "github.com/aledsdavies/advent/internal/errors"
)

// hints suggests a fix for each error category.
var hints = map[string]string{
	adverrors.ErrDayNotFound:  "Run 'aoc list' to see every day.",
	adverrors.ErrFileNotFound: "Save the puzzle input to one of the paths above, or pass --input PATH.",
	adverrors.ErrFileParse:    "Check the input was saved completely, without extra text.",
	adverrors.ErrConfig:       "Fix the config file or pass --config to use another one.",
}

// FormatError formats an error for CLI output with colors
func FormatError(w io.Writer, err error, useColor bool) {
	if err == nil {
		return
	}

	var advErr *adverrors.AdventError
	if !errors.As(err, &advErr) {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), err.Error())
		return
	}

	_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Error: ", ColorRed, useColor), advErr.Message)

	switch advErr.Type {
	case adverrors.ErrDayNotFound:
		if suggestions, ok := advErr.GetContext("suggestions"); ok {
			if list, ok := suggestions.([]string); ok && len(list) > 0 {
				_, _ = fmt.Fprintf(w, "%s\n", Colorize("  Did you mean:", ColorGray, useColor))
				for _, s := range list {
					_, _ = fmt.Fprintf(w, "    %s\n", s)
				}
			}
		}
	case adverrors.ErrFileNotFound:
		if tried, ok := advErr.GetContext("tried"); ok {
			if list, ok := tried.([]string); ok {
				_, _ = fmt.Fprintf(w, "%s\n", Colorize("  Tried:", ColorGray, useColor))
				for _, p := range list {
					_, _ = fmt.Fprintf(w, "    %s\n", p)
				}
			}
		}
	}

	if advErr.Cause != nil {
		_, _ = fmt.Fprintf(w, "\n%s\n", indent(advErr.Cause.Error()))
	}

	if hint, ok := hints[advErr.Type]; ok {
		_, _ = fmt.Fprintf(w, "%s%s\n", Colorize("Hint: ", ColorYellow, useColor), hint)
	}
}

// indent prefixes every line of s with two spaces, keeping caret snippets
// aligned with the line they point at.
func indent(s string) string {
	lines := strings.Split(s, "\n")
	for i, l := range lines {
		lines[i] = "  " + l
	}
	return strings.Join(lines, "\n")
}
