// Package detector picks the renderer for the current terminal.
package detector

import (
	"os"

	"golang.org/x/term"
)

// OutputMode represents the rendering mode for the application.
type OutputMode int

const (
	// ModeAuto automatically detects the appropriate mode.
	ModeAuto OutputMode = iota
	// ModeTUI forces the interactive TUI renderer.
	ModeTUI
	// ModeLinear forces the line-oriented renderer.
	ModeLinear
)

func (m OutputMode) String() string {
	switch m {
	case ModeTUI:
		return "tui"
	case ModeLinear:
		return "linear"
	default:
		return "auto"
	}
}

// DetectEnvironment returns the recommended output mode for this process:
// linear when stdout is not a terminal, CI is set or TERM is dumb, TUI otherwise.
func DetectEnvironment() OutputMode {
	return Detect(term.IsTerminal(int(os.Stdout.Fd())), os.Getenv)
}

// Detect decides the mode from a TTY check and an environment lookup.
func Detect(isTTY bool, getenv func(string) string) OutputMode {
	if !isTTY || IsCI(getenv) || getenv("TERM") == "dumb" {
		return ModeLinear
	}
	return ModeTUI
}

// IsCI reports whether the CI variable is set to a true value.
func IsCI(getenv func(string) string) bool {
	ci := getenv("CI")
	return ci == "true" || ci == "1"
}

// ResolveMode applies the --output flag or config value to the detected mode.
// "ci" is an alias for "linear". Unknown values keep the detected mode.
func ResolveMode(autoDetected OutputMode, userFlag string) OutputMode {
	switch userFlag {
	case "tui":
		return ModeTUI
	case "linear", "ci":
		return ModeLinear
	default:
		return autoDetected
	}
}
