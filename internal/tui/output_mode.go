package tui

import (
	"os"

	"golang.org/x/term"
)

// OutputMode is how results are presented on the current terminal.
type OutputMode int

const (
	// OutputModePlain is uncolored text for pipes, files and dumb terminals.
	OutputModePlain OutputMode = iota
	// OutputModeStyled is colored, boxed output without interaction.
	OutputModeStyled
	// OutputModeInteractive is the full-screen Bubble Tea program.
	OutputModeInteractive
)

// Default dimensions used when the terminal size is unknown.
const (
	defaultWidth  = 100
	defaultHeight = 30
)

func (m OutputMode) String() string {
	switch m {
	case OutputModePlain:
		return "plain"
	case OutputModeStyled:
		return "styled"
	case OutputModeInteractive:
		return "interactive"
	default:
		return "unknown"
	}
}

// IsTTY reports whether stdout is a terminal.
func IsTTY() bool {
	return term.IsTerminal(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
}

// TerminalWidth returns the stdout width, or a default when it cannot be read.
func TerminalWidth() int {
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int on supported platforms.
	if err != nil || w <= 0 {
		return defaultWidth
	}
	return w
}

// DetectOutputMode picks the output mode from flags, the environment and
// whether stdout is a terminal. NO_COLOR and TERM=dumb force plain output;
// CI gets styled output without interaction.
func DetectOutputMode(forceColor, noColor, plain bool) OutputMode {
	return detectOutputMode(forceColor, noColor, plain, IsTTY())
}

func detectOutputMode(forceColor, noColor, plain, tty bool) OutputMode {
	if plain || noColor {
		return OutputModePlain
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return OutputModePlain
	}
	if os.Getenv("TERM") == "dumb" {
		return OutputModePlain
	}
	if !tty {
		if forceColor {
			return OutputModeStyled
		}
		return OutputModePlain
	}
	if os.Getenv("CI") != "" {
		return OutputModeStyled
	}
	return OutputModeInteractive
}
