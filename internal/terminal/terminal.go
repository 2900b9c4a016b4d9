// Package terminal provides TTY detection and terminal capability helpers.
package terminal

import (
	"os"
	"strings"

	"golang.org/x/term"
)

// Info holds the resolved terminal state for the current process.
type Info struct {
	// IsTerminal is true when stdout is connected to a TTY.
	IsTerminal bool
	// StderrIsTerminal is true when stderr is connected to a TTY. Progress
	// lines go to stderr.
	StderrIsTerminal bool
	// ColorEnabled is true when ANSI colours should be emitted.
	ColorEnabled bool
	// CI is true when running under a known CI system.
	CI bool
}

// Detect inspects the environment and returns a populated Info. noColor is
// the value of --no-color.
func Detect(noColor bool) Info {
	isTTY := term.IsTerminal(int(os.Stdout.Fd()))
	stderrTTY := term.IsTerminal(int(os.Stderr.Fd()))

	// https://no-color.org/
	envNoColor := os.Getenv("NO_COLOR") != ""

	return Info{
		IsTerminal:       isTTY,
		StderrIsTerminal: stderrTTY,
		ColorEnabled:     stderrTTY && !noColor && !envNoColor && !IsDumb(),
		CI:               IsCI(),
	}
}

// IsDumb returns true when the terminal is known to have no capabilities.
func IsDumb() bool {
	t := strings.ToLower(os.Getenv("TERM"))
	return t == "dumb" || t == ""
}

var ciVars = []string{"CI", "GITHUB_ACTIONS", "GITEA_ACTIONS", "JENKINS_URL", "GITLAB_CI", "CIRCLECI", "TRAVIS"}

// IsCI returns true when a well-known CI environment variable is set.
func IsCI() bool {
	for _, v := range ciVars {
		if os.Getenv(v) != "" {
			return true
		}
	}
	return false
}
