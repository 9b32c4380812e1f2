package ui

import "github.com/fatih/color"

// General Purpose Colors
var (
	ErrorColor  = color.New(color.FgRed).SprintFunc()
	PromptColor = color.New(color.FgMagenta).SprintFunc()
	DirColor    = color.New(color.FgBlue, color.Bold).SprintFunc()
)

// Color modes accepted in the configuration file.
const (
	ColorAuto   = "auto"
	ColorAlways = "always"
	ColorNever  = "never"
)

// ConfigureColor enables or disables colored output for the whole process.
// In auto mode color follows whether the output is a terminal.
func ConfigureColor(mode string, isTerminal bool) {
	switch mode {
	case ColorAlways:
		color.NoColor = false
	case ColorNever:
		color.NoColor = true
	default:
		color.NoColor = !isTerminal
	}
}
