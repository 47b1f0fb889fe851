package ui

// Basic ANSI color codes used by the internal/logging prefixes.
// Terminal output for users goes through the lipgloss styles in styles.go.
const (
	Reset = "\033[0m"

	FgCyan    = "\033[36m"
	FgGreen   = "\033[32m"
	FgMagenta = "\033[35m"
	FgYellow  = "\033[33m"
	FgRed     = "\033[31m"
)

var noColor bool

// Init configures global output behaviour. With disableColor set, Color
// returns its input unchanged (used for NO_COLOR, non-TTY output and tests).
func Init(disableColor bool) {
	noColor = disableColor
}

// Color wraps a string with the given ANSI code.
func Color(s string, code string) string {
	if noColor || code == "" {
		return s
	}
	return code + s + Reset
}
