package render

// ANSI escape codes for the prompt fragment. These are fixed on purpose:
// the output must be byte-identical for a given snapshot and config on
// every terminal, so no profile detection is involved. Starship handles
// stripping codes when the terminal cannot display them.
const (
	Blue          = "\x1b[34m"
	Green         = "\x1b[32m"
	Red           = "\x1b[31m"
	Purple        = "\x1b[35m"
	BrightMagenta = "\x1b[95m"
	BrightBlack   = "\x1b[90m"
	Reset         = "\x1b[0m"
)
