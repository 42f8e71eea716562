package lib

// this mirrors the levels of https://github.com/jwalton/go-supportscolor
// so that lib/ does not depend on the upstream library directly

// ColorLevel represents the ANSI color level supported by the terminal.
type ColorLevel int

const (
	// ColorLevelNone is a terminal that does not support color at all.
	ColorLevelNone ColorLevel = 0
	// ColorLevelBasic is a terminal with basic 16 color support.
	ColorLevelBasic ColorLevel = 1
	// ColorLevelAnsi256 is a terminal with 256 color support.
	ColorLevelAnsi256 ColorLevel = 2
	// ColorLevelAnsi16m is a terminal with full true color support.
	ColorLevelAnsi16m ColorLevel = 3
)

// ResolveNoColor combines the user's setting with what the terminal
// supports: prompts are styled only if color is both allowed and available.
func ResolveNoColor(noColor bool, level ColorLevel) bool {
	return noColor || level == ColorLevelNone
}
