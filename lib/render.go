package lib

import (
	"strings"

	"github.com/charmbracelet/glamour"
)

// Renderer turns markdown into terminal output.
type Renderer func(markdown string) (string, error)

// NewRenderer returns a glamour markdown renderer. An empty style picks
// light or dark automatically from the terminal background; otherwise it is
// one of glamour's standard style names ("dark", "light", "notty", ...).
func NewRenderer(style string, wordWrap int) (Renderer, error) {
	options := []glamour.TermRendererOption{
		glamour.WithWordWrap(wordWrap),
	}
	if style == "" {
		options = append(options, glamour.WithAutoStyle())
	} else {
		options = append(options, glamour.WithStandardStyle(style))
	}
	r, err := glamour.NewTermRenderer(options...)
	if err != nil {
		return nil, err
	}
	return func(markdown string) (string, error) {
		out, err := r.Render(markdown)
		if err != nil {
			return "", err
		}
		return strings.Trim(out, "\n"), nil
	}, nil
}
