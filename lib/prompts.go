// Copyright (c) 2023 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

import (
	"strings"

	"github.com/muesli/termenv"
)

// multi-line markers; either one opens a block and either one closes it
const (
	FenceMarker   = "```"
	HeredocMarker = "<<<"
)

// IsMarker reports whether line, ignoring surrounding whitespace, is exactly
// one of the multi-line markers.
func IsMarker(line string) bool {
	switch strings.TrimSpace(line) {
	case FenceMarker, HeredocMarker:
		return true
	default:
		return false
	}
}

// Prompts holds the rendered prompt strings for one session.
type Prompts struct {
	Primary      string
	Continuation string

	color bool
}

// NewPrompts renders the primary and continuation prompts, plain if noColor
// is set and styled with ANSI escapes otherwise.
func NewPrompts(noColor bool) Prompts {
	if noColor {
		return Prompts{
			Primary:      "> ",
			Continuation: "... ",
		}
	}
	return Prompts{
		Primary:      termenv.String(">").Bold().Foreground(termenv.ANSICyan).String() + " ",
		Continuation: termenv.String("...").Faint().String() + " ",
		color:        true,
	}
}

// Hint styles an informational line to match the prompts.
func (p Prompts) Hint(text string) string {
	if !p.color {
		return text
	}
	return termenv.String(text).Faint().String()
}
