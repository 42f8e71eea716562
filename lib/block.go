// Copyright (c) 2023 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package lib

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

// LineReader shows prompt and reads one line of input, without the
// terminating newline. It returns io.EOF when input is closed and
// ErrInterrupt when the user aborts.
type LineReader func(prompt string) (string, error)

// ReadInput reads one unit of input: either a single line, returned raw, or,
// if that line is a multi-line marker, every following line up to the next
// marker line, joined with "\n". hint is written to out when a block opens.
//
// Errors on the first line are returned unchanged. Inside a block, io.EOF
// ends the block and returns the lines collected so far.
func ReadInput(read LineReader, out io.Writer, prompts Prompts, hint string) (text string, multiline bool, err error) {
	first, err := read(prompts.Primary)
	if err != nil {
		return "", false, err
	}
	if !IsMarker(first) {
		return first, false, nil
	}

	fmt.Fprintln(out, prompts.Hint(hint))
	var lines []string
	for {
		line, err := read(prompts.Continuation)
		if err != nil {
			if errors.Is(err, io.EOF) {
				break
			}
			return "", true, err
		}
		if IsMarker(line) {
			break
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n"), true, nil
}
