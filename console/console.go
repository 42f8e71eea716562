// Copyright (c) 2023 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

package console

import (
	"context"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/ergochat/irc-go/ircreader"
	colorable "github.com/mattn/go-colorable"

	"github.com/ergochat/inputdog/lib"
)

var (
	ErrReadlineDisabled = errors.New("readline disabled by configuration")
	ErrNotTerminal      = errors.New("standard input is not a terminal")
)

// Console is an abstract representation of keyboard input and screen output
type Console interface {
	io.Writer

	// Input writes prompt and blocks until a full line has been read.
	// The line is returned without its terminator.
	Input(prompt string) (string, error)

	// this is a hook to perform terminal cleanup
	Close() error
}

// Editor is a richer, optional source of input. GetInput returns one
// complete input (single line or multi-line block); it reports user signals
// as io.EOF or lib.ErrInterrupt, and anything else as an ordinary error.
type Editor interface {
	GetInput(ctx context.Context) (string, error)
	Close() error
}

type stdioConsole struct {
	reader ircreader.Reader
	out    io.Writer
}

// NewStandardConsole reads from stdin and writes to a stdout that
// understands ANSI escapes on every platform.
func NewStandardConsole() (Console, error) {
	return NewStreamConsole(os.Stdin, colorable.NewColorableStdout()), nil
}

// NewStreamConsole builds a Console over arbitrary streams.
func NewStreamConsole(in io.Reader, out io.Writer) Console {
	result := &stdioConsole{out: out}
	result.reader.Initialize(in, lib.InitialBufferSize, lib.MaxBufferSize)
	return result
}

func (s *stdioConsole) Input(prompt string) (string, error) {
	if prompt != "" {
		if _, err := io.WriteString(s.out, prompt); err != nil {
			return "", err
		}
	}
	lineBytes, err := s.reader.ReadLine()
	if err != nil {
		return "", err
	}
	return strings.TrimRight(string(lineBytes), "\r"), nil
}

func (s *stdioConsole) Write(b []byte) (n int, err error) {
	return s.out.Write(b)
}

func (s *stdioConsole) Close() error {
	return nil
}
