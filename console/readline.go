//go:build !minimal

package console

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"syscall"

	"github.com/ergochat/readline"
	"golang.org/x/term"

	"github.com/ergochat/inputdog/lib"
)

const historyLimit = 1000

var isTerminal = func() bool {
	return term.IsTerminal(int(syscall.Stdin))
}

var errEditorClosed = errors.New("readline editor closed after cancellation")

// ReadlineEditor is the enhanced editor: line editing, history and the
// same prompts and multi-line markers as the plain console.
type ReadlineEditor struct {
	instance *readline.Instance
	out      Console
	prompts  lib.Prompts
	hint     string
	// set once a cancelled context has closed instance
	cancelled bool
}

// NewReadlineEditor builds the readline editor, or fails if readline is
// disabled or stdin is not an interactive terminal. out receives the
// multi-line hint; hint is its localized text.
func NewReadlineEditor(config lib.Config, out Console, hint string) (Editor, error) {
	if !config.Readline {
		return nil, ErrReadlineDisabled
	}
	if !isTerminal() {
		return nil, ErrNotTerminal
	}
	prompts := lib.NewPrompts(config.NoColor)
	editor, err := newReadlineEditor(&readline.Config{
		Prompt:       prompts.Primary,
		HistoryFile:  config.HistoryFile,
		HistoryLimit: historyLimit,
	}, out, prompts, hint)
	if err != nil {
		return nil, err
	}
	return editor, nil
}

func newReadlineEditor(rlConfig *readline.Config, out Console, prompts lib.Prompts, hint string) (*ReadlineEditor, error) {
	instance, err := readline.NewFromConfig(rlConfig)
	if err != nil {
		return nil, fmt.Errorf("initializing readline: %w", err)
	}
	return &ReadlineEditor{
		instance: instance,
		out:      out,
		prompts:  prompts,
		hint:     hint,
	}, nil
}

// GetInput reads one input. Cancelling ctx closes the editor, which wakes
// a blocked read; the editor is unusable afterwards.
func (e *ReadlineEditor) GetInput(ctx context.Context) (string, error) {
	if e.cancelled {
		return "", errEditorClosed
	}
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", lib.ErrInterrupt, err)
	}

	stop := context.AfterFunc(ctx, func() {
		e.instance.Close()
	})
	text, multiline, err := lib.ReadInput(e.readLine, e.out, e.prompts, e.hint)
	if !stop() {
		e.cancelled = true
		return "", fmt.Errorf("%w: %w", lib.ErrInterrupt, ctx.Err())
	}
	if err != nil {
		return "", err
	}
	if !multiline {
		text = strings.TrimSpace(text)
	}
	return text, nil
}

func (e *ReadlineEditor) readLine(prompt string) (string, error) {
	e.instance.SetPrompt(prompt)
	line, err := e.instance.Readline()
	if errors.Is(err, readline.ErrInterrupt) {
		return "", lib.ErrInterrupt
	}
	return line, err
}

func (e *ReadlineEditor) Close() error {
	return e.instance.Close()
}
