// Copyright (c) 2023 Shivaram Lingamneni <slingamn@cs.stanford.edu>
// released under the ISC license

// Package input acquires one unit of user input at a time, preferring an
// enhanced editor and falling back, permanently, to a blocking read of the
// plain console performed on its own goroutine.
//
// A unit of input is either a single line, trimmed of surrounding
// whitespace, or a block: a line consisting only of ``` or <<< opens it,
// the next such line closes it, and the lines in between are returned
// verbatim, joined with "\n". Closing the input stream inside a block ends
// the block instead of failing.
//
// The user signals leaving Get are io.EOF (the user closed input) and
// lib.ErrInterrupt (the user aborted, or the context was cancelled); test
// for them with errors.Is. Any other editor failure is logged and the
// editor is discarded for the rest of the session. Failures of the plain
// console itself, such as an over-long line, are returned as they are.
package input

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ergochat/inputdog/console"
	"github.com/ergochat/inputdog/lib"
)

// EditorFactory constructs the enhanced editor for a session.
type EditorFactory func(config lib.Config, con console.Console) (console.Editor, error)

// Option configures a Handler.
type Option func(*Handler)

// WithEditorFactory makes New try to build an enhanced editor.
func WithEditorFactory(factory EditorFactory) Option {
	return func(h *Handler) {
		h.factory = factory
	}
}

// WithEditor installs an already constructed editor.
func WithEditor(editor console.Editor) Option {
	return func(h *Handler) {
		h.editor = editor
	}
}

// WithLogger sets the logger for editor availability and fallback events.
func WithLogger(logger *slog.Logger) Option {
	return func(h *Handler) {
		h.logger = logger
	}
}

// WithTranslator sets the language of the multi-line hint.
func WithTranslator(translator *lib.Translator) Option {
	return func(h *Handler) {
		h.translator = translator
	}
}

// WithMetrics counts acquisitions, signals and downgrades.
func WithMetrics(metrics *lib.Metrics) Option {
	return func(h *Handler) {
		h.metrics = metrics
	}
}

// Handler is the per-session input state. Get must not be called
// concurrently.
type Handler struct {
	config     lib.Config
	console    console.Console
	prompts    lib.Prompts
	editor     console.Editor
	factory    EditorFactory
	translator *lib.Translator
	logger     *slog.Logger
	metrics    *lib.Metrics

	readAny bool
	// pending is the console read still running after a cancelled Get
	pending chan readResult
}

type readResult struct {
	text      string
	multiline bool
	err       error
}

// New creates the session state. If an editor factory was supplied it is
// called once here; a failure is logged and the session starts on the
// blocking path.
func New(config lib.Config, con console.Console, opts ...Option) *Handler {
	h := &Handler{
		config:  config,
		console: con,
		prompts: lib.NewPrompts(config.NoColor),
	}
	for _, opt := range opts {
		opt(h)
	}
	if h.logger == nil {
		h.logger = lib.NewNopLogger()
	}
	if h.translator == nil {
		h.translator = lib.NewTranslator(config.Language)
	}

	if h.editor == nil && h.factory != nil {
		editor, err := h.factory(config, con)
		if err != nil {
			h.logger.Info("enhanced input unavailable", "error", err)
		} else {
			h.logger.Info("enhanced input available")
			h.editor = editor
		}
	}
	return h
}

// HasEditor reports whether the enhanced editor is still in use.
func (h *Handler) HasEditor() bool {
	return h.editor != nil
}

// Get returns the next unit of input.
func (h *Handler) Get(ctx context.Context) (string, error) {
	if h.editor != nil {
		text, err := h.editor.GetInput(ctx)
		if err == nil {
			h.metrics.Acquired(lib.PathEditor)
			return text, nil
		}
		if lib.IsSignal(err) {
			h.metrics.Signaled(lib.PathEditor)
			return "", err
		}
		h.logger.Info("enhanced input failed, falling back", "error", err)
		h.discardEditor()
	}

	text, err := h.readBlocking(ctx)
	if err != nil {
		if lib.IsSignal(err) {
			h.metrics.Signaled(lib.PathBlocking)
		}
		return "", err
	}
	h.metrics.Acquired(lib.PathBlocking)
	return text, nil
}

// Close releases the editor, if one is still held.
func (h *Handler) Close() error {
	if h.editor == nil {
		return nil
	}
	err := h.editor.Close()
	h.editor = nil
	return err
}

func (h *Handler) discardEditor() {
	if err := h.editor.Close(); err != nil {
		h.logger.Debug("closing failed editor", "error", err)
	}
	h.editor = nil
	h.metrics.Downgraded()
}

// readBlocking runs the console read on its own goroutine so that the
// caller can stop waiting when ctx is cancelled. A read abandoned that way
// stays pending, and the next call waits for it instead of starting a
// second read on the same console.
func (h *Handler) readBlocking(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", fmt.Errorf("%w: %w", lib.ErrInterrupt, err)
	}

	results := h.pending
	if results == nil {
		separate := h.readAny
		h.readAny = true
		results = make(chan readResult, 1)
		go func() {
			if separate {
				fmt.Fprintln(h.console)
			}
			text, multiline, err := lib.ReadInput(h.console.Input, h.console, h.prompts, h.translator.T(lib.MsgMultilineHint))
			results <- readResult{text: text, multiline: multiline, err: err}
		}()
		h.pending = results
	}

	select {
	case <-ctx.Done():
		return "", fmt.Errorf("%w: %w", lib.ErrInterrupt, ctx.Err())
	case res := <-results:
		h.pending = nil
		if res.err != nil {
			return "", res.err
		}
		if res.multiline {
			return res.text, nil
		}
		return strings.TrimSpace(res.text), nil
	}
}
