package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/ergochat/inputdog/lib"
)

const (
	exitOK        = 0
	exitError     = 1
	exitInterrupt = 130
)

type inputSource interface {
	Get(ctx context.Context) (string, error)
}

// repl reads inputs until the user leaves, echoing, recording and
// forwarding each one.
type repl struct {
	source     inputSource
	out        io.Writer
	translator *lib.Translator
	renderer   lib.Renderer
	transcript *lib.Transcript
	forward    lib.LineSocket
	logger     *slog.Logger
}

func (r *repl) run(ctx context.Context) int {
	for {
		text, err := r.source.Get(ctx)
		if err != nil {
			switch {
			case errors.Is(err, io.EOF):
				fmt.Fprintln(r.out, r.translator.T(lib.MsgGoodbye))
				return exitOK
			case errors.Is(err, lib.ErrInterrupt):
				fmt.Fprintln(r.out, "^C", r.translator.T(lib.MsgInterrupted))
				return exitInterrupt
			default:
				fmt.Fprintln(r.out, "** inputdog error: failed to read new input:", err.Error())
				return exitError
			}
		}

		if text == "" {
			continue
		}
		if text == "/quit" || text == "/exit" {
			fmt.Fprintln(r.out, r.translator.T(lib.MsgGoodbye))
			return exitOK
		}

		clean, err := lib.SanitizeInput(text)
		if err != nil {
			fmt.Fprintln(r.out, "** inputdog warning: input rejected:", err.Error())
			continue
		}
		r.echo(clean)
		if err := r.transcript.Record(clean); err != nil {
			r.logger.Warn("failed to write transcript", "error", err)
		}
		r.forwardInput(clean)
	}
}

func (r *repl) echo(text string) {
	if r.renderer != nil {
		rendered, err := r.renderer(text)
		if err == nil {
			fmt.Fprintln(r.out, rendered)
			return
		}
		r.logger.Debug("render failed", "error", err)
	}
	for _, line := range strings.Split(text, "\n") {
		fmt.Fprintln(r.out, " -> "+line)
	}
}

func (r *repl) forwardInput(text string) {
	if r.forward == nil {
		return
	}
	if err := lib.ForwardInput(r.forward, text); err != nil {
		fmt.Fprintf(r.out, "** inputdog error: %s: %s\n", r.translator.T(lib.MsgForwardFailed), err.Error())
		r.forward.Disconnect()
		r.forward = nil
	}
}
