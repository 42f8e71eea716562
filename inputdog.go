// Copyright (c) 2017 Daniel Oaks <daniel@danieloaks.net>
// released under the ISC license

package main

import (
	"context"
	"crypto/tls"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	docopt "github.com/docopt/docopt-go"
	"github.com/go-chi/chi/v5"
	"github.com/jwalton/go-supportscolor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ergochat/inputdog/ansi"
	"github.com/ergochat/inputdog/console"
	"github.com/ergochat/inputdog/input"
	"github.com/ergochat/inputdog/lib"
)

const usage = `inputdog.
inputdog is the terminal input layer of an interactive assistant, run on its
own: it reads what you type, one line or one block at a time, and echoes it
back. On a terminal it uses a readline editor with history; otherwise, or if
the editor ever fails, it falls back to plain line reads.

Usage:
	inputdog [options]
	inputdog -h | --help
	inputdog --version

Multi-line Input:
	Enter ` + "```" + ` or <<< alone on a line to start a block. Every following line
	is taken verbatim until another ` + "```" + ` or <<< line (either one closes the
	block). Ctrl+D inside a block also ends it.

	/quit or /exit, or Ctrl+D at the prompt, ends the session.

Options:
	--config=<file>      Read settings from a YAML file.
	--no-color           Don't style prompts.
	--no-readline        Don't use the readline editor, even on a terminal.
	--history=<file>     Keep readline history in this file.
	--lang=<language>    Language for hints, like "en" or "zh-CN" (default: $LANG).
	--transcript=<file>  Append every input to this file.
	--forward=<target>   Forward input to host:port, tls://host:port or ws(s)://...
	--origin=<origin>    Origin header to send when forwarding over websocket.
	--tls-noverify       Don't verify TLS certificates when forwarding.
	--metrics=<address>  Serve Prometheus metrics on an address like ":9100".
	--render             Render echoed input as markdown.
	--debug              Log diagnostics to stderr.
	-h --help            Show this screen.
	--version            Show version.`

func main() {
	arguments, _ := docopt.Parse(usage, nil, true, lib.SemVer, false)

	opts, err := decodeOptions(arguments)
	if err != nil {
		log.Fatalln(err)
	}
	config, err := lib.LoadConfig(opts.Config)
	if err != nil {
		log.Fatalln(err)
	}
	config = opts.apply(config)

	os.Exit(run(config))
}

func run(config lib.Config) int {
	logger := lib.NewNopLogger()
	if config.Debug {
		logger = lib.NewLogger(slog.LevelDebug)
	}

	if err := ansi.EnableANSI(); err != nil {
		logger.Debug("could not enable ANSI output", "error", err)
		config.NoColor = true
	}
	colorLevel := lib.ColorLevel(supportscolor.Stdout().Level)
	config.NoColor = lib.ResolveNoColor(config.NoColor, colorLevel)

	translator := lib.NewTranslator(append([]string{config.Language}, lib.LocaleFromEnv()...)...)
	logger.Debug("session language", "lang", translator.Language().String())

	var metrics *lib.Metrics
	if config.Metrics != "" {
		registry := prometheus.NewRegistry()
		metrics = lib.NewMetrics(registry)
		go serveMetrics(config.Metrics, registry, logger)
	}

	transcript, err := openTranscript(config.Transcript)
	if err != nil {
		fmt.Println("** inputdog could not open transcript:", err.Error())
		return exitError
	}
	defer transcript.Close()
	if transcript != nil {
		logger.Info("recording transcript", "file", config.Transcript, "session", transcript.SessionID())
	}

	con, err := console.NewStandardConsole()
	if err != nil {
		fmt.Println("** inputdog could not open console:", err.Error())
		return exitError
	}
	defer con.Close()

	var forward lib.LineSocket
	if config.Forward != "" {
		forward, err = dialForward(config)
		if err != nil {
			fmt.Println("** inputdog could not connect to forward target:", err.Error())
			return exitError
		}
		defer forward.Disconnect()
		go printReplies(forward, con)
	}

	hint := translator.T(lib.MsgMultilineHint)
	handler := input.New(config, con,
		input.WithEditorFactory(func(config lib.Config, con console.Console) (console.Editor, error) {
			return console.NewReadlineEditor(config, con, hint)
		}),
		input.WithLogger(logger),
		input.WithTranslator(translator),
		input.WithMetrics(metrics),
	)
	defer handler.Close()

	var renderer lib.Renderer
	if config.Render && !config.NoColor {
		renderer, err = lib.NewRenderer("", 80)
		if err != nil {
			logger.Warn("markdown rendering unavailable", "error", err)
		}
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	r := &repl{
		source:     handler,
		out:        con,
		translator: translator,
		renderer:   renderer,
		transcript: transcript,
		forward:    forward,
		logger:     logger,
	}
	return r.run(ctx)
}

func openTranscript(filename string) (*lib.Transcript, error) {
	if filename == "" {
		return nil, nil
	}
	return lib.NewTranscript(filename)
}

func dialForward(config lib.Config) (lib.LineSocket, error) {
	forwardConfig := lib.ForwardConfig{
		Target: config.Forward,
		Origin: config.Origin,
	}
	if config.TLSNoVerify {
		forwardConfig.TLSConfig = &tls.Config{
			InsecureSkipVerify: true,
		}
	}
	return lib.Dial(forwardConfig)
}

// printReplies shows whatever the forward target sends back.
func printReplies(socket lib.LineSocket, con console.Console) {
	for {
		line, err := socket.GetLine()
		if err != nil {
			fmt.Fprintln(con, "** inputdog forward target disconnected:", err.Error())
			return
		}
		fmt.Fprintln(con, "<-  "+line)
	}
}

func serveMetrics(address string, registry *prometheus.Registry, logger *slog.Logger) {
	router := chi.NewRouter()
	router.Handle("/metrics", promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
	logger.Info("serving metrics", "address", address)
	if err := http.ListenAndServe(address, router); err != nil {
		logger.Error("metrics server stopped", "error", err)
	}
}
