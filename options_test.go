package main

import (
	"testing"

	docopt "github.com/docopt/docopt-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ergochat/inputdog/lib"
)

func parseArgs(t *testing.T, argv ...string) cliOptions {
	t.Helper()
	// a nil argv makes docopt parse os.Args, the test binary's flags
	argv = append([]string{}, argv...)
	arguments, err := docopt.Parse(usage, argv, true, lib.SemVer, false, false)
	require.NoError(t, err)
	opts, err := decodeOptions(arguments)
	require.NoError(t, err)
	return opts
}

func TestDecodeOptions(t *testing.T) {
	opts := parseArgs(t,
		"--no-color", "--no-readline", "--lang=ja", "--history=/tmp/h",
		"--forward=wss://example.com/in", "--metrics=:9100", "--debug")

	assert.True(t, opts.NoColor)
	assert.True(t, opts.NoReadline)
	assert.True(t, opts.Debug)
	assert.False(t, opts.Render)
	assert.Equal(t, "ja", opts.Lang)
	assert.Equal(t, "/tmp/h", opts.History)
	assert.Equal(t, "wss://example.com/in", opts.Forward)
	assert.Equal(t, ":9100", opts.Metrics)
	assert.Empty(t, opts.Config)
	assert.Empty(t, opts.Transcript)
}

func TestDecodeNoOptions(t *testing.T) {
	opts := parseArgs(t)
	assert.Equal(t, cliOptions{}, opts)
	assert.Equal(t, lib.DefaultConfig(), opts.apply(lib.DefaultConfig()))
}

func TestApplyOptions(t *testing.T) {
	fileConfig := lib.Config{
		NoColor:     true,
		Readline:    true,
		HistoryFile: "/from/file",
		Language:    "zh-CN",
		Forward:     "localhost:6667",
	}

	config := cliOptions{
		NoReadline: true,
		Lang:       "ja",
		Render:     true,
	}.apply(fileConfig)

	assert.True(t, config.NoColor, "flags cannot turn a file setting off")
	assert.False(t, config.Readline)
	assert.True(t, config.Render)
	assert.Equal(t, "/from/file", config.HistoryFile)
	assert.Equal(t, "ja", config.Language)
	assert.Equal(t, "localhost:6667", config.Forward)
}
