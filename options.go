package main

import (
	"fmt"

	"github.com/mitchellh/mapstructure"

	"github.com/ergochat/inputdog/lib"
)

// cliOptions mirrors the docopt usage string; unset valued options decode
// to their zero value.
type cliOptions struct {
	Config      string `mapstructure:"--config"`
	NoColor     bool   `mapstructure:"--no-color"`
	NoReadline  bool   `mapstructure:"--no-readline"`
	History     string `mapstructure:"--history"`
	Lang        string `mapstructure:"--lang"`
	Transcript  string `mapstructure:"--transcript"`
	Forward     string `mapstructure:"--forward"`
	Origin      string `mapstructure:"--origin"`
	TLSNoVerify bool   `mapstructure:"--tls-noverify"`
	Metrics     string `mapstructure:"--metrics"`
	Render      bool   `mapstructure:"--render"`
	Debug       bool   `mapstructure:"--debug"`
}

func decodeOptions(arguments map[string]interface{}) (opts cliOptions, err error) {
	err = mapstructure.Decode(arguments, &opts)
	if err != nil {
		err = fmt.Errorf("invalid arguments: %w", err)
	}
	return
}

// apply layers the command line over config: switches can only turn
// features on (or readline off), valued options replace file settings.
func (o cliOptions) apply(config lib.Config) lib.Config {
	config.NoColor = config.NoColor || o.NoColor
	config.Readline = config.Readline && !o.NoReadline
	config.TLSNoVerify = config.TLSNoVerify || o.TLSNoVerify
	config.Render = config.Render || o.Render
	config.Debug = config.Debug || o.Debug

	for _, field := range []struct {
		dst *string
		src string
	}{
		{&config.HistoryFile, o.History},
		{&config.Language, o.Lang},
		{&config.Transcript, o.Transcript},
		{&config.Forward, o.Forward},
		{&config.Origin, o.Origin},
		{&config.Metrics, o.Metrics},
	} {
		if field.src != "" {
			*field.dst = field.src
		}
	}
	return config
}
