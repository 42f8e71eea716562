// Copyright (c) 2017 Daniel Oaks <daniel@danieloaks.net>
// released under the ISC license

package lib

import (
	"crypto/tls"
	"net/url"
	"strings"
)

// ForwardConfig describes where accepted input is forwarded. Target is
// "host:port", "tls://host:port", or a ws:// or wss:// URL.
type ForwardConfig struct {
	Target    string
	TLSConfig *tls.Config
	Origin    string
}

// Dial opens the forwarding transport described by config.
func Dial(config ForwardConfig) (LineSocket, error) {
	if u, uErr := url.Parse(config.Target); uErr == nil && (u.Scheme == "ws" || u.Scheme == "wss") {
		return NewWebSocket(config.Target, config.Origin, config.TLSConfig)
	}

	address, useTLS := strings.CutPrefix(config.Target, "tls://")
	socket, err := ConnectSocket(address, useTLS, config.TLSConfig)
	if err != nil {
		return nil, err
	}
	return socket, nil
}

// ForwardInput sends input to socket one line at a time.
func ForwardInput(socket LineSocket, input string) error {
	for _, line := range strings.Split(input, "\n") {
		if err := socket.SendLine(line); err != nil {
			return err
		}
	}
	return nil
}
