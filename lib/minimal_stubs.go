//go:build minimal

package lib

import (
	"crypto/tls"
	"errors"
)

var (
	errNoWSSupport = errors.New("websocket support disabled at compile time")
)

func NewWebSocket(wsUrl, origin string, tlsConfig *tls.Config) (LineSocket, error) {
	return nil, errNoWSSupport
}
