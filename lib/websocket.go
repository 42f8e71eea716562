//go:build !minimal

package lib

import (
	"crypto/tls"
	"fmt"
	"net"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/gorilla/websocket"
)

// WebSocket carries one line per websocket message.
type WebSocket struct {
	readMutex  sync.Mutex
	writeMutex sync.Mutex
	closeOnce  sync.Once
	websocket  *websocket.Conn
}

func NewWebSocket(wsUrl, origin string, tlsConfig *tls.Config) (LineSocket, error) {
	var headers http.Header
	if origin != "" {
		if !strings.Contains(origin, "://") {
			origin = "https://" + origin
		}
		u, err := url.Parse(origin)
		if err != nil {
			return nil, err
		}
		headers = make(http.Header)
		headers.Set("Origin", u.String())
	}

	dialer := websocket.Dialer{
		Subprotocols:    []string{"text.inputdog", "binary.inputdog"},
		TLSClientConfig: tlsConfig,
	}
	ws, resp, err := dialer.Dial(wsUrl, headers)
	if err != nil {
		if resp != nil {
			return nil, fmt.Errorf("%w: %d", err, resp.StatusCode)
		}
		return nil, err
	}
	return &WebSocket{
		websocket: ws,
	}, nil
}

func (w *WebSocket) GetLine() (string, error) {
	w.readMutex.Lock()
	defer w.readMutex.Unlock()

	_, lineBytes, err := w.websocket.ReadMessage()
	return string(lineBytes), err
}

func (w *WebSocket) SendLine(line string) error {
	messageType := websocket.TextMessage
	if w.websocket.Subprotocol() == "binary.inputdog" {
		messageType = websocket.BinaryMessage
	}
	w.writeMutex.Lock()
	defer w.writeMutex.Unlock()
	return w.websocket.WriteMessage(messageType, []byte(line))
}

func (w *WebSocket) Disconnect() {
	w.closeOnce.Do(w.realDisconnect)
}

func (w *WebSocket) realDisconnect() {
	w.websocket.Close()
}

func (w *WebSocket) RemoteAddr() net.Addr {
	return w.websocket.RemoteAddr()
}
