//go:build !minimal

package lib

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWebSocketForwarding(t *testing.T) {
	received := make(chan string, 4)
	upgrader := websocket.Upgrader{
		Subprotocols: []string{"text.inputdog"},
		CheckOrigin:  func(r *http.Request) bool { return true },
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "https://example.com", r.Header.Get("Origin"))
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			return
		}
		defer conn.Close()
		for {
			_, message, err := conn.ReadMessage()
			if err != nil {
				close(received)
				return
			}
			received <- string(message)
			conn.WriteMessage(websocket.TextMessage, []byte("ack "+string(message)))
		}
	}))
	defer server.Close()

	target := "ws" + strings.TrimPrefix(server.URL, "http")
	socket, err := Dial(ForwardConfig{Target: target, Origin: "example.com"})
	require.NoError(t, err)
	defer socket.Disconnect()

	require.NoError(t, ForwardInput(socket, "one\ntwo"))
	assert.Equal(t, "one", <-received)
	assert.Equal(t, "two", <-received)

	reply, err := socket.GetLine()
	require.NoError(t, err)
	assert.Equal(t, "ack one", reply)
}
