package lib

import (
	"bufio"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSocketLines(t *testing.T) {
	local, remote := net.Pipe()
	socket := MakeSocket(local)
	defer socket.Disconnect()

	go func() {
		remote.Write([]byte("welcome\r\nbare newline\n"))
	}()
	line, err := socket.GetLine()
	require.NoError(t, err)
	assert.Equal(t, "welcome", line)
	line, err = socket.GetLine()
	require.NoError(t, err)
	assert.Equal(t, "bare newline", line)

	received := make(chan string, 1)
	go func() {
		line, _ := bufio.NewReader(remote).ReadString('\n')
		received <- line
	}()
	require.NoError(t, socket.SendLine("hello"))
	assert.Equal(t, "hello\r\n", <-received)

	socket.Disconnect()
	socket.Disconnect()
	assert.ErrorIs(t, socket.SendLine("too late"), ErrorDisconnected)
}

func TestDialAndForward(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer listener.Close()

	lines := make(chan string, 8)
	go func() {
		defer close(lines)
		conn, err := listener.Accept()
		if err != nil {
			return
		}
		defer conn.Close()
		reader := bufio.NewReader(conn)
		for {
			line, err := reader.ReadString('\n')
			if err != nil {
				return
			}
			lines <- line
		}
	}()

	socket, err := Dial(ForwardConfig{Target: listener.Addr().String()})
	require.NoError(t, err)
	require.NoError(t, ForwardInput(socket, "single"))
	require.NoError(t, ForwardInput(socket, "a\nb"))
	socket.Disconnect()

	var got []string
	for line := range lines {
		got = append(got, line)
	}
	assert.Equal(t, []string{"single\r\n", "a\r\n", "b\r\n"}, got)
}

func TestDialFailure(t *testing.T) {
	listener, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	address := listener.Addr().String()
	listener.Close()

	_, err = Dial(ForwardConfig{Target: address})
	assert.Error(t, err)
}
