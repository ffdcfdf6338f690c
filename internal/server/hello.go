package server

import (
	"context"
	"net"
	"strings"

	"github.com/shapestone/shape-httpd/pkg/http"
)

// UnknownHello is the reply to a message that does not introduce anyone.
const UnknownHello = "Unknown hello string"

// HelloHandler answers "My name is X" with "Hello, X!". It reads once and
// replies once.
type HelloHandler struct{}

// ServeConn reads a single message from conn and writes the greeting.
func (HelloHandler) ServeConn(ctx context.Context, conn net.Conn) {
	log := LoggerFrom(ctx)

	buf := make([]byte, http.ReadSize)
	n, err := conn.Read(buf)
	if n == 0 {
		log.Debug("no message received", "error", err)
		return
	}

	reply := Greet(string(buf[:n]))
	if _, err := conn.Write([]byte(reply)); err != nil {
		log.Debug("write reply", "error", err)
		return
	}
	log.Info("greeted", "reply", reply)
}

// Greet builds the reply to msg. The name is whatever follows the last
// "is ", without trailing line endings.
func Greet(msg string) string {
	if !strings.Contains(msg, " is ") {
		return UnknownHello
	}
	name := msg[strings.LastIndex(msg, "is ")+len("is "):]
	return "Hello, " + strings.TrimRight(name, "\r\n") + "!"
}
