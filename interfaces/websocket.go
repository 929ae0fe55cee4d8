package interfaces

import (
	"context"
	"net/http"
)

// WebSocketConn is one open websocket connection to a node. *websocket.Conn from gorilla satisfies the
// read/write half; adapters.WebSocketDialer wraps it so Close also sends a close frame.
//
//go:generate moq -stub -out mock/websocket_conn.go -pkg mock . WebSocketConn
type WebSocketConn interface {
	// ReadMessage blocks until the next message arrives. Any error means the connection is unusable.
	// Called only from the session read loop.
	ReadMessage() (messageType int, p []byte, err error)

	// WriteMessage writes one message. Not safe for concurrent use; the session serialises writes.
	WriteMessage(messageType int, data []byte) error

	// Close closes the connection; a pending ReadMessage returns an error.
	Close() error
}

// WebSocketDialer opens websocket connections with the handshake headers of a session.
//
//go:generate moq -stub -out mock/websocket_dialer.go -pkg mock . WebSocketDialer
type WebSocketDialer interface {
	// Dial opens a connection to url presenting header (Authorization, User-Id, optional Andesite-Resume-Id).
	// Returns the connection and the handshake response headers (Andesite-Node-Id, Andesite-Node-Region).
	// Called from service.Session on every connect attempt.
	Dial(ctx context.Context, url string, header http.Header) (WebSocketConn, http.Header, error)
}
