package adapters

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"myandesite/interfaces"

	"github.com/gorilla/websocket"
)

// closeGrace bounds the close frame written by Close.
const closeGrace = time.Second

// WebSocketDialer dials Andesite nodes with gorilla/websocket. handshakeTimeout 0 means 10s.
//
// Called from cmd/main and the checker CLI when building clients.
func WebSocketDialer(handshakeTimeout time.Duration) interfaces.WebSocketDialer {
	if handshakeTimeout <= 0 {
		handshakeTimeout = 10 * time.Second
	}
	return &webSocketDialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
	}
}

type webSocketDialer struct {
	dialer *websocket.Dialer
}

// Dial performs the handshake and returns the connection with the response headers. A rejected
// handshake (e.g. 401 for a wrong password) reports the HTTP status.
func (d *webSocketDialer) Dial(ctx context.Context, url string, header http.Header) (interfaces.WebSocketConn, http.Header, error) {
	conn, resp, err := d.dialer.DialContext(ctx, url, header)
	if err != nil {
		if resp != nil {
			return nil, nil, fmt.Errorf("websocket handshake with %s: %w (status %d)", url, err, resp.StatusCode)
		}
		return nil, nil, fmt.Errorf("websocket dial %s: %w", url, err)
	}
	return &webSocketConn{Conn: conn}, resp.Header, nil
}

// webSocketConn sends a normal-closure frame before closing the socket.
type webSocketConn struct {
	*websocket.Conn
	once sync.Once
	err  error
}

func (c *webSocketConn) Close() error {
	c.once.Do(func() {
		msg := websocket.FormatCloseMessage(websocket.CloseNormalClosure, "")
		_ = c.WriteControl(websocket.CloseMessage, msg, time.Now().Add(closeGrace))
		c.err = c.Conn.Close()
	})
	return c.err
}
