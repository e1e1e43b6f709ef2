// Package websocket implements the status socket on top of gorilla/websocket.
package websocket

import (
	"context"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"go.trai.ch/swu/internal/build"
	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/swu/internal/core/ports"
	"go.trai.ch/zerr"
)

const handshakeTimeout = 10 * time.Second

// Dialer implements ports.SocketDialer.
type Dialer struct {
	dialer *websocket.Dialer
	header http.Header
}

// NewDialer creates a Dialer with the default handshake settings.
func NewDialer() *Dialer {
	header := http.Header{}
	header.Set("User-Agent", "swu/"+build.Version)

	return &Dialer{
		dialer: &websocket.Dialer{
			Proxy:            http.ProxyFromEnvironment,
			HandshakeTimeout: handshakeTimeout,
		},
		header: header,
	}
}

// Dial connects to endpoint.
func (d *Dialer) Dial(ctx context.Context, endpoint string) (ports.Socket, error) {
	conn, resp, err := d.dialer.DialContext(ctx, endpoint, d.header)
	if resp != nil && resp.Body != nil {
		_ = resp.Body.Close()
	}
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, domain.ErrSocketDialFailed.Error()), "endpoint", endpoint)
	}
	return &Socket{conn: conn}, nil
}

// Socket is an open status socket.
type Socket struct {
	conn *websocket.Conn
	once sync.Once
}

// Read returns the payload of the next text frame. Binary frames are skipped.
// Cancelling ctx unblocks a pending read.
func (s *Socket) Read(ctx context.Context) ([]byte, error) {
	stop := context.AfterFunc(ctx, func() {
		_ = s.conn.SetReadDeadline(time.Now())
	})
	defer stop()

	for {
		kind, payload, err := s.conn.ReadMessage()
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			return nil, zerr.Wrap(err, domain.ErrSocketReadFailed.Error())
		}
		if kind == websocket.TextMessage {
			return payload, nil
		}
	}
}

// Close sends a close frame and closes the connection.
func (s *Socket) Close() error {
	var err error
	s.once.Do(func() {
		_ = s.conn.WriteControl(
			websocket.CloseMessage,
			websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""),
			time.Now().Add(time.Second),
		)
		err = s.conn.Close()
	})
	return err
}
