package ports

import "context"

// SocketDialer opens the status socket of an update server.
//
//go:generate mockgen -source=socket.go -destination=mocks/mock_socket.go -package=mocks
type SocketDialer interface {
	// Dial connects to endpoint and completes the handshake.
	Dial(ctx context.Context, endpoint string) (Socket, error)
}

// Socket is an open status socket.
type Socket interface {
	// Read blocks until the next text frame arrives.
	// Any error means the socket is closed.
	Read(ctx context.Context) ([]byte, error)
	// Close closes the socket.
	Close() error
}
