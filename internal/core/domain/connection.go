package domain

// ConnectionState is the lifecycle state of the status socket.
type ConnectionState int

const (
	// ConnectionConnecting means the socket is being dialed.
	ConnectionConnecting ConnectionState = iota
	// ConnectionOpen means the handshake completed.
	ConnectionOpen
	// ConnectionClosed means the socket was closed for any reason.
	ConnectionClosed
)

func (c ConnectionState) String() string {
	switch c {
	case ConnectionOpen:
		return "open"
	case ConnectionClosed:
		return "closed"
	default:
		return "connecting"
	}
}
