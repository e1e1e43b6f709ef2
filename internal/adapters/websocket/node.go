package websocket

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swu/internal/core/ports"
)

// NodeID is the unique identifier for the socket dialer Graft node.
const NodeID graft.ID = "adapter.websocket"

func init() {
	graft.Register(graft.Node[ports.SocketDialer]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.SocketDialer, error) {
			return NewDialer(), nil
		},
	})
}
