package device

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swu/internal/core/ports"
)

// NodeID is the unique identifier for the device client Graft node.
const NodeID graft.ID = "adapter.device"

func init() {
	graft.Register(graft.Node[ports.Device]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Device, error) {
			return NewClient(), nil
		},
	})
}
