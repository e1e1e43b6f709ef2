package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/swu/internal/adapters/config"    //nolint:depguard // Wired in app layer
	"go.trai.ch/swu/internal/adapters/device"    //nolint:depguard // Wired in app layer
	"go.trai.ch/swu/internal/adapters/logger"    //nolint:depguard // Wired in app layer
	"go.trai.ch/swu/internal/adapters/websocket" //nolint:depguard // Wired in app layer
	"go.trai.ch/swu/internal/core/ports"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			config.NodeID,
			logger.NodeID,
			websocket.NodeID,
			device.NodeID,
		},
		Run: runAppNode,
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runAppNode(ctx context.Context) (*App, error) {
	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	dialer, err := graft.Dep[ports.SocketDialer](ctx)
	if err != nil {
		return nil, err
	}

	dev, err := graft.Dep[ports.Device](ctx)
	if err != nil {
		return nil, err
	}

	return New(loader, log, dialer, dev), nil
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	a, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	loader, err := graft.Dep[ports.ConfigLoader](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:          a,
		Logger:       log,
		ConfigLoader: loader,
	}, nil
}
