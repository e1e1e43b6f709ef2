// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/swu/internal/adapters/config"
	_ "go.trai.ch/swu/internal/adapters/device"
	_ "go.trai.ch/swu/internal/adapters/logger"
	_ "go.trai.ch/swu/internal/adapters/websocket"
	// Register app nodes.
	_ "go.trai.ch/swu/internal/app"
)
