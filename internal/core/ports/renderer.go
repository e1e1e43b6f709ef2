package ports

import "context"

// Renderer is a View with a lifecycle.
// It allows the same presenter to drive either a rich TUI or linear CI logs.
//
//go:generate mockgen -source=renderer.go -destination=mocks/mock_renderer.go -package=mocks
type Renderer interface {
	View

	// Start initializes the renderer and begins its lifecycle.
	// For asynchronous renderers (like TUI), this may launch background goroutines.
	Start(ctx context.Context) error

	// Stop signals the renderer to shut down and flush any buffered output.
	Stop() error

	// Wait blocks until the renderer has fully terminated.
	Wait() error
}
