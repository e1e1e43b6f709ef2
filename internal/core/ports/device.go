package ports

import (
	"context"
	"net/url"
)

// Device is the request/response channel to the update server,
// separate from the status socket.
//
//go:generate mockgen -source=device.go -destination=mocks/mock_device.go -package=mocks
type Device interface {
	// Restart asks the server to reboot the device. The response body is ignored.
	Restart(ctx context.Context, endpoint *url.URL) error
	// Probe fetches page bypassing caches. It succeeds once the server is back.
	// The caller bounds the request with ctx.
	Probe(ctx context.Context, page *url.URL) error
}
