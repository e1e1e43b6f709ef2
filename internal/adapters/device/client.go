// Package device talks HTTP to the update server: the restart request and the reload probe.
package device

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"go.trai.ch/swu/internal/build"
	"go.trai.ch/swu/internal/core/domain"
	"go.trai.ch/zerr"
)

// Client implements ports.Device over net/http.
type Client struct {
	http *http.Client
	now  func() time.Time
}

// NewClient creates a Client using http.DefaultTransport.
// Deadlines come from the caller's context.
func NewClient() *Client {
	return &Client{
		http: &http.Client{Transport: http.DefaultTransport},
		now:  time.Now,
	}
}

// Restart posts an empty body to endpoint. Any 2xx status counts as accepted.
func (c *Client) Restart(ctx context.Context, endpoint *url.URL) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), http.NoBody)
	if err != nil {
		return zerr.Wrap(err, domain.ErrRestartRequestFailed.Error())
	}
	req.Header.Set("User-Agent", userAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		return zerr.With(zerr.Wrap(err, domain.ErrRestartRequestFailed.Error()), "endpoint", endpoint.String())
	}
	defer drain(resp)

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return zerr.With(zerr.With(domain.ErrRestartRejected, "status", resp.StatusCode), "endpoint", endpoint.String())
	}
	return nil
}

// Probe fetches the console page, bypassing caches, to see whether the server is back.
func (c *Client) Probe(ctx context.Context, page *url.URL) error {
	target := *page
	q := target.Query()
	q.Set("_", strconv.FormatInt(c.now().UnixMilli(), 10))
	target.RawQuery = q.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target.String(), http.NoBody)
	if err != nil {
		return zerr.Wrap(err, domain.ErrProbeFailed.Error())
	}
	req.Header.Set("Cache-Control", "no-cache")
	req.Header.Set("Pragma", "no-cache")
	req.Header.Set("User-Agent", userAgent())

	resp, err := c.http.Do(req)
	if err != nil {
		return zerr.Wrap(err, domain.ErrProbeFailed.Error())
	}
	defer drain(resp)

	if resp.StatusCode == http.StatusNotModified || (resp.StatusCode >= 200 && resp.StatusCode <= 299) {
		return nil
	}
	return zerr.With(domain.ErrProbeFailed, "status", resp.StatusCode)
}

func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 64<<10))
	_ = resp.Body.Close()
}

func userAgent() string {
	return "swu/" + build.Version
}
