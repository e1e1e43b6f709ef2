package domain

import (
	"net/url"
	"regexp"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultRelayPath is the path suffix of the status socket.
const DefaultRelayPath = "/ws"

// DefaultRestartPath is the restart endpoint, relative to the page URL.
const DefaultRestartPath = "restart"

var trailingSegment = regexp.MustCompile(`/[^/]*$`)

// ParsePageURL parses the URL of the update console page.
// A missing scheme defaults to http.
func ParsePageURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil, ErrMissingURL
	}
	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return nil, zerr.With(zerr.Wrap(err, ErrInvalidURL.Error()), "url", raw)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return nil, zerr.With(ErrUnsupportedScheme, "scheme", u.Scheme)
	}
	if u.Host == "" {
		return nil, zerr.With(ErrInvalidURL, "url", raw)
	}
	return u, nil
}

// SocketEndpoint derives the status socket URL from the page URL: wss for
// https pages and ws otherwise, the same host, and the page path with its
// last segment removed followed by relay.
func SocketEndpoint(page *url.URL, relay string) *url.URL {
	scheme := "ws"
	if page.Scheme == "https" {
		scheme = "wss"
	}

	return &url.URL{
		Scheme: scheme,
		User:   page.User,
		Host:   page.Host,
		Path:   trailingSegment.ReplaceAllString(page.Path, "") + relay,
	}
}

// RestartEndpoint resolves the restart path against the page URL.
func RestartEndpoint(page *url.URL, restartPath string) *url.URL {
	ref := &url.URL{Path: restartPath}
	if page.Path == "" {
		base := *page
		base.Path = "/"
		return base.ResolveReference(ref)
	}
	return page.ResolveReference(ref)
}
