package device_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/swu/internal/adapters/device"
	"go.trai.ch/swu/internal/core/domain"
)

func mustParse(t *testing.T, raw string) *url.URL {
	t.Helper()
	u, err := url.Parse(raw)
	require.NoError(t, err)
	return u
}

func TestClient_Restart(t *testing.T) {
	var gotMethod, gotPath string
	var gotLength int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotMethod, gotPath, gotLength = r.Method, r.URL.Path, r.ContentLength
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	err := device.NewClient().Restart(context.Background(), mustParse(t, srv.URL+"/restart"))
	require.NoError(t, err)
	assert.Equal(t, http.MethodPost, gotMethod)
	assert.Equal(t, "/restart", gotPath)
	assert.Zero(t, gotLength)
}

func TestClient_RestartRejected(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	err := device.NewClient().Restart(context.Background(), mustParse(t, srv.URL+"/restart"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrRestartRejected.Error())
}

func TestClient_RestartUnreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	endpoint := mustParse(t, srv.URL+"/restart")
	srv.Close()

	err := device.NewClient().Restart(context.Background(), endpoint)
	require.Error(t, err)
	assert.Contains(t, err.Error(), domain.ErrRestartRequestFailed.Error())
}

func TestClient_ProbeBustsCache(t *testing.T) {
	var gotQuery url.Values
	var gotCacheControl string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query()
		gotCacheControl = r.Header.Get("Cache-Control")
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	client := device.NewClient()
	client.SetNow(func() time.Time { return time.UnixMilli(1700000000123) })

	err := client.Probe(context.Background(), mustParse(t, srv.URL+"/index.html?lang=en"))
	require.NoError(t, err)
	assert.Equal(t, "1700000000123", gotQuery.Get("_"))
	assert.Equal(t, "en", gotQuery.Get("lang"))
	assert.Equal(t, "no-cache", gotCacheControl)
}

func TestClient_ProbeStatuses(t *testing.T) {
	tests := []struct {
		status  int
		wantErr bool
	}{
		{http.StatusOK, false},
		{http.StatusNoContent, false},
		{http.StatusNotModified, false},
		{http.StatusNotFound, true},
		{http.StatusBadGateway, true},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			err := device.NewClient().Probe(context.Background(), mustParse(t, srv.URL))
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), domain.ErrProbeFailed.Error())
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestClient_ProbeTimeoutIsDetectable(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-r.Context().Done():
		}
	}))
	defer srv.Close()
	defer close(release)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	err := device.NewClient().Probe(ctx, mustParse(t, srv.URL))
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
