package intel

import (
	"context"
	"encoding/base64"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestVirusTotal(t *testing.T, handler http.HandlerFunc) *VirusTotal {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	c := NewVirusTotal("vt-key")
	c.Endpoint = srv.URL
	c.HTTPClient = srv.Client()
	return c
}

func TestVirusTotal_FlaggedURL(t *testing.T) {
	const rawURL = "http://malicious.example/pay"
	c := newTestVirusTotal(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "vt-key", r.Header.Get("x-apikey"))
		wantID := base64.RawURLEncoding.EncodeToString([]byte(rawURL))
		assert.True(t, strings.HasSuffix(r.URL.Path, "/urls/"+wantID))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"attributes":{"last_analysis_stats":{"malicious":7,"suspicious":1,"harmless":60,"undetected":10}}}}`))
	})

	flagged, engines, err := c.Check(context.Background(), rawURL)
	require.NoError(t, err)
	assert.True(t, flagged)
	assert.Equal(t, 7, engines)
}

func TestVirusTotal_CleanURL(t *testing.T) {
	c := newTestVirusTotal(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"data":{"attributes":{"last_analysis_stats":{"malicious":0,"harmless":70}}}}`))
	})

	flagged, engines, err := c.Check(context.Background(), "https://example.com")
	require.NoError(t, err)
	assert.False(t, flagged)
	assert.Equal(t, 0, engines)
}

func TestVirusTotal_UnknownURLIsAnError(t *testing.T) {
	c := newTestVirusTotal(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, _, err := c.Check(context.Background(), "https://never-scanned.example")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "404")
}
