package feed

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHTTPCaptionSource_RequiresURL(t *testing.T) {
	_, err := NewHTTPCaptionSource(CaptionSourceConfig{})
	assert.Error(t, err)
}

func TestCaptionSource_Fetch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "abc123", r.URL.Query().Get("id"))
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"text": "call to order", "start_ms": 0, "duration_ms": 4000},
			{"text": "roll call", "start_ms": 4000, "duration_ms": 3000}
		]`))
	}))
	defer server.Close()

	source, err := NewHTTPCaptionSource(CaptionSourceConfig{BaseURL: server.URL})
	require.NoError(t, err)

	segments, err := source.Fetch(context.Background(), "abc123")
	require.NoError(t, err)
	require.Len(t, segments, 2)

	assert.Equal(t, "call to order", segments[0].Text)
	assert.Equal(t, int64(0), segments[0].StartMillis)
	assert.Equal(t, int64(4000), segments[0].DurationMillis)
	assert.Equal(t, int64(4000), segments[1].StartMillis)
}

func TestCaptionSource_NotFoundMeansNoCaptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	source, err := NewHTTPCaptionSource(CaptionSourceConfig{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = source.Fetch(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrNoCaptions)
}

func TestCaptionSource_EmptyTrackMeansNoCaptions(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[]`))
	}))
	defer server.Close()

	source, err := NewHTTPCaptionSource(CaptionSourceConfig{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = source.Fetch(context.Background(), "silent")
	assert.ErrorIs(t, err, ErrNoCaptions)
}

func TestCaptionSource_ServerErrorIsTransient(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	source, err := NewHTTPCaptionSource(CaptionSourceConfig{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = source.Fetch(context.Background(), "abc123")
	require.Error(t, err)
	assert.False(t, errors.Is(err, ErrNoCaptions))
}

func TestCaptionSource_MalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{not json`))
	}))
	defer server.Close()

	source, err := NewHTTPCaptionSource(CaptionSourceConfig{BaseURL: server.URL})
	require.NoError(t, err)

	_, err = source.Fetch(context.Background(), "abc123")
	assert.Error(t, err)
}
