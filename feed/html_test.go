package feed

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const archivePage = `<!DOCTYPE html>
<html><body>
<div class="listing">
  <a class="meeting-item" href="/watch?v=abc123" data-date="2026-03-10">City Council Regular Session</a>
  <a class="meeting-item" href="/watch?v=def456" data-date="2026-03-03">Planning Commission</a>
  <a class="meeting-item" href="/watch?v=abc123" data-date="2026-03-10">City Council Regular Session (duplicate row)</a>
  <a class="meeting-item" href="/recordings/ghi789">Work Session Without Date</a>
  <a class="other-link" href="/about">About</a>
</div>
</body></html>`

func TestNewHTMLFeed_RequiresURL(t *testing.T) {
	_, err := NewHTMLFeed(HTMLFeedConfig{})
	assert.Error(t, err)
}

func TestHTMLFeed_ListRecent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(archivePage))
	}))
	defer server.Close()

	feed, err := NewHTMLFeed(HTMLFeedConfig{ArchiveURL: server.URL + "/archive"})
	require.NoError(t, err)

	items, err := feed.ListRecent(context.Background())
	require.NoError(t, err)
	require.Len(t, items, 3)

	assert.Equal(t, "abc123", items[0].ExternalId)
	assert.Equal(t, "City Council Regular Session", items[0].Title)
	assert.Equal(t, server.URL+"/watch?v=abc123", items[0].SourceUrl)
	assert.Equal(t, time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC), items[0].PublishedAt)

	assert.Equal(t, "def456", items[1].ExternalId)

	// Path-style id, and a missing date attribute leaves PublishedAt zero.
	assert.Equal(t, "ghi789", items[2].ExternalId)
	assert.True(t, items[2].PublishedAt.IsZero())
}

func TestHTMLFeed_ServerError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	feed, err := NewHTMLFeed(HTMLFeedConfig{ArchiveURL: server.URL})
	require.NoError(t, err)

	_, err = feed.ListRecent(context.Background())
	assert.Error(t, err)
}

func TestExternalIDFromURL(t *testing.T) {
	tests := []struct {
		name string
		url  string
		want string
	}{
		{"query param id", "https://archive.example/watch?v=abc123", "abc123"},
		{"query param wins over path", "https://archive.example/recordings/xyz?v=abc123", "abc123"},
		{"last path element", "https://archive.example/recordings/xyz789", "xyz789"},
		{"trailing slash", "https://archive.example/recordings/xyz789/", "xyz789"},
		{"bare host", "https://archive.example", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, externalIDFromURL(tt.url))
		})
	}
}
