package feed

import (
	"context"
	"errors"
	"time"

	"github.com/opencivic/archivist/core"
)

// ErrNoCaptions indicates the source exists but has no transcript available.
// This is a terminal condition for a document, not a transient failure:
// the pipeline marks the document no_captions and moves on.
var ErrNoCaptions = errors.New("no captions available")

// Item is one discovered source document candidate.
type Item struct {
	ExternalId  string
	Title       string
	SourceUrl   string
	PublishedAt time.Time
}

// DiscoveryFeed lists recently published source documents.
// Implementations must be safe for concurrent use.
type DiscoveryFeed interface {
	// ListRecent returns the most recent items from the feed, newest first.
	// The same ExternalId is always returned for the same source document.
	ListRecent(ctx context.Context) ([]Item, error)
}

// TranscriptSource fetches caption segments for one source document.
// Implementations must be safe for concurrent use.
type TranscriptSource interface {
	// Fetch retrieves the time-ordered caption segments for an external id.
	// Returns ErrNoCaptions when the source has no transcript; any other
	// error is treated as transient and retried by the pipeline.
	Fetch(ctx context.Context, externalId string) ([]core.CaptionSegment, error)
}
