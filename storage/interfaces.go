package storage

import (
	"context"
	"time"

	"github.com/opencivic/archivist/core"
)

// TimeRange bounds a query on the owning document's publication date.
// A zero From or To leaves that side unbounded.
type TimeRange struct {
	From time.Time
	To   time.Time
}

// Contains reports whether ts falls inside the range (inclusive bounds).
func (r *TimeRange) Contains(ts time.Time) bool {
	if r == nil {
		return true
	}
	if !r.From.IsZero() && ts.Before(r.From) {
		return false
	}
	if !r.To.IsZero() && ts.After(r.To) {
		return false
	}
	return true
}

// KnowledgeStore provides operations for managing knowledge entries.
// Implementations must be thread-safe and support concurrent access.
type KnowledgeStore interface {
	// AddEntries adds one or more entries in a single transaction.
	// The batch is all-or-nothing: if any entry fails (including a title
	// collision with an active entry), nothing is persisted.
	// Generates IDs from sequence and sets CreatedAt if unset.
	// Returns the entries with generated IDs populated.
	AddEntries(ctx context.Context, entries ...*core.KnowledgeEntry) ([]*core.KnowledgeEntry, error)

	// GetEntry retrieves a single entry by ID.
	// Returns ErrNotFound if the entry doesn't exist.
	GetEntry(ctx context.Context, id core.ID) (*core.KnowledgeEntry, error)

	// FindActiveByTitle finds the active entry with the exact title.
	// Returns ErrNotFound if no active entry carries the title.
	FindActiveByTitle(ctx context.Context, title string) (*core.KnowledgeEntry, error)

	// ListEntries returns entries newest first, paginated.
	// Retired entries are included only when includeRetired is true.
	ListEntries(ctx context.Context, includeRetired bool, limit, offset int) ([]*core.KnowledgeEntry, error)

	// RetireEntry soft-deletes an entry (recoverable).
	// Returns false without error if the entry is absent or already retired.
	RetireEntry(ctx context.Context, id core.ID) (bool, error)

	// DeleteEntry permanently removes an entry (irrecoverable).
	// Returns false without error if the entry is absent.
	DeleteEntry(ctx context.Context, id core.ID) (bool, error)

	// FindSimilarEntries finds active entries similar to the given vector.
	// Returns results with similarity >= minSimilarity, up to limit,
	// ordered by similarity descending with ties broken by most recent
	// CreatedAt first.
	FindSimilarEntries(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.EntryResult, error)

	// Close closes the store and releases resources.
	Close() error
}

// DocumentStore provides operations for source documents and their chunk sets.
// Implementations must be thread-safe and support concurrent access.
type DocumentStore interface {
	// AddDocument adds a newly discovered document.
	// Generates an ID from sequence and sets timestamps.
	// Returns ErrDuplicateKey if the external id is already known.
	AddDocument(ctx context.Context, doc *core.SourceDocument) (*core.SourceDocument, error)

	// GetDocument retrieves a document by ID.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocument(ctx context.Context, id core.ID) (*core.SourceDocument, error)

	// GetDocumentByExternalId retrieves a document by its feed identifier.
	// Returns ErrNotFound if the document doesn't exist.
	GetDocumentByExternalId(ctx context.Context, externalId string) (*core.SourceDocument, error)

	// ListDocuments returns documents newest first by publication date.
	ListDocuments(ctx context.Context, limit, offset int) ([]*core.SourceDocument, error)

	// SetStatus updates a document's status and error message.
	SetStatus(ctx context.Context, id core.ID, status core.IngestStatus, errorMessage string) error

	// CommitIngestion atomically publishes a new version of a document:
	// bumps the version, writes the chunk set under the new version, updates
	// transcript/recap/chunk count on the document row, writes the version
	// snapshot and marks the document completed. Readers observe either the
	// old version or the new one, never a mix.
	CommitIngestion(ctx context.Context, id core.ID, transcript string, recap core.Recap, chunks []core.DocumentChunk) (*core.SourceDocument, *core.DocumentVersion, error)

	// GetChunks returns the chunk set for one document version, ordered by
	// chunk index.
	GetChunks(ctx context.Context, id core.ID, version int) ([]*core.DocumentChunk, error)

	// FindSimilarChunks finds current-version chunks similar to the given
	// vector across all completed documents, optionally restricted to
	// documents published within the time range. Results are ordered by
	// similarity descending, up to limit.
	FindSimilarChunks(ctx context.Context, vector []float32, minSimilarity float32, limit int, within *TimeRange) ([]*core.ChunkResult, error)

	// Stats returns per-status document counts and the latest publication date.
	Stats(ctx context.Context) (*core.IngestStats, error)

	// Close closes the store and releases resources.
	Close() error
}

// VersionStore provides access to immutable document version snapshots.
type VersionStore interface {
	// ListVersions returns all snapshots for a document, newest first.
	ListVersions(ctx context.Context, documentId core.ID) ([]*core.DocumentVersion, error)

	// GetVersion retrieves one snapshot.
	// Returns ErrNotFound if the snapshot doesn't exist.
	GetVersion(ctx context.Context, documentId core.ID, version int) (*core.DocumentVersion, error)

	// Restore copies the target snapshot's recap, transcript and chunk set
	// back onto the live document as a NEW version, and writes a snapshot of
	// that new version. History is append-only: no snapshot is deleted or
	// renumbered. Returns the document as updated.
	// Returns core.ErrInvalidVersion for version < 1 and ErrNotFound for an
	// unknown document or version.
	Restore(ctx context.Context, documentId core.ID, targetVersion int) (*core.SourceDocument, error)
}

// CheckpointStore persists per-document pipeline step state so an
// interrupted ingestion resumes from the last completed step.
type CheckpointStore interface {
	// SaveState persists the step checkpoint for a document.
	SaveState(ctx context.Context, state *core.IngestState) error

	// LoadState retrieves the checkpoint for a document.
	// Returns nil, nil if no checkpoint exists.
	LoadState(ctx context.Context, documentId core.ID) (*core.IngestState, error)

	// ClearState removes the checkpoint for a document.
	// Clearing an absent checkpoint is not an error.
	ClearState(ctx context.Context, documentId core.ID) error
}
