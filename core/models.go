package core

//go:generate go run ../cmd/musgen

import (
	"encoding/binary"
	"time"

	"github.com/go-crypt/x/blake2b"
)

// ID is a unique identifier for domain entities.
// It is generated using content-based hashing or database sequences.
type ID uint64

// IDFromContent generates a deterministic ID from text content using BLAKE2b hashing.
// This ensures that identical content produces identical IDs.
func IDFromContent(text string) ID {
	h, _ := blake2b.New(8, nil) // 8 bytes = 64 bits
	h.Write([]byte(text))
	sum := h.Sum(nil)
	return ID(binary.LittleEndian.Uint64(sum))
}

// EntryState models the lifecycle of a knowledge entry.
// Entries are never updated in place; they are active until retired.
type EntryState int

const (
	// EntryStateActive means the entry is live and queryable.
	EntryStateActive EntryState = iota + 1
	// EntryStateRetired means the entry has been soft-deleted.
	// Retired entries are excluded from search and duplicate detection
	// but remain recoverable until hard-deleted.
	EntryStateRetired
)

// KnowledgeEntry is one retrievable unit of free-text knowledge.
// Long submissions are split into multiple entries, each titled
// "<title> (Part i/N)".
type KnowledgeEntry struct {
	Id        ID
	Title     string
	Contents  string
	Category  string
	Tags      []string
	Source    string
	Vector    []float32 // Embedding vector for semantic search
	State     EntryState
	CreatedAt time.Time
}

// Active reports whether the entry is live.
func (e *KnowledgeEntry) Active() bool {
	return e.State == EntryStateActive
}

// Retire transitions the entry to the retired state.
// Returns false if the entry was already retired.
func (e *KnowledgeEntry) Retire() bool {
	if e.State != EntryStateActive {
		return false
	}
	e.State = EntryStateRetired
	return true
}

// IngestStatus is the processing state of a source document.
type IngestStatus int

const (
	// StatusPending means the document was discovered but not yet attempted.
	StatusPending IngestStatus = iota + 1
	// StatusProcessing means an ingestion run is in flight for the document.
	StatusProcessing
	// StatusCompleted means the current version was fully persisted.
	StatusCompleted
	// StatusFailed means the last run exhausted its retries.
	// Failed documents are picked up again on the next run.
	StatusFailed
	// StatusNoCaptions means the source had no transcript available.
	// Terminal and distinct from failure: never retried unless a run is forced.
	StatusNoCaptions
)

// String returns the wire/CLI representation of the status.
func (s IngestStatus) String() string {
	switch s {
	case StatusPending:
		return "pending"
	case StatusProcessing:
		return "processing"
	case StatusCompleted:
		return "completed"
	case StatusFailed:
		return "failed"
	case StatusNoCaptions:
		return "no_captions"
	default:
		return "unknown"
	}
}

// Terminal reports whether the status ends a pipeline run for the document.
func (s IngestStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusFailed || s == StatusNoCaptions
}

// Recap is the structured summary generated for a source document.
type Recap struct {
	Summary        string
	Article        string
	Decisions      []string
	Topics         []string
	PublicComments []string
}

// SourceDocument is one discovered unit of work, e.g. a meeting recording.
type SourceDocument struct {
	Id            ID
	ExternalId    string // Stable identifier from the discovery feed
	Title         string
	SourceUrl     string
	PublishedAt   time.Time
	Status        IngestStatus
	ErrorMessage  string
	RawTranscript string
	Recap         Recap
	ChunkCount    int
	Version       int // Starts at 1, incremented on each successful re-ingestion
	InsertedAt    time.Time
	UpdatedAt     time.Time
}

// DocumentChunk is one embedded, time-addressable slice of a document's
// transcript. Chunks are stored per (DocumentId, Version); the live set is
// the one matching the document's current version.
type DocumentChunk struct {
	Id             ID
	DocumentId     ID
	Version        int
	ChunkIndex     int
	Contents       string
	Vector         []float32
	StartSeconds   float64
	EndSeconds     float64
	SourceCategory string
}

// DocumentVersion is an immutable snapshot of a document's processed output,
// written after every successful ingestion (including restores).
type DocumentVersion struct {
	Id            ID
	DocumentId    ID
	Version       int
	Recap         Recap
	RawTranscript string
	ChunkCount    int
	CreatedAt     time.Time
}

// CaptionSegment is one time-ordered caption from a transcript source.
type CaptionSegment struct {
	Text           string
	StartMillis    int64
	DurationMillis int64
}

// IngestState is the durable per-document checkpoint written between
// pipeline steps. It records the last completed step together with its
// output, so a restarted process resumes rather than recomputes.
type IngestState struct {
	DocumentId ID
	Step       string // Last completed step name
	Transcript string
	Segments   []CaptionSegment
	Chunks     []DocumentChunk
	Recap      Recap
	UpdatedAt  time.Time
}

// Pipeline step names recorded in IngestState.Step.
const (
	StepFetch     = "fetch"
	StepSegment   = "segment"
	StepSummarize = "summarize"
	StepEmbed     = "embed"
)

// EntryResult is a knowledge-entry search hit.
type EntryResult struct {
	Entry *KnowledgeEntry
	Score float32
}

// ChunkResult is a document-chunk search hit, carrying the owning
// document's title and publication date for display.
type ChunkResult struct {
	Chunk       *DocumentChunk
	Score       float32
	SourceTitle string
	SourceDate  time.Time
}

// IngestStats summarizes the state of the document archive.
type IngestStats struct {
	CountsByStatus map[string]int
	TotalDocuments int
	LatestDocument time.Time
}
