package ai

import (
	"context"

	"github.com/opencivic/archivist/core"
)

// Embedder generates vector embeddings from text for semantic similarity search.
// Implementations must be thread-safe for concurrent use.
type Embedder interface {
	// EmbedText generates a vector embedding for a single text string.
	// The returned vector represents the semantic meaning of the text.
	// Returns an error if the embedding generation fails.
	EmbedText(ctx context.Context, text string) ([]float32, error)

	// EmbedTexts generates vector embeddings for multiple text strings in a batch.
	// Batch processing is more efficient than calling EmbedText multiple times.
	// The returned slice contains embeddings in the same order as the input texts.
	// Returns an error if any embedding generation fails.
	EmbedTexts(ctx context.Context, texts []string) ([][]float32, error)
}

// PromptContext carries document metadata into the summarization prompt.
type PromptContext struct {
	// Title is the source document title, e.g. the meeting name.
	Title string

	// MeetingDate is the document's publication date rendered for the prompt.
	MeetingDate string
}

// Summarizer generates a structured recap from a full transcript.
// Implementations must be thread-safe for concurrent use.
type Summarizer interface {
	// Summarize analyzes a transcript and produces the structured recap:
	// summary, article, decisions, topics and public comments.
	// Returns an error if generation or response parsing fails.
	Summarize(ctx context.Context, transcript string, pctx PromptContext) (*core.Recap, error)
}

// Provider aggregates AI services for convenient initialization and lifecycle
// management. A provider creates and manages Embedder and Summarizer
// instances, ensuring they share configuration and resources appropriately.
type Provider interface {
	// Embedder returns the text embedding service.
	// The returned Embedder is safe for concurrent use.
	Embedder() Embedder

	// Summarizer returns the transcript summarization service.
	// The returned Summarizer is safe for concurrent use.
	Summarizer() Summarizer

	// Close releases resources held by the provider and its services.
	// After Close is called, the provider and its services should not be used.
	Close() error
}
