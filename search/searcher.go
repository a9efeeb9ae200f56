package search

import (
	"context"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/opencivic/archivist/ai"
	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/storage"
)

const (
	// DefaultMinSimilarity filters weak hits out of results.
	DefaultMinSimilarity = 0.3
	// DefaultMaxHits caps results when the query doesn't say.
	DefaultMaxHits = 10

	// verbatimBoost is added to a hit containing every meaningful query word.
	verbatimBoost = 0.3
)

// Scope selects which collections a query runs against.
type Scope int

const (
	// ScopeAll searches document chunks and knowledge entries.
	ScopeAll Scope = iota
	// ScopeDocuments searches transcript chunks only.
	ScopeDocuments
	// ScopeKnowledge searches knowledge entries only.
	ScopeKnowledge
)

// Query describes one search request.
type Query struct {
	Text          string
	Scope         Scope
	MaxHits       int       // 0 selects DefaultMaxHits
	MinSimilarity float32   // 0 selects DefaultMinSimilarity
	From, To      time.Time // Optional publication date bounds for chunk hits
}

// Results holds ranked hits per collection.
type Results struct {
	Chunks  []*core.ChunkResult
	Entries []*core.EntryResult
}

// Searcher provides semantic search over document chunks and knowledge entries.
type Searcher struct {
	documents storage.DocumentStore
	knowledge storage.KnowledgeStore
	embedder  ai.Embedder
	logger    *slog.Logger
}

// Option configures a Searcher.
type Option func(*Searcher) error

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Searcher) error {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
		return nil
	}
}

// NewSearcher creates a new searcher.
func NewSearcher(
	documents storage.DocumentStore,
	knowledge storage.KnowledgeStore,
	provider ai.Provider,
	opts ...Option,
) (*Searcher, error) {
	if documents == nil {
		return nil, ErrDocumentStoreRequired
	}
	if knowledge == nil {
		return nil, ErrKnowledgeStoreRequired
	}
	if provider == nil {
		return nil, ErrAIProviderRequired
	}

	s := &Searcher{
		documents: documents,
		knowledge: knowledge,
		embedder:  provider.Embedder(),
		logger:    slog.Default(),
	}

	for _, opt := range opts {
		if err := opt(s); err != nil {
			return nil, err
		}
	}

	return s, nil
}

// Search embeds the query once and runs it against the collections the scope
// selects. Hits below the similarity threshold are dropped; hits containing
// every meaningful query word verbatim are boosted before ranking.
func (s *Searcher) Search(ctx context.Context, q Query) (*Results, error) {
	text := strings.TrimSpace(q.Text)
	if text == "" {
		return nil, ErrEmptyQuery
	}
	if q.MaxHits <= 0 {
		q.MaxHits = DefaultMaxHits
	}
	if q.MinSimilarity <= 0 {
		q.MinSimilarity = DefaultMinSimilarity
	}

	embedding, err := s.embedder.EmbedText(ctx, text)
	if err != nil {
		s.logger.Error("error generating embedding for query", "query", text, "err", err)
		return nil, err
	}
	vector := ai.NormalizeVector(embedding)

	results := &Results{}

	if q.Scope == ScopeAll || q.Scope == ScopeDocuments {
		var within *storage.TimeRange
		if !q.From.IsZero() || !q.To.IsZero() {
			within = &storage.TimeRange{From: q.From, To: q.To}
		}

		// Over-fetch so the verbatim boost can promote hits past the cut.
		chunks, err := s.documents.FindSimilarChunks(ctx, vector, q.MinSimilarity, q.MaxHits*2, within)
		if err != nil {
			s.logger.Error("error querying for similar chunks", "err", err)
			return nil, err
		}
		for _, hit := range chunks {
			if containsAllQueryWords(hit.Chunk.Contents, text) {
				hit.Score += verbatimBoost
			}
		}
		sort.Slice(chunks, func(i, j int) bool {
			return chunks[i].Score > chunks[j].Score
		})
		if len(chunks) > q.MaxHits {
			chunks = chunks[:q.MaxHits]
		}
		results.Chunks = chunks
	}

	if q.Scope == ScopeAll || q.Scope == ScopeKnowledge {
		entries, err := s.knowledge.FindSimilarEntries(ctx, vector, q.MinSimilarity, q.MaxHits*2)
		if err != nil {
			s.logger.Error("error querying for similar entries", "err", err)
			return nil, err
		}
		for _, hit := range entries {
			if containsAllQueryWords(hit.Entry.Contents, text) {
				hit.Score += verbatimBoost
			}
		}
		sort.Slice(entries, func(i, j int) bool {
			return entries[i].Score > entries[j].Score
		})
		if len(entries) > q.MaxHits {
			entries = entries[:q.MaxHits]
		}
		results.Entries = entries
	}

	return results, nil
}
