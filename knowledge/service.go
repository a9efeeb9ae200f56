// Copyright 2025 OpenCivic Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package knowledge

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/opencivic/archivist/ai"
	"github.com/opencivic/archivist/chunk"
	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/storage"
)

const (
	// DefaultDuplicateThreshold is the similarity at or above which a
	// submission counts as a duplicate of an existing entry.
	DefaultDuplicateThreshold = 0.95
	// DefaultSearchThreshold filters weak hits out of search results.
	DefaultSearchThreshold = 0.3
)

// Service provides create, search and lifecycle operations over the
// knowledge base.
type Service struct {
	store              storage.KnowledgeStore
	embedder           ai.Embedder
	maxChars           int
	duplicateThreshold float32
	logger             *slog.Logger
}

// Option configures a Service.
type Option func(*Service)

// WithMaxChars sets the chunking budget for long submissions.
func WithMaxChars(maxChars int) Option {
	return func(s *Service) {
		if maxChars > 0 {
			s.maxChars = maxChars
		}
	}
}

// WithDuplicateThreshold sets the similarity at which a submission is
// rejected as a duplicate.
func WithDuplicateThreshold(threshold float32) Option {
	return func(s *Service) {
		s.duplicateThreshold = threshold
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// NewService creates a new knowledge service.
func NewService(store storage.KnowledgeStore, embedder ai.Embedder, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrStoreRequired
	}
	if embedder == nil {
		return nil, ErrEmbedderRequired
	}

	s := &Service{
		store:              store,
		embedder:           embedder,
		maxChars:           chunk.DefaultMaxChars,
		duplicateThreshold: DefaultDuplicateThreshold,
		logger:             slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	s.logger = s.logger.With("component", "knowledge")
	return s, nil
}

// Submission is the input for creating knowledge entries.
type Submission struct {
	Title    string
	Contents string
	Category string
	Tags     []string
	Source   string
}

// Create stores a submission as one or more entries.
//
// Long submissions are split into parts titled "<title> (Part i/N)". All
// parts are embedded before anything is written, and the whole submission is
// persisted in a single all-or-nothing batch. The submission is rejected
// with ErrDuplicateTitle when an active entry already carries one of its
// titles, and with DuplicateContentError when any part is semantically too
// close to an existing active entry.
func (s *Service) Create(ctx context.Context, sub Submission) ([]*core.KnowledgeEntry, error) {
	title := strings.TrimSpace(sub.Title)
	contents := strings.TrimSpace(sub.Contents)
	if title == "" {
		return nil, core.ErrEmptyTitle
	}
	if contents == "" {
		return nil, core.ErrEmptyContent
	}

	parts := chunk.Split(contents, s.maxChars)
	titles := partTitles(title, len(parts))

	for _, t := range titles {
		_, err := s.store.FindActiveByTitle(ctx, t)
		if err == nil {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTitle, t)
		}
		if !errors.Is(err, storage.ErrNotFound) {
			return nil, err
		}
	}

	vectors, err := s.embedder.EmbedTexts(ctx, parts)
	if err != nil {
		return nil, fmt.Errorf("embedding submission: %w", err)
	}
	if len(vectors) != len(parts) {
		return nil, fmt.Errorf("embedder returned %d vectors for %d parts", len(vectors), len(parts))
	}

	entries := make([]*core.KnowledgeEntry, len(parts))
	for i, part := range parts {
		vector := ai.NormalizeVector(vectors[i])

		matches, err := s.store.FindSimilarEntries(ctx, vector, s.duplicateThreshold, 1)
		if err != nil {
			return nil, err
		}
		if len(matches) > 0 {
			return nil, &DuplicateContentError{
				MatchedTitle: matches[0].Entry.Title,
				Score:        matches[0].Score,
			}
		}

		entries[i] = &core.KnowledgeEntry{
			Title:    titles[i],
			Contents: part,
			Category: sub.Category,
			Tags:     sub.Tags,
			Source:   sub.Source,
			Vector:   vector,
			State:    core.EntryStateActive,
		}
	}

	added, err := s.store.AddEntries(ctx, entries...)
	if err != nil {
		return nil, err
	}

	s.logger.Info("stored submission", "title", title, "parts", len(added))
	return added, nil
}

// Search finds active entries semantically similar to the query.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]*core.EntryResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []*core.EntryResult{}, nil
	}
	if limit <= 0 {
		limit = 10
	}

	vector, err := s.embedder.EmbedText(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embedding query: %w", err)
	}

	return s.store.FindSimilarEntries(ctx, ai.NormalizeVector(vector), DefaultSearchThreshold, limit)
}

// Get retrieves a single entry by ID.
func (s *Service) Get(ctx context.Context, id core.ID) (*core.KnowledgeEntry, error) {
	return s.store.GetEntry(ctx, id)
}

// List returns entries newest first.
func (s *Service) List(ctx context.Context, includeRetired bool, limit, offset int) ([]*core.KnowledgeEntry, error) {
	return s.store.ListEntries(ctx, includeRetired, limit, offset)
}

// Retire soft-deletes an entry. The title is freed for reuse but the entry
// remains until hard-deleted.
func (s *Service) Retire(ctx context.Context, id core.ID) (bool, error) {
	retired, err := s.store.RetireEntry(ctx, id)
	if err == nil && retired {
		s.logger.Info("retired entry", "id", id)
	}
	return retired, err
}

// Delete permanently removes an entry.
func (s *Service) Delete(ctx context.Context, id core.ID) (bool, error) {
	deleted, err := s.store.DeleteEntry(ctx, id)
	if err == nil && deleted {
		s.logger.Info("deleted entry", "id", id)
	}
	return deleted, err
}

// partTitles builds the stored titles for a submission split into n parts.
// A single-part submission keeps the original title.
func partTitles(title string, n int) []string {
	titles := make([]string, n)
	if n == 1 {
		titles[0] = title
		return titles
	}
	for i := range titles {
		titles[i] = fmt.Sprintf("%s (Part %d/%d)", title, i+1, n)
	}
	return titles
}
