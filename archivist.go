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


package archivist

import (
	"log/slog"

	"github.com/opencivic/archivist/ai"
	"github.com/opencivic/archivist/ai/openai"
	"github.com/opencivic/archivist/feed"
	"github.com/opencivic/archivist/ingestion"
	"github.com/opencivic/archivist/knowledge"
	"github.com/opencivic/archivist/search"
	"github.com/opencivic/archivist/storage/badger"
)

// Archive bundles the stores and AI services behind one handle, so callers
// open a single thing and build pipelines, searchers and knowledge services
// off it.
type Archive struct {
	backend   *badger.Backend
	knowStore *badger.KnowledgeStore
	docStore  *badger.DocumentStore
	provider  ai.Provider
	logger    *slog.Logger
}

// ArchiveOption configures an Archive.
type ArchiveOption func(*archiveOptions)

type archiveOptions struct {
	aiConfig *ai.Config
	provider ai.Provider
	inMemory bool
}

// WithAIConfig overrides the AI endpoint configuration.
func WithAIConfig(cfg *ai.Config) ArchiveOption {
	return func(o *archiveOptions) {
		if cfg != nil {
			o.aiConfig = cfg
		}
	}
}

// WithProvider supplies a pre-built AI provider instead of the OpenAI one,
// e.g. a mock for testing.
func WithProvider(provider ai.Provider) ArchiveOption {
	return func(o *archiveOptions) {
		o.provider = provider
	}
}

// WithInMemory opens the storage backend without a backing directory.
func WithInMemory() ArchiveOption {
	return func(o *archiveOptions) {
		o.inMemory = true
	}
}

// Open opens (or creates) an archive at the given path.
func Open(filePath string, opts ...ArchiveOption) (*Archive, error) {
	options := &archiveOptions{
		aiConfig: ai.DefaultConfig(),
	}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	knowStore, err := badger.NewKnowledgeStore(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	docStore, err := badger.NewDocumentStore(backend)
	if err != nil {
		knowStore.Close()
		backend.Close()
		return nil, err
	}

	provider := options.provider
	if provider == nil {
		provider, err = openai.NewProvider(options.aiConfig)
		if err != nil {
			docStore.Close()
			knowStore.Close()
			backend.Close()
			return nil, err
		}
	}

	return &Archive{
		backend:   backend,
		knowStore: knowStore,
		docStore:  docStore,
		provider:  provider,
		logger:    slog.Default(),
	}, nil
}

// Close releases AI services, stores and the storage backend.
func (a *Archive) Close() error {
	if err := a.provider.Close(); err != nil {
		a.logger.Error("error closing AI provider", "err", err)
	}

	if err := a.docStore.Close(); err != nil {
		a.logger.Error("error closing document store", "err", err)
		return err
	}
	if err := a.knowStore.Close(); err != nil {
		a.logger.Error("error closing knowledge store", "err", err)
		return err
	}

	if err := a.backend.Close(); err != nil {
		a.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

// KnowledgeStore exposes the raw knowledge store.
func (a *Archive) KnowledgeStore() *badger.KnowledgeStore {
	return a.knowStore
}

// DocumentStore exposes the raw document store. It also serves version
// history and ingestion checkpoints.
func (a *Archive) DocumentStore() *badger.DocumentStore {
	return a.docStore
}

// Provider exposes the configured AI services.
func (a *Archive) Provider() ai.Provider {
	return a.provider
}

// NewPipeline builds an ingestion pipeline over this archive.
func (a *Archive) NewPipeline(discovery feed.DiscoveryFeed, transcripts feed.TranscriptSource, opts ...ingestion.Option) (*ingestion.Pipeline, error) {
	return ingestion.NewPipeline(a.docStore, a.docStore, discovery, transcripts, a.provider, opts...)
}

// NewSearcher builds a searcher over this archive.
func (a *Archive) NewSearcher(opts ...search.Option) (*search.Searcher, error) {
	return search.NewSearcher(a.docStore, a.knowStore, a.provider, opts...)
}

// NewKnowledgeService builds a knowledge service over this archive.
func (a *Archive) NewKnowledgeService(opts ...knowledge.Option) (*knowledge.Service, error) {
	return knowledge.NewService(a.knowStore, a.provider.Embedder(), opts...)
}
