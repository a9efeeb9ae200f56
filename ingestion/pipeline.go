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


package ingestion

import (
	"context"
	"errors"
	"log/slog"
	"runtime"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/panjf2000/ants/v2"
	"golang.org/x/time/rate"

	"github.com/opencivic/archivist/ai"
	"github.com/opencivic/archivist/chunk"
	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/feed"
	"github.com/opencivic/archivist/storage"
)

const (
	// DefaultMaxAttempts bounds retries for transient step failures.
	DefaultMaxAttempts = 3
	// DefaultBaseDelay is the initial retry backoff.
	DefaultBaseDelay = 2 * time.Second
)

// Pipeline orchestrates discovery and processing of source documents.
// Documents are processed concurrently with a worker pool; each document
// runs the full step machine independently.
type Pipeline struct {
	documents   storage.DocumentStore
	checkpoints storage.CheckpointStore
	discovery   feed.DiscoveryFeed
	transcripts feed.TranscriptSource
	provider    ai.Provider
	pool        *ants.Pool
	limiter     *rate.Limiter
	segmenter   chunk.SegmenterOptions
	maxAttempts int
	baseDelay   time.Duration
	monitor     Monitor
	logger      *slog.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline) error

// WithPoolSize sets the worker pool size for concurrent document processing.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(p *Pipeline) error {
		if size < 1 {
			size = 1
		}
		if p.pool != nil {
			p.pool.Release()
		}
		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		p.pool = pool
		return nil
	}
}

// WithRateLimit caps transcript fetches at r per second.
// A zero or negative rate disables the limiter.
func WithRateLimit(r float64) Option {
	return func(p *Pipeline) error {
		if r <= 0 {
			p.limiter = nil
			return nil
		}
		p.limiter = rate.NewLimiter(rate.Limit(r), 1)
		return nil
	}
}

// WithRetry sets the retry policy for transient step failures.
func WithRetry(maxAttempts int, baseDelay time.Duration) Option {
	return func(p *Pipeline) error {
		if maxAttempts <= 0 {
			return ErrInvalidMaxAttempts
		}
		p.maxAttempts = maxAttempts
		p.baseDelay = baseDelay
		return nil
	}
}

// WithSegmenter overrides the transcript segmentation options.
func WithSegmenter(opts chunk.SegmenterOptions) Option {
	return func(p *Pipeline) error {
		p.segmenter = opts
		return nil
	}
}

// WithMonitor installs run observation hooks.
func WithMonitor(m Monitor) Option {
	return func(p *Pipeline) error {
		if m != nil {
			p.monitor = m
		}
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(p *Pipeline) error {
		if logger != nil {
			p.logger = logger
		}
		return nil
	}
}

// NewPipeline creates a new ingestion pipeline.
func NewPipeline(
	documents storage.DocumentStore,
	checkpoints storage.CheckpointStore,
	discovery feed.DiscoveryFeed,
	transcripts feed.TranscriptSource,
	provider ai.Provider,
	opts ...Option,
) (*Pipeline, error) {
	if documents == nil {
		return nil, ErrDocumentStoreRequired
	}
	if checkpoints == nil {
		return nil, ErrCheckpointStoreRequired
	}
	if discovery == nil {
		return nil, ErrFeedRequired
	}
	if transcripts == nil {
		return nil, ErrTranscriptSourceRequired
	}
	if provider == nil {
		return nil, ErrProviderRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}
	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	p := &Pipeline{
		documents:   documents,
		checkpoints: checkpoints,
		discovery:   discovery,
		transcripts: transcripts,
		provider:    provider,
		pool:        pool,
		maxAttempts: DefaultMaxAttempts,
		baseDelay:   DefaultBaseDelay,
		monitor:     &noopMonitor{},
		logger:      slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(p); optErr != nil {
			p.Release()
			return nil, optErr
		}
	}
	p.logger = p.logger.With("component", "pipeline")

	return p, nil
}

// RunOptions holds optional parameters for a pipeline run.
type RunOptions struct {
	// Force re-ingests documents that are already completed or marked
	// no_captions, producing a new version on success.
	Force bool

	// Limit caps how many documents are processed this run (0 = no cap).
	Limit int
}

// BatchReport summarizes one pipeline run.
type BatchReport struct {
	RunId      string
	Discovered int // New documents registered from the feed
	Processed  int
	Completed  int
	Skipped    int // Documents that turned out to have no captions
	Failed     int
	StartedAt  time.Time
	FinishedAt time.Time
}

// Run discovers new documents and processes every eligible document.
//
// Eligible means pending, failed or stuck in processing from a dead run;
// with Force, completed and no_captions documents are re-ingested as well.
// One document failing does not stop the batch. Cancelling the context stops
// the run between documents.
func (p *Pipeline) Run(ctx context.Context, opts RunOptions) (*BatchReport, error) {
	report := &BatchReport{
		RunId:     uuid.NewString(),
		StartedAt: time.Now().UTC(),
	}
	logger := p.logger.With("run", report.RunId)

	discovered, err := p.discover(ctx, logger)
	if err != nil {
		return nil, err
	}
	report.Discovered = discovered

	candidates, err := p.selectCandidates(ctx, opts)
	if err != nil {
		return nil, err
	}

	logger.Info("starting run", "discovered", discovered, "candidates", len(candidates))
	p.monitor.RunStarted(report.RunId, len(candidates))

	proc := &documentProcessor{
		documents:   p.documents,
		checkpoints: p.checkpoints,
		transcripts: p.transcripts,
		embedder:    p.provider.Embedder(),
		summarizer:  p.provider.Summarizer(),
		segmenter:   p.segmenter,
		limiter:     p.limiter,
		maxAttempts: p.maxAttempts,
		baseDelay:   p.baseDelay,
		monitor:     p.monitor,
		logger:      logger,
	}

	var (
		wg sync.WaitGroup
		mu sync.Mutex
	)

	for _, doc := range candidates {
		if ctx.Err() != nil {
			break
		}

		doc := doc
		wg.Add(1)
		err := p.pool.Submit(func() {
			defer wg.Done()
			p.monitor.DocumentStarted(doc)

			status, perr := proc.process(ctx, doc)

			mu.Lock()
			report.Processed++
			switch status {
			case core.StatusCompleted:
				report.Completed++
			case core.StatusNoCaptions:
				report.Skipped++
			default:
				report.Failed++
			}
			mu.Unlock()

			switch {
			case perr != nil:
				logger.Error("document failed", "document", doc.Id, "err", perr)
				p.monitor.DocumentFailed(doc, perr)
			case status == core.StatusNoCaptions:
				p.monitor.DocumentSkipped(doc, "no captions")
			default:
				p.monitor.DocumentCompleted(doc)
			}
		})
		if err != nil {
			wg.Done()
			logger.Error("error submitting document", "document", doc.Id, "err", err)
		}
	}

	wg.Wait()
	report.FinishedAt = time.Now().UTC()
	p.monitor.RunFinished(report)
	logger.Info("run finished",
		"processed", report.Processed,
		"completed", report.Completed,
		"skipped", report.Skipped,
		"failed", report.Failed)

	return report, ctx.Err()
}

// discover registers feed items not seen before and returns how many were new.
func (p *Pipeline) discover(ctx context.Context, logger *slog.Logger) (int, error) {
	items, err := p.discovery.ListRecent(ctx)
	if err != nil {
		return 0, err
	}

	discovered := 0
	for _, item := range items {
		_, err := p.documents.AddDocument(ctx, &core.SourceDocument{
			ExternalId:  item.ExternalId,
			Title:       item.Title,
			SourceUrl:   item.SourceUrl,
			PublishedAt: item.PublishedAt,
			Status:      core.StatusPending,
		})
		if errors.Is(err, storage.ErrDuplicateKey) {
			continue
		}
		if err != nil {
			logger.Error("error registering document", "externalId", item.ExternalId, "err", err)
			continue
		}
		discovered++
	}
	return discovered, nil
}

// selectCandidates returns the stored documents eligible for this run.
func (p *Pipeline) selectCandidates(ctx context.Context, opts RunOptions) ([]*core.SourceDocument, error) {
	var candidates []*core.SourceDocument

	const pageSize = 200
	for offset := 0; ; offset += pageSize {
		page, err := p.documents.ListDocuments(ctx, pageSize, offset)
		if err != nil {
			return nil, err
		}
		for _, doc := range page {
			if eligible(doc, opts.Force) {
				candidates = append(candidates, doc)
				if opts.Limit > 0 && len(candidates) >= opts.Limit {
					return candidates, nil
				}
			}
		}
		if len(page) < pageSize {
			break
		}
	}
	return candidates, nil
}

// eligible reports whether a document should be processed in this run.
// A document left in processing belongs to a run that died; it is retried.
func eligible(doc *core.SourceDocument, force bool) bool {
	switch doc.Status {
	case core.StatusPending, core.StatusFailed, core.StatusProcessing:
		return true
	case core.StatusCompleted, core.StatusNoCaptions:
		return force
	default:
		return false
	}
}

// Release releases the worker pool.
// The pipeline should not be used after calling Release.
func (p *Pipeline) Release() {
	if p.pool != nil {
		p.pool.Release()
	}
}
