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
	"fmt"
	"log/slog"
	"strings"
	"time"

	"golang.org/x/time/rate"

	"github.com/opencivic/archivist/ai"
	"github.com/opencivic/archivist/chunk"
	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/feed"
	"github.com/opencivic/archivist/storage"
)

// stepRank orders pipeline steps so a checkpoint can tell which steps are
// already done.
var stepRank = map[string]int{
	core.StepFetch:     1,
	core.StepSegment:   2,
	core.StepSummarize: 3,
	core.StepEmbed:     4,
}

// documentProcessor runs the step machine for a single document.
type documentProcessor struct {
	documents   storage.DocumentStore
	checkpoints storage.CheckpointStore
	transcripts feed.TranscriptSource
	embedder    ai.Embedder
	summarizer  ai.Summarizer
	segmenter   chunk.SegmenterOptions
	limiter     *rate.Limiter
	maxAttempts int
	baseDelay   time.Duration
	monitor     Monitor
	logger      *slog.Logger
}

// process runs a document through fetch, segment, summarize, embed and
// commit, resuming from a checkpoint when one exists. Returns the document's
// final status and, for a failure, the error that caused it.
func (dp *documentProcessor) process(ctx context.Context, doc *core.SourceDocument) (core.IngestStatus, error) {
	logger := dp.logger.With("document", doc.Id, "externalId", doc.ExternalId)

	state, err := dp.checkpoints.LoadState(ctx, doc.Id)
	if err != nil {
		return core.StatusFailed, dp.fail(ctx, doc, err)
	}

	if err := dp.documents.SetStatus(ctx, doc.Id, core.StatusProcessing, ""); err != nil {
		return core.StatusFailed, err
	}

	var (
		transcript string
		segments   []core.CaptionSegment
		chunks     []core.DocumentChunk
		recap      core.Recap
	)

	resumed := ""
	if state != nil {
		resumed = state.Step
		transcript = state.Transcript
		segments = state.Segments
		chunks = state.Chunks
		recap = state.Recap
		logger.Info("resuming from checkpoint", "step", resumed)
	}

	save := func(step string) error {
		return dp.checkpoints.SaveState(ctx, &core.IngestState{
			DocumentId: doc.Id,
			Step:       step,
			Transcript: transcript,
			Segments:   segments,
			Chunks:     chunks,
			Recap:      recap,
			UpdatedAt:  time.Now().UTC(),
		})
	}

	// Step 1: fetch the transcript.
	if !stepDone(resumed, core.StepFetch) {
		if dp.limiter != nil {
			if err := dp.limiter.Wait(ctx); err != nil {
				return core.StatusFailed, dp.fail(ctx, doc, err)
			}
		}

		noCaptions := false
		err := RetryWithBackoff(ctx, func() error {
			segs, ferr := dp.transcripts.Fetch(ctx, doc.ExternalId)
			if errors.Is(ferr, feed.ErrNoCaptions) {
				noCaptions = true
				return nil
			}
			if ferr != nil {
				return ferr
			}
			segments = segs
			return nil
		}, dp.maxAttempts, dp.baseDelay)
		if err != nil {
			return core.StatusFailed, dp.fail(ctx, doc, fmt.Errorf("fetching transcript: %w", err))
		}
		if noCaptions || len(segments) == 0 {
			// Terminal but not a failure. Only a forced run revisits it.
			if err := dp.checkpoints.ClearState(ctx, doc.Id); err != nil {
				logger.Warn("error clearing checkpoint", "err", err)
			}
			if err := dp.documents.SetStatus(ctx, doc.Id, core.StatusNoCaptions, ""); err != nil {
				return core.StatusFailed, err
			}
			logger.Info("no captions available")
			return core.StatusNoCaptions, nil
		}

		transcript = buildTranscript(segments)
		if err := save(core.StepFetch); err != nil {
			return core.StatusFailed, dp.fail(ctx, doc, err)
		}
		dp.monitor.StepCompleted(doc, core.StepFetch)
	}

	// Step 2: segment into time-addressable chunks.
	if !stepDone(resumed, core.StepSegment) {
		chunks = chunk.SegmentTranscript(segments, dp.segmenter)
		if err := save(core.StepSegment); err != nil {
			return core.StatusFailed, dp.fail(ctx, doc, err)
		}
		dp.monitor.StepCompleted(doc, core.StepSegment)
	}

	// Step 3: generate the structured recap.
	if !stepDone(resumed, core.StepSummarize) {
		pctx := ai.PromptContext{
			Title:       doc.Title,
			MeetingDate: doc.PublishedAt.Format("January 2, 2006"),
		}

		err := RetryWithBackoff(ctx, func() error {
			r, serr := dp.summarizer.Summarize(ctx, transcript, pctx)
			if serr != nil {
				return serr
			}
			recap = *r
			return nil
		}, dp.maxAttempts, dp.baseDelay)
		if err != nil {
			return core.StatusFailed, dp.fail(ctx, doc, fmt.Errorf("summarizing transcript: %w", err))
		}

		if err := save(core.StepSummarize); err != nil {
			return core.StatusFailed, dp.fail(ctx, doc, err)
		}
		dp.monitor.StepCompleted(doc, core.StepSummarize)
	}

	// Step 4: embed the chunk contents.
	if !stepDone(resumed, core.StepEmbed) {
		texts := make([]string, len(chunks))
		for i := range chunks {
			texts[i] = chunks[i].Contents
		}

		var vectors [][]float32
		err := RetryWithBackoff(ctx, func() error {
			v, eerr := dp.embedder.EmbedTexts(ctx, texts)
			if eerr != nil {
				return eerr
			}
			vectors = v
			return nil
		}, dp.maxAttempts, dp.baseDelay)
		if err != nil {
			return core.StatusFailed, dp.fail(ctx, doc, fmt.Errorf("embedding chunks: %w", err))
		}
		if len(vectors) != len(chunks) {
			return core.StatusFailed, dp.fail(ctx, doc,
				fmt.Errorf("embedding result mismatch. expected %d, received %d", len(chunks), len(vectors)))
		}

		for i := range chunks {
			chunks[i].Vector = ai.NormalizeVector(vectors[i])
		}
		if err := save(core.StepEmbed); err != nil {
			return core.StatusFailed, dp.fail(ctx, doc, err)
		}
		dp.monitor.StepCompleted(doc, core.StepEmbed)
	}

	// Step 5: commit everything as the new version.
	updated, version, err := dp.documents.CommitIngestion(ctx, doc.Id, transcript, recap, chunks)
	if err != nil {
		return core.StatusFailed, dp.fail(ctx, doc, fmt.Errorf("committing version: %w", err))
	}
	if err := dp.checkpoints.ClearState(ctx, doc.Id); err != nil {
		logger.Warn("error clearing checkpoint", "err", err)
	}

	*doc = *updated
	logger.Info("document ingested", "version", version.Version, "chunks", version.ChunkCount)
	return core.StatusCompleted, nil
}

// fail marks the document failed, keeping its checkpoint for the next run.
func (dp *documentProcessor) fail(ctx context.Context, doc *core.SourceDocument, cause error) error {
	if serr := dp.documents.SetStatus(ctx, doc.Id, core.StatusFailed, cause.Error()); serr != nil {
		dp.logger.Error("error recording failure", "document", doc.Id, "err", serr)
	}
	return cause
}

// stepDone reports whether step was already completed at or before the
// resumed checkpoint.
func stepDone(resumed, step string) bool {
	return stepRank[resumed] >= stepRank[step]
}

// buildTranscript joins caption segments into the full raw transcript.
func buildTranscript(segments []core.CaptionSegment) string {
	parts := make([]string, 0, len(segments))
	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text != "" {
			parts = append(parts, text)
		}
	}
	return strings.Join(parts, "\n")
}
