package badger

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/storage"
)

func newTestDocument(t *testing.T, docStore *DocumentStore, externalId string, published time.Time) *core.SourceDocument {
	t.Helper()
	doc, err := docStore.AddDocument(context.Background(), &core.SourceDocument{
		ExternalId:  externalId,
		Title:       "Council Meeting " + externalId,
		SourceUrl:   "https://archive.example/watch?v=" + externalId,
		PublishedAt: published,
	})
	if err != nil {
		t.Fatalf("Failed to add document: %v", err)
	}
	return doc
}

func testChunks(n int) []core.DocumentChunk {
	chunks := make([]core.DocumentChunk, n)
	for i := range chunks {
		chunks[i] = core.DocumentChunk{
			Contents:     "chunk contents",
			Vector:       []float32{float32(i + 1), 0, 0},
			StartSeconds: float64(i * 60),
			EndSeconds:   float64((i + 1) * 60),
		}
	}
	return chunks
}

func TestDocumentBasics(t *testing.T) {
	knowStore, docStore, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { docStore.Close(); knowStore.Close(); backend.Close() }()

	ctx := context.Background()
	published := time.Date(2026, 2, 10, 19, 0, 0, 0, time.UTC)

	doc := newTestDocument(t, docStore, "abc123", published)
	if doc.Id == 0 {
		t.Fatal("Expected non-zero ID")
	}
	if doc.Status != core.StatusPending {
		t.Fatalf("Expected pending status, got %v", doc.Status)
	}
	if doc.Version != 0 {
		t.Fatalf("Expected version 0 before first ingestion, got %d", doc.Version)
	}

	byID, err := docStore.GetDocument(ctx, doc.Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	if byID.ExternalId != "abc123" {
		t.Fatalf("Expected external id abc123, got %q", byID.ExternalId)
	}

	byExt, err := docStore.GetDocumentByExternalId(ctx, "abc123")
	if err != nil {
		t.Fatalf("Failed to get by external id: %v", err)
	}
	if byExt.Id != doc.Id {
		t.Fatalf("Expected ID %d, got %d", doc.Id, byExt.Id)
	}

	// Same external id is rejected.
	_, err = docStore.AddDocument(ctx, &core.SourceDocument{ExternalId: "abc123"})
	if !errors.Is(err, storage.ErrDuplicateKey) {
		t.Fatalf("Expected ErrDuplicateKey, got %v", err)
	}
}

func TestDocumentSetStatus(t *testing.T) {
	knowStore, docStore, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { docStore.Close(); knowStore.Close(); backend.Close() }()

	ctx := context.Background()
	doc := newTestDocument(t, docStore, "v1", time.Now().UTC())

	if err := docStore.SetStatus(ctx, doc.Id, core.StatusFailed, "summarizer unavailable"); err != nil {
		t.Fatalf("Failed to set status: %v", err)
	}

	updated, err := docStore.GetDocument(ctx, doc.Id)
	if err != nil {
		t.Fatalf("Failed to get document: %v", err)
	}
	if updated.Status != core.StatusFailed || updated.ErrorMessage != "summarizer unavailable" {
		t.Fatalf("Unexpected status %v / message %q", updated.Status, updated.ErrorMessage)
	}
}

func TestCommitIngestion(t *testing.T) {
	knowStore, docStore, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { docStore.Close(); knowStore.Close(); backend.Close() }()

	ctx := context.Background()
	doc := newTestDocument(t, docStore, "meeting-1", time.Now().UTC())

	recap := core.Recap{Summary: "short summary", Topics: []string{"zoning"}}
	updated, version, err := docStore.CommitIngestion(ctx, doc.Id, "full transcript", recap, testChunks(3))
	if err != nil {
		t.Fatalf("Failed to commit ingestion: %v", err)
	}

	if updated.Version != 1 {
		t.Fatalf("Expected version 1, got %d", updated.Version)
	}
	if updated.Status != core.StatusCompleted {
		t.Fatalf("Expected completed status, got %v", updated.Status)
	}
	if updated.ChunkCount != 3 {
		t.Fatalf("Expected chunk count 3, got %d", updated.ChunkCount)
	}
	if version.Version != 1 || version.ChunkCount != 3 {
		t.Fatalf("Unexpected snapshot: %+v", version)
	}

	chunks, err := docStore.GetChunks(ctx, doc.Id, 1)
	if err != nil {
		t.Fatalf("Failed to get chunks: %v", err)
	}
	if len(chunks) != 3 {
		t.Fatalf("Expected 3 chunks, got %d", len(chunks))
	}
	for i, chunk := range chunks {
		if chunk.ChunkIndex != i {
			t.Fatalf("Expected contiguous indices, got %d at position %d", chunk.ChunkIndex, i)
		}
		if chunk.Version != 1 || chunk.DocumentId != doc.Id {
			t.Fatalf("Chunk not bound to document version: %+v", chunk)
		}
	}
}

func TestReingestionKeepsOldChunks(t *testing.T) {
	knowStore, docStore, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { docStore.Close(); knowStore.Close(); backend.Close() }()

	ctx := context.Background()
	doc := newTestDocument(t, docStore, "meeting-2", time.Now().UTC())

	if _, _, err := docStore.CommitIngestion(ctx, doc.Id, "transcript v1", core.Recap{}, testChunks(2)); err != nil {
		t.Fatalf("Failed first commit: %v", err)
	}
	updated, _, err := docStore.CommitIngestion(ctx, doc.Id, "transcript v2", core.Recap{}, testChunks(4))
	if err != nil {
		t.Fatalf("Failed second commit: %v", err)
	}

	if updated.Version != 2 {
		t.Fatalf("Expected version 2, got %d", updated.Version)
	}

	v1Chunks, err := docStore.GetChunks(ctx, doc.Id, 1)
	if err != nil {
		t.Fatalf("Failed to get v1 chunks: %v", err)
	}
	v2Chunks, err := docStore.GetChunks(ctx, doc.Id, 2)
	if err != nil {
		t.Fatalf("Failed to get v2 chunks: %v", err)
	}
	if len(v1Chunks) != 2 || len(v2Chunks) != 4 {
		t.Fatalf("Expected 2 and 4 chunks, got %d and %d", len(v1Chunks), len(v2Chunks))
	}

	versions, err := docStore.ListVersions(ctx, doc.Id)
	if err != nil {
		t.Fatalf("Failed to list versions: %v", err)
	}
	if len(versions) != 2 || versions[0].Version != 2 || versions[1].Version != 1 {
		t.Fatalf("Expected versions [2 1], got %+v", versionNumbers(versions))
	}
}

func TestRestore(t *testing.T) {
	knowStore, docStore, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { docStore.Close(); knowStore.Close(); backend.Close() }()

	ctx := context.Background()
	doc := newTestDocument(t, docStore, "meeting-3", time.Now().UTC())

	if _, _, err := docStore.CommitIngestion(ctx, doc.Id, "first transcript", core.Recap{Summary: "first"}, testChunks(2)); err != nil {
		t.Fatalf("Failed first commit: %v", err)
	}
	if _, _, err := docStore.CommitIngestion(ctx, doc.Id, "second transcript", core.Recap{Summary: "second"}, testChunks(5)); err != nil {
		t.Fatalf("Failed second commit: %v", err)
	}

	restored, err := docStore.Restore(ctx, doc.Id, 1)
	if err != nil {
		t.Fatalf("Failed to restore: %v", err)
	}

	// Restore appends a new version carrying v1's content.
	if restored.Version != 3 {
		t.Fatalf("Expected version 3 after restore, got %d", restored.Version)
	}
	if restored.RawTranscript != "first transcript" || restored.Recap.Summary != "first" {
		t.Fatalf("Expected v1 content, got transcript %q recap %q", restored.RawTranscript, restored.Recap.Summary)
	}
	if restored.ChunkCount != 2 {
		t.Fatalf("Expected 2 chunks, got %d", restored.ChunkCount)
	}

	chunks, err := docStore.GetChunks(ctx, doc.Id, 3)
	if err != nil {
		t.Fatalf("Failed to get restored chunks: %v", err)
	}
	if len(chunks) != 2 {
		t.Fatalf("Expected 2 restored chunks, got %d", len(chunks))
	}

	// History is append-only.
	versions, err := docStore.ListVersions(ctx, doc.Id)
	if err != nil {
		t.Fatalf("Failed to list versions: %v", err)
	}
	if len(versions) != 3 {
		t.Fatalf("Expected 3 snapshots, got %d", len(versions))
	}

	// Invalid targets.
	if _, err := docStore.Restore(ctx, doc.Id, 0); !errors.Is(err, core.ErrInvalidVersion) {
		t.Fatalf("Expected ErrInvalidVersion, got %v", err)
	}
	if _, err := docStore.Restore(ctx, doc.Id, 99); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("Expected ErrNotFound, got %v", err)
	}
}

func TestFindSimilarChunks(t *testing.T) {
	knowStore, docStore, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { docStore.Close(); knowStore.Close(); backend.Close() }()

	ctx := context.Background()

	early := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)
	late := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)

	docA := newTestDocument(t, docStore, "early", early)
	docB := newTestDocument(t, docStore, "late", late)

	chunksA := []core.DocumentChunk{{Contents: "about zoning", Vector: []float32{1, 0, 0}, EndSeconds: 1}}
	chunksB := []core.DocumentChunk{{Contents: "about parks", Vector: []float32{0.9, 0.1, 0}, EndSeconds: 1}}

	if _, _, err := docStore.CommitIngestion(ctx, docA.Id, "t", core.Recap{}, chunksA); err != nil {
		t.Fatalf("Failed commit A: %v", err)
	}
	if _, _, err := docStore.CommitIngestion(ctx, docB.Id, "t", core.Recap{}, chunksB); err != nil {
		t.Fatalf("Failed commit B: %v", err)
	}

	results, err := docStore.FindSimilarChunks(ctx, []float32{1, 0, 0}, 0.5, 10, nil)
	if err != nil {
		t.Fatalf("Failed to search chunks: %v", err)
	}
	if len(results) != 2 {
		t.Fatalf("Expected 2 results, got %d", len(results))
	}
	if results[0].Score < results[1].Score {
		t.Fatal("Expected descending scores")
	}
	if results[0].SourceTitle == "" || results[0].SourceDate.IsZero() {
		t.Fatalf("Expected source metadata on result: %+v", results[0])
	}

	// Date-range filter keeps only the late document.
	within := &storage.TimeRange{From: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	results, err = docStore.FindSimilarChunks(ctx, []float32{1, 0, 0}, 0.5, 10, within)
	if err != nil {
		t.Fatalf("Failed to search with range: %v", err)
	}
	if len(results) != 1 || results[0].Chunk.DocumentId != docB.Id {
		t.Fatalf("Expected only the late document, got %d results", len(results))
	}
}

func TestFindSimilarChunksUsesCurrentVersion(t *testing.T) {
	knowStore, docStore, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { docStore.Close(); knowStore.Close(); backend.Close() }()

	ctx := context.Background()
	doc := newTestDocument(t, docStore, "versioned", time.Now().UTC())

	v1 := []core.DocumentChunk{{Contents: "old text", Vector: []float32{1, 0, 0}, EndSeconds: 1}}
	v2 := []core.DocumentChunk{{Contents: "new text", Vector: []float32{0, 1, 0}, EndSeconds: 1}}

	if _, _, err := docStore.CommitIngestion(ctx, doc.Id, "t1", core.Recap{}, v1); err != nil {
		t.Fatalf("Failed first commit: %v", err)
	}
	if _, _, err := docStore.CommitIngestion(ctx, doc.Id, "t2", core.Recap{}, v2); err != nil {
		t.Fatalf("Failed second commit: %v", err)
	}

	// A query matching the old version's vector finds nothing: only the
	// current version's chunks are searchable.
	results, err := docStore.FindSimilarChunks(ctx, []float32{1, 0, 0}, 0.9, 10, nil)
	if err != nil {
		t.Fatalf("Failed to search: %v", err)
	}
	if len(results) != 0 {
		t.Fatalf("Expected no hits against superseded chunks, got %d", len(results))
	}

	results, err = docStore.FindSimilarChunks(ctx, []float32{0, 1, 0}, 0.9, 10, nil)
	if err != nil {
		t.Fatalf("Failed to search current version: %v", err)
	}
	if len(results) != 1 || results[0].Chunk.Contents != "new text" {
		t.Fatalf("Expected the current chunk, got %+v", results)
	}
}

func TestStats(t *testing.T) {
	knowStore, docStore, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { docStore.Close(); knowStore.Close(); backend.Close() }()

	ctx := context.Background()

	published := time.Date(2026, 4, 7, 0, 0, 0, 0, time.UTC)
	a := newTestDocument(t, docStore, "s1", published.Add(-24*time.Hour))
	newTestDocument(t, docStore, "s2", published)

	if _, _, err := docStore.CommitIngestion(ctx, a.Id, "t", core.Recap{}, testChunks(1)); err != nil {
		t.Fatalf("Failed commit: %v", err)
	}

	stats, err := docStore.Stats(ctx)
	if err != nil {
		t.Fatalf("Failed to get stats: %v", err)
	}
	if stats.TotalDocuments != 2 {
		t.Fatalf("Expected 2 documents, got %d", stats.TotalDocuments)
	}
	if stats.CountsByStatus["completed"] != 1 || stats.CountsByStatus["pending"] != 1 {
		t.Fatalf("Unexpected counts: %+v", stats.CountsByStatus)
	}
	if !stats.LatestDocument.Equal(published) {
		t.Fatalf("Expected latest %v, got %v", published, stats.LatestDocument)
	}
}

func TestCheckpointRoundTrip(t *testing.T) {
	knowStore, docStore, backend, err := NewMemoryStores()
	if err != nil {
		t.Fatalf("Failed to create stores: %v", err)
	}
	defer func() { docStore.Close(); knowStore.Close(); backend.Close() }()

	ctx := context.Background()
	doc := newTestDocument(t, docStore, "cp", time.Now().UTC())

	// No checkpoint yet.
	state, err := docStore.LoadState(ctx, doc.Id)
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	if state != nil {
		t.Fatalf("Expected no checkpoint, got %+v", state)
	}

	saved := &core.IngestState{
		DocumentId: doc.Id,
		Step:       core.StepSegment,
		Transcript: "partial transcript",
		Segments:   []core.CaptionSegment{{Text: "hello", StartMillis: 0, DurationMillis: 1000}},
		Chunks:     []core.DocumentChunk{{Contents: "hello", EndSeconds: 1}},
	}
	if err := docStore.SaveState(ctx, saved); err != nil {
		t.Fatalf("Failed to save state: %v", err)
	}

	loaded, err := docStore.LoadState(ctx, doc.Id)
	if err != nil {
		t.Fatalf("Failed to load state: %v", err)
	}
	if loaded == nil || loaded.Step != core.StepSegment || loaded.Transcript != "partial transcript" {
		t.Fatalf("Unexpected state: %+v", loaded)
	}
	if len(loaded.Segments) != 1 || len(loaded.Chunks) != 1 {
		t.Fatalf("Expected artifacts to survive the round trip: %+v", loaded)
	}

	if err := docStore.ClearState(ctx, doc.Id); err != nil {
		t.Fatalf("Failed to clear state: %v", err)
	}
	state, err = docStore.LoadState(ctx, doc.Id)
	if err != nil {
		t.Fatalf("Failed to load after clear: %v", err)
	}
	if state != nil {
		t.Fatal("Expected checkpoint to be gone")
	}

	// Clearing again is not an error.
	if err := docStore.ClearState(ctx, doc.Id); err != nil {
		t.Fatalf("Expected idempotent clear, got %v", err)
	}
}

func versionNumbers(versions []*core.DocumentVersion) []int {
	out := make([]int, len(versions))
	for i, v := range versions {
		out[i] = v.Version
	}
	return out
}
