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


package badger

import (
	"context"
	"fmt"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/storage"
)

// DocumentStore implements storage.DocumentStore for BadgerDB.
// It also implements storage.VersionStore and storage.CheckpointStore:
// version snapshots and step checkpoints live next to the documents they
// belong to, so committing a version can touch all three atomically.
type DocumentStore struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var (
	_ storage.DocumentStore   = (*DocumentStore)(nil)
	_ storage.VersionStore    = (*DocumentStore)(nil)
	_ storage.CheckpointStore = (*DocumentStore)(nil)
)

// NewDocumentStore creates a new DocumentStore.
func NewDocumentStore(backend *Backend) (*DocumentStore, error) {
	idSeq, err := backend.GetSequence(docIDSeq)
	if err != nil {
		return nil, err
	}

	return &DocumentStore{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (s *DocumentStore) Close() error {
	return s.idSeq.Release()
}

// AddDocument adds a newly discovered document.
func (s *DocumentStore) AddDocument(ctx context.Context, doc *core.SourceDocument) (*core.SourceDocument, error) {
	if doc.Status == 0 {
		doc.Status = core.StatusPending
	}
	if err := core.ValidateDocument(doc); err != nil {
		return nil, err
	}

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		if _, err := tx.Get(makeDocExtKey(doc.ExternalId)); err == nil {
			return storage.ErrDuplicateKey
		} else if err != badger.ErrKeyNotFound {
			return err
		}

		nextID, err := s.idSeq.Next()
		if err != nil {
			return err
		}
		// BadgerDB sequences can return 0 on first call, so we skip it
		if nextID == 0 {
			nextID, err = s.idSeq.Next()
			if err != nil {
				return err
			}
		}
		doc.Id = core.ID(nextID)

		now := time.Now().UTC()
		if doc.InsertedAt.IsZero() {
			doc.InsertedAt = now
		}
		doc.UpdatedAt = now
		if doc.PublishedAt.IsZero() {
			doc.PublishedAt = now
		}

		if err := tx.Set(makeDocKey(doc.Id), storage.MarshalDocument(doc)); err != nil {
			return err
		}
		if err := tx.Set(makeDocExtKey(doc.ExternalId), storage.MarshalID(doc.Id)); err != nil {
			return err
		}
		if err := tx.Set(makeDocDateKey(doc.PublishedAt, doc.Id), storage.MarshalID(doc.Id)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return doc, nil
}

// GetDocument retrieves a document by ID.
func (s *DocumentStore) GetDocument(ctx context.Context, id core.ID) (*core.SourceDocument, error) {
	var result *core.SourceDocument
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readDocument(tx, id)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// GetDocumentByExternalId retrieves a document by its feed identifier.
func (s *DocumentStore) GetDocumentByExternalId(ctx context.Context, externalId string) (*core.SourceDocument, error) {
	var result *core.SourceDocument
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeDocExtKey(externalId))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}

		var id core.ID
		if err := item.Value(func(val []byte) error {
			var uerr error
			id, uerr = storage.UnmarshalID(val)
			return uerr
		}); err != nil {
			return err
		}

		result, err = readDocument(tx, id)
		if err != nil {
			return err
		}
		if result == nil {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListDocuments returns documents newest first by publication date.
func (s *DocumentStore) ListDocuments(ctx context.Context, limit, offset int) ([]*core.SourceDocument, error) {
	if limit <= 0 {
		return []*core.SourceDocument{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	var results []*core.SourceDocument
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(docDatePrefix + ":")
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Reverse iteration starts past the end of the prefix range.
		seek := append([]byte(docDatePrefix+":"), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)

		skipped := 0
		for iter.Seek(seek); iter.Valid(); iter.Next() {
			var id core.ID
			if err := iter.Item().Value(func(val []byte) error {
				var uerr error
				id, uerr = storage.UnmarshalID(val)
				return uerr
			}); err != nil {
				return err
			}

			doc, err := readDocument(tx, id)
			if err != nil {
				return err
			}
			if doc == nil {
				continue
			}

			if skipped < offset {
				skipped++
				continue
			}
			results = append(results, doc)
			if len(results) >= limit {
				break
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*core.SourceDocument{}
	}
	return results, nil
}

// SetStatus updates a document's status and error message.
func (s *DocumentStore) SetStatus(ctx context.Context, id core.ID, status core.IngestStatus, errorMessage string) error {
	if err := core.ValidateStatus(status); err != nil {
		return err
	}

	return s.backend.WithTx(func(tx *badger.Txn) error {
		doc, err := readDocument(tx, id)
		if err != nil {
			return err
		}
		if doc == nil {
			return storage.ErrNotFound
		}

		doc.Status = status
		doc.ErrorMessage = errorMessage
		doc.UpdatedAt = time.Now().UTC()

		if err := tx.Set(makeDocKey(doc.Id), storage.MarshalDocument(doc)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// CommitIngestion atomically publishes a new version of a document.
// The version bump, chunk set, snapshot and status change land in one
// transaction, so readers see either the old version or the new one.
func (s *DocumentStore) CommitIngestion(ctx context.Context, id core.ID, transcript string, recap core.Recap, chunks []core.DocumentChunk) (*core.SourceDocument, *core.DocumentVersion, error) {
	var (
		doc     *core.SourceDocument
		version *core.DocumentVersion
	)

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		doc, err = readDocument(tx, id)
		if err != nil {
			return err
		}
		if doc == nil {
			return storage.ErrNotFound
		}

		newVersion := doc.Version + 1
		now := time.Now().UTC()

		for i := range chunks {
			chunk := &chunks[i]
			chunk.DocumentId = doc.Id
			chunk.Version = newVersion
			chunk.ChunkIndex = i
			chunk.Id = core.IDFromContent(fmt.Sprintf("%d/%d/%d", doc.Id, newVersion, i))
			if err := core.ValidateChunk(chunk); err != nil {
				return err
			}
			if err := tx.Set(makeChunkKey(doc.Id, newVersion, i), storage.MarshalChunk(chunk)); err != nil {
				return err
			}
		}

		doc.Version = newVersion
		doc.RawTranscript = transcript
		doc.Recap = recap
		doc.ChunkCount = len(chunks)
		doc.Status = core.StatusCompleted
		doc.ErrorMessage = ""
		doc.UpdatedAt = now

		version = &core.DocumentVersion{
			Id:            core.IDFromContent(fmt.Sprintf("%d/%d", doc.Id, newVersion)),
			DocumentId:    doc.Id,
			Version:       newVersion,
			Recap:         recap,
			RawTranscript: transcript,
			ChunkCount:    len(chunks),
			CreatedAt:     now,
		}

		if err := tx.Set(makeDocKey(doc.Id), storage.MarshalDocument(doc)); err != nil {
			return err
		}
		if err := tx.Set(makeVersionKey(doc.Id, newVersion), storage.MarshalVersion(version)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, nil, err
	}
	return doc, version, nil
}

// GetChunks returns the chunk set for one document version in index order.
func (s *DocumentStore) GetChunks(ctx context.Context, id core.ID, version int) ([]*core.DocumentChunk, error) {
	var results []*core.DocumentChunk
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		results, err = readChunks(tx, id, version)
		return err
	}, false)

	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*core.DocumentChunk{}
	}
	return results, nil
}

// FindSimilarChunks finds current-version chunks similar to the given vector
// across all completed documents.
func (s *DocumentStore) FindSimilarChunks(ctx context.Context, vector []float32, minSimilarity float32, limit int, within *storage.TimeRange) ([]*core.ChunkResult, error) {
	var results []*core.ChunkResult

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(docPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.SourceDocument
			err := iter.Item().Value(func(val []byte) error {
				var uerr error
				doc, uerr = storage.UnmarshalDocument(val)
				return uerr
			})
			if err != nil {
				return err
			}
			if doc == nil || doc.Version == 0 {
				continue
			}
			if !within.Contains(doc.PublishedAt) {
				continue
			}

			chunks, err := readChunks(tx, doc.Id, doc.Version)
			if err != nil {
				return err
			}
			for _, chunk := range chunks {
				if len(chunk.Vector) == 0 {
					continue
				}
				similarity := dotProduct(vector, chunk.Vector)
				if similarity >= minSimilarity {
					results = append(results, &core.ChunkResult{
						Chunk:       chunk,
						Score:       similarity,
						SourceTitle: doc.Title,
						SourceDate:  doc.PublishedAt,
					})
				}
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	slices.SortFunc(results, func(a, b *core.ChunkResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		return 0
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// Stats returns per-status document counts and the latest publication date.
func (s *DocumentStore) Stats(ctx context.Context) (*core.IngestStats, error) {
	stats := &core.IngestStats{
		CountsByStatus: make(map[string]int),
	}

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(docPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var doc *core.SourceDocument
			err := iter.Item().Value(func(val []byte) error {
				var uerr error
				doc, uerr = storage.UnmarshalDocument(val)
				return uerr
			})
			if err != nil {
				return err
			}
			if doc == nil {
				continue
			}

			stats.CountsByStatus[doc.Status.String()]++
			stats.TotalDocuments++
			if doc.PublishedAt.After(stats.LatestDocument) {
				stats.LatestDocument = doc.PublishedAt
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	return stats, nil
}

// readDocument reads a document by ID within a transaction.
// Returns nil, nil when the document is absent.
func readDocument(tx *badger.Txn, id core.ID) (*core.SourceDocument, error) {
	item, err := tx.Get(makeDocKey(id))
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var doc *core.SourceDocument
	err = item.Value(func(val []byte) error {
		var uerr error
		doc, uerr = storage.UnmarshalDocument(val)
		return uerr
	})
	return doc, err
}

// readChunks reads the full chunk set for one document version in index
// order, within a transaction.
func readChunks(tx *badger.Txn, documentId core.ID, version int) ([]*core.DocumentChunk, error) {
	prefix := makeChunkVersionPrefix(documentId, version)

	opts := badger.DefaultIteratorOptions
	opts.Prefix = prefix
	iter := tx.NewIterator(opts)
	defer iter.Close()

	var results []*core.DocumentChunk
	for iter.Rewind(); iter.Valid(); iter.Next() {
		var chunk *core.DocumentChunk
		err := iter.Item().Value(func(val []byte) error {
			var uerr error
			chunk, uerr = storage.UnmarshalChunk(val)
			return uerr
		})
		if err != nil {
			return nil, err
		}
		results = append(results, chunk)
	}
	return results, nil
}
