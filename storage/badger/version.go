package badger

import (
	"context"
	"fmt"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/storage"
)

// ListVersions returns all snapshots for a document, newest first.
func (s *DocumentStore) ListVersions(ctx context.Context, documentId core.ID) ([]*core.DocumentVersion, error) {
	var results []*core.DocumentVersion

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		prefix := makeVersionPrefix(documentId)

		opts := badger.DefaultIteratorOptions
		opts.Prefix = prefix
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Reverse iteration starts past the end of the prefix range.
		seek := append(append([]byte{}, prefix...), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)

		for iter.Seek(seek); iter.Valid(); iter.Next() {
			var version *core.DocumentVersion
			err := iter.Item().Value(func(val []byte) error {
				var uerr error
				version, uerr = storage.UnmarshalVersion(val)
				return uerr
			})
			if err != nil {
				return err
			}
			results = append(results, version)
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}
	if results == nil {
		results = []*core.DocumentVersion{}
	}
	return results, nil
}

// GetVersion retrieves one snapshot.
func (s *DocumentStore) GetVersion(ctx context.Context, documentId core.ID, version int) (*core.DocumentVersion, error) {
	if version < 1 {
		return nil, core.ErrInvalidVersion
	}

	var result *core.DocumentVersion
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeVersionKey(documentId, version))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var uerr error
			result, uerr = storage.UnmarshalVersion(val)
			return uerr
		})
	}, false)
	return result, err
}

// Restore copies a historical snapshot back onto the live document as a new
// version. History is append-only: the restored state gets the next version
// number and its own snapshot, and nothing is deleted or renumbered.
func (s *DocumentStore) Restore(ctx context.Context, documentId core.ID, targetVersion int) (*core.SourceDocument, error) {
	if targetVersion < 1 {
		return nil, core.ErrInvalidVersion
	}

	var doc *core.SourceDocument
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		doc, err = readDocument(tx, documentId)
		if err != nil {
			return err
		}
		if doc == nil {
			return storage.ErrNotFound
		}

		item, err := tx.Get(makeVersionKey(documentId, targetVersion))
		if err == badger.ErrKeyNotFound {
			return storage.ErrNotFound
		}
		if err != nil {
			return err
		}
		var target *core.DocumentVersion
		if err := item.Value(func(val []byte) error {
			var uerr error
			target, uerr = storage.UnmarshalVersion(val)
			return uerr
		}); err != nil {
			return err
		}

		targetChunks, err := readChunks(tx, documentId, targetVersion)
		if err != nil {
			return err
		}

		newVersion := doc.Version + 1
		now := time.Now().UTC()

		// The target's chunk set is copied under the new version number so
		// the live chunk prefix matches the document's current version.
		for i, chunk := range targetChunks {
			copied := *chunk
			copied.Version = newVersion
			copied.Id = core.IDFromContent(fmt.Sprintf("%d/%d/%d", documentId, newVersion, i))
			if err := tx.Set(makeChunkKey(documentId, newVersion, i), storage.MarshalChunk(&copied)); err != nil {
				return err
			}
		}

		doc.Version = newVersion
		doc.RawTranscript = target.RawTranscript
		doc.Recap = target.Recap
		doc.ChunkCount = target.ChunkCount
		doc.Status = core.StatusCompleted
		doc.ErrorMessage = ""
		doc.UpdatedAt = now

		snapshot := &core.DocumentVersion{
			Id:            core.IDFromContent(fmt.Sprintf("%d/%d", documentId, newVersion)),
			DocumentId:    documentId,
			Version:       newVersion,
			Recap:         target.Recap,
			RawTranscript: target.RawTranscript,
			ChunkCount:    target.ChunkCount,
			CreatedAt:     now,
		}

		if err := tx.Set(makeDocKey(doc.Id), storage.MarshalDocument(doc)); err != nil {
			return err
		}
		if err := tx.Set(makeVersionKey(documentId, newVersion), storage.MarshalVersion(snapshot)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return doc, nil
}
