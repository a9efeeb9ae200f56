package badger

import (
	"context"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/storage"
)

// SaveState persists the step checkpoint for a document.
func (s *DocumentStore) SaveState(ctx context.Context, state *core.IngestState) error {
	if state.UpdatedAt.IsZero() {
		state.UpdatedAt = time.Now().UTC()
	}
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Set(makeStateKey(state.DocumentId), storage.MarshalState(state)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}

// LoadState retrieves the checkpoint for a document.
// Returns nil, nil if no checkpoint exists.
func (s *DocumentStore) LoadState(ctx context.Context, documentId core.ID) (*core.IngestState, error) {
	var state *core.IngestState
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeStateKey(documentId))
		if err == badger.ErrKeyNotFound {
			return nil
		}
		if err != nil {
			return err
		}
		return item.Value(func(val []byte) error {
			var uerr error
			state, uerr = storage.UnmarshalState(val)
			return uerr
		})
	}, false)
	return state, err
}

// ClearState removes the checkpoint for a document.
func (s *DocumentStore) ClearState(ctx context.Context, documentId core.ID) error {
	return s.backend.WithTx(func(tx *badger.Txn) error {
		if err := tx.Delete(makeStateKey(documentId)); err != nil {
			return err
		}
		return tx.Commit()
	}, true)
}
