package badger

import (
	"context"
	"slices"
	"time"

	"github.com/dgraph-io/badger/v4"
	"github.com/opencivic/archivist/core"
	"github.com/opencivic/archivist/storage"
)

// KnowledgeStore implements storage.KnowledgeStore for BadgerDB.
type KnowledgeStore struct {
	backend *Backend
	idSeq   *badger.Sequence
}

var _ storage.KnowledgeStore = (*KnowledgeStore)(nil)

// NewKnowledgeStore creates a new KnowledgeStore.
func NewKnowledgeStore(backend *Backend) (*KnowledgeStore, error) {
	idSeq, err := backend.GetSequence(entryIDSeq)
	if err != nil {
		return nil, err
	}

	return &KnowledgeStore{
		backend: backend,
		idSeq:   idSeq,
	}, nil
}

// Close releases the ID sequence.
func (s *KnowledgeStore) Close() error {
	return s.idSeq.Release()
}

// AddEntries adds one or more entries in a single transaction.
// The batch is all-or-nothing: any failure discards the whole transaction.
func (s *KnowledgeStore) AddEntries(ctx context.Context, entries ...*core.KnowledgeEntry) ([]*core.KnowledgeEntry, error) {
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		for _, entry := range entries {
			if entry.State == 0 {
				entry.State = core.EntryStateActive
			}
			if err := core.ValidateEntry(entry); err != nil {
				return err
			}

			// An active entry already holding this title is a conflict.
			if _, err := tx.Get(makeEntryTitleKey(entry.Title)); err == nil {
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
			entry.Id = core.ID(nextID)

			if entry.CreatedAt.IsZero() {
				entry.CreatedAt = time.Now().UTC()
			}

			if err := tx.Set(makeEntryKey(entry.Id), storage.MarshalEntry(entry)); err != nil {
				return err
			}
			if entry.Active() {
				if err := tx.Set(makeEntryTitleKey(entry.Title), storage.MarshalID(entry.Id)); err != nil {
					return err
				}
			}
			if err := tx.Set(makeEntryDateKey(entry.CreatedAt, entry.Id), storage.MarshalID(entry.Id)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)

	if err != nil {
		return nil, err
	}
	return entries, nil
}

// GetEntry retrieves a single entry by ID.
func (s *KnowledgeStore) GetEntry(ctx context.Context, id core.ID) (*core.KnowledgeEntry, error) {
	var result *core.KnowledgeEntry
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		var err error
		result, err = readEntry(tx, makeEntryKey(id))
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

// FindActiveByTitle finds the active entry with the exact title.
func (s *KnowledgeStore) FindActiveByTitle(ctx context.Context, title string) (*core.KnowledgeEntry, error) {
	var result *core.KnowledgeEntry
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		item, err := tx.Get(makeEntryTitleKey(title))
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

		result, err = readEntry(tx, makeEntryKey(id))
		if err != nil {
			return err
		}
		if result == nil || !result.Active() {
			return storage.ErrNotFound
		}
		return nil
	}, false)
	return result, err
}

// ListEntries returns entries newest first, paginated via the date index.
func (s *KnowledgeStore) ListEntries(ctx context.Context, includeRetired bool, limit, offset int) ([]*core.KnowledgeEntry, error) {
	if limit <= 0 {
		return []*core.KnowledgeEntry{}, nil
	}
	if offset < 0 {
		offset = 0
	}

	var results []*core.KnowledgeEntry
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryDatePrefix + ":")
		opts.Reverse = true
		iter := tx.NewIterator(opts)
		defer iter.Close()

		// Reverse iteration starts past the end of the prefix range.
		seek := append([]byte(entryDatePrefix+":"), 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF)

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

			entry, err := readEntry(tx, makeEntryKey(id))
			if err != nil {
				return err
			}
			if entry == nil {
				continue
			}
			if !includeRetired && !entry.Active() {
				continue
			}

			if skipped < offset {
				skipped++
				continue
			}
			results = append(results, entry)
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
		results = []*core.KnowledgeEntry{}
	}
	return results, nil
}

// RetireEntry soft-deletes an entry. Idempotent.
func (s *KnowledgeStore) RetireEntry(ctx context.Context, id core.ID) (bool, error) {
	retired := false
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		entry, err := readEntry(tx, makeEntryKey(id))
		if err != nil {
			return err
		}
		if entry == nil || !entry.Retire() {
			return nil
		}

		if err := tx.Set(makeEntryKey(entry.Id), storage.MarshalEntry(entry)); err != nil {
			return err
		}
		// Retired titles no longer block new entries.
		if err := tx.Delete(makeEntryTitleKey(entry.Title)); err != nil {
			return err
		}
		retired = true
		return tx.Commit()
	}, true)
	return retired, err
}

// DeleteEntry permanently removes an entry. Idempotent.
func (s *KnowledgeStore) DeleteEntry(ctx context.Context, id core.ID) (bool, error) {
	deleted := false
	err := s.backend.WithTx(func(tx *badger.Txn) error {
		entry, err := readEntry(tx, makeEntryKey(id))
		if err != nil {
			return err
		}
		if entry == nil {
			return nil
		}

		if entry.Active() {
			if err := tx.Delete(makeEntryTitleKey(entry.Title)); err != nil {
				return err
			}
		}
		if err := tx.Delete(makeEntryDateKey(entry.CreatedAt, entry.Id)); err != nil {
			return err
		}
		if err := tx.Delete(makeEntryKey(entry.Id)); err != nil {
			return err
		}
		deleted = true
		return tx.Commit()
	}, true)
	return deleted, err
}

// FindSimilarEntries finds active entries similar to the given vector.
func (s *KnowledgeStore) FindSimilarEntries(ctx context.Context, vector []float32, minSimilarity float32, limit int) ([]*core.EntryResult, error) {
	var results []*core.EntryResult

	err := s.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(entryPrefix + ":")
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			var entry *core.KnowledgeEntry
			err := iter.Item().Value(func(val []byte) error {
				var uerr error
				entry, uerr = storage.UnmarshalEntry(val)
				return uerr
			})
			if err != nil {
				return err
			}
			if entry == nil || !entry.Active() || len(entry.Vector) == 0 {
				continue
			}

			similarity := dotProduct(vector, entry.Vector)
			if similarity >= minSimilarity {
				results = append(results, &core.EntryResult{
					Entry: entry,
					Score: similarity,
				})
			}
		}
		return nil
	}, false)

	if err != nil {
		return nil, err
	}

	// Sort by similarity descending; ties broken by most recent entry first.
	slices.SortFunc(results, func(a, b *core.EntryResult) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.Entry.CreatedAt.After(b.Entry.CreatedAt) {
			return -1
		}
		if a.Entry.CreatedAt.Before(b.Entry.CreatedAt) {
			return 1
		}
		return 0
	})

	if limit > 0 && len(results) > limit {
		results = results[:limit]
	}
	return results, nil
}

// readEntry reads an entry by key within a transaction.
// Returns nil, nil when the key is absent.
func readEntry(tx *badger.Txn, key []byte) (*core.KnowledgeEntry, error) {
	item, err := tx.Get(key)
	if err == badger.ErrKeyNotFound {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var entry *core.KnowledgeEntry
	err = item.Value(func(val []byte) error {
		var uerr error
		entry, uerr = storage.UnmarshalEntry(val)
		return uerr
	})
	return entry, err
}
