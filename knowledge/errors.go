package knowledge

import (
	"errors"
	"fmt"
)

var (
	// ErrStoreRequired is returned when no knowledge store is provided.
	ErrStoreRequired = errors.New("knowledge store required")
	// ErrEmbedderRequired is returned when no embedder is provided.
	ErrEmbedderRequired = errors.New("embedder required")
	// ErrDuplicateTitle is returned when an active entry already carries the
	// submitted title.
	ErrDuplicateTitle = errors.New("an active entry with this title already exists")
)

// DuplicateContentError is returned when a submission is semantically too
// close to an existing active entry.
type DuplicateContentError struct {
	MatchedTitle string
	Score        float32
}

func (e *DuplicateContentError) Error() string {
	return fmt.Sprintf("content duplicates existing entry %q (similarity %.3f)", e.MatchedTitle, e.Score)
}
