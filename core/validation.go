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


package core

import "fmt"

// ValidateEntry validates a KnowledgeEntry according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - Contents must not be empty
//   - State must be a valid EntryState
//
// NOT validated (populated by the store):
//   - Vector (empty until embedded)
//   - ID (0 is valid from database sequences)
func ValidateEntry(entry *KnowledgeEntry) error {
	if entry == nil {
		return fmt.Errorf("%w: entry is nil", ErrInvalidEntry)
	}

	if entry.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyTitle)
	}

	if entry.Contents == "" {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, ErrEmptyContent)
	}

	if err := ValidateEntryState(entry.State); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidEntry, err)
	}

	return nil
}

// ValidateDocument validates a SourceDocument according to domain rules.
//
// Validation rules:
//   - ExternalId must not be empty
//   - Status must be a valid IngestStatus
func ValidateDocument(doc *SourceDocument) error {
	if doc == nil {
		return fmt.Errorf("%w: document is nil", ErrInvalidDocument)
	}

	if doc.ExternalId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, ErrEmptyExternalID)
	}

	if err := ValidateStatus(doc.Status); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidDocument, err)
	}

	return nil
}

// ValidateChunk validates a DocumentChunk according to domain rules.
//
// Validation rules:
//   - Contents must not be empty
//   - StartSeconds must not be after EndSeconds
func ValidateChunk(chunk *DocumentChunk) error {
	if chunk == nil {
		return fmt.Errorf("%w: chunk is nil", ErrInvalidChunk)
	}

	if chunk.Contents == "" {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrEmptyContent)
	}

	if chunk.StartSeconds > chunk.EndSeconds {
		return fmt.Errorf("%w: %w", ErrInvalidChunk, ErrInvalidTimeSpan)
	}

	return nil
}

// ValidateEntryState validates that an EntryState has a valid value.
func ValidateEntryState(state EntryState) error {
	if state != EntryStateActive && state != EntryStateRetired {
		return fmt.Errorf("%w: value %d", ErrInvalidEntryState, state)
	}
	return nil
}

// ValidateStatus validates that an IngestStatus has a valid value.
func ValidateStatus(status IngestStatus) error {
	switch status {
	case StatusPending, StatusProcessing, StatusCompleted, StatusFailed, StatusNoCaptions:
		return nil
	default:
		return fmt.Errorf("%w: value %d", ErrInvalidStatus, status)
	}
}
