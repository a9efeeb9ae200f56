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

import "errors"

// Domain validation errors
var (
	// ErrInvalidEntry indicates a KnowledgeEntry failed validation.
	ErrInvalidEntry = errors.New("invalid knowledge entry")

	// ErrInvalidDocument indicates a SourceDocument failed validation.
	ErrInvalidDocument = errors.New("invalid source document")

	// ErrInvalidChunk indicates a DocumentChunk failed validation.
	ErrInvalidChunk = errors.New("invalid document chunk")

	// ErrEmptyTitle indicates the Title field is empty.
	ErrEmptyTitle = errors.New("title cannot be empty")

	// ErrEmptyContent indicates the Contents field is empty.
	ErrEmptyContent = errors.New("content cannot be empty")

	// ErrEmptyExternalID indicates the ExternalId field is empty.
	ErrEmptyExternalID = errors.New("external id cannot be empty")

	// ErrInvalidEntryState indicates an invalid EntryState value.
	ErrInvalidEntryState = errors.New("invalid entry state")

	// ErrInvalidStatus indicates an invalid IngestStatus value.
	ErrInvalidStatus = errors.New("invalid ingest status")

	// ErrInvalidTimeSpan indicates a chunk whose start is after its end.
	ErrInvalidTimeSpan = errors.New("chunk start must not be after end")

	// ErrInvalidVersion indicates a version number below 1 or otherwise malformed.
	ErrInvalidVersion = errors.New("invalid version number")
)
