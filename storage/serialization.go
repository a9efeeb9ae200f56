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


package storage

import (
	"github.com/opencivic/archivist/core"
)

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, err
}

// MarshalEntry serializes a KnowledgeEntry to bytes.
func MarshalEntry(entry *core.KnowledgeEntry) []byte {
	buf := make([]byte, core.KnowledgeEntryMUS.Size(*entry))
	core.KnowledgeEntryMUS.Marshal(*entry, buf)
	return buf
}

// UnmarshalEntry deserializes a KnowledgeEntry from bytes.
func UnmarshalEntry(data []byte) (*core.KnowledgeEntry, error) {
	entry, _, err := core.KnowledgeEntryMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &entry, nil
}

// MarshalDocument serializes a SourceDocument to bytes.
func MarshalDocument(doc *core.SourceDocument) []byte {
	buf := make([]byte, core.SourceDocumentMUS.Size(*doc))
	core.SourceDocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalDocument deserializes a SourceDocument from bytes.
func UnmarshalDocument(data []byte) (*core.SourceDocument, error) {
	doc, _, err := core.SourceDocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

// MarshalChunk serializes a DocumentChunk to bytes.
func MarshalChunk(chunk *core.DocumentChunk) []byte {
	buf := make([]byte, core.DocumentChunkMUS.Size(*chunk))
	core.DocumentChunkMUS.Marshal(*chunk, buf)
	return buf
}

// UnmarshalChunk deserializes a DocumentChunk from bytes.
func UnmarshalChunk(data []byte) (*core.DocumentChunk, error) {
	chunk, _, err := core.DocumentChunkMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// MarshalVersion serializes a DocumentVersion to bytes.
func MarshalVersion(version *core.DocumentVersion) []byte {
	buf := make([]byte, core.DocumentVersionMUS.Size(*version))
	core.DocumentVersionMUS.Marshal(*version, buf)
	return buf
}

// UnmarshalVersion deserializes a DocumentVersion from bytes.
func UnmarshalVersion(data []byte) (*core.DocumentVersion, error) {
	version, _, err := core.DocumentVersionMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &version, nil
}

// MarshalState serializes an IngestState to bytes.
func MarshalState(state *core.IngestState) []byte {
	buf := make([]byte, core.IngestStateMUS.Size(*state))
	core.IngestStateMUS.Marshal(*state, buf)
	return buf
}

// UnmarshalState deserializes an IngestState from bytes.
func UnmarshalState(data []byte) (*core.IngestState, error) {
	state, _, err := core.IngestStateMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &state, nil
}
