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


// Package storage provides the storage abstraction layer for archivist.
//
// This package defines store interfaces that decouple storage implementation
// from business logic, so different backends (BadgerDB, in-memory) can be
// used interchangeably.
//
// # Constructor Return Type Pattern
//
// Public constructors in backend packages return these interfaces, not
// concrete types:
//
//	store, err := badger.NewKnowledgeStore(backend)  // storage.KnowledgeStore
//
// This keeps consumers decoupled from BadgerDB specifics and lets tests
// substitute in-memory implementations without modification.
//
// # Architecture
//
//   - KnowledgeStore: atomic knowledge entries (create, list, retire, delete,
//     similarity search)
//   - DocumentStore: source documents, their chunk sets and the atomic
//     ingestion commit
//   - VersionStore: immutable per-document version snapshots and restore
//   - CheckpointStore: durable per-document pipeline step state
//
// # Thread Safety
//
// All store implementations must be thread-safe and support concurrent
// access from multiple goroutines. Reads never block ingestion writes; a
// document's live chunk set is swapped atomically with its version pointer.
//
// # Context Support
//
// All store methods accept context.Context for cancellation and timeout
// support.
package storage
