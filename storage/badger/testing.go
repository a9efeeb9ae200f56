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

// NewMemoryStores creates in-memory knowledge and document stores for testing.
// Returns knowledgeStore, documentStore, backend, and error.
// Caller must close both stores and the backend when done.
func NewMemoryStores() (*KnowledgeStore, *DocumentStore, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, err
	}

	knowledgeStore, err := NewKnowledgeStore(backend)
	if err != nil {
		backend.Close()
		return nil, nil, nil, err
	}

	documentStore, err := NewDocumentStore(backend)
	if err != nil {
		knowledgeStore.Close()
		backend.Close()
		return nil, nil, nil, err
	}

	return knowledgeStore, documentStore, backend, nil
}
