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


// Package search provides semantic search over the archive.
//
// The Searcher type embeds a query once and fans it out over document
// chunks and knowledge entries. Chunk hits carry the owning document's title
// and publication date plus the transcript time span, so a result can be
// traced back to the minute of the meeting it came from. Queries can be
// restricted to a publication date range.
//
// Scores are cosine similarities, with a small boost for results that
// contain every meaningful query word verbatim.
package search
