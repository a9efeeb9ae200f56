// Package ai defines the collaborator interfaces the pipeline depends on:
// text embedding and transcript summarization. Implementations live in
// subpackages (openai for OpenAI-compatible services, mock for tests).
//
// All implementations must be thread-safe; the ingestion pipeline calls them
// from multiple workers concurrently.
package ai
