// Package ingestion orchestrates the document processing pipeline.
//
// The Pipeline type drives a batch run: discovering documents from a feed,
// then for each document fetching the transcript, segmenting it into
// time-addressable chunks, generating a structured recap, embedding the
// chunks and committing the result as a new document version.
//
// Each step writes a durable checkpoint, so an interrupted run resumes from
// the last completed step instead of recomputing. Documents are processed
// concurrently with a worker pool; one document failing does not stop the
// rest of the batch.
package ingestion
