// Package feed defines the discovery and transcript collaborator boundaries
// for the ingestion pipeline, plus an HTML meeting-archive implementation of
// the discovery feed.
//
// The pipeline only depends on the DiscoveryFeed and TranscriptSource
// interfaces; concrete sources (HTML archive pages, caption APIs) are
// swappable.
package feed
