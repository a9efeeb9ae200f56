// Package knowledge manages the curated free-text knowledge base.
//
// Submissions are chunked, embedded and checked against existing entries
// before they are stored: an exact active-title collision or a near-duplicate
// embedding rejects the submission. Entries follow a two-stage deletion
// lifecycle, retired first and removable for good afterwards.
package knowledge
