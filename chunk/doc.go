// Package chunk provides pure text segmentation for the ingestion pipeline.
//
// Two splitters live here:
//   - Split breaks arbitrary long text into embedding-sized pieces along
//     paragraph and sentence boundaries.
//   - SegmentTranscript groups time-ordered caption segments into
//     time-addressable document chunks.
//
// Both are deterministic and perform no I/O. Chunk boundaries must be stable
// across runs because derived titles and indices embed chunk positions.
package chunk
