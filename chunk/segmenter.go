package chunk

import (
	"strings"

	"github.com/opencivic/archivist/core"
)

const (
	// DefaultWindowSeconds is the target duration of one transcript chunk.
	DefaultWindowSeconds = 180
	// DefaultSegmentChars is the target character budget of one transcript chunk.
	DefaultSegmentChars = 2400
)

// Classifier assigns a source category (e.g. "public-comment" vs
// "deliberation") to a finished chunk. Classification logic is supplied by
// the caller so it can evolve independently of segmentation.
type Classifier func(text string) string

// SegmenterOptions configures SegmentTranscript. Zero values select defaults.
type SegmenterOptions struct {
	WindowSeconds int
	MaxChars      int
	Classify      Classifier
}

// SegmentTranscript groups time-ordered caption segments into chunks with
// contiguous indices. A chunk closes once it spans the duration window or
// the character budget, whichever boundary is reached first. A caption
// segment is never split across chunks: it belongs entirely to the chunk
// that was open when the segment started.
func SegmentTranscript(segments []core.CaptionSegment, opts SegmenterOptions) []core.DocumentChunk {
	if opts.WindowSeconds <= 0 {
		opts.WindowSeconds = DefaultWindowSeconds
	}
	if opts.MaxChars <= 0 {
		opts.MaxChars = DefaultSegmentChars
	}

	var chunks []core.DocumentChunk
	var texts []string
	var startMillis, endMillis int64
	var chars int
	open := false

	flush := func() {
		if !open {
			return
		}
		contents := strings.TrimSpace(strings.Join(texts, " "))
		if contents != "" {
			c := core.DocumentChunk{
				ChunkIndex:   len(chunks),
				Contents:     contents,
				StartSeconds: float64(startMillis) / 1000.0,
				EndSeconds:   float64(endMillis) / 1000.0,
			}
			if opts.Classify != nil {
				c.SourceCategory = opts.Classify(contents)
			}
			chunks = append(chunks, c)
		}
		texts = texts[:0]
		chars = 0
		endMillis = 0
		open = false
	}

	windowMillis := int64(opts.WindowSeconds) * 1000

	for _, seg := range segments {
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}

		// Close the open chunk when this segment starts beyond the duration
		// window, or when appending it would blow the character budget.
		if open {
			overWindow := seg.StartMillis-startMillis >= windowMillis
			overBudget := chars+len(text)+1 > opts.MaxChars
			if overWindow || overBudget {
				flush()
			}
		}

		if !open {
			startMillis = seg.StartMillis
			open = true
		}

		texts = append(texts, text)
		chars += len(text) + 1
		if end := seg.StartMillis + seg.DurationMillis; end > endMillis {
			endMillis = end
		}
	}
	flush()

	return chunks
}
