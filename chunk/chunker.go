package chunk

import "strings"

// DefaultMaxChars is the chunk budget used when the caller passes a
// non-positive limit.
const DefaultMaxChars = 6000

// Split breaks text into ordered chunks of at most maxChars characters each.
//
// Paragraphs (blank-line separated) are accumulated into the current chunk
// while the running length stays within budget. A single paragraph larger
// than the budget falls back to sentence splitting. A single sentence larger
// than the budget is hard-truncated; this is the one lossy case and it is
// never silently dropped, the truncated head is still emitted as a chunk.
//
// Split never returns empty chunks and is deterministic: identical input
// yields identical boundaries.
func Split(text string, maxChars int) []string {
	if maxChars <= 0 {
		maxChars = DefaultMaxChars
	}

	var chunks []string
	var current strings.Builder

	flush := func() {
		s := strings.TrimSpace(current.String())
		if s != "" {
			chunks = append(chunks, s)
		}
		current.Reset()
	}

	appendPiece := func(piece string) {
		if current.Len() == 0 {
			current.WriteString(piece)
			return
		}
		current.WriteString("\n\n")
		current.WriteString(piece)
	}

	for _, para := range splitParagraphs(text) {
		if len(para) <= maxChars {
			// Room in the current chunk?
			extra := len(para)
			if current.Len() > 0 {
				extra += 2 // paragraph separator
			}
			if current.Len()+extra > maxChars {
				flush()
			}
			appendPiece(para)
			continue
		}

		// Oversized paragraph: close the current chunk and pack sentences.
		flush()
		for _, sentence := range splitSentences(para) {
			if len(sentence) > maxChars {
				flush()
				chunks = append(chunks, strings.TrimSpace(sentence[:maxChars]))
				continue
			}
			extra := len(sentence)
			if current.Len() > 0 {
				extra++ // joining space
			}
			if current.Len()+extra > maxChars {
				flush()
			}
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(sentence)
		}
		flush()
	}
	flush()

	return chunks
}

// splitParagraphs splits text on blank-line boundaries, dropping empty
// paragraphs and trimming surrounding whitespace.
func splitParagraphs(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n\n")
	paras := make([]string, 0, len(raw))
	for _, p := range raw {
		p = strings.TrimSpace(p)
		if p != "" {
			paras = append(paras, p)
		}
	}
	return paras
}

// splitSentences splits a paragraph on sentence-ending punctuation followed
// by whitespace. The terminator stays attached to its sentence.
func splitSentences(para string) []string {
	var sentences []string
	var current strings.Builder

	for i := 0; i < len(para); i++ {
		c := para[i]
		current.WriteByte(c)

		if (c == '.' || c == '!' || c == '?') && i+1 < len(para) && isSpace(para[i+1]) {
			s := strings.TrimSpace(current.String())
			if s != "" {
				sentences = append(sentences, s)
			}
			current.Reset()
			// Skip the whitespace run after the terminator.
			for i+1 < len(para) && isSpace(para[i+1]) {
				i++
			}
		}
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r'
}
