package chunk

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplit_ShortText(t *testing.T) {
	chunks := Split("a short note", 100)
	require.Len(t, chunks, 1)
	assert.Equal(t, "a short note", chunks[0])
}

func TestSplit_EmptyInput(t *testing.T) {
	assert.Empty(t, Split("", 100))
	assert.Empty(t, Split("   \n\n  \n\n", 100))
}

func TestSplit_ParagraphsAccumulate(t *testing.T) {
	text := "first paragraph\n\nsecond paragraph\n\nthird paragraph"
	chunks := Split(text, 1000)
	require.Len(t, chunks, 1)
	assert.Equal(t, "first paragraph\n\nsecond paragraph\n\nthird paragraph", chunks[0])
}

func TestSplit_ParagraphBoundary(t *testing.T) {
	// Two paragraphs of 40 chars don't fit an 50-char budget together.
	p1 := strings.Repeat("a", 40)
	p2 := strings.Repeat("b", 40)
	chunks := Split(p1+"\n\n"+p2, 50)
	require.Len(t, chunks, 2)
	assert.Equal(t, p1, chunks[0])
	assert.Equal(t, p2, chunks[1])
}

func TestSplit_OversizeParagraphFallsBackToSentences(t *testing.T) {
	text := "One sentence here. Another sentence follows! A third one? Final words."
	chunks := Split(text, 30)
	require.True(t, len(chunks) > 1)
	for _, c := range chunks {
		assert.LessOrEqual(t, len(c), 30)
		assert.NotEmpty(t, c)
	}
	// No text lost: every sentence appears in order.
	joined := strings.Join(chunks, " ")
	assert.Contains(t, joined, "One sentence here.")
	assert.Contains(t, joined, "Final words.")
}

func TestSplit_OversizeSentenceTruncated(t *testing.T) {
	sentence := strings.Repeat("x", 80)
	chunks := Split(sentence, 25)
	require.Len(t, chunks, 1)
	assert.Equal(t, strings.Repeat("x", 25), chunks[0])
}

func TestSplit_Deterministic(t *testing.T) {
	text := "Alpha beta gamma. Delta epsilon zeta.\n\nEta theta iota kappa lambda."
	first := Split(text, 30)
	second := Split(text, 30)
	assert.Equal(t, first, second)
}

func TestSplit_NeverEmptyChunks(t *testing.T) {
	text := "Hello.   \n\n   \n\nWorld. "
	for _, c := range Split(text, 10) {
		assert.NotEmpty(t, strings.TrimSpace(c))
	}
}

func TestSplit_DefaultBudget(t *testing.T) {
	chunks := Split("tiny", 0)
	require.Len(t, chunks, 1)
	assert.Equal(t, "tiny", chunks[0])
}

func TestSplitSentences_TerminatorAttached(t *testing.T) {
	sentences := splitSentences("First one. Second one! Third?")
	require.Len(t, sentences, 3)
	assert.Equal(t, "First one.", sentences[0])
	assert.Equal(t, "Second one!", sentences[1])
	assert.Equal(t, "Third?", sentences[2])
}

func TestSplitSentences_NoTerminator(t *testing.T) {
	sentences := splitSentences("no punctuation at all")
	require.Len(t, sentences, 1)
	assert.Equal(t, "no punctuation at all", sentences[0])
}
