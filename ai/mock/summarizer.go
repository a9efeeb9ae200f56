package mock

import (
	"context"
	"strings"
	"sync"

	"github.com/opencivic/archivist/ai"
	"github.com/opencivic/archivist/core"
)

// MockSummarizer is a test double for ai.Summarizer.
type MockSummarizer struct {
	// SummarizeFunc is called by Summarize if set.
	// If nil, a trivial recap derived from the transcript is returned.
	SummarizeFunc func(ctx context.Context, transcript string, pctx ai.PromptContext) (*core.Recap, error)

	mu        sync.Mutex
	callCount int
}

// NewMockSummarizer creates a mock summarizer with default behavior.
func NewMockSummarizer() *MockSummarizer {
	return &MockSummarizer{}
}

// Summarize returns a deterministic recap built from the transcript head.
func (m *MockSummarizer) Summarize(ctx context.Context, transcript string, pctx ai.PromptContext) (*core.Recap, error) {
	m.mu.Lock()
	m.callCount++
	m.mu.Unlock()

	if m.SummarizeFunc != nil {
		return m.SummarizeFunc(ctx, transcript, pctx)
	}

	head := transcript
	if len(head) > 120 {
		head = head[:120]
	}
	return &core.Recap{
		Summary: "Recap of " + pctx.Title + ": " + strings.TrimSpace(head),
		Topics:  []string{"general"},
	}, nil
}

// CallCount returns the number of times Summarize was called.
func (m *MockSummarizer) CallCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.callCount
}
