package ingestion

import "github.com/opencivic/archivist/core"

// Monitor provides hooks to observe a pipeline run.
// Implement this interface to track per-document progress, e.g. for CLI
// progress reporting.
type Monitor interface {
	RunStarted(runId string, candidates int)
	DocumentStarted(doc *core.SourceDocument)
	StepCompleted(doc *core.SourceDocument, step string)
	DocumentCompleted(doc *core.SourceDocument)
	DocumentSkipped(doc *core.SourceDocument, reason string)
	DocumentFailed(doc *core.SourceDocument, err error)
	RunFinished(report *BatchReport)
}

// noopMonitor is a no-op implementation of Monitor
type noopMonitor struct{}

var _ Monitor = (*noopMonitor)(nil)

func (n *noopMonitor) RunStarted(_ string, _ int)                       {}
func (n *noopMonitor) DocumentStarted(_ *core.SourceDocument)           {}
func (n *noopMonitor) StepCompleted(_ *core.SourceDocument, _ string)   {}
func (n *noopMonitor) DocumentCompleted(_ *core.SourceDocument)         {}
func (n *noopMonitor) DocumentSkipped(_ *core.SourceDocument, _ string) {}
func (n *noopMonitor) DocumentFailed(_ *core.SourceDocument, _ error)   {}
func (n *noopMonitor) RunFinished(_ *BatchReport)                       {}
