// Package controller provides output adapters for displaying analysis, extraction and batch results.
package controller

import (
	m "github.com/mouse-blink/linesplit/internal/model"
)

// UI defines the interface for presenting command results.
// Implementations can use different output methods (simple text, styled terminal, etc).
type UI interface {
	DisplayAnalysis(analysis m.FileAnalysis)
	DisplaySuggestions(analysis m.FileAnalysis, targetSize int, suggestions []m.Suggestion)
	DisplayPlan(plan []byte)
	DisplayExtraction(success m.ExtractionSuccess)
	DisplayBatchUsage(example []byte)
	DisplayBatchSummary(outcome m.BatchOutcome)

	// OnItemStart and OnItemDone receive live batch progress.
	OnItemStart(index, total int, req m.ExtractionRequest)
	OnItemDone(index, total int, req m.ExtractionRequest, result m.ExtractionResult)
}
