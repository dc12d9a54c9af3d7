package domain

import (
	m "github.com/mouse-blink/linesplit/internal/model"
)

// ProgressReporter observes a batch while it runs. Index is 1-based.
type ProgressReporter interface {
	OnItemStart(index, total int, req m.ExtractionRequest)
	OnItemDone(index, total int, req m.ExtractionRequest, result m.ExtractionResult)
}

// BatchRunner applies extraction requests in order.
type BatchRunner interface {
	// Run attempts every request even when earlier ones fail. reporter may be nil.
	Run(requests []m.ExtractionRequest, reporter ProgressReporter) m.BatchOutcome
}

type batchRunner struct {
	extractor Extractor
}

// NewBatchRunner creates a BatchRunner delegating each item to extractor.
func NewBatchRunner(extractor Extractor) BatchRunner {
	return &batchRunner{extractor: extractor}
}

func (b *batchRunner) Run(requests []m.ExtractionRequest, reporter ProgressReporter) m.BatchOutcome {
	outcome := m.BatchOutcome{Items: make([]m.BatchItem, 0, len(requests))}
	total := len(requests)

	for i, req := range requests {
		if reporter != nil {
			reporter.OnItemStart(i+1, total, req)
		}

		// Plan items always create missing target directories.
		result := b.extractor.Extract(req, true)
		outcome.Items = append(outcome.Items, m.BatchItem{Request: req, Result: result})

		if reporter != nil {
			reporter.OnItemDone(i+1, total, req, result)
		}
	}

	return outcome
}
