package controller

import (
	"testing"

	m "github.com/mouse-blink/linesplit/internal/model"
)

func TestTUI_BatchProgress(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewTUI(cmd)

	req := m.ExtractionRequest{Source: "a.go", Target: "b.go"}
	result := m.Succeeded(m.ExtractionSuccess{Range: m.Range{Start: 2, End: 4}})

	ui.OnItemStart(1, 1, req)
	ui.OnItemDone(1, 1, req, result)
	ui.DisplayBatchSummary(m.BatchOutcome{Items: []m.BatchItem{{Request: req, Result: result}}})

	assertContainsAll(t, buf.String(),
		"[1/1]",
		"Processing: a.go -> b.go",
		"Extracted lines 2-4",
		"100%",
		"1 successful",
		"0 failed",
	)
}

func TestTUI_FailureAndExtraction(t *testing.T) {
	cmd, buf := newBufferedCmd()
	ui := NewTUI(cmd)

	req := m.ExtractionRequest{Source: "a.go", Target: "b.go"}
	failed := m.Failed(m.NewError(m.KindNotFound, "a.go", "source file not found: a.go"))

	ui.OnItemDone(1, 2, req, failed)
	ui.DisplayExtraction(m.ExtractionSuccess{LinesExtracted: 1, Target: "b.go", TargetAction: m.TargetAppended, SourceAction: m.SourceRemoved, Range: m.Range{Start: 1, End: 1}})

	assertContainsAll(t, buf.String(),
		"Error: source file not found: a.go",
		"50%",
		"Target: b.go (appended)",
		"Source: removed from source",
	)
}

func TestTUI_InheritsAnalysisOutput(t *testing.T) {
	cmd, buf := newBufferedCmd()
	NewTUI(cmd).DisplayAnalysis(m.FileAnalysis{File: "x.py", Language: "python", TotalLines: 3})

	assertContainsAll(t, buf.String(), "File: x.py", "Total lines: 3")
}
