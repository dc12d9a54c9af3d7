package controller

import (
	"bytes"
	"fmt"
	"strings"

	m "github.com/mouse-blink/linesplit/internal/model"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
)

// listLimit caps how many definitions are listed per category.
const listLimit = 10

const summaryRuleWidth = 50

// SimpleUI implements UI using plain text written to the cobra command.
type SimpleUI struct {
	cmd *cobra.Command
}

// NewSimpleUI creates a new SimpleUI.
func NewSimpleUI(cmd *cobra.Command) *SimpleUI {
	return &SimpleUI{cmd: cmd}
}

// DisplayAnalysis prints the detected imports, classes, functions and section markers.
func (s *SimpleUI) DisplayAnalysis(analysis m.FileAnalysis) {
	s.printf("File: %s\n", analysis.File)
	s.printf("Language: %s\n", analysis.Language)
	s.printf("Total lines: %d\n", analysis.TotalLines)

	if analysis.Imports != nil {
		s.printf("\nImports: lines %s\n", analysis.Imports)
	}

	s.displayDefinitions("Classes", analysis.Classes)
	s.displayDefinitions("Functions", analysis.Functions)

	if len(analysis.Sections) > 0 {
		s.printf("\nSection markers (%d):\n", len(analysis.Sections))

		rows := make([][]string, 0, len(analysis.Sections))
		for _, marker := range limit(analysis.Sections) {
			rows = append(rows, []string{fmt.Sprintf("%d", marker.Line), marker.Text})
		}

		s.renderTable([]string{"Line", "Marker"}, rows, nil)
		s.printMore(len(analysis.Sections))
	}
}

// DisplaySuggestions prints the proposed split ranges.
func (s *SimpleUI) DisplaySuggestions(analysis m.FileAnalysis, targetSize int, suggestions []m.Suggestion) {
	if len(suggestions) == 0 {
		s.printf("\nNo split needed: %d lines fit within target size %d\n", analysis.TotalLines, targetSize)
		return
	}

	s.printf("\nSuggested splits (target size: %d lines):\n", targetSize)

	rows := make([][]string, 0, len(suggestions))
	for i, split := range suggestions {
		rows = append(rows, []string{
			fmt.Sprintf("%d", i+1),
			fmt.Sprintf("%d-%d", split.StartLine, split.EndLine),
			fmt.Sprintf("%d", split.LineCount),
			split.Description,
		})
	}

	s.renderTable([]string{"#", "Lines", "Count", "Description"}, rows,
		[]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT})
}

// DisplayPlan prints an extraction plan document.
func (s *SimpleUI) DisplayPlan(plan []byte) {
	s.printf("\nExtraction plan (JSON):\n%s\n", plan)
}

// DisplayExtraction prints the outcome of a single successful extraction.
func (s *SimpleUI) DisplayExtraction(success m.ExtractionSuccess) {
	s.printf("%s Extracted lines %s (%d lines)\n", markOK, success.Range, success.LinesExtracted)
	s.printf("  Target: %s (%s)\n", success.Target, success.TargetAction)
	s.printf("  Source: %s\n", success.SourceAction)
}

// DisplayBatchUsage prints how to call the batch command with an example plan.
func (s *SimpleUI) DisplayBatchUsage(example []byte) {
	s.printf("Usage: linesplit batch --json plan.json\n")
	s.printf("   or: linesplit batch --plan '[{\"source\":\"app.js\",\"target\":\"utils.js\",\"start\":50,\"end\":100}]'\n")
	s.printf("\nExample plan.json:\n%s\n", example)
}

// OnItemStart prints the item about to be processed.
func (s *SimpleUI) OnItemStart(index, total int, req m.ExtractionRequest) {
	s.printf("[%d/%d] Processing: %s -> %s\n", index, total, req.Source, req.Target)
}

// OnItemDone prints the outcome of a processed item.
func (s *SimpleUI) OnItemDone(_, _ int, _ m.ExtractionRequest, result m.ExtractionResult) {
	s.printf("  %s\n", itemOutcome(result, markOK, markFail))
}

// DisplayBatchSummary prints the final tally.
func (s *SimpleUI) DisplayBatchSummary(outcome m.BatchOutcome) {
	s.printf("\n%s\n", strings.Repeat("=", summaryRuleWidth))
	s.printf("Completed: %d successful, %d failed\n", outcome.Succeeded(), outcome.Failed())
}

func (s *SimpleUI) displayDefinitions(title string, defs []m.Definition) {
	if len(defs) == 0 {
		return
	}

	s.printf("\n%s (%d):\n", title, len(defs))

	rows := make([][]string, 0, listLimit)
	for _, def := range limit(defs) {
		rows = append(rows, []string{fmt.Sprintf("%d", def.Line), def.Name, def.Preview})
	}

	s.renderTable([]string{"Line", "Name", "Definition"}, rows,
		[]int{tablewriter.ALIGN_RIGHT, tablewriter.ALIGN_LEFT, tablewriter.ALIGN_LEFT})
	s.printMore(len(defs))
}

func (s *SimpleUI) printMore(n int) {
	if n > listLimit {
		s.printf("  ... and %d more\n", n-listLimit)
	}
}

func (s *SimpleUI) renderTable(header []string, rows [][]string, alignment []int) {
	var tableBuffer bytes.Buffer

	table := tablewriter.NewWriter(&tableBuffer)
	table.SetHeader(header)
	table.SetBorder(false)
	table.SetCenterSeparator("")
	table.SetAutoWrapText(false)

	if alignment != nil {
		table.SetColumnAlignment(alignment)
	}

	table.AppendBulk(rows)
	table.Render()

	s.printf("%s", tableBuffer.String())
}

func (s *SimpleUI) printf(format string, args ...interface{}) {
	_, _ = fmt.Fprintf(s.cmd.OutOrStdout(), format, args...)
}

const (
	markOK   = "✓"
	markFail = "✗"
)

func itemOutcome(result m.ExtractionResult, ok, fail string) string {
	if success, present := result.Success(); present {
		return fmt.Sprintf("%s Extracted lines %s", ok, success.Range)
	}

	return fmt.Sprintf("%s Error: %s", fail, result.Err().Error())
}

func limit[T any](items []T) []T {
	if len(items) > listLimit {
		return items[:listLimit]
	}

	return items
}
