package controller

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/lipgloss"
	m "github.com/mouse-blink/linesplit/internal/model"
	"github.com/spf13/cobra"
)

const progressWidth = 40

var (
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	failStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("1")).Bold(true)
	headerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("14"))
	dimStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
)

// TUI decorates SimpleUI with colored markers and a batch progress bar for
// interactive terminals.
type TUI struct {
	*SimpleUI
	bar progress.Model
}

// NewTUI creates a new TUI.
func NewTUI(cmd *cobra.Command) *TUI {
	return &TUI{
		SimpleUI: NewSimpleUI(cmd),
		bar:      progress.New(progress.WithDefaultGradient(), progress.WithWidth(progressWidth)),
	}
}

// DisplayExtraction prints the outcome of a single successful extraction.
func (t *TUI) DisplayExtraction(success m.ExtractionSuccess) {
	t.printf("%s Extracted lines %s %s\n",
		okStyle.Render(markOK), success.Range, dimStyle.Render(fmt.Sprintf("(%d lines)", success.LinesExtracted)))
	t.printf("  Target: %s (%s)\n", success.Target, success.TargetAction)
	t.printf("  Source: %s\n", success.SourceAction)
}

// OnItemStart prints the item about to be processed.
func (t *TUI) OnItemStart(index, total int, req m.ExtractionRequest) {
	t.printf("%s Processing: %s -> %s\n",
		headerStyle.Render(fmt.Sprintf("[%d/%d]", index, total)), req.Source, req.Target)
}

// OnItemDone prints the styled outcome and the overall progress.
func (t *TUI) OnItemDone(index, total int, _ m.ExtractionRequest, result m.ExtractionResult) {
	t.printf("  %s\n", itemOutcome(result, okStyle.Render(markOK), failStyle.Render(markFail)))

	if total > 0 {
		t.printf("  %s\n", t.bar.ViewAs(float64(index)/float64(total)))
	}
}

// DisplayBatchSummary prints the final tally with colored counts.
func (t *TUI) DisplayBatchSummary(outcome m.BatchOutcome) {
	failed := dimStyle.Render(fmt.Sprintf("%d failed", outcome.Failed()))
	if outcome.HasFailures() {
		failed = failStyle.Render(fmt.Sprintf("%d failed", outcome.Failed()))
	}

	t.printf("\n%s\n", dimStyle.Render(strings.Repeat("=", summaryRuleWidth)))
	t.printf("Completed: %s, %s\n", okStyle.Render(fmt.Sprintf("%d successful", outcome.Succeeded())), failed)
}
