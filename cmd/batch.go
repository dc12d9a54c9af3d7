package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/linesplit/internal/model"
)

const batchLongDescription = `Run a plan of extractions in order. Each item is an object with
source, target, start, end and an optional mode (copy or move, default copy).

Items run sequentially, so later items see the effects of earlier ones.
A failed item does not stop the batch. The command exits non-zero when any
item failed.

Plan files ending in .yaml or .yml are read as YAML, everything else as JSON.`

var errNoPlan = errors.New("either --json or --plan is required")

// batchExample is the plan shown when no plan is given.
var batchExample = []m.PlanItem{
	{Source: "app.js", Target: "utils.js", Start: 50, End: 100, Mode: string(m.ModeMove)},
	{Source: "app.js", Target: "helpers.js", Start: 150, End: 200, Mode: string(m.ModeCopy)},
}

// batchCmd represents the batch command.
var batchCmd = newBatchCmd()
var batchJSONFlag string
var batchPlanFlag string

func newBatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "batch",
		Short: "Run multiple extractions from a plan",
		Long:  batchLongDescription,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			ui := newUI(cmd)

			items, err := readPlan()
			if errors.Is(err, errNoPlan) {
				example, encErr := planStore.EncodePlan(batchExample)
				if encErr != nil {
					return encErr
				}

				ui.DisplayBatchUsage(example)

				return err
			}

			if err != nil {
				return err
			}

			requests, err := planRequests(items)
			if err != nil {
				return err
			}

			outcome := batchRunner.Run(requests, ui)
			ui.DisplayBatchSummary(outcome)

			if outcome.HasFailures() {
				return fmt.Errorf("%d of %d extractions failed", outcome.Failed(), len(outcome.Items))
			}

			return nil
		},
	}
	cmd.Flags().StringVarP(&batchJSONFlag, "json", "j", "", "path to a JSON or YAML plan file")
	cmd.Flags().StringVarP(&batchPlanFlag, "plan", "p", "", "inline JSON plan")

	return cmd
}

func readPlan() ([]m.PlanItem, error) {
	switch {
	case batchJSONFlag != "":
		return planStore.LoadPlan(m.Path(batchJSONFlag))
	case batchPlanFlag != "":
		return planStore.ParsePlan(batchPlanFlag)
	default:
		return nil, errNoPlan
	}
}

func planRequests(items []m.PlanItem) ([]m.ExtractionRequest, error) {
	requests := make([]m.ExtractionRequest, 0, len(items))

	for i, item := range items {
		req, err := item.Request()
		if err != nil {
			return nil, fmt.Errorf("plan item %d: %w", i+1, err)
		}

		requests = append(requests, req)
	}

	return requests, nil
}

func init() {
	rootCmd.AddCommand(batchCmd)
}
