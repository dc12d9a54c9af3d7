package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mouse-blink/linesplit/internal/domain"
	m "github.com/mouse-blink/linesplit/internal/model"
)

const analyzeLongDescription = `Scan a source file for imports, classes, functions and section markers.

The definition patterns are chosen from the file extension:
  .py                                 Python
  .js .jsx .mjs .cjs .ts .tsx         JavaScript / TypeScript
  .java                               Java
  anything else                       generic

With --suggest, split ranges of roughly --target-size lines are proposed,
aligned to class and function boundaries where possible, followed by a
plan that the batch command accepts.`

// analyzeCmd represents the analyze command.
var analyzeCmd = newAnalyzeCmd()
var analyzeTargetSizeFlag int
var analyzeSuggestFlag bool

func newAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <file>",
		Short: "Analyze a file and suggest split points",
		Long:  analyzeLongDescription,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			targetSize := cfg.TargetSize
			if cmd.Flags().Changed("target-size") {
				targetSize = analyzeTargetSizeFlag
			}

			if targetSize < 1 {
				targetSize = domain.DefaultTargetSize
			}

			analysis, err := advisor.Analyze(m.Path(args[0]))
			if err != nil {
				return err
			}

			ui := newUI(cmd)
			ui.DisplayAnalysis(analysis)

			if !analyzeSuggestFlag {
				return nil
			}

			suggestions := advisor.Suggest(analysis, targetSize)
			ui.DisplaySuggestions(analysis, targetSize, suggestions)

			if len(suggestions) == 0 {
				return nil
			}

			plan, err := planStore.EncodePlan(advisor.Plan(analysis, suggestions))
			if err != nil {
				return err
			}

			ui.DisplayPlan(plan)

			return nil
		},
	}
	cmd.Flags().IntVarP(&analyzeTargetSizeFlag, "target-size", "t", domain.DefaultTargetSize, "target lines per split")
	cmd.Flags().BoolVarP(&analyzeSuggestFlag, "suggest", "s", false, "suggest split points and print an extraction plan")

	return cmd
}

func init() {
	rootCmd.AddCommand(analyzeCmd)
}
