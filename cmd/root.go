// Package cmd provides the root command and CLI setup for linesplit.
package cmd

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/mouse-blink/linesplit/internal/adapter"
	"github.com/mouse-blink/linesplit/internal/config"
	"github.com/mouse-blink/linesplit/internal/controller"
	"github.com/mouse-blink/linesplit/internal/domain"
)

var fsAdapter adapter.FileSystemAdapter
var planStore adapter.PlanStore
var extractor domain.Extractor
var batchRunner domain.BatchRunner
var advisor domain.Advisor

// newUI builds the presenter for the command being executed.
var newUI = func(cmd *cobra.Command) controller.UI {
	return controller.NewUI(cmd, controller.IsTTY(cmd.OutOrStdout()))
}

func init() {
	fsAdapter = adapter.NewLocalFileSystemAdapter()
	planStore = adapter.NewPlanStore(fsAdapter)
	extractor = domain.NewExtractor(fsAdapter)
	batchRunner = domain.NewBatchRunner(extractor)
	advisor = domain.NewAdvisor(fsAdapter)
}

var configFlag string

// rootCmd represents the base command when called without any subcommands.
var rootCmd = newRootCmd()

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "linesplit",
		Short: "Extract line ranges and plan file splits",
		Long: `Linesplit copies or moves inclusive, 1-indexed line ranges between files
and suggests where to split large source files.

Commands:
  extract   copy or move one line range into a target file
  batch     run a JSON or YAML plan of extractions in order
  analyze   report definitions and suggest split points`,
		SilenceUsage: true,
	}
	cmd.PersistentFlags().StringVar(&configFlag, "config", "", "config file (default is ./"+config.DefaultFileName+")")

	return cmd
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func loadConfig() (*config.Config, error) {
	return config.Load(configFlag, ".")
}
