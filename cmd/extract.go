package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	m "github.com/mouse-blink/linesplit/internal/model"
)

const extractLongDescription = `Extract the inclusive line range start..end (1-indexed) from source and
write it to target.

If target exists the lines are appended, adding a newline first when the
target does not end with one. An end line past the end of the file is
clamped to the last line.

Modes:
  copy   keep the lines in source (default)
  move   remove the lines from source; fails up front when source or its
         directory is not writable

Without --mode, the mode key of the config file applies; it defaults to copy.`

// extractCmd represents the extract command.
var extractCmd = newExtractCmd()
var extractModeFlag string
var extractNoCreateDirsFlag bool

func newExtractCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "extract <source> <target> <start> <end>",
		Short: "Copy or move a line range into another file",
		Long:  extractLongDescription,
		Args:  cobra.ExactArgs(4),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			start, err := parseLine("start", args[2])
			if err != nil {
				return err
			}

			end, err := parseLine("end", args[3])
			if err != nil {
				return err
			}

			rawMode := cfg.Mode
			if cmd.Flags().Changed("mode") {
				rawMode = extractModeFlag
			}

			mode, err := m.ParseMode(rawMode)
			if err != nil {
				return err
			}

			req := m.ExtractionRequest{
				Source:    m.Path(args[0]),
				Target:    m.Path(args[1]),
				StartLine: start,
				EndLine:   end,
				Mode:      mode,
			}

			result := extractor.Extract(req, cfg.CreateDirs && !extractNoCreateDirsFlag)

			success, ok := result.Success()
			if !ok {
				return result.Err()
			}

			newUI(cmd).DisplayExtraction(success)

			return nil
		},
	}
	cmd.Flags().StringVarP(&extractModeFlag, "mode", "m", string(m.ModeCopy), "extraction mode: copy or move (default from the config file mode key, else copy)")
	cmd.Flags().BoolVar(&extractNoCreateDirsFlag, "no-create-dirs", false, "fail instead of creating missing target directories")

	return cmd
}

func parseLine(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s line %q: %w", name, value, err)
	}

	return n, nil
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
