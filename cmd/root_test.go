package cmd

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// executeCommand runs sub under a fresh root command and returns what it printed.
func executeCommand(t *testing.T, sub *cobra.Command, args ...string) (string, string, error) {
	t.Helper()

	root := newRootCmd()
	root.AddCommand(sub)

	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)

	err := root.Execute()

	return out.String(), errOut.String(), err
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func readFile(t *testing.T, path string) string {
	t.Helper()

	content, err := os.ReadFile(path)
	require.NoError(t, err)

	return string(content)
}

func numberedLines(n int) string {
	var b strings.Builder
	for i := 1; i <= n; i++ {
		fmt.Fprintf(&b, "line %d\n", i)
	}

	return b.String()
}

func TestNewRootCmd(t *testing.T) {
	cmd := newRootCmd()

	assert.Equal(t, "linesplit", cmd.Use)
	assert.NotEmpty(t, cmd.Short)
	assert.NotEmpty(t, cmd.Long)
	assert.True(t, cmd.SilenceUsage)
	assert.NotNil(t, cmd.PersistentFlags().Lookup("config"))
}

func TestRootCmd_RegistersSubcommands(t *testing.T) {
	names := make([]string, 0)
	for _, c := range rootCmd.Commands() {
		names = append(names, c.Name())
	}

	assert.Contains(t, names, "extract")
	assert.Contains(t, names, "batch")
	assert.Contains(t, names, "analyze")
}

func TestLoadConfig(t *testing.T) {
	original := configFlag
	defer func() { configFlag = original }()

	t.Run("explicit file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "linesplit.yaml")
		writeFile(t, path, "target_size: 75\nmode: move\n")

		configFlag = path
		cfg, err := loadConfig()
		require.NoError(t, err)
		assert.Equal(t, 75, cfg.TargetSize)
		assert.Equal(t, "move", cfg.Mode)
		assert.True(t, cfg.CreateDirs)
	})

	t.Run("missing explicit file", func(t *testing.T) {
		configFlag = filepath.Join(t.TempDir(), "absent.yaml")
		_, err := loadConfig()
		require.Error(t, err)
	})
}
