package cli

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/podreport/internal/adapters/driven/canvas/pdf"
	"github.com/custodia-labs/podreport/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/services"
)

// execute runs the root command with fresh flag values and returns
// everything written to stdout and stderr.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags(rootCmd)

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
	})

	err := rootCmd.Execute()
	return buf.String(), err
}

// resetFlags restores every flag of cmd and its children to its default.
func resetFlags(cmd *cobra.Command) {
	reset := func(f *pflag.Flag) {
		_ = f.Value.Set(f.DefValue)
		f.Changed = false
	}
	cmd.Flags().VisitAll(reset)
	cmd.PersistentFlags().VisitAll(reset)
	for _, c := range cmd.Commands() {
		resetFlags(c)
	}
}

// useServices installs services backed by the PDF canvas and an
// in-memory settings store.
func useServices(t *testing.T) *memory.ConfigStore {
	t.Helper()
	store := memory.NewConfigStore()
	reportService = services.NewReportService(pdf.NewFactory(), pdf.NewReader(), domain.DefaultReportSettings())
	settingsService = services.NewSettingsService(store)
	prev := wiring
	wiring = nil
	t.Cleanup(func() {
		reportService = nil
		settingsService = nil
		wiring = prev
	})
	return store
}

// sampleFiles writes the worked example into a temp dir and returns it.
func sampleFiles(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	_, err := execute(t, "sample", "--dir", dir)
	require.NoError(t, err)
	return dir
}

func inDir(dir, name string) string {
	return filepath.Join(dir, name)
}
