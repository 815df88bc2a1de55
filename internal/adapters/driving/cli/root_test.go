package cli

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/podreport/internal/adapters/driven/canvas/memory"
	configmemory "github.com/custodia-labs/podreport/internal/adapters/driven/config/memory"
	"github.com/custodia-labs/podreport/internal/core/domain"
	"github.com/custodia-labs/podreport/internal/core/services"
	"github.com/custodia-labs/podreport/internal/logger"
)

func TestRootCmd_Registered(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}

	for _, want := range []string{"generate", "compare", "validate", "inspect", "sample", "settings", "version"} {
		assert.True(t, names[want], want)
	}
}

func TestRootCmd_WiringRunsBeforeCommand(t *testing.T) {
	var gotDir string
	SetWiring(func(dir string) (*Services, error) {
		gotDir = dir
		return &Services{
			Report:   services.NewReportService(memory.NewFactory(), nil, domain.DefaultReportSettings()),
			Settings: services.NewSettingsService(configmemory.NewConfigStore()),
		}, nil
	})
	t.Cleanup(func() {
		wiring = nil
		reportService = nil
		settingsService = nil
	})

	out, err := execute(t, "settings", "--config-dir", "/tmp/podreport-test")

	require.NoError(t, err)
	assert.Equal(t, "/tmp/podreport-test", gotDir)
	assert.NotNil(t, reportService)
	assert.Contains(t, out, "Current Settings")
}

func TestRootCmd_WiringError(t *testing.T) {
	errWiring := errors.New("cannot open settings")
	SetWiring(func(string) (*Services, error) { return nil, errWiring })
	t.Cleanup(func() { wiring = nil })

	_, err := execute(t, "version")

	assert.ErrorIs(t, err, errWiring)
}

func TestRootCmd_VerboseFlag(t *testing.T) {
	useServices(t)
	t.Cleanup(func() { logger.SetVerbose(false) })

	_, err := execute(t, "--verbose", "version")

	require.NoError(t, err)
	assert.True(t, logger.IsVerbose())

	_, err = execute(t, "version")
	require.NoError(t, err)
	assert.False(t, logger.IsVerbose())
}

func TestCommands_NotConfigured(t *testing.T) {
	reportService = nil
	settingsService = nil
	dir := t.TempDir()

	tests := []struct {
		name    string
		args    []string
		wantErr error
	}{
		{"generate", []string{"generate", "--collection", inDir(dir, "c"), "--delivery", inDir(dir, "d"), "--job", inDir(dir, "j")}, errReportNotConfigured},
		{"compare", []string{"compare", "--collection", inDir(dir, "c"), "--delivery", inDir(dir, "d")}, errReportNotConfigured},
		{"inspect", []string{"inspect", inDir(dir, "r.pdf")}, errReportNotConfigured},
		{"settings show", []string{"settings", "show"}, errSettingsNotConfigured},
		{"settings set", []string{"settings", "set", "company.name", "Acme"}, errSettingsNotConfigured},
		{"settings reset", []string{"settings", "reset", "company.name"}, errSettingsNotConfigured},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := execute(t, tt.args...)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
