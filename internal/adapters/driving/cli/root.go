package cli

import (
	"errors"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/podreport/internal/core/ports/driving"
	"github.com/custodia-labs/podreport/internal/logger"
)

var (
	version = "dev"

	verbose   bool
	configDir string

	reportService   driving.ReportService
	settingsService driving.SettingsService

	wiring Wiring
)

// Services are the driving ports the commands call.
type Services struct {
	Report   driving.ReportService
	Settings driving.SettingsService
}

// Wiring builds the services once flags are parsed. configDir is empty
// unless --config-dir was given.
type Wiring func(configDir string) (*Services, error)

var rootCmd = &cobra.Command{
	Use:   "podreport",
	Short: "Vehicle condition reports from collection and delivery inspections",
	Long: `podreport compares the collection and delivery inspections of a
transport job and prints the proof of collection / proof of delivery
condition report as a PDF.`,
	SilenceUsage: true,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)
		if wiring == nil {
			return nil
		}
		s, err := wiring(configDir)
		if err != nil {
			return err
		}
		reportService = s.Report
		settingsService = s.Settings
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "print layout and comparison details to stderr")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "settings directory (default ~/.podreport)")
}

// SetVersion sets the version printed by the version command.
func SetVersion(v string) {
	version = v
}

// SetWiring registers the function that builds services before a command runs.
func SetWiring(w Wiring) {
	wiring = w
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

var (
	errReportNotConfigured   = errors.New("report service not configured")
	errSettingsNotConfigured = errors.New("settings service not configured")
)
