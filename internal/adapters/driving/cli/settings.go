package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage report branding",
	Long: `View and change the company details, report title, disclaimer and page
size printed on every report.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set <key> <value>",
	Short: "Change a setting",
	Args:  cobra.ExactArgs(2),
	RunE:  runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset <key>",
	Short: "Restore a setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()

	cmd.Println("[Company]")
	cmd.Printf("  Name: %s\n", settings.Company.Name)
	cmd.Printf("  Registration: %s\n", settings.Company.RegistrationLine)
	cmd.Printf("  Address: %s\n", orNotSet(settings.Company.Address))
	cmd.Printf("  Phone: %s\n", orNotSet(settings.Company.Phone))
	cmd.Printf("  Email: %s\n", orNotSet(settings.Company.Email))
	cmd.Println()

	cmd.Println("[Report]")
	cmd.Printf("  Title: %s\n", settings.Title)
	cmd.Printf("  Page size: %s\n", settings.PageSize)
	disclaimer := "default"
	if settings.Disclaimer != settingsService.GetDefaults().Disclaimer {
		disclaimer = "custom"
	}
	cmd.Printf("  Disclaimer: %s (%d characters)\n", disclaimer, len(settings.Disclaimer))
	cmd.Println()

	cmd.Println("Keys:")
	for _, k := range settingsService.Keys() {
		cmd.Printf("  %s\n", k)
	}
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	if err := settingsService.Set(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s\n", args[0])
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return errSettingsNotConfigured
	}
	if err := settingsService.Reset(args[0]); err != nil {
		return fmt.Errorf("failed to reset %s: %w", args[0], err)
	}
	cmd.Printf("Reset %s to default\n", args[0])
	return nil
}

func orNotSet(s string) string {
	if s == "" {
		return "(not set)"
	}
	return s
}
