package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var inspectText bool

var inspectCmd = &cobra.Command{
	Use:   "inspect <report.pdf>",
	Short: "Check a generated report and list its pages",
	Args:  cobra.ExactArgs(1),
	RunE:  runInspect,
}

func init() {
	inspectCmd.Flags().BoolVar(&inspectText, "text", false, "print the text of every page")
	rootCmd.AddCommand(inspectCmd)
}

func runInspect(cmd *cobra.Command, args []string) error {
	if reportService == nil {
		return errReportNotConfigured
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read report: %w", err)
	}
	info, err := reportService.Inspect(cmd.Context(), data)
	if err != nil {
		return fmt.Errorf("failed to inspect report: %w", err)
	}

	cmd.Printf("%s: %d pages\n", args[0], info.Pages)
	for i, page := range info.PageTexts {
		cmd.Printf("  page %d: %d text runs\n", i+1, len(page))
		if !inspectText {
			continue
		}
		for _, s := range page {
			cmd.Printf("    %s\n", s)
		}
	}
	return nil
}
