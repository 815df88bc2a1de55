package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/podreport/internal/core/ports/driving"
)

var generateFlags struct {
	collection string
	delivery   string
	job        string
	out        string
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate the condition report PDF",
	Long: `Compare a collection and a delivery inspection and write the
condition report. Inputs are JSON files as written by 'podreport sample'.`,
	Args: cobra.NoArgs,
	RunE: runGenerate,
}

func init() {
	f := generateCmd.Flags()
	f.StringVar(&generateFlags.collection, "collection", "", "collection snapshot JSON")
	f.StringVar(&generateFlags.delivery, "delivery", "", "delivery snapshot JSON")
	f.StringVar(&generateFlags.job, "job", "", "job metadata JSON")
	f.StringVarP(&generateFlags.out, "out", "o", "report.pdf", "output file, - for stdout")
	_ = generateCmd.MarkFlagRequired("collection")
	_ = generateCmd.MarkFlagRequired("delivery")
	_ = generateCmd.MarkFlagRequired("job")
	rootCmd.AddCommand(generateCmd)
}

func runGenerate(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errReportNotConfigured
	}

	collection, err := readSnapshot(generateFlags.collection)
	if err != nil {
		return fmt.Errorf("failed to read collection snapshot: %w", err)
	}
	delivery, err := readSnapshot(generateFlags.delivery)
	if err != nil {
		return fmt.Errorf("failed to read delivery snapshot: %w", err)
	}
	job, err := readJob(generateFlags.job)
	if err != nil {
		return fmt.Errorf("failed to read job: %w", err)
	}

	data, err := reportService.Generate(cmd.Context(), driving.GenerateRequest{
		Collection: collection,
		Delivery:   delivery,
		Job:        job,
	})
	if err != nil {
		return fmt.Errorf("failed to generate report: %w", err)
	}

	if generateFlags.out == "-" {
		_, err := cmd.OutOrStdout().Write(data)
		return err
	}
	if err := os.WriteFile(generateFlags.out, data, 0644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	cmd.Printf("Wrote %s (%d bytes)\n", generateFlags.out, len(data))
	return nil
}
