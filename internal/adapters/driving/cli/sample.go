package cli

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/podreport/internal/core/domain"
)

var sampleDir string

var sampleCmd = &cobra.Command{
	Use:   "sample",
	Short: "Write example inputs for generate",
	Long: `Write collection.json, delivery.json and job.json describing a worked
example: 10,000 to 10,150 miles, fuel 3/4 to 1/2, one scratch recorded
at collection and one dent found at delivery.`,
	Args: cobra.NoArgs,
	RunE: runSample,
}

func init() {
	sampleCmd.Flags().StringVar(&sampleDir, "dir", ".", "directory to write the files to")
	rootCmd.AddCommand(sampleCmd)
}

func runSample(cmd *cobra.Command, _ []string) error {
	if err := os.MkdirAll(sampleDir, 0755); err != nil {
		return err
	}
	files := []struct {
		name string
		v    any
	}{
		{"collection.json", domain.SampleCollection()},
		{"delivery.json", domain.SampleDelivery()},
		{"job.json", domain.SampleJob()},
	}
	for _, f := range files {
		path := filepath.Join(sampleDir, f.name)
		if err := writeJSON(path, f.v); err != nil {
			return fmt.Errorf("failed to write %s: %w", path, err)
		}
		cmd.Printf("Wrote %s\n", path)
	}
	return nil
}
