package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/podreport/internal/core/domain"
)

var validateCmd = &cobra.Command{
	Use:   "validate <snapshot.json>...",
	Short: "Check inspection snapshots for model errors",
	Long: `Check that each snapshot is well formed: readings in range, exactly
four wheel checks, unique damage ids, and a reason for every missing
document.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, args []string) error {
	failed := 0
	for _, path := range args {
		s, err := readSnapshot(path)
		if err == nil {
			err = domain.ValidateSnapshot(s)
		}
		if err == nil {
			cmd.Printf("%s: ok\n", path)
			continue
		}
		failed++
		cmd.Printf("%s: invalid\n", path)
		for _, line := range strings.Split(err.Error(), "\n") {
			cmd.Printf("  %s\n", line)
		}
	}
	if failed > 0 {
		return fmt.Errorf("%d of %d snapshots invalid: %w", failed, len(args), domain.ErrInvalidInput)
	}
	return nil
}
