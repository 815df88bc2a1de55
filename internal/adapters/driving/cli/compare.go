package cli

import (
	"encoding/json"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/podreport/internal/core/domain"
)

var compareFlags struct {
	collection string
	delivery   string
	asJSON     bool
}

var compareCmd = &cobra.Command{
	Use:   "compare",
	Short: "Show what changed between collection and delivery",
	Args:  cobra.NoArgs,
	RunE:  runCompare,
}

func init() {
	f := compareCmd.Flags()
	f.StringVar(&compareFlags.collection, "collection", "", "collection snapshot JSON")
	f.StringVar(&compareFlags.delivery, "delivery", "", "delivery snapshot JSON")
	f.BoolVar(&compareFlags.asJSON, "json", false, "print the comparison as JSON")
	_ = compareCmd.MarkFlagRequired("collection")
	_ = compareCmd.MarkFlagRequired("delivery")
	rootCmd.AddCommand(compareCmd)
}

func runCompare(cmd *cobra.Command, _ []string) error {
	if reportService == nil {
		return errReportNotConfigured
	}

	collection, err := readSnapshot(compareFlags.collection)
	if err != nil {
		return fmt.Errorf("failed to read collection snapshot: %w", err)
	}
	delivery, err := readSnapshot(compareFlags.delivery)
	if err != nil {
		return fmt.Errorf("failed to read delivery snapshot: %w", err)
	}

	result, err := reportService.Compare(cmd.Context(), collection, delivery)
	if err != nil {
		return fmt.Errorf("failed to compare: %w", err)
	}

	if compareFlags.asJSON {
		data, err := json.MarshalIndent(result, "", "  ")
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	}

	printComparison(cmd, result)
	return nil
}

func printComparison(cmd *cobra.Command, r *domain.ComparisonResult) {
	cmd.Printf("Mileage delta: %+d\n", r.MileageDelta)
	cmd.Printf("Fuel delta:    %+d/8\n", r.FuelDelta)
	cmd.Printf("Keys:          %d -> %d\n", r.KeyCountBefore, r.KeyCountAfter)
	if r.HasCharge() {
		cmd.Printf("Charge:        %s -> %s\n", chargeLabel(r.ChargeBefore), chargeLabel(r.ChargeAfter))
	}
	cmd.Println()

	cmd.Printf("Damage: %d total, %d carried, %d new\n", r.DamageCountTotal, len(r.CarriedDamage), len(r.NewDamage))
	for _, m := range r.CarriedDamage {
		cmd.Printf("  carried  %s  %s, %s, %s\n", m.ID, m.View.Label(), m.Type.Label(), m.Size.Label())
	}
	for _, m := range r.NewDamage {
		cmd.Printf("  new      %s  %s, %s, %s\n", m.ID, m.View.Label(), m.Type.Label(), m.Size.Label())
	}
	if !r.HasNewDamage() {
		cmd.Println("  No new damage recorded at delivery")
	}
	cmd.Println()

	if !r.HasDocumentChanges() {
		cmd.Println("Documents: no changes")
		return
	}
	cmd.Println("Documents:")
	for _, c := range r.DocumentStatusChanges {
		cmd.Printf("  %s: %s -> %s\n", c.Document.Label(), c.Before.Label(), c.After.Label())
	}
}

func chargeLabel(c *domain.ChargeLevel) string {
	if c == nil {
		return "-"
	}
	return c.Label()
}
