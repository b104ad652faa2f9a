package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/volcano-cli/internal/export"
)

var (
	proximityThreshold float64
	proximityFormat    string
	proximityOutput    string
)

var proximityCmd = &cobra.Command{
	Use:   "proximity",
	Short: "Count same-country volcanoes within a radius of each city",
	Long:  "Builds the derived table of cities with at least one volcano of the same country within the threshold distance, sorted by country.",
	RunE: func(cmd *cobra.Command, args []string) error {
		format, err := export.ParseFormat(proximityFormat)
		if err != nil {
			return err
		}
		if err := cfg.Validate("compute"); err != nil {
			return err
		}

		snap, err := loadSnapshot(cmd.Context(), thresholdFor(cmd, proximityThreshold), nil)
		if err != nil {
			return err
		}

		out, err := openOutput(proximityOutput)
		if err != nil {
			return err
		}
		defer out.Close() //nolint:errcheck

		if err := export.Write(out, format, snap.Table, export.ProximityTabular(snap.Table)); err != nil {
			return err
		}

		zap.L().Info("proximity table written",
			zap.Int("rows", len(snap.Table)),
			zap.Int("volcano_matches", snap.Table.Total()),
			zap.Float64("threshold_miles", snap.Threshold),
		)
		return nil
	},
}

func init() {
	proximityCmd.Flags().Float64Var(&proximityThreshold, "threshold", 0, "radius in miles (default from config)")
	proximityCmd.Flags().StringVar(&proximityFormat, "format", "json", "output format: json, csv, yaml, xlsx")
	proximityCmd.Flags().StringVarP(&proximityOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(proximityCmd)
}
