package main

import (
	"strconv"

	"github.com/spf13/cobra"

	"github.com/sells-group/volcano-cli/internal/explore"
	"github.com/sells-group/volcano-cli/internal/export"
	"github.com/sells-group/volcano-cli/internal/model"
)

var (
	evidenceCategory  string
	evidenceNearby    bool
	evidenceThreshold float64
	evidenceFormat    string
	evidenceOutput    string
)

var evidenceCmd = &cobra.Command{
	Use:   "evidence",
	Short: "Count volcanoes per category value",
	Long:  "Prints pie-chart counts and percentages for a category. With --nearby only volcanoes within the threshold of a same-country city are counted, once per city.",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := model.ParseCategory(evidenceCategory)
		if err != nil {
			return err
		}
		format, err := export.ParseFormat(evidenceFormat)
		if err != nil {
			return err
		}

		var counts []explore.ValueCount
		if evidenceNearby {
			if err := cfg.Validate("compute"); err != nil {
				return err
			}
			snap, err := loadSnapshot(cmd.Context(), thresholdFor(cmd, evidenceThreshold), nil)
			if err != nil {
				return err
			}
			counts = snap.NearbyCounts(category)
		} else {
			volcanoes, err := loadVolcanoes(cmd.Context())
			if err != nil {
				return err
			}
			counts = explore.ValueCounts(volcanoes, category)
		}

		out, err := openOutput(evidenceOutput)
		if err != nil {
			return err
		}
		defer out.Close() //nolint:errcheck

		return export.Write(out, format, counts, countsTabular(category, counts))
	},
}

func countsTabular(c model.Category, counts []explore.ValueCount) export.Tabular {
	tab := export.Tabular{Header: []string{c.Label(), "count", "percent"}}
	for _, vc := range counts {
		tab.Rows = append(tab.Rows, []string{
			vc.Value,
			strconv.Itoa(vc.Count),
			strconv.FormatFloat(vc.Percent, 'f', 2, 64),
		})
	}
	return tab
}

func init() {
	evidenceCmd.Flags().StringVar(&evidenceCategory, "category", string(model.CategoryActivityEvidence), "category to count")
	evidenceCmd.Flags().BoolVar(&evidenceNearby, "nearby", false, "count only volcanoes near a same-country city")
	evidenceCmd.Flags().Float64Var(&evidenceThreshold, "threshold", 0, "radius in miles for --nearby (default from config)")
	evidenceCmd.Flags().StringVar(&evidenceFormat, "format", "json", "output format: json, csv, yaml, xlsx")
	evidenceCmd.Flags().StringVarP(&evidenceOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(evidenceCmd)
}
