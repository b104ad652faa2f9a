package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/sells-group/volcano-cli/internal/explore"
	"github.com/sells-group/volcano-cli/internal/export"
	"github.com/sells-group/volcano-cli/internal/model"
)

var (
	volcanoesCategory string
	volcanoesValues   []string
	volcanoesOptions  bool
	volcanoesFormat   string
	volcanoesOutput   string
)

var volcanoesCmd = &cobra.Command{
	Use:   "volcanoes",
	Short: "List volcanoes filtered by a category",
	Long:  "Lists volcano records whose category matches any of the given values, grouped in the order the values are given. Without --value every volcano is listed.",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, err := model.ParseCategory(volcanoesCategory)
		if err != nil {
			return err
		}
		format, err := export.ParseFormat(volcanoesFormat)
		if err != nil {
			return err
		}

		volcanoes, err := loadVolcanoes(cmd.Context())
		if err != nil {
			return err
		}

		out, err := openOutput(volcanoesOutput)
		if err != nil {
			return err
		}
		defer out.Close() //nolint:errcheck

		if volcanoesOptions {
			options := explore.Options(volcanoes, category)
			tab := export.Tabular{Header: []string{category.Label()}}
			for _, o := range options {
				tab.Rows = append(tab.Rows, []string{o})
			}
			return export.Write(out, format, options, tab)
		}

		selected := explore.Select(volcanoes, category, volcanoesValues)
		zap.L().Info("volcanoes selected",
			zap.String("category", string(category)),
			zap.Strings("values", volcanoesValues),
			zap.Int("rows", len(selected)),
		)
		return export.Write(out, format, selected, export.VolcanoTabular(selected))
	},
}

func init() {
	volcanoesCmd.Flags().StringVar(&volcanoesCategory, "category", string(model.CategoryCountry), "category to filter on")
	volcanoesCmd.Flags().StringArrayVar(&volcanoesValues, "value", nil, "category value to keep (repeatable)")
	volcanoesCmd.Flags().BoolVar(&volcanoesOptions, "options", false, "list the category's values instead of volcanoes")
	volcanoesCmd.Flags().StringVar(&volcanoesFormat, "format", "json", "output format: json, csv, yaml, xlsx")
	volcanoesCmd.Flags().StringVarP(&volcanoesOutput, "output", "o", "", "output file (default stdout)")
	rootCmd.AddCommand(volcanoesCmd)
}
