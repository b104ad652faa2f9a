package main

import (
	"github.com/rotisserie/eris"
	"github.com/spf13/cobra"
	"github.com/twpayne/go-geom/encoding/geojson"
	"go.uber.org/zap"

	"github.com/sells-group/volcano-cli/internal/explore"
	"github.com/sells-group/volcano-cli/internal/geospatial"
	"github.com/sells-group/volcano-cli/internal/model"
)

var (
	mapFormat    string
	mapLayer     string
	mapCategory  string
	mapValues    []string
	mapThreshold float64
	mapOutput    string
)

var mapCmd = &cobra.Command{
	Use:   "map",
	Short: "Export a volcano or city map layer",
	Long:  "Writes volcano points (optionally filtered by category) or the cities of the proximity table as GeoJSON or an ESRI shapefile.",
	RunE: func(cmd *cobra.Command, args []string) error {
		if mapFormat != "geojson" && mapFormat != "shp" {
			return eris.Errorf("unsupported map format %q (want geojson or shp)", mapFormat)
		}
		if mapFormat == "shp" && mapOutput == "" {
			return eris.New("--output is required for shapefiles")
		}

		switch mapLayer {
		case "volcanoes":
			return writeVolcanoMap(cmd)
		case "cities":
			return writeCityMap(cmd)
		default:
			return eris.Errorf("unknown layer %q (want volcanoes or cities)", mapLayer)
		}
	},
}

func writeVolcanoMap(cmd *cobra.Command) error {
	category, err := model.ParseCategory(mapCategory)
	if err != nil {
		return err
	}
	volcanoes, err := loadVolcanoes(cmd.Context())
	if err != nil {
		return err
	}
	selected := explore.Select(volcanoes, category, mapValues)

	if mapFormat == "shp" {
		return geospatial.WriteShapefile(mapOutput, selected)
	}
	return writeLayer(geospatial.VolcanoLayer(selected))
}

func writeCityMap(cmd *cobra.Command) error {
	if mapFormat == "shp" {
		return eris.New("the cities layer is only available as geojson")
	}
	if err := cfg.Validate("compute"); err != nil {
		return err
	}
	snap, err := loadSnapshot(cmd.Context(), thresholdFor(cmd, mapThreshold), nil)
	if err != nil {
		return err
	}
	layer, err := geospatial.CityLayer(snap.Table, snap.Cities)
	if err != nil {
		return err
	}
	return writeLayer(layer)
}

func writeLayer(fc *geojson.FeatureCollection) error {
	data, err := geospatial.MarshalLayer(fc)
	if err != nil {
		return err
	}
	out, err := openOutput(mapOutput)
	if err != nil {
		return err
	}
	defer out.Close() //nolint:errcheck

	if _, err := out.Write(data); err != nil {
		return eris.Wrap(err, "write geojson")
	}
	zap.L().Info("map layer written", zap.String("layer", mapLayer), zap.Int("features", len(fc.Features)))
	return nil
}

func init() {
	mapCmd.Flags().StringVar(&mapFormat, "format", "geojson", "output format: geojson or shp")
	mapCmd.Flags().StringVar(&mapLayer, "layer", "volcanoes", "layer: volcanoes or cities")
	mapCmd.Flags().StringVar(&mapCategory, "category", string(model.CategoryCountry), "category to filter volcanoes on")
	mapCmd.Flags().StringArrayVar(&mapValues, "value", nil, "category value to keep (repeatable)")
	mapCmd.Flags().Float64Var(&mapThreshold, "threshold", 0, "radius in miles for the cities layer (default from config)")
	mapCmd.Flags().StringVarP(&mapOutput, "output", "o", "", "output file (default stdout; required for shp)")
	rootCmd.AddCommand(mapCmd)
}
