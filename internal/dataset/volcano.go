package dataset

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/volcano-cli/internal/fetcher"
	"github.com/sells-group/volcano-cli/internal/model"
)

// Volcano dataset column headers.
const (
	ColVolcanoNumber     = "Volcano Number"
	ColVolcanoName       = "Volcano Name"
	ColCountry           = "Country"
	ColPrimaryType       = "Primary Volcano Type"
	ColActivityEvidence  = "Activity Evidence"
	ColLastKnownEruption = "Last Known Eruption"
	ColRegion            = "Region"
	ColSubregion         = "Subregion"
	ColLatitude          = "Latitude"
	ColLongitude         = "Longitude"
	ColElevation         = "Elevation (m)"
	ColRockType          = "Dominant Rock Type"
	ColTectonicSetting   = "Tectonic Setting"
)

var requiredVolcanoCols = []string{ColLatitude, ColLongitude, ColCountry}

// ParseVolcanoes converts a volcano table into records. Any row with unusable
// coordinates fails the whole table.
func ParseVolcanoes(t *fetcher.Table) ([]model.Volcano, error) {
	for _, col := range requiredVolcanoCols {
		if !t.Has(col) {
			return nil, eris.Errorf("dataset: volcanoes missing required column %q", col)
		}
	}

	volcanoes := make([]model.Volcano, 0, len(t.Rows))
	for i, row := range t.Rows {
		line := i + 2 // 1-based, after the header

		lat, err := parseCoord(t.Value(row, ColLatitude), 90)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: volcanoes row %d: latitude", line)
		}
		lon, err := parseCoord(t.Value(row, ColLongitude), 180)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: volcanoes row %d: longitude", line)
		}

		volcanoes = append(volcanoes, model.Volcano{
			Index:             len(volcanoes),
			Number:            Normalize(t.Value(row, ColVolcanoNumber)),
			Name:              Normalize(t.Value(row, ColVolcanoName)),
			Country:           Normalize(t.Value(row, ColCountry)),
			PrimaryType:       Normalize(t.Value(row, ColPrimaryType)),
			ActivityEvidence:  Normalize(t.Value(row, ColActivityEvidence)),
			LastKnownEruption: Normalize(t.Value(row, ColLastKnownEruption)),
			Region:            Normalize(t.Value(row, ColRegion)),
			Subregion:         Normalize(t.Value(row, ColSubregion)),
			Latitude:          lat,
			Longitude:         lon,
			Elevation:         Normalize(t.Value(row, ColElevation)),
			RockType:          Normalize(t.Value(row, ColRockType)),
			TectonicSetting:   Normalize(t.Value(row, ColTectonicSetting)),
		})
	}

	return volcanoes, nil
}
