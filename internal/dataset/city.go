package dataset

import (
	"github.com/rotisserie/eris"

	"github.com/sells-group/volcano-cli/internal/fetcher"
	"github.com/sells-group/volcano-cli/internal/model"
)

// ParseCities converts a world-cities table into records. When minPopulation is
// positive, cities below it or without a population are dropped before indexing.
func ParseCities(t *fetcher.Table, minPopulation int64) ([]model.City, error) {
	nameCol, ok := t.Lookup("city_ascii", "city")
	if !ok {
		return nil, eris.New(`dataset: cities missing required column "city_ascii"`)
	}
	lonCol, ok := t.Lookup("lon", "lng")
	if !ok {
		return nil, eris.New(`dataset: cities missing required column "lon"`)
	}
	for _, col := range []string{"lat", "country"} {
		if !t.Has(col) {
			return nil, eris.Errorf("dataset: cities missing required column %q", col)
		}
	}

	cities := make([]model.City, 0, len(t.Rows))
	for i, row := range t.Rows {
		line := i + 2

		pop, hasPop := parsePopulation(t.Value(row, "population"))
		if minPopulation > 0 && (!hasPop || pop < minPopulation) {
			continue
		}

		lat, err := parseCoord(t.Value(row, "lat"), 90)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: cities row %d: latitude", line)
		}
		lon, err := parseCoord(t.Value(row, lonCol), 180)
		if err != nil {
			return nil, eris.Wrapf(err, "dataset: cities row %d: longitude", line)
		}

		cities = append(cities, model.City{
			Index:      len(cities),
			Name:       t.Value(row, nameCol),
			Country:    t.Value(row, "country"),
			Latitude:   lat,
			Longitude:  lon,
			Population: pop,
		})
	}

	return cities, nil
}
