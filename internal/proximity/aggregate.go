// Package proximity counts the volcanoes near each city and builds the derived
// city/volcano table.
package proximity

import (
	"context"

	"github.com/rotisserie/eris"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/sells-group/volcano-cli/internal/geo"
	"github.com/sells-group/volcano-cli/internal/model"
)

// DefaultThresholdMiles is the radius within which a volcano counts as near a city.
const DefaultThresholdMiles = 50.0

// CityMatch holds the volcanoes within range of one city.
type CityMatch struct {
	CityIndex int   `json:"city_index"`
	Count     int   `json:"count"`
	Volcanoes []int `json:"volcanoes"`
}

// Result is the raw output of an aggregation run. City and volcano indices are
// positions in the tables passed to Aggregate.
//
// Cities holds one entry per city with at least one match, in city-table order.
// Matched is the flat list of matched volcano indices across all cities; a volcano
// near two cities appears twice.
type Result struct {
	ThresholdMiles float64     `json:"threshold_miles"`
	Cities         []CityMatch `json:"cities"`
	Matched        []int       `json:"matched"`
}

// Count returns the number of volcanoes matched to the city, or 0 if it has none.
func (r Result) Count(cityIndex int) int {
	for _, m := range r.Cities {
		if m.CityIndex == cityIndex {
			return m.Count
		}
	}
	return 0
}

// CountryIndex maps a country name to the indices of its volcanoes in table order.
// Keys are exact, case-sensitive country strings.
type CountryIndex map[string][]int

// IndexByCountry groups volcano positions by country.
func IndexByCountry(volcanoes []model.Volcano) CountryIndex {
	idx := make(CountryIndex)
	for i, v := range volcanoes {
		idx[v.Country] = append(idx[v.Country], i)
	}
	return idx
}

// Aggregate pairs each city with the volcanoes of the same country that lie within
// thresholdMiles of it.
func Aggregate(volcanoes []model.Volcano, cities []model.City, thresholdMiles float64) Result {
	byCountry := IndexByCountry(volcanoes)

	res := Result{ThresholdMiles: thresholdMiles}
	for i := range cities {
		m := matchCity(volcanoes, byCountry, i, cities[i], thresholdMiles)
		if m.Count == 0 {
			continue
		}
		res.Cities = append(res.Cities, m)
		res.Matched = append(res.Matched, m.Volcanoes...)
	}
	return res
}

// AggregateParallel produces the same Result as Aggregate, sharding cities across at
// most workers goroutines. Each worker writes only its own cities' slots, so the
// inputs need no locking as long as the caller does not mutate them.
func AggregateParallel(ctx context.Context, volcanoes []model.Volcano, cities []model.City, thresholdMiles float64, workers int) (Result, error) {
	if workers <= 1 {
		return Aggregate(volcanoes, cities, thresholdMiles), nil
	}

	byCountry := IndexByCountry(volcanoes)
	slots := make([]CityMatch, len(cities))

	chunk := (len(cities) + workers - 1) / workers
	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for start := 0; start < len(cities); start += chunk {
		end := min(start+chunk, len(cities))
		g.Go(func() error {
			for i := start; i < end; i++ {
				if err := gCtx.Err(); err != nil {
					return eris.Wrap(err, "proximity: aggregate cancelled")
				}
				slots[i] = matchCity(volcanoes, byCountry, i, cities[i], thresholdMiles)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	res := Result{ThresholdMiles: thresholdMiles}
	for _, m := range slots {
		if m.Count == 0 {
			continue
		}
		res.Cities = append(res.Cities, m)
		res.Matched = append(res.Matched, m.Volcanoes...)
	}

	zap.L().Debug("proximity: parallel aggregation complete",
		zap.Int("cities", len(cities)),
		zap.Int("volcanoes", len(volcanoes)),
		zap.Int("workers", workers),
		zap.Int("matched_cities", len(res.Cities)),
	)

	return res, nil
}

func matchCity(volcanoes []model.Volcano, byCountry CountryIndex, cityIndex int, city model.City, thresholdMiles float64) CityMatch {
	m := CityMatch{CityIndex: cityIndex}
	for _, vi := range byCountry[city.Country] {
		if geo.Within(volcanoes[vi].Point(), city.Point(), thresholdMiles) {
			m.Volcanoes = append(m.Volcanoes, vi)
			m.Count++
		}
	}
	return m
}
