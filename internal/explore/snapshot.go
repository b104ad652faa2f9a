package explore

import (
	"context"
	"math"
	"time"

	"github.com/google/uuid"
	"github.com/rotisserie/eris"
	"go.uber.org/zap"

	"github.com/sells-group/volcano-cli/internal/model"
	"github.com/sells-group/volcano-cli/internal/proximity"
)

// BuildOptions controls the proximity computation behind a Snapshot.
type BuildOptions struct {
	ThresholdMiles float64
	Workers        int // <= 1 runs sequentially
}

// Snapshot is the immutable result of loading both tables and computing proximity
// once. Every view of the dashboard reads from a single Snapshot.
type Snapshot struct {
	ID         string           `json:"id"`
	ComputedAt time.Time        `json:"computed_at"`
	Threshold  float64          `json:"threshold_miles"`
	Volcanoes  []model.Volcano  `json:"-"`
	Cities     []model.City     `json:"-"`
	Result     proximity.Result `json:"-"`
	Table      proximity.Table  `json:"-"`
	Matched    []model.Volcano  `json:"-"`
	Duration   time.Duration    `json:"-"`
}

// Summary is the JSON-friendly overview of a Snapshot.
type Summary struct {
	ID             string    `json:"id"`
	ComputedAt     time.Time `json:"computed_at"`
	ThresholdMiles float64   `json:"threshold_miles"`
	Volcanoes      int       `json:"volcanoes"`
	Cities         int       `json:"cities"`
	MatchedCities  int       `json:"matched_cities"`
	NearbyMatches  int       `json:"nearby_matches"`
	DurationMS     int64     `json:"duration_ms"`
}

// Build computes the proximity table for the given tables.
func Build(ctx context.Context, volcanoes []model.Volcano, cities []model.City, opts BuildOptions) (*Snapshot, error) {
	if opts.ThresholdMiles < 0 || math.IsNaN(opts.ThresholdMiles) {
		return nil, eris.Errorf("explore: invalid threshold %v", opts.ThresholdMiles)
	}

	start := clock.Now()
	res, err := proximity.AggregateParallel(ctx, volcanoes, cities, opts.ThresholdMiles, opts.Workers)
	if err != nil {
		return nil, eris.Wrap(err, "explore: aggregate")
	}
	table, err := proximity.BuildTable(res, cities)
	if err != nil {
		return nil, eris.Wrap(err, "explore: build table")
	}
	matched, err := proximity.MatchedVolcanoes(res, volcanoes)
	if err != nil {
		return nil, eris.Wrap(err, "explore: matched volcanoes")
	}
	end := clock.Now()

	s := &Snapshot{
		ID:         uuid.New().String(),
		ComputedAt: end.UTC(),
		Threshold:  opts.ThresholdMiles,
		Volcanoes:  volcanoes,
		Cities:     cities,
		Result:     res,
		Table:      table,
		Matched:    matched,
		Duration:   end.Sub(start),
	}

	zap.L().Info("explore: snapshot built",
		zap.String("snapshot_id", s.ID),
		zap.Float64("threshold_miles", s.Threshold),
		zap.Int("matched_cities", len(table)),
		zap.Int("nearby_matches", len(matched)),
		zap.Duration("elapsed", s.Duration),
	)
	return s, nil
}

// Summary reports table sizes and identity.
func (s *Snapshot) Summary() Summary {
	return Summary{
		ID:             s.ID,
		ComputedAt:     s.ComputedAt,
		ThresholdMiles: s.Threshold,
		Volcanoes:      len(s.Volcanoes),
		Cities:         len(s.Cities),
		MatchedCities:  len(s.Table),
		NearbyMatches:  len(s.Matched),
		DurationMS:     s.Duration.Milliseconds(),
	}
}

// NearbyCounts tallies category c over the volcanoes near at least one city.
// A volcano near several cities is counted once per city.
func (s *Snapshot) NearbyCounts(c model.Category) []ValueCount {
	return ValueCounts(s.Matched, c)
}

// Bars returns the proximity bar chart series.
func (s *Snapshot) Bars() Series {
	return BarSeries(s.Table)
}
