// Package dataset loads the volcano and world-city tables and applies the
// normalization every downstream view relies on.
package dataset

import (
	"math"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"

	"github.com/sells-group/volcano-cli/internal/model"
)

// evidenceRewrites maps source spellings onto a single canonical value.
var evidenceRewrites = map[string]string{
	"Uncertain Evidence": "Evidence Uncertain",
}

// Normalize returns the canonical form of a categorical cell. Empty cells become
// model.MissingValue.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return model.MissingValue
	}
	if r, ok := evidenceRewrites[s]; ok {
		return r
	}
	return s
}

// parseCoord parses a latitude or longitude and checks it against limit.
func parseCoord(s string, limit float64) (float64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, eris.New("empty")
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, eris.Wrapf(err, "parse %q", s)
	}
	if math.IsNaN(f) || math.Abs(f) > limit {
		return 0, eris.Errorf("%v outside [-%v, %v]", f, limit, limit)
	}
	return f, nil
}

// parsePopulation accepts integers and decimal renderings ("8.9e6", "1234.0").
func parsePopulation(s string) (int64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	if n, err := strconv.ParseInt(s, 10, 64); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0, false
	}
	return int64(f), true
}
