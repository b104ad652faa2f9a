// Package explore builds the category views, value counts and proximity snapshot
// that the CLI and HTTP API present.
package explore

import (
	"github.com/sells-group/volcano-cli/internal/model"
)

// Options lists the distinct values of category c, most frequent first. Ties keep
// the order in which values first appear.
func Options(volcanoes []model.Volcano, c model.Category) []string {
	counts := ValueCounts(volcanoes, c)
	out := make([]string, len(counts))
	for i, vc := range counts {
		out[i] = vc.Value
	}
	return out
}

// Select returns the volcanoes whose category c matches one of values. Rows are
// grouped per value in the order values are given, so a repeated value repeats its
// rows. An empty selection returns every volcano.
func Select(volcanoes []model.Volcano, c model.Category, values []string) []model.Volcano {
	if len(values) == 0 {
		out := make([]model.Volcano, len(volcanoes))
		copy(out, volcanoes)
		return out
	}

	byValue := make(map[string][]model.Volcano)
	for _, v := range volcanoes {
		key := v.Value(c)
		byValue[key] = append(byValue[key], v)
	}

	out := []model.Volcano{}
	for _, value := range values {
		out = append(out, byValue[value]...)
	}
	return out
}
