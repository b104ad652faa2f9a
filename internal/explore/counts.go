package explore

import (
	"slices"

	"github.com/sells-group/volcano-cli/internal/model"
	"github.com/sells-group/volcano-cli/internal/proximity"
)

// ValueCount is one slice of a category pie chart.
type ValueCount struct {
	Value   string  `json:"value" yaml:"value"`
	Count   int     `json:"count" yaml:"count"`
	Percent float64 `json:"percent" yaml:"percent"`
}

// ValueCounts tallies category c across volcanoes. Results are sorted by count
// descending with ties in first-appearance order; Percent is relative to
// len(volcanoes).
func ValueCounts(volcanoes []model.Volcano, c model.Category) []ValueCount {
	if len(volcanoes) == 0 {
		return []ValueCount{}
	}

	pos := make(map[string]int)
	var out []ValueCount
	for _, v := range volcanoes {
		key := v.Value(c)
		i, ok := pos[key]
		if !ok {
			i = len(out)
			pos[key] = i
			out = append(out, ValueCount{Value: key})
		}
		out[i].Count++
	}

	total := float64(len(volcanoes))
	for i := range out {
		out[i].Percent = 100 * float64(out[i].Count) / total
	}

	slices.SortStableFunc(out, func(a, b ValueCount) int {
		return b.Count - a.Count
	})
	return out
}

// Series is a labelled bar chart.
type Series struct {
	Labels []string `json:"labels" yaml:"labels"`
	Values []int    `json:"values" yaml:"values"`
}

// BarSeries converts a proximity table into chart bars, one per row in table order.
func BarSeries(t proximity.Table) Series {
	s := Series{
		Labels: make([]string, len(t)),
		Values: make([]int, len(t)),
	}
	for i, row := range t {
		s.Labels[i] = row.City
		s.Values[i] = row.NumVolcanoes
	}
	return s
}
