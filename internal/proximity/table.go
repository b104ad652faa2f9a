package proximity

import (
	"cmp"
	"slices"

	"github.com/rotisserie/eris"

	"github.com/sells-group/volcano-cli/internal/model"
)

// ErrIndexOutOfRange is returned when a result references a row that does not
// exist in the table it is joined against.
var ErrIndexOutOfRange = eris.New("proximity: index out of range")

// Row is one line of the derived proximity table.
type Row struct {
	CityIndex    int    `json:"city_index" yaml:"city_index"`
	NumVolcanoes int    `json:"num_volcanoes" yaml:"num_volcanoes"`
	City         string `json:"city" yaml:"city"`
	Country      string `json:"country" yaml:"country"`
}

// Table is the display-ready proximity table, sorted ascending by country.
type Table []Row

// BuildTable joins city names and countries onto the result and sorts the rows by
// country. Cities with equal countries keep their city-table order.
func BuildTable(res Result, cities []model.City) (Table, error) {
	table := make(Table, 0, len(res.Cities))
	for _, m := range res.Cities {
		if m.Count == 0 {
			continue
		}
		if m.CityIndex < 0 || m.CityIndex >= len(cities) {
			return nil, eris.Wrapf(ErrIndexOutOfRange, "city index %d (table has %d cities)", m.CityIndex, len(cities))
		}
		c := cities[m.CityIndex]
		table = append(table, Row{
			CityIndex:    m.CityIndex,
			NumVolcanoes: m.Count,
			City:         c.Name,
			Country:      c.Country,
		})
	}

	slices.SortStableFunc(table, func(a, b Row) int {
		return cmp.Compare(a.Country, b.Country)
	})

	return table, nil
}

// Total returns the sum of NumVolcanoes across all rows.
func (t Table) Total() int {
	n := 0
	for _, r := range t {
		n += r.NumVolcanoes
	}
	return n
}

// MatchedVolcanoes resolves the flat matched list into volcano rows, keeping
// duplicates so a volcano near two cities is counted twice downstream.
func MatchedVolcanoes(res Result, volcanoes []model.Volcano) ([]model.Volcano, error) {
	out := make([]model.Volcano, 0, len(res.Matched))
	for _, vi := range res.Matched {
		if vi < 0 || vi >= len(volcanoes) {
			return nil, eris.Wrapf(ErrIndexOutOfRange, "volcano index %d (table has %d volcanoes)", vi, len(volcanoes))
		}
		out = append(out, volcanoes[vi])
	}
	return out, nil
}
