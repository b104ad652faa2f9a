// Package export writes proximity tables and volcano lists in the formats the CLI
// offers: JSON, CSV, YAML and XLSX.
package export

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"
	"strings"

	"github.com/rotisserie/eris"
	"github.com/tealeg/xlsx/v2"
	"gopkg.in/yaml.v3"

	"github.com/sells-group/volcano-cli/internal/model"
	"github.com/sells-group/volcano-cli/internal/proximity"
)

// Format is an output encoding.
type Format string

const (
	FormatJSON Format = "json"
	FormatCSV  Format = "csv"
	FormatYAML Format = "yaml"
	FormatXLSX Format = "xlsx"
)

// Formats lists every supported format.
var Formats = []Format{FormatJSON, FormatCSV, FormatYAML, FormatXLSX}

// ParseFormat resolves a format name, accepting "yml" for YAML.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case FormatJSON, FormatCSV, FormatYAML, FormatXLSX:
		return f, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", eris.Errorf("export: unsupported format %q", s)
	}
}

// Tabular is a header plus string rows, the common shape of every export.
type Tabular struct {
	Header []string
	Rows   [][]string
}

// ProximityTabular flattens a proximity table.
func ProximityTabular(t proximity.Table) Tabular {
	out := Tabular{Header: []string{"city_index", "city", "country", "num_volcanoes"}}
	for _, r := range t {
		out.Rows = append(out.Rows, []string{
			strconv.Itoa(r.CityIndex), r.City, r.Country, strconv.Itoa(r.NumVolcanoes),
		})
	}
	return out
}

// VolcanoTabular flattens volcano records using the source column headers.
func VolcanoTabular(volcanoes []model.Volcano) Tabular {
	out := Tabular{Header: []string{
		"Volcano Number", "Volcano Name", "Country", "Primary Volcano Type",
		"Activity Evidence", "Last Known Eruption", "Region", "Subregion",
		"Latitude", "Longitude", "Elevation (m)", "Dominant Rock Type", "Tectonic Setting",
	}}
	for _, v := range volcanoes {
		out.Rows = append(out.Rows, []string{
			v.Number, v.Name, v.Country, v.PrimaryType,
			v.ActivityEvidence, v.LastKnownEruption, v.Region, v.Subregion,
			strconv.FormatFloat(v.Latitude, 'f', -1, 64),
			strconv.FormatFloat(v.Longitude, 'f', -1, 64),
			v.Elevation, v.RockType, v.TectonicSetting,
		})
	}
	return out
}

// Write encodes value in format f. JSON and YAML serialize value directly; CSV and
// XLSX use tab.
func Write(w io.Writer, f Format, value any, tab Tabular) error {
	switch f {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return eris.Wrap(enc.Encode(value), "export: encode json")
	case FormatYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(value); err != nil {
			return eris.Wrap(err, "export: encode yaml")
		}
		return eris.Wrap(enc.Close(), "export: close yaml encoder")
	case FormatCSV:
		return WriteCSV(w, tab)
	case FormatXLSX:
		return WriteXLSX(w, "data", tab)
	default:
		return eris.Errorf("export: unsupported format %q", f)
	}
}

// WriteCSV writes tab as RFC 4180 CSV.
func WriteCSV(w io.Writer, tab Tabular) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(tab.Header); err != nil {
		return eris.Wrap(err, "export: write csv header")
	}
	if err := cw.WriteAll(tab.Rows); err != nil {
		return eris.Wrap(err, "export: write csv rows")
	}
	return nil
}

// WriteXLSX writes tab as a single-sheet workbook.
func WriteXLSX(w io.Writer, sheetName string, tab Tabular) error {
	f := xlsx.NewFile()
	sheet, err := f.AddSheet(sheetName)
	if err != nil {
		return eris.Wrap(err, "export: add sheet")
	}

	addRow(sheet, tab.Header)
	for _, r := range tab.Rows {
		addRow(sheet, r)
	}

	if err := f.Write(w); err != nil {
		return eris.Wrap(err, "export: write xlsx")
	}
	return nil
}

func addRow(sheet *xlsx.Sheet, values []string) {
	row := sheet.AddRow()
	for _, v := range values {
		row.AddCell().SetString(v)
	}
}
