package model

import "github.com/sells-group/volcano-cli/internal/geo"

// MissingValue replaces empty categorical cells in the source datasets.
const MissingValue = "No Data (unchecked)"

// Volcano is one row of the volcano dataset. Index is its stable row position in the
// loaded table and is the identifier used by every derived table.
type Volcano struct {
	Index             int     `json:"index" yaml:"index"`
	Number            string  `json:"number" yaml:"number"`
	Name              string  `json:"name" yaml:"name"`
	Country           string  `json:"country" yaml:"country"`
	PrimaryType       string  `json:"primary_type" yaml:"primary_type"`
	ActivityEvidence  string  `json:"activity_evidence" yaml:"activity_evidence"`
	LastKnownEruption string  `json:"last_known_eruption" yaml:"last_known_eruption"`
	Region            string  `json:"region" yaml:"region"`
	Subregion         string  `json:"subregion" yaml:"subregion"`
	Latitude          float64 `json:"latitude" yaml:"latitude"`
	Longitude         float64 `json:"longitude" yaml:"longitude"`
	Elevation         string  `json:"elevation" yaml:"elevation"`
	RockType          string  `json:"rock_type" yaml:"rock_type"`
	TectonicSetting   string  `json:"tectonic_setting" yaml:"tectonic_setting"`
}

// Point returns the volcano location.
func (v Volcano) Point() geo.Point {
	return geo.Point{Lat: v.Latitude, Lon: v.Longitude}
}
