package model

import "github.com/sells-group/volcano-cli/internal/geo"

// City is one row of the world-cities dataset.
type City struct {
	Index      int     `json:"index" yaml:"index"`
	Name       string  `json:"city" yaml:"city"`
	Country    string  `json:"country" yaml:"country"`
	Latitude   float64 `json:"lat" yaml:"lat"`
	Longitude  float64 `json:"lon" yaml:"lon"`
	Population int64   `json:"population,omitempty" yaml:"population,omitempty"`
}

// Point returns the city location.
func (c City) Point() geo.Point {
	return geo.Point{Lat: c.Latitude, Lon: c.Longitude}
}
