// Package geospatial renders volcanoes and proximity results as map layers:
// GeoJSON for web maps and ESRI shapefiles for desktop GIS.
package geospatial

import (
	"encoding/json"

	"github.com/rotisserie/eris"
	"github.com/twpayne/go-geom"
	"github.com/twpayne/go-geom/encoding/geojson"

	"github.com/sells-group/volcano-cli/internal/model"
	"github.com/sells-group/volcano-cli/internal/proximity"
)

// SRID of every emitted geometry (WGS 84).
const SRID = 4326

func point(lat, lon float64) *geom.Point {
	return geom.NewPointFlat(geom.XY, []float64{lon, lat}).SetSRID(SRID)
}

// VolcanoLayer builds one point feature per volcano carrying its descriptive columns.
func VolcanoLayer(volcanoes []model.Volcano) *geojson.FeatureCollection {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(volcanoes))}
	for _, v := range volcanoes {
		fc.Features = append(fc.Features, &geojson.Feature{
			ID:       v.Number,
			Geometry: point(v.Latitude, v.Longitude),
			Properties: map[string]any{
				"name":                v.Name,
				"country":             v.Country,
				"primary_type":        v.PrimaryType,
				"activity_evidence":   v.ActivityEvidence,
				"last_known_eruption": v.LastKnownEruption,
				"region":              v.Region,
				"subregion":           v.Subregion,
				"elevation":           v.Elevation,
				"rock_type":           v.RockType,
				"tectonic_setting":    v.TectonicSetting,
			},
		})
	}
	if len(volcanoes) > 0 {
		fc.BBox = bounds(fc.Features)
	}
	return fc
}

// CityLayer builds one point feature per proximity table row, in table order.
func CityLayer(t proximity.Table, cities []model.City) (*geojson.FeatureCollection, error) {
	fc := &geojson.FeatureCollection{Features: make([]*geojson.Feature, 0, len(t))}
	for _, row := range t {
		if row.CityIndex < 0 || row.CityIndex >= len(cities) {
			return nil, eris.Wrapf(proximity.ErrIndexOutOfRange, "geospatial: city %d", row.CityIndex)
		}
		c := cities[row.CityIndex]
		fc.Features = append(fc.Features, &geojson.Feature{
			Geometry: point(c.Latitude, c.Longitude),
			Properties: map[string]any{
				"city":          row.City,
				"country":       row.Country,
				"num_volcanoes": row.NumVolcanoes,
				"population":    c.Population,
			},
		})
	}
	if len(t) > 0 {
		fc.BBox = bounds(fc.Features)
	}
	return fc, nil
}

func bounds(features []*geojson.Feature) *geom.Bounds {
	b := geom.NewBounds(geom.XY)
	for _, f := range features {
		b.Extend(f.Geometry)
	}
	return b
}

// MarshalLayer encodes a feature collection as GeoJSON.
func MarshalLayer(fc *geojson.FeatureCollection) ([]byte, error) {
	data, err := json.Marshal(fc)
	if err != nil {
		return nil, eris.Wrap(err, "geospatial: marshal geojson")
	}
	return data, nil
}
