// Package geo provides great-circle distance calculations for volcano and city coordinates.
package geo

import "math"

// EarthRadiusMiles is the Earth radius used for all distances, in statute miles.
const EarthRadiusMiles = 3959.87433

// Point is a WGS-84 latitude/longitude pair in decimal degrees.
// The zero Point is the equator/prime-meridian origin.
type Point struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Distance returns the haversine great-circle distance between two points in statute miles.
func Distance(lat1, lon1, lat2, lon2 float64) float64 {
	dLat := toRadians(lat2 - lat1)
	dLon := toRadians(lon2 - lon1)
	phi1 := toRadians(lat1)
	phi2 := toRadians(lat2)

	a := math.Sin(dLat/2)*math.Sin(dLat/2) +
		math.Cos(phi1)*math.Cos(phi2)*math.Sin(dLon/2)*math.Sin(dLon/2)

	// Floating-point overshoot near antipodes can push a past 1.
	a = math.Min(1, math.Max(0, a))

	return 2 * EarthRadiusMiles * math.Asin(math.Sqrt(a))
}

// DistanceBetween returns the distance between p and q in statute miles.
func DistanceBetween(p, q Point) float64 {
	return Distance(p.Lat, p.Lon, q.Lat, q.Lon)
}

// Within reports whether p and q are at most radiusMiles apart.
func Within(p, q Point, radiusMiles float64) bool {
	return DistanceBetween(p, q) <= radiusMiles
}

func toRadians(deg float64) float64 {
	return deg * math.Pi / 180
}
