package domain

import "math"

// EarthRadiusKm is the mean Earth radius used for great-circle distances.
const EarthRadiusKm = 6371.0

// GeoPoint is a WGS84 coordinate in decimal degrees.
type GeoPoint struct {
	Latitude  float64
	Longitude float64
}

// DistanceKm returns the great-circle distance between a and b using the
// spherical law of cosines:
//
//	d = R * acos(cos(lat1)*cos(lat2)*cos(lon2-lon1) + sin(lat1)*sin(lat2))
//
// The acos argument is clamped to [-1, 1] so that coincident points yield 0
// instead of NaN. The postgres adapter evaluates the same expression in SQL.
func DistanceKm(a, b GeoPoint) float64 {
	lat1 := radians(a.Latitude)
	lat2 := radians(b.Latitude)
	dLon := radians(b.Longitude) - radians(a.Longitude)

	cosAngle := math.Cos(lat1)*math.Cos(lat2)*math.Cos(dLon) + math.Sin(lat1)*math.Sin(lat2)
	cosAngle = math.Max(-1, math.Min(1, cosAngle))

	return EarthRadiusKm * math.Acos(cosAngle)
}

func radians(deg float64) float64 {
	return deg * math.Pi / 180
}
