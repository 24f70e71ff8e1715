package geodesy

import (
	"math"

	geo "github.com/kellydunn/golang-geo"

	"trailrelief/entities"
)

// DistanceOrFallback returns InverseDistance(a, b), substituting a
// spherical great-circle distance when the Vincenty iteration diverges.
// The pipeline never aborts generation over a single non-converging
// segment — it falls back and continues.
func DistanceOrFallback(a, b entities.GeoPoint) float64 {
	d := InverseDistance(a, b)
	if !math.IsNaN(d) {
		return d
	}
	pa := geo.NewPoint(a.Lat, a.Lon)
	pb := geo.NewPoint(b.Lat, b.Lon)
	return pa.GreatCircleDistance(pb) * 1000 // golang-geo returns kilometres
}
