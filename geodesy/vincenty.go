// Package geodesy computes surface distance between two points on the
// WGS84 ellipsoid using Vincenty's inverse formula.
//
// Grounded on other_examples/05336778_starboard-nz-go-geodesy (a pure Go
// port of chrisveness/geodesy), trimmed to the single inverse-distance
// calculation the scanner needs — no direct solution, no bearings.
package geodesy

import (
	"math"

	"trailrelief/entities"
)

// WGS84 ellipsoid parameters.
const (
	semiMajorAxis = 6378137.0         // a, metres
	semiMinorAxis = 6356752.314245    // b, metres
	flattening    = 1 / 298.257223563 // f
)

const (
	maxIterations     = 100
	convergenceThresh = 1e-12
)

// InverseDistance returns the geodesic surface distance between a and b in
// metres. Returns 0 for coincident endpoints, NaN if the λ fixed-point
// iteration fails to converge within maxIterations.
func InverseDistance(a, b entities.GeoPoint) float64 {
	if a.Lon == b.Lon && a.Lat == b.Lat {
		return 0
	}

	φ1 := radians(a.Lat)
	λ1 := radians(a.Lon)
	φ2 := radians(b.Lat)
	λ2 := radians(b.Lon)

	L := λ2 - λ1

	tanU1 := (1 - flattening) * math.Tan(φ1)
	cosU1 := 1 / math.Sqrt(1+tanU1*tanU1)
	sinU1 := tanU1 * cosU1

	tanU2 := (1 - flattening) * math.Tan(φ2)
	cosU2 := 1 / math.Sqrt(1+tanU2*tanU2)
	sinU2 := tanU2 * cosU2

	λ := L
	var sinλ, cosλ float64
	var sinσ, cosσ, σ float64
	var sinα, cosSqα, cos2σm float64

	converged := false
	for i := 0; i < maxIterations; i++ {
		sinλ = math.Sin(λ)
		cosλ = math.Cos(λ)
		sinSqσ := (cosU2*sinλ)*(cosU2*sinλ) +
			(cosU1*sinU2-sinU1*cosU2*cosλ)*(cosU1*sinU2-sinU1*cosU2*cosλ)
		sinσ = math.Sqrt(sinSqσ)
		if sinσ == 0 {
			return 0 // coincident points
		}
		cosσ = sinU1*sinU2 + cosU1*cosU2*cosλ
		σ = math.Atan2(sinσ, cosσ)
		sinα = cosU1 * cosU2 * sinλ / sinσ
		cosSqα = 1 - sinα*sinα

		if cosSqα != 0 {
			cos2σm = cosσ - 2*sinU1*sinU2/cosSqα
		} else {
			cos2σm = 0 // equatorial line: cos²α = 0
		}

		C := flattening / 16 * cosSqα * (4 + flattening*(4-3*cosSqα))
		λPrev := λ
		λ = L + (1-C)*flattening*sinα*(σ+C*sinσ*(cos2σm+C*cosσ*(-1+2*cos2σm*cos2σm)))

		if math.Abs(λ-λPrev) <= convergenceThresh {
			converged = true
			break
		}
	}
	if !converged {
		return math.NaN()
	}

	uSq := cosSqα * (semiMajorAxis*semiMajorAxis - semiMinorAxis*semiMinorAxis) / (semiMinorAxis * semiMinorAxis)
	A := 1 + uSq/16384*(4096+uSq*(-768+uSq*(320-175*uSq)))
	B := uSq / 1024 * (256 + uSq*(-128+uSq*(74-47*uSq)))
	Δσ := B * sinσ * (cos2σm + B/4*(cosσ*(-1+2*cos2σm*cos2σm)-
		B/6*cos2σm*(-3+4*sinσ*sinσ)*(-3+4*cos2σm*cos2σm)))

	return semiMinorAxis * A * (σ - Δσ)
}

func radians(deg float64) float64 { return deg * math.Pi / 180 }
