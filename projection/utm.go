package projection

import (
	"fmt"
	"math"
	"strings"
)

// UTM ellipsoid/projection constants (WGS84, k0 = 0.9996).
const (
	utmA  = 6378137.0
	utmF  = 1 / 298.257223563
	utmK0 = 0.9996
)

// ZoneFor derives the UTM zone number from a longitude in decimal
// degrees: zone = floor((lon+180)/6) + 1.
func ZoneFor(lon float64) int {
	return int(math.Floor((lon+180)/6)) + 1
}

// Definition synthesises the proj4-style definition string for
// auto-UTM mode, from the geographic midpoint of a track.
func Definition(midLon, midLat float64) string {
	return utmDefinitionString(ZoneFor(midLon), midLat < 0)
}

func utmDefinitionString(zone int, south bool) string {
	if south {
		return fmt.Sprintf("+proj=utm +zone=%d +south +ellps=WGS84 +datum=WGS84 +units=m +no_defs", zone)
	}
	return fmt.Sprintf("+proj=utm +zone=%d +ellps=WGS84 +datum=WGS84 +units=m +no_defs", zone)
}

// parsedUTM is the narrow subset of a proj4 definition string this package
// understands: a string starting with "+proj=utm" that carries a
// "+zone=N" field and optionally "+south". Other fields are ignored (the
// transform always uses WGS84); a string without "+proj=utm" first or
// without a parseable zone is rejected.
type parsedUTM struct {
	zone  int
	south bool
}

func parseUTMDefinition(def string) (parsedUTM, bool) {
	fields := strings.Fields(def)
	if len(fields) == 0 || fields[0] != "+proj=utm" {
		return parsedUTM{}, false
	}
	p := parsedUTM{}
	found := false
	for _, f := range fields[1:] {
		switch {
		case strings.HasPrefix(f, "+zone="):
			var zone int
			if _, err := fmt.Sscanf(f, "+zone=%d", &zone); err != nil {
				return parsedUTM{}, false
			}
			p.zone = zone
			found = true
		case f == "+south":
			p.south = true
		}
	}
	return p, found
}

// utmForward is the transverse-Mercator forward transform (Snyder's
// six-term series) for a single UTM zone, implemented directly against
// the published formulas.
func utmForward(lon, lat float64, zone int, south bool) (x, y float64) {
	centralMeridian := radians(float64((zone-1)*6 - 180 + 3))
	φ := radians(lat)
	λ := radians(lon)

	e2 := utmF * (2 - utmF)
	ep2 := e2 / (1 - e2)

	sinφ := math.Sin(φ)
	cosφ := math.Cos(φ)
	tanφ := math.Tan(φ)

	N := utmA / math.Sqrt(1-e2*sinφ*sinφ)
	T := tanφ * tanφ
	C := ep2 * cosφ * cosφ
	A := cosφ * (λ - centralMeridian)

	M := utmA * ((1-e2/4-3*e2*e2/64-5*e2*e2*e2/256)*φ -
		(3*e2/8+3*e2*e2/32+45*e2*e2*e2/1024)*math.Sin(2*φ) +
		(15*e2*e2/256+45*e2*e2*e2/1024)*math.Sin(4*φ) -
		(35*e2*e2*e2/3072)*math.Sin(6*φ))

	easting := utmK0*N*(A+(1-T+C)*A*A*A/6+
		(5-18*T+T*T+72*C-58*ep2)*A*A*A*A*A/120) + 500000

	northing := utmK0 * (M + N*tanφ*(A*A/2+
		(5-T+9*C+4*C*C)*A*A*A*A/24+
		(61-58*T+T*T+600*C-330*ep2)*A*A*A*A*A*A/720))

	if south {
		northing += 10000000
	}

	return easting, northing
}
