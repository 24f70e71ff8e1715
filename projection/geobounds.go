package projection

import (
	"github.com/golang/geo/s1"
	"github.com/golang/geo/s2"

	"trailrelief/entities"
)

// GeoBounds is an axis-aligned box over geographic points (lon/lat,
// decimal degrees), accumulated by the scanner before any planar
// projection is chosen. Wraps s2.Rect, which already models exactly
// this invariant in spherical space.
type GeoBounds struct {
	rect s2.Rect
}

// NewGeoBounds returns an empty GeoBounds.
func NewGeoBounds() GeoBounds {
	return GeoBounds{rect: s2.EmptyRect()}
}

// Extend grows the bounds to include p.
func (g *GeoBounds) Extend(p entities.GeoPoint) {
	g.rect = g.rect.AddPoint(s2.LatLngFromDegrees(p.Lat, p.Lon))
}

// MinLon, MaxLon, MinLat, MaxLat return the accumulated extent in decimal
// degrees.
func (g GeoBounds) MinLon() float64 { return s1.Angle(g.rect.Lng.Lo).Degrees() }
func (g GeoBounds) MaxLon() float64 { return s1.Angle(g.rect.Lng.Hi).Degrees() }
func (g GeoBounds) MinLat() float64 { return s1.Angle(g.rect.Lat.Lo).Degrees() }
func (g GeoBounds) MaxLat() float64 { return s1.Angle(g.rect.Lat.Hi).Degrees() }

// MidLon, MidLat return the geographic midpoint used to derive an
// auto-UTM zone.
func (g GeoBounds) MidLon() float64 { return g.rect.Center().Lng.Degrees() }
func (g GeoBounds) MidLat() float64 { return g.rect.Center().Lat.Degrees() }

// Corners returns the four corners of the bounds in (lon, lat) order,
// used to feed the auto-smoothing bed-fit scale estimate for the map shape.
func (g GeoBounds) Corners() [4][2]float64 {
	minLon, maxLon := g.MinLon(), g.MaxLon()
	minLat, maxLat := g.MinLat(), g.MaxLat()
	return [4][2]float64{
		{minLon, minLat},
		{maxLon, minLat},
		{maxLon, maxLat},
		{minLon, maxLat},
	}
}
