package mesh

import (
	"math"

	"trailrelief/entities"
	"trailrelief/fit"
	"trailrelief/geodesy"
	"trailrelief/projection"
)

// Transform is the fit mapping derived once per generation and applied
// to every projected point — both the smoothed path and the markers
// share it.
type Transform struct {
	CenterX, CenterY, ZOff float64
	Scale, ZScale          float64
	Vertical, Base         float64
}

// NewTransform derives the fit transform from the bulk-projected bounds
// and the track's original geographic bounds. geoBounds is only
// consulted for the custom-projection vertical-scale correction.
func NewTransform(cfg entities.Config, bounds entities.Bounds, geoBounds projection.GeoBounds) Transform {
	bedXPrime := cfg.BedX - 2*cfg.Buffer
	bedYPrime := cfg.BedY - 2*cfg.Buffer

	zoff := 0.0
	if cfg.ZCut || bounds.MinZ <= 0 {
		zoff = math.Floor(bounds.MinZ - 1)
	}

	scale := fit.Scale(bounds.Width(), bounds.Height(), bedXPrime, bedYPrime)

	zscale := scale
	if cfg.ProjSource == entities.ProjCustom {
		vertSpan := geodesy.DistanceOrFallback(
			entities.GeoPoint{Lon: geoBounds.MinLon(), Lat: geoBounds.MinLat()},
			entities.GeoPoint{Lon: geoBounds.MinLon(), Lat: geoBounds.MaxLat()},
		)
		zscale = bedYPrime / vertSpan
	}

	return Transform{
		CenterX:  bounds.CenterX(),
		CenterY:  bounds.CenterY(),
		ZOff:     zoff,
		Scale:    scale,
		ZScale:   zscale,
		Vertical: cfg.Vertical,
		Base:     cfg.Base,
	}
}

// Apply maps a single projected point through the fit transform:
// (x,y,z) -> (scale*(x-centerx), scale*(y-centery), zscale*(z-zoff)*vertical+base).
func (t Transform) Apply(p entities.PlanarPoint) entities.PlanarPoint {
	return entities.PlanarPoint{
		X: t.Scale * (p.X - t.CenterX),
		Y: t.Scale * (p.Y - t.CenterY),
		Z: t.ZScale*(p.Z-t.ZOff)*t.Vertical + t.Base,
	}
}
