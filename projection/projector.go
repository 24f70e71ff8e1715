// Package projection turns geographic points into planar points under
// one of three selectable profiles: map (cartographic forward
// transform), linear (distance profile), ring (closed circular profile).
package projection

import (
	"math"

	"trailrelief/entities"
)

// Projector projects a single geographic point to a planar point. cdr is
// the precomputed dist_ratio (cumulative distance / total distance) for
// the smoothed path; map projectors ignore it.
type Projector interface {
	Forward(p entities.GeoPoint, cdr float64) (entities.PlanarPoint, error)
}

// New builds the Projector selected by cfg.Shape, resolving the map
// shape's cartographic definition per cfg.ProjSource. midLon/midLat are
// the geographic midpoint used by auto-UTM; totalLength is the raw
// geodesic track length used by the linear and ring shapes.
func New(cfg entities.Config, midLon, midLat, totalLength float64) (Projector, error) {
	switch cfg.Shape {
	case entities.ShapeLinear:
		return &linearProjector{totalLength: totalLength}, nil
	case entities.ShapeRing:
		return &ringProjector{radius: totalLength / (2 * math.Pi)}, nil
	case entities.ShapeMap:
		return newMapProjector(cfg, midLon, midLat)
	default:
		return nil, entities.NewFieldError("shapetype", "unrecognised shape")
	}
}

// linearProjector projects each point to (0, dist_ratio*total_length, ele).
type linearProjector struct {
	totalLength float64
}

func (p *linearProjector) Forward(g entities.GeoPoint, cdr float64) (entities.PlanarPoint, error) {
	return entities.PlanarPoint{X: 0, Y: cdr * p.totalLength, Z: g.Ele}, nil
}

// ringProjector projects each point onto a circle of the track's own
// circumference, parameterised by its position along the path.
type ringProjector struct {
	radius float64
}

func (p *ringProjector) Forward(g entities.GeoPoint, cdr float64) (entities.PlanarPoint, error) {
	t := cdr * 2 * math.Pi
	return entities.PlanarPoint{
		X: p.radius * math.Cos(t),
		Y: p.radius * math.Sin(t),
		Z: g.Ele,
	}, nil
}

// mapProjector applies a configured cartographic forward transform.
type mapProjector struct {
	kind  mapKind
	zone  int
	south bool
}

type mapKind int

const (
	mapGoogle mapKind = iota
	mapUTM
)

func newMapProjector(cfg entities.Config, midLon, midLat float64) (*mapProjector, error) {
	switch cfg.ProjSource {
	case entities.ProjGoogle:
		return &mapProjector{kind: mapGoogle}, nil

	case entities.ProjAutoUTM:
		zone := ZoneFor(midLon)
		return &mapProjector{kind: mapUTM, zone: zone, south: midLat < 0}, nil

	case entities.ProjCustom:
		if cfg.Projection == "" {
			return nil, entities.NewFieldError("projection", "empty custom projection string")
		}
		if cfg.Projection == "GOOGLE" {
			return &mapProjector{kind: mapGoogle}, nil
		}
		parsed, ok := parseUTMDefinition(cfg.Projection)
		if !ok {
			return nil, entities.NewGenError(entities.UnknownProjection,
				"projection not recognised: "+cfg.Projection)
		}
		return &mapProjector{kind: mapUTM, zone: parsed.zone, south: parsed.south}, nil

	default:
		return nil, entities.NewFieldError("projtype", "unrecognised projection source")
	}
}

func (p *mapProjector) Forward(g entities.GeoPoint, _ float64) (entities.PlanarPoint, error) {
	var x, y float64
	switch p.kind {
	case mapGoogle:
		x, y = googleForward(g.Lon, g.Lat)
	case mapUTM:
		x, y = utmForward(g.Lon, g.Lat, p.zone, p.south)
	}
	return entities.PlanarPoint{X: x, Y: y, Z: g.Ele}, nil
}

// Definition returns the proj4-style definition string this projector
// applies ("GOOGLE" or a synthesised UTM definition).
func (p *mapProjector) Definition() string {
	if p.kind == mapGoogle {
		return "GOOGLE"
	}
	return utmDefinitionString(p.zone, p.south)
}
