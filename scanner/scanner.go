// Package scanner implements the single forward pass over a raw point
// sequence: distance accumulation, geographic bounds, raw marker
// placement, projector selection, auto-smoothing scale estimation, and
// the distance-threshold filter.
package scanner

import (
	"math"

	"trailrelief/entities"
	"trailrelief/fit"
	"trailrelief/geodesy"
	"trailrelief/projection"
)

// Result carries everything the scanner derives from the raw points,
// consumed by the bulk Projector (§4.5) and Fit transform (§4.6) phases
// that follow it.
type Result struct {
	TotalDist  float64
	RingRadius float64
	GeoBounds  projection.GeoBounds
	Markers    []entities.Marker

	Kept        []entities.GeoPoint
	KeptDist    []float64 // len(Kept)-1 consecutive kept-to-kept distances
	SmoothTotal float64

	Projector projection.Projector
}

type rawMarker struct {
	geo         entities.GeoPoint
	cumDist     float64
	endpointIdx int // marker lies on the segment (endpointIdx-1 -> endpointIdx)
}

// Scan performs the forward pass and returns the Result the rest of the
// generation pipeline builds on.
func Scan(points []entities.GeoPoint, cfg entities.Config) (Result, error) {
	var res Result
	res.GeoBounds = projection.NewGeoBounds()
	res.GeoBounds.Extend(points[0])

	rawCum := make([]float64, len(points))
	var rawMarkers []rawMarker
	md := 0.0 // distance accumulated toward the next marker

	for i := 0; i < len(points)-1; i++ {
		a, b := points[i], points[i+1]
		res.GeoBounds.Extend(b)

		segDist := geodesy.DistanceOrFallback(a, b)
		res.TotalDist += segDist
		rawCum[i+1] = rawCum[i] + segDist

		if cfg.MarkerInterval > 0 {
			consumed := 0.0
			for md+(segDist-consumed) >= cfg.MarkerInterval-1e-9 {
				need := cfg.MarkerInterval - md
				consumed += need
				fraction := consumed / segDist
				rawMarkers = append(rawMarkers, rawMarker{
					geo: entities.GeoPoint{
						Lon: a.Lon + fraction*(b.Lon-a.Lon),
						Lat: a.Lat + fraction*(b.Lat-a.Lat),
						Ele: a.Ele + fraction*(b.Ele-a.Ele),
					},
					cumDist:     rawCum[i] + consumed,
					endpointIdx: i + 1,
				})
				md = 0
			}
			md += segDist - consumed
		}
	}
	res.RingRadius = res.TotalDist / (2 * math.Pi)

	projector, err := projection.New(cfg, res.GeoBounds.MidLon(), res.GeoBounds.MidLat(), res.TotalDist)
	if err != nil {
		return Result{}, err
	}
	res.Projector = projector

	for _, rm := range rawMarkers {
		loc, err := projector.Forward(rm.geo, safeRatio(rm.cumDist, res.TotalDist))
		if err != nil {
			return Result{}, err
		}
		a := points[rm.endpointIdx-1]
		b := points[rm.endpointIdx]
		pa, err := projector.Forward(a, safeRatio(rawCum[rm.endpointIdx-1], res.TotalDist))
		if err != nil {
			return Result{}, err
		}
		pb, err := projector.Forward(b, safeRatio(rawCum[rm.endpointIdx], res.TotalDist))
		if err != nil {
			return Result{}, err
		}
		orientation := math.Atan2(pb.Y-pa.Y, pb.X-pa.X)

		res.Markers = append(res.Markers, entities.Marker{
			Location:    loc,
			Orientation: orientation,
			Width:       2*cfg.Buffer + 2,
		})
	}

	mindist := resolveMindist(cfg, res)
	res.Kept, res.KeptDist, res.SmoothTotal = distanceFilter(points, mindist)

	return res, nil
}

func safeRatio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}

// resolveMindist derives the distance-filter threshold: a caller-supplied
// span, or an auto-estimated one derived from the shape's preliminary
// bed-fit scale.
func resolveMindist(cfg entities.Config, res Result) float64 {
	if cfg.SmoothType == entities.SmoothSpan {
		return cfg.SmoothSpan
	}

	bedXPrime := cfg.BedX - 2*cfg.Buffer
	bedYPrime := cfg.BedY - 2*cfg.Buffer

	var scale float64
	switch cfg.Shape {
	case entities.ShapeMap:
		corners := res.GeoBounds.Corners()
		var minX, maxX, minY, maxY float64
		for i, c := range corners {
			x, y := projection.GoogleForward(c[0], c[1])
			if i == 0 || x < minX {
				minX = x
			}
			if i == 0 || x > maxX {
				maxX = x
			}
			if i == 0 || y < minY {
				minY = y
			}
			if i == 0 || y > maxY {
				maxY = y
			}
		}
		scale = fit.Scale(maxX-minX, maxY-minY, bedXPrime, bedYPrime)
	case entities.ShapeLinear:
		scale = fit.Scale(res.TotalDist, 0, bedXPrime, bedYPrime)
	case entities.ShapeRing:
		d := 2 * res.RingRadius
		scale = fit.Scale(d, d, bedXPrime, bedYPrime)
	}

	return math.Floor(cfg.Buffer / scale)
}

// distanceFilter walks raw points in order, keeping the first point and
// every subsequent point whose Vincenty distance to the last kept point
// is at least mindist (or unconditionally when mindist is zero). The
// final raw point is always kept, regardless of its distance to the
// previous kept point, so the path never stops short of the track's
// actual endpoint.
func distanceFilter(points []entities.GeoPoint, mindist float64) ([]entities.GeoPoint, []float64, float64) {
	kept := []entities.GeoPoint{points[0]}
	var dists []float64
	total := 0.0
	last := points[0]

	for i := 1; i < len(points); i++ {
		d := geodesy.DistanceOrFallback(last, points[i])
		isLast := i == len(points)-1
		if mindist == 0 || d >= mindist || isLast {
			kept = append(kept, points[i])
			dists = append(dists, d)
			total += d
			last = points[i]
		}
	}

	return kept, dists, total
}
