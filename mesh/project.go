// Package mesh turns a scanner's kept-point sequence into a fitted,
// triangulated ribbon solid plus the oriented marker boxes that
// accompany it — the bulk projection, fit transform, path builder, and
// marker builder stages.
package mesh

import (
	"trailrelief/entities"
	"trailrelief/scanner"
)

// Project applies the scanner's chosen Projector to every kept point in
// order, threading the cumulative kept distance through as cdr for the
// linear/ring shapes, and accumulating the resulting planar bounds. If
// cfg.RegionFit is set, the x/y bounds are overwritten here with the
// caller's own rectangle instead of the track's natural extent — the
// fit transform downstream reads these bounds and never knows the
// difference.
func Project(res scanner.Result, cfg entities.Config) ([]entities.PlanarPoint, entities.Bounds, error) {
	projected := make([]entities.PlanarPoint, len(res.Kept))
	var bounds entities.Bounds

	cd := 0.0
	for i, g := range res.Kept {
		p, err := res.Projector.Forward(g, ratio(cd, res.SmoothTotal))
		if err != nil {
			return nil, entities.Bounds{}, err
		}
		projected[i] = p
		bounds.Extend(p)
		if i < len(res.KeptDist) {
			cd += res.KeptDist[i]
		}
	}

	if cfg.RegionFit {
		bounds.MinX, bounds.MaxX = cfg.RegionMinX, cfg.RegionMaxX
		bounds.MinY, bounds.MaxY = cfg.RegionMinY, cfg.RegionMaxY
	}

	return projected, bounds, nil
}

func ratio(num, den float64) float64 {
	if den == 0 {
		return 0
	}
	return num / den
}
