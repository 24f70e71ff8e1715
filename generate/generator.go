// Package generate is the orchestrator: one blocking call that drives
// the scanner, bulk projector, fit transform, and path/marker builders
// in order and hands back a finished artifact or a single error.
package generate

import (
	"trailrelief/entities"
	"trailrelief/gpxread"
	"trailrelief/mesh"
	"trailrelief/scanner"
	"trailrelief/validation"
)

// ProgressFunc is a best-effort progress callback. The core never
// blocks on it or synchronises with it, and calls it from the same
// goroutine that invoked Generate.
type ProgressFunc func(percent int)

// Generator owns a single generation's progress reporting. It carries
// no other state between calls — all intermediate pipeline state lives
// on Generate's stack, never escaping except as the returned artifact.
type Generator struct {
	Progress ProgressFunc
}

// New creates a Generator. progress may be nil.
func New(progress ProgressFunc) *Generator {
	return &Generator{Progress: progress}
}

// Generate runs the pipeline's four phases in order: scan (~30%),
// project (~50%), fit (~70%), build (~90%, then done at 100%). It
// never returns a partial artifact alongside a non-nil error.
func (g *Generator) Generate(points []entities.GeoPoint, cfg entities.Config) (*entities.Artifact, error) {
	if err := validation.ValidateConfig(cfg); err != nil {
		return nil, err
	}
	if len(points) < 2 {
		return nil, entities.NewGenError(entities.TooFewPoints, "generation needs at least 2 points")
	}

	res, err := scanner.Scan(points, cfg)
	if err != nil {
		return nil, err
	}
	g.report(30)

	projected, bounds, err := mesh.Project(res, cfg)
	if err != nil {
		return nil, err
	}
	g.report(50)

	transform := mesh.NewTransform(cfg, bounds, res.GeoBounds)
	fitted := make([]entities.PlanarPoint, len(projected))
	for i, p := range projected {
		fitted[i] = transform.Apply(p)
	}
	fittedMarkers := make([]entities.Marker, len(res.Markers))
	for i, m := range res.Markers {
		fittedMarkers[i] = entities.Marker{
			Location:    transform.Apply(m.Location),
			Orientation: m.Orientation,
			Width:       m.Width,
		}
	}
	g.report(70)

	pathMesh, err := mesh.BuildPath(fitted, cfg)
	if err != nil {
		return nil, err
	}
	markerMeshes := mesh.BuildMarkerBoxes(fittedMarkers, cfg.MarkerHeight)
	g.report(90)

	artifact := &entities.Artifact{
		Mesh:          pathMesh,
		Markers:       fittedMarkers,
		MarkerMeshes:  markerMeshes,
		Bounds:        bounds,
		TotalDistance: res.TotalDist,
		Scale:         transform.Scale,
		Bed:           entities.Bed{X: cfg.BedX, Y: cfg.BedY},
	}
	g.report(100)

	return artifact, nil
}

// FromGPX parses a GPX document and generates an artifact from it in
// one call, the shape a reference CLI driver needs.
func (g *Generator) FromGPX(data []byte, cfg entities.Config) (*entities.Artifact, entities.TrackInfo, error) {
	points, info, err := gpxread.Parse(data, cfg)
	if err != nil {
		return nil, entities.TrackInfo{}, err
	}
	artifact, err := g.Generate(points, cfg)
	if err != nil {
		return nil, info, err
	}
	info.TotalDistance = artifact.TotalDistance
	return artifact, info, nil
}

func (g *Generator) report(percent int) {
	if g.Progress != nil {
		g.Progress(percent)
	}
}
