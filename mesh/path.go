package mesh

import (
	"math"

	"gonum.org/v1/gonum/spatial/r3"

	"trailrelief/entities"
)

// station is one accepted point along the fitted path, carrying both
// its centreline coordinates and its mitred left/right offset points.
type station struct {
	x, y, z    float64
	lx, ly     float64
	rx, ry     float64
}

// BuildPath walks the fitted planar points in order, computes the
// mitred-joint offsets at each station, collapses acute oscillating
// runs, and emits the closed triangle soup for a ribbon solid.
func BuildPath(points []entities.PlanarPoint, cfg entities.Config) (entities.Mesh, error) {
	stations := buildStations(points, cfg.Buffer)
	if len(stations) < 2 {
		return entities.Mesh{}, entities.NewGenError(entities.InvalidOption,
			"path builder needs at least 2 accepted stations")
	}

	var mesh entities.Mesh
	lastBase := -1
	for s, st := range stations {
		base := mesh.AddVertex(entities.PlanarPoint{X: st.lx, Y: st.ly, Z: 0})
		mesh.AddVertex(entities.PlanarPoint{X: st.rx, Y: st.ry, Z: 0})
		mesh.AddVertex(entities.PlanarPoint{X: st.lx, Y: st.ly, Z: st.z})
		mesh.AddVertex(entities.PlanarPoint{X: st.rx, Y: st.ry, Z: st.z})

		if s == 0 {
			mesh.AddTriangle(base+0, base+2, base+3)
			mesh.AddTriangle(base+3, base+1, base+0)
		} else {
			emitBridge(&mesh, lastBase)
		}
		lastBase = base
	}
	emitEndCap(&mesh, lastBase)

	return mesh, nil
}

// emitBridge emits the eight triangles joining the quad based at i to
// the quad based at i+4 — one quad-to-quad bridge, named to keep the
// index arithmetic from drifting off by one when read later.
func emitBridge(mesh *entities.Mesh, i int) {
	mesh.AddTriangle(i+2, i+6, i+3)
	mesh.AddTriangle(i+3, i+6, i+7)
	mesh.AddTriangle(i+3, i+7, i+5)
	mesh.AddTriangle(i+3, i+5, i+1)
	mesh.AddTriangle(i+6, i+2, i+0)
	mesh.AddTriangle(i+6, i+0, i+4)
	mesh.AddTriangle(i+0, i+5, i+4)
	mesh.AddTriangle(i+0, i+1, i+5)
}

// emitEndCap closes the final station's own quad (based at i), mirroring
// the start cap's triangle shape with reversed winding.
func emitEndCap(mesh *entities.Mesh, i int) {
	mesh.AddTriangle(i+2, i+1, i+3)
	mesh.AddTriangle(i+2, i+0, i+1)
}

// buildStations computes the mitred-joint offsets for every input point
// and applies the acute-run collapse, returning only accepted stations
// in order.
func buildStations(points []entities.PlanarPoint, buffer float64) []station {
	n := len(points)
	if n == 0 {
		return nil
	}

	angle := make([]float64, n)
	for i := 0; i < n-1; i++ {
		angle[i] = math.Atan2(points[i+1].Y-points[i].Y, points[i+1].X-points[i].X)
	}
	if n > 1 {
		angle[n-1] = angle[n-2]
	}

	rel := make([]float64, n)
	for i := 1; i < n; i++ {
		rel[i] = wrapAngle(angle[i] - angle[i-1])
	}

	skip := make([]bool, n)
	for i := 0; i < n-1; i++ {
		if acute(rel[i]) && acute(rel[i+1]) {
			skip[i] = true
		}
	}

	stations := make([]station, 0, n)
	for i := 0; i < n; i++ {
		if skip[i] {
			continue
		}
		prevAngle := angle[i]
		if i > 0 {
			prevAngle = angle[i-1]
		}
		joint := prevAngle + rel[i]/2

		jointr := buffer / math.Cos(rel[i]/2)
		if math.Abs(jointr) > 2*buffer {
			jointr = math.Copysign(2*buffer, jointr)
		}

		base := r3.Vec{X: points[i].X, Y: points[i].Y, Z: 0}
		normal := r3.Vec{X: math.Cos(joint + math.Pi/2), Y: math.Sin(joint + math.Pi/2), Z: 0}
		offset := r3.Scale(jointr, normal)

		left := r3.Add(base, offset)
		right := r3.Sub(base, offset)

		stations = append(stations, station{
			x: points[i].X, y: points[i].Y, z: points[i].Z,
			lx: left.X, ly: left.Y,
			rx: right.X, ry: right.Y,
		})
	}

	return stations
}

// wrapAngle normalises a into (-pi, pi].
func wrapAngle(a float64) float64 {
	for a > math.Pi {
		a -= 2 * math.Pi
	}
	for a <= -math.Pi {
		a += 2 * math.Pi
	}
	return a
}

// acute reports whether a turn angle falls in the "sharp reversal"
// range that triggers the acute-run collapse.
func acute(rel float64) bool {
	a := math.Abs(rel)
	return a > math.Pi/2 && a < 3*math.Pi/2
}
