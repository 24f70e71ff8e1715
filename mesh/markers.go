package mesh

import (
	"github.com/go-gl/mathgl/mgl64"

	"trailrelief/entities"
)

// BuildMarkerBoxes turns each fitted marker into its own small closed
// box mesh: dimensions (1, marker.Width, markerHeight+2), rotated
// around z by the marker's orientation and translated so its base
// rests on z=0. Markers are never merged into the ribbon
// mesh — each gets its own entities.Mesh, carried separately in the
// artifact for callers to union externally.
func BuildMarkerBoxes(markers []entities.Marker, markerHeight float64) []entities.Mesh {
	meshes := make([]entities.Mesh, len(markers))
	for i, m := range markers {
		meshes[i] = markerBox(m, markerHeight)
	}
	return meshes
}

var markerFaces = [12][3]int{
	{0, 1, 2}, {0, 2, 3}, // bottom
	{4, 6, 5}, {4, 7, 6}, // top
	{0, 4, 5}, {0, 5, 1}, // front (-y)
	{1, 5, 6}, {1, 6, 2}, // right (+x)
	{2, 6, 7}, {2, 7, 3}, // back (+y)
	{3, 7, 4}, {3, 4, 0}, // left (-x)
}

func markerBox(m entities.Marker, markerHeight float64) entities.Mesh {
	hx := 0.5
	hy := m.Width / 2
	hz := (markerHeight + 2) / 2

	corners := [8]mgl64.Vec3{
		{-hx, -hy, -hz}, {hx, -hy, -hz}, {hx, hy, -hz}, {-hx, hy, -hz},
		{-hx, -hy, hz}, {hx, -hy, hz}, {hx, hy, hz}, {-hx, hy, hz},
	}

	rot := mgl64.Rotate3DZ(m.Orientation)

	var mesh entities.Mesh
	for _, c := range corners {
		r := rot.Mul3x1(c)
		mesh.AddVertex(entities.PlanarPoint{
			X: r[0] + m.Location.X,
			Y: r[1] + m.Location.Y,
			Z: r[2] + hz,
		})
	}
	for _, f := range markerFaces {
		mesh.AddTriangle(f[0], f[1], f[2])
	}

	return mesh
}
