package mesh

import (
	"math"
	"testing"

	"trailrelief/entities"
)

func TestBuildPathStraightLineIsARectangularBox(t *testing.T) {
	length := 100.0
	height := 12.0
	buffer := 5.0
	points := []entities.PlanarPoint{
		{X: 0, Y: 0, Z: height},
		{X: length, Y: 0, Z: height},
	}
	cfg := entities.Config{Buffer: buffer}

	mesh, err := BuildPath(points, cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(mesh.Vertices) != 8 {
		t.Fatalf("expected 8 vertices, got %d", len(mesh.Vertices))
	}
	if len(mesh.Triangles) != 12 {
		t.Fatalf("expected 12 triangles, got %d", len(mesh.Triangles))
	}
	for _, tri := range mesh.Triangles {
		for _, idx := range tri {
			if idx < 0 || idx >= len(mesh.Vertices) {
				t.Fatalf("triangle index %d out of range [0,%d)", idx, len(mesh.Vertices))
			}
		}
	}

	var bounds entities.Bounds
	for _, v := range mesh.Vertices {
		bounds.Extend(v)
	}
	volume := bounds.Width() * bounds.Height() * (bounds.MaxZ - bounds.MinZ)
	want := length * 2 * buffer * height
	if math.Abs(volume-want) > 1e-6 {
		t.Fatalf("expected box volume %v, got %v", want, volume)
	}
}

func TestBuildPathAcuteRunCollapsesMiddleStation(t *testing.T) {
	points := []entities.PlanarPoint{
		{X: 0, Y: 0, Z: 0},
		{X: 10, Y: 0, Z: 0},
		{X: 0, Y: 0.001, Z: 0},
		{X: 10, Y: 0.002, Z: 0},
	}
	cfg := entities.Config{Buffer: 5}

	stations := buildStations(points, cfg.Buffer)
	if len(stations) != 3 {
		t.Fatalf("expected the middle station to be collapsed, leaving 3 stations, got %d", len(stations))
	}
}

func TestBuildPathRejectsFewerThanTwoAcceptedStations(t *testing.T) {
	points := []entities.PlanarPoint{{X: 0, Y: 0, Z: 0}}
	_, err := BuildPath(points, entities.Config{Buffer: 5})
	if err == nil {
		t.Fatal("expected an error for a single-station path")
	}
}
