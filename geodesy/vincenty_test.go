package geodesy

import (
	"math"
	"testing"

	"trailrelief/entities"
)

func TestInverseDistanceCoincidence(t *testing.T) {
	p := entities.GeoPoint{Lon: 12.5, Lat: 45.2}
	if d := InverseDistance(p, p); d != 0 {
		t.Fatalf("expected 0 for coincident points, got %v", d)
	}
}

func TestInverseDistanceSymmetry(t *testing.T) {
	a := entities.GeoPoint{Lon: -3.2, Lat: 51.1}
	b := entities.GeoPoint{Lon: 12.9, Lat: 39.4}

	dab := InverseDistance(a, b)
	dba := InverseDistance(b, a)

	if math.Abs(dab-dba) > 1e-6 {
		t.Fatalf("distance not symmetric: a->b=%v b->a=%v", dab, dba)
	}
}

func TestInverseDistanceTriangleInequality(t *testing.T) {
	a := entities.GeoPoint{Lon: 0, Lat: 0}
	b := entities.GeoPoint{Lon: 10, Lat: 5}
	c := entities.GeoPoint{Lon: 20, Lat: -3}

	ab := InverseDistance(a, b)
	bc := InverseDistance(b, c)
	ac := InverseDistance(a, c)

	if ac > ab+bc+1e-6 {
		t.Fatalf("triangle inequality violated: ac=%v > ab+bc=%v", ac, ab+bc)
	}
}

func TestInverseDistanceReferenceVector(t *testing.T) {
	a := entities.GeoPoint{Lon: 0, Lat: 0}
	b := entities.GeoPoint{Lon: 1, Lat: 0}

	got := InverseDistance(a, b)
	want := 111319.49

	if math.Abs(got-want) > 0.01 {
		t.Fatalf("expected ~%v m, got %v", want, got)
	}
}
