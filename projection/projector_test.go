package projection

import (
	"math"
	"strings"
	"testing"

	"trailrelief/entities"
)

func TestZoneForSouthernHemisphere(t *testing.T) {
	// midpoint lat=-30, lon=-60: southern hemisphere, zone 21.
	def := Definition(-60, -30)
	if !strings.Contains(def, "+zone=21") || !strings.Contains(def, "+south") {
		t.Fatalf("expected zone 21 south, got %q", def)
	}
}

func TestZoneForNorthernHemisphere(t *testing.T) {
	zone := ZoneFor(2.35) // Paris-ish longitude
	if zone != 31 {
		t.Fatalf("expected zone 31, got %d", zone)
	}
}

func TestRingProjectorRadius(t *testing.T) {
	total := 1000.0
	p := &ringProjector{radius: total / (2 * math.Pi)}

	for i := 0; i <= 100; i++ {
		cdr := float64(i) / 100
		pt, err := p.Forward(entities.GeoPoint{}, cdr)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		dist := math.Hypot(pt.X, pt.Y)
		if math.Abs(dist-p.radius) > 1e-6 {
			t.Fatalf("expected distance %v from origin, got %v at cdr=%v", p.radius, dist, cdr)
		}
	}
}

func TestLinearProjector(t *testing.T) {
	p := &linearProjector{totalLength: 500}
	pt, err := p.Forward(entities.GeoPoint{Ele: 12}, 0.5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if pt.X != 0 || pt.Y != 250 || pt.Z != 12 {
		t.Fatalf("unexpected planar point: %+v", pt)
	}
}

func TestMapProjectorCustomRejectsUnknown(t *testing.T) {
	cfg := entities.Config{
		Shape:      entities.ShapeMap,
		ProjSource: entities.ProjCustom,
		Projection: "this is not a proj4 string",
	}
	_, err := New(cfg, 0, 0, 0)
	if err == nil {
		t.Fatal("expected an error for an unrecognised projection string")
	}
	genErr, ok := err.(*entities.GenError)
	if !ok || genErr.Kind != entities.UnknownProjection {
		t.Fatalf("expected UnknownProjection, got %v", err)
	}
}

func TestMapProjectorCustomEmptyStringIsInvalidOption(t *testing.T) {
	cfg := entities.Config{
		Shape:      entities.ShapeMap,
		ProjSource: entities.ProjCustom,
		Projection: "",
	}
	_, err := New(cfg, 0, 0, 0)
	genErr, ok := err.(*entities.GenError)
	if !ok || genErr.Kind != entities.InvalidOption {
		t.Fatalf("expected InvalidOption, got %v", err)
	}
}
