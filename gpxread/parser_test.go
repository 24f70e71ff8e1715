package gpxread

import (
	"strings"
	"testing"

	"trailrelief/entities"
)

const threePointGPX = `<?xml version="1.0"?>
<gpx version="1.1" creator="test">
  <trk>
    <name>ridge loop</name>
    <trkseg>
      <trkpt lat="47.0" lon="8.0"><ele>400</ele></trkpt>
      <trkpt lat="47.1" lon="8.1"><ele>450</ele></trkpt>
      <trkpt lat="47.2" lon="8.2"><ele>420</ele></trkpt>
    </trkseg>
  </trk>
</gpx>`

const noEleGPX = `<?xml version="1.0"?>
<gpx version="1.1" creator="test">
  <trk>
    <name>flat</name>
    <trkseg>
      <trkpt lat="1.0" lon="1.0"></trkpt>
      <trkpt lat="1.0" lon="1.1"></trkpt>
    </trkseg>
  </trk>
</gpx>`

const noTrackGPX = `<?xml version="1.0"?>
<gpx version="1.1" creator="test"></gpx>`

const onePointGPX = `<?xml version="1.0"?>
<gpx version="1.1" creator="test">
  <trk>
    <trkseg>
      <trkpt lat="1.0" lon="1.0"><ele>10</ele></trkpt>
    </trkseg>
  </trk>
</gpx>`

func TestParseRoundTripsPointsInOrder(t *testing.T) {
	points, info, err := Parse([]byte(threePointGPX), entities.DefaultConfig())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 3 {
		t.Fatalf("expected 3 points, got %d", len(points))
	}
	want := []entities.GeoPoint{
		{Lon: 8.0, Lat: 47.0, Ele: 400},
		{Lon: 8.1, Lat: 47.1, Ele: 450},
		{Lon: 8.2, Lat: 47.2, Ele: 420},
	}
	for i, w := range want {
		if points[i] != w {
			t.Fatalf("point %d: expected %+v, got %+v", i, w, points[i])
		}
	}
	if info.Name != "ridge loop" || info.PointCount != 3 {
		t.Fatalf("unexpected info: %+v", info)
	}
	if info.MaxElevation != 450 || info.MinElevation != 400 {
		t.Fatalf("unexpected elevation extremes: %+v", info)
	}
	if info.Gain != 50 || info.Loss != 30 {
		t.Fatalf("unexpected gain/loss: %+v", info)
	}
}

func TestParseElevationFallsBackToZConstant(t *testing.T) {
	cfg := entities.DefaultConfig()
	cfg.ZConstant = 123
	points, _, err := Parse([]byte(noEleGPX), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range points {
		if p.Ele != 123 {
			t.Fatalf("expected fallback elevation 123, got %v", p.Ele)
		}
	}
}

func TestParseZOverrideForcesConstantEvenWithEle(t *testing.T) {
	cfg := entities.DefaultConfig()
	cfg.ZOverride = true
	cfg.ZConstant = 7
	points, _, err := Parse([]byte(threePointGPX), cfg)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, p := range points {
		if p.Ele != 7 {
			t.Fatalf("expected overridden elevation 7, got %v", p.Ele)
		}
	}
}

func TestParseMalformedXML(t *testing.T) {
	_, _, err := Parse([]byte("not xml at all <<<"), entities.DefaultConfig())
	genErr, ok := err.(*entities.GenError)
	if !ok || genErr.Kind != entities.MalformedXML {
		t.Fatalf("expected MalformedXML, got %v", err)
	}
}

func TestParseNoTrack(t *testing.T) {
	_, _, err := Parse([]byte(noTrackGPX), entities.DefaultConfig())
	genErr, ok := err.(*entities.GenError)
	if !ok || genErr.Kind != entities.NoTrack {
		t.Fatalf("expected NoTrack, got %v", err)
	}
}

func TestParseTooFewPoints(t *testing.T) {
	_, _, err := Parse([]byte(onePointGPX), entities.DefaultConfig())
	genErr, ok := err.(*entities.GenError)
	if !ok || genErr.Kind != entities.TooFewPoints {
		t.Fatalf("expected TooFewPoints, got %v", err)
	}
}

func TestParseErrorMessagesAreNonEmpty(t *testing.T) {
	_, _, err := Parse([]byte(noTrackGPX), entities.DefaultConfig())
	if !strings.Contains(err.Error(), "trk") {
		t.Fatalf("expected error message to mention trk, got %q", err.Error())
	}
}
