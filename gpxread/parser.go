// Package gpxread turns raw GPX document bytes into the ordered point
// sequence and summary the rest of the pipeline works from.
package gpxread

import (
	"trailrelief/entities"

	"github.com/tkrajina/gpxgo/gpx"
)

// Parse reads a single track's points from a GPX document in document
// order, concatenating every segment of the first track. Elevation for
// a point with no <ele> child, or for every point when cfg.ZOverride is
// set, falls back to cfg.ZConstant — read via Elevation.NotNull() /
// Elevation.Value() the way _examples/dyuri-vibe-tracker's
// tools/gpxup/main.go reads the same library's nullable field.
//
// TotalDistance in the returned TrackInfo is left at zero: geodesic
// distance needs geodesy.InverseDistance, which belongs to the scanner
// phase that walks the points next; this parser only reports what it
// can derive from the raw points themselves.
func Parse(data []byte, cfg entities.Config) ([]entities.GeoPoint, entities.TrackInfo, error) {
	doc, err := gpx.ParseBytes(data)
	if err != nil {
		return nil, entities.TrackInfo{}, entities.NewGenError(entities.MalformedXML, err.Error())
	}

	if len(doc.Tracks) == 0 {
		return nil, entities.TrackInfo{}, entities.NewGenError(entities.NoTrack, "gpx document has no <trk> elements")
	}
	track := doc.Tracks[0]

	var points []entities.GeoPoint
	for _, seg := range track.Segments {
		for _, gp := range seg.Points {
			ele := cfg.ZConstant
			if gp.Elevation.NotNull() && !cfg.ZOverride {
				ele = gp.Elevation.Value()
			}
			points = append(points, entities.GeoPoint{
				Lon: gp.Longitude,
				Lat: gp.Latitude,
				Ele: ele,
			})
		}
	}

	if len(points) < 2 {
		return nil, entities.TrackInfo{}, entities.NewGenError(entities.TooFewPoints,
			"track has fewer than 2 points")
	}

	info := summarize(track.Name, points)
	return points, info, nil
}

func summarize(name string, points []entities.GeoPoint) entities.TrackInfo {
	info := entities.TrackInfo{
		Name:         name,
		PointCount:   len(points),
		Start:        points[0],
		End:          points[len(points)-1],
		MinElevation: points[0].Ele,
		MaxElevation: points[0].Ele,
	}

	prev := points[0].Ele
	for _, p := range points {
		if p.Ele < info.MinElevation {
			info.MinElevation = p.Ele
		}
		if p.Ele > info.MaxElevation {
			info.MaxElevation = p.Ele
		}
		if entities.HasElevationSentinel(p.Ele) {
			info.HasElevation = true
		}
		delta := p.Ele - prev
		if delta > 0 {
			info.Gain += delta
		} else {
			info.Loss += -delta
		}
		prev = p.Ele
	}

	return info
}
