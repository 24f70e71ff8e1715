package entities

// GeoPoint is a geographic sample: longitude/latitude in decimal degrees,
// elevation in metres.
type GeoPoint struct {
	Lon float64
	Lat float64
	Ele float64
}

// PlanarPoint is a point in a planar coordinate system, in metres. Z
// carries elevation, pre- or post-scaling depending on pipeline stage.
type PlanarPoint struct {
	X float64
	Y float64
	Z float64
}
