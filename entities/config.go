package entities

// Shape selects the planar profile a track is projected into.
type Shape int

const (
	ShapeMap Shape = iota
	ShapeLinear
	ShapeRing
)

// ProjSource selects where the map-shape projection definition comes from.
type ProjSource int

const (
	// ProjGoogle selects the built-in Web-Mercator-like "GOOGLE" transform.
	ProjGoogle ProjSource = iota
	// ProjCustom uses the caller-supplied Projection string.
	ProjCustom
	// ProjAutoUTM derives a UTM zone from the track's geographic midpoint.
	ProjAutoUTM
)

// SmoothType selects how the scanner computes its distance-threshold filter.
type SmoothType int

const (
	// SmoothAuto derives mindist from the bed-fit scale.
	SmoothAuto SmoothType = iota
	// SmoothSpan uses a caller-supplied minimum inter-point distance.
	SmoothSpan
)

// Config is a fully typed, explicit configuration value passed once per
// generation. validation.ValidateConfig checks its ranged options
// before phase 1 runs.
type Config struct {
	Buffer   float64 // half-width of the ribbon, metres of model
	Vertical float64 // vertical exaggeration factor, >= 1
	BedX     float64 // target printable area X, mm
	BedY     float64 // target printable area Y, mm
	Base     float64 // constant base thickness added to every top-vertex z

	Shape      Shape
	ProjSource ProjSource
	Projection string // proj4 definition, only when ProjSource == ProjCustom

	ZOverride bool // force elevation to ZConstant everywhere
	ZConstant float64

	ZCut bool // shift z so the minimum sits just above zero

	RegionFit bool // replace planar x/y bounds with the caller's rectangle
	RegionMinX, RegionMaxX float64
	RegionMinY, RegionMaxY float64

	MarkerInterval float64 // geodesic spacing between markers, metres; 0 disables
	MarkerHeight   float64 // vertical extent of a marker box before the +2 pad

	SmoothType SmoothType
	SmoothSpan float64 // minimum inter-point geodesic distance, SmoothType == SmoothSpan
}

// DefaultConfig returns a Config populated with the reference defaults
// (a 5mm-buffer ribbon fit to a 100x100mm bed, map shape, auto UTM).
func DefaultConfig() Config {
	return Config{
		Buffer:         5,
		Vertical:       1.5,
		BedX:           100,
		BedY:           100,
		Base:           1,
		Shape:          ShapeMap,
		ProjSource:     ProjAutoUTM,
		ZCut:           true,
		MarkerInterval: 0,
		MarkerHeight:   3,
		SmoothType:     SmoothAuto,
	}
}
