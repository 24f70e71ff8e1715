package entities

// Bounds is an axis-aligned box over planar points, in metres. Initialised
// from the first planar point seen, then extended by every subsequent one.
// Deliberately six plain floats: unlike geographic bounds, planar bounds
// carry no ellipsoidal semantics a geometry library would add value to.
type Bounds struct {
	MinX, MaxX float64
	MinY, MaxY float64
	MinZ, MaxZ float64

	seeded bool
}

// Extend grows the bounds to include p, seeding on the first call.
func (b *Bounds) Extend(p PlanarPoint) {
	if !b.seeded {
		b.MinX, b.MaxX = p.X, p.X
		b.MinY, b.MaxY = p.Y, p.Y
		b.MinZ, b.MaxZ = p.Z, p.Z
		b.seeded = true
		return
	}
	if p.X < b.MinX {
		b.MinX = p.X
	}
	if p.X > b.MaxX {
		b.MaxX = p.X
	}
	if p.Y < b.MinY {
		b.MinY = p.Y
	}
	if p.Y > b.MaxY {
		b.MaxY = p.Y
	}
	if p.Z < b.MinZ {
		b.MinZ = p.Z
	}
	if p.Z > b.MaxZ {
		b.MaxZ = p.Z
	}
}

// Width returns MaxX-MinX.
func (b Bounds) Width() float64 { return b.MaxX - b.MinX }

// Height returns MaxY-MinY.
func (b Bounds) Height() float64 { return b.MaxY - b.MinY }

// CenterX returns the midpoint of the X span.
func (b Bounds) CenterX() float64 { return (b.MinX + b.MaxX) / 2 }

// CenterY returns the midpoint of the Y span.
func (b Bounds) CenterY() float64 { return (b.MinY + b.MaxY) / 2 }
