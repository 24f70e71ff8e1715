// Package fit computes the bed-fit scale shared by the
// scanner's auto-smoothing estimate and the final fit transform —
// one formula, used twice at two different levels of precision.
package fit

// Scale returns the uniform scale factor that fits a planar extent of
// size (w, h) inside a printable rectangle of size (bedXPrime,
// bedYPrime) — the bed dimensions with the ribbon buffer already
// subtracted from both axes. The smaller of the two axis ratios wins,
// so the whole extent fits on both axes at once.
func Scale(w, h, bedXPrime, bedYPrime float64) float64 {
	sx := bedXPrime / w
	sy := bedYPrime / h
	if sx < sy {
		return sx
	}
	return sy
}
