package astro

import "math"

// NormalizeDegrees wraps an angle to the range [0, 360). math.Mod keeps the
// sign of the dividend, so negative inputs need the extra +360 before the
// second reduction.
func NormalizeDegrees(deg float64) float64 {
	return math.Mod(math.Mod(deg, 360)+360, 360)
}
