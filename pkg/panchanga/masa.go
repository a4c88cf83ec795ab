package panchanga

import (
	"math"

	"github.com/chandrakala/vedicclock/pkg/astro"
)

// Masa is a lunar month, 1..12 starting from Chaitra.
type Masa struct {
	Number int    `json:"number"`
	Name   string `json:"name"`
}

// MasaFromSunLongitude derives the month from the Sun's ecliptic longitude:
// floor(sunLongitude/30) mod 12 + 1. This is a deliberate solar-longitude
// approximation of the lunar month, not the traditional derivation from the
// nakshatra of the full moon; it can disagree with published panchangas near
// month boundaries. Kept as an approximation because the simpler rule is what
// the display contract is defined against.
func MasaFromSunLongitude(sunLongitude float64) Masa {
	sunLongitude = astro.NormalizeDegrees(sunLongitude)
	number := int(math.Floor(sunLongitude/30))%12 + 1
	return Masa{
		Number: number,
		Name:   MasaNames[number-1],
	}
}
