// Package panchanga derives lunar calendar facts (tithi, paksha, nakshatra,
// masa) from ecliptic angles. All functions are pure: angles in, structured
// results out. Ephemeris access lives in pkg/astro.
package panchanga

import (
	"math"

	"github.com/chandrakala/vedicclock/pkg/astro"
)

// Paksha identifies the lunar fortnight.
type Paksha string

const (
	PakshaShukla  Paksha = "Shukla"  // waxing, elongation [0,180)
	PakshaKrishna Paksha = "Krishna" // waning, elongation [180,360)
)

// TithiSpan is the elongation covered by one tithi, in degrees.
const TithiSpan = 12.0

// UnboundedMinutes is the sentinel reported for a time-to-boundary estimate
// when the driving rate is degenerate (zero). It is finite so it survives
// JSON encoding, and large enough that no real boundary estimate reaches it
// (a tithi lasts under two days).
const UnboundedMinutes = 1e9

// minimum rate treated as non-degenerate, degrees per hour
const rateEpsilon = 1e-9

// Tithi is one of the 30 lunar days, located within the current lunar month.
type Tithi struct {
	Number          int     `json:"number"`          // 1..30
	Name            string  `json:"name"`            // from TithiNames
	Paksha          Paksha  `json:"paksha"`          // Shukla or Krishna
	ProgressPercent float64 `json:"progressPercent"` // [0,100)
	MinutesToNext   float64 `json:"minutesToNext"`   // estimate; UnboundedMinutes when rate is degenerate
}

// TithiFromElongation partitions the Sun-Moon elongation into the 30-tithi
// grid. rateDegPerHour is the current elongation rate (see
// astro.ElongationRate) and only affects the MinutesToNext estimate.
func TithiFromElongation(elongation, rateDegPerHour float64) Tithi {
	elongation = astro.NormalizeDegrees(elongation)

	number := int(math.Floor(elongation/TithiSpan)) + 1
	within := math.Mod(elongation, TithiSpan)

	paksha := PakshaShukla
	if elongation >= 180 {
		paksha = PakshaKrishna
	}

	return Tithi{
		Number:          number,
		Name:            TithiNames[number-1],
		Paksha:          paksha,
		ProgressPercent: within / TithiSpan * 100,
		MinutesToNext:   minutesToBoundary(TithiSpan-within, rateDegPerHour),
	}
}

// IsPurnima reports whether this is the full moon tithi.
func (t Tithi) IsPurnima() bool {
	return t.Number == 15 && t.Paksha == PakshaShukla
}

// IsAmavasya reports whether this is the new moon tithi. The second branch
// (15th tithi of the Krishna paksha) covers an alternate numbering convention
// in which each fortnight counts 1-15; both conventions are accepted.
func (t Tithi) IsAmavasya() bool {
	return t.Number == 30 || (t.Number == 15 && t.Paksha == PakshaKrishna)
}

// IsEkadashi reports whether this is the 11th tithi of either fortnight, the
// traditional fasting day.
func (t Tithi) IsEkadashi() bool {
	return t.Number == 11 || t.Number == 26
}

// minutesToBoundary converts remaining angular travel to minutes at the given
// rate, guarding against a degenerate rate.
func minutesToBoundary(remainingDeg, rateDegPerHour float64) float64 {
	if rateDegPerHour < rateEpsilon {
		return UnboundedMinutes
	}
	m := remainingDeg / rateDegPerHour * 60
	if m > UnboundedMinutes {
		return UnboundedMinutes
	}
	return m
}
