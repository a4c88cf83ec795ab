package panchanga

import (
	"math"

	"github.com/chandrakala/vedicclock/pkg/astro"
)

// NakshatraSpan is the ecliptic arc of one nakshatra: 360/27 = 13°20'.
const NakshatraSpan = 360.0 / 27.0

// PadaSpan is a quarter nakshatra, 3°20'.
const PadaSpan = NakshatraSpan / 4

// Nakshatra is one of the 27 lunar mansions, with its 4-way pada subdivision.
type Nakshatra struct {
	Number          int     `json:"number"`          // 1..27
	Name            string  `json:"name"`            // from NakshatraNames
	Pada            int     `json:"pada"`            // 1..4
	ProgressPercent float64 `json:"progressPercent"` // [0,100)
	MinutesToNext   float64 `json:"minutesToNext"`   // estimate; UnboundedMinutes when rate is degenerate
}

// NakshatraFromLongitude partitions the Moon's raw ecliptic longitude into
// the 27-nakshatra grid. rateDegPerHour must be the Moon's longitude rate
// (astro.MoonLongitudeRate), not the elongation rate: the longitude runs
// faster because the Sun's own motion is not subtracted.
func NakshatraFromLongitude(moonLongitude, rateDegPerHour float64) Nakshatra {
	moonLongitude = astro.NormalizeDegrees(moonLongitude)

	number := int(math.Floor(moonLongitude/NakshatraSpan)) + 1
	within := math.Mod(moonLongitude, NakshatraSpan)
	pada := int(math.Floor(within/PadaSpan)) + 1
	if pada > 4 {
		// floating-point roundoff at the upper edge of the span
		pada = 4
	}

	return Nakshatra{
		Number:          number,
		Name:            NakshatraNames[number-1],
		Pada:            pada,
		ProgressPercent: within / NakshatraSpan * 100,
		MinutesToNext:   minutesToBoundary(NakshatraSpan-within, rateDegPerHour),
	}
}
