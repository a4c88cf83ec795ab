package dayclock

import (
	"math"
	"time"
)

const (
	// PranaSeconds is the length of one breath cycle.
	PranaSeconds = 4
	// PranasPerDay is the number of pranas in one 86400-second day.
	PranasPerDay = 21600
)

// BreathPhase is the half of the 4-second breath cycle an instant falls in.
type BreathPhase string

const (
	BreathInhale BreathPhase = "inhale"
	BreathExhale BreathPhase = "exhale"
)

// Prana locates an instant within the 21600-prana day grid.
type Prana struct {
	Number               int         `json:"number"`       // 0..21599, 0 begins at sunrise
	AngleDegrees         float64     `json:"angleDegrees"` // clock-hand position [0,360)
	Phase                BreathPhase `json:"phase"`
	PhaseProgressPercent float64     `json:"phaseProgressPercent"` // within the inhale or exhale half
	CycleProgressPercent float64     `json:"cycleProgressPercent"` // within the full 4-second cycle
}

// PranaAt returns the prana containing t, counted from the sunrise epoch.
func PranaAt(t, sunriseAt time.Time) Prana {
	elapsed := floorMod(t.Sub(sunriseAt).Seconds(), PranaSeconds*PranasPerDay)
	number := int(math.Floor(elapsed/PranaSeconds)) % PranasPerDay
	cycleProgress := math.Mod(elapsed, PranaSeconds) / PranaSeconds * 100

	phase := BreathInhale
	phaseProgress := cycleProgress / 50 * 100
	if cycleProgress >= 50 {
		phase = BreathExhale
		phaseProgress = (cycleProgress - 50) / 50 * 100
	}

	return Prana{
		Number:               number,
		AngleDegrees:         float64(number) / PranasPerDay * 360,
		Phase:                phase,
		PhaseProgressPercent: phaseProgress,
		CycleProgressPercent: cycleProgress,
	}
}
