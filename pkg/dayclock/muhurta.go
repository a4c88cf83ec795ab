package dayclock

import (
	"math"
	"time"
)

const (
	// MuhurtaMinutes is the fixed length of one muhurta.
	MuhurtaMinutes = 48
	// MuhurtasPerDay is the number of muhurtas in one 1440-minute day.
	MuhurtasPerDay = 30
)

// Muhurta locates an instant within the 30-muhurta day grid.
type Muhurta struct {
	Number           int     `json:"number"`  // 1..30, 1 begins at sunrise
	Name             string  `json:"name"`    // from MuhurtaNames
	Meaning          string  `json:"meaning"` // from MuhurtaNames
	ProgressPercent  float64 `json:"progressPercent"`
	MinutesRemaining float64 `json:"minutesRemaining"`
}

// MuhurtaAt returns the muhurta containing t, counted from the sunrise epoch.
// The epoch must come from MostRecentSunrise; elapsed time is wrapped modulo
// one day so a stale epoch degrades to a shifted grid rather than an invalid
// index.
func MuhurtaAt(t, sunriseAt time.Time) Muhurta {
	elapsed := floorMod(t.Sub(sunriseAt).Minutes(), MuhurtaMinutes*MuhurtasPerDay)
	within := math.Mod(elapsed, MuhurtaMinutes)
	index := int(math.Floor(elapsed/MuhurtaMinutes)) % MuhurtasPerDay

	entry := MuhurtaNames[index]
	return Muhurta{
		Number:           index + 1,
		Name:             entry.Name,
		Meaning:          entry.Meaning,
		ProgressPercent:  within / MuhurtaMinutes * 100,
		MinutesRemaining: MuhurtaMinutes - within,
	}
}

// floorMod wraps x into [0, y) even for negative x.
func floorMod(x, y float64) float64 {
	m := math.Mod(x, y)
	if m < 0 {
		m += y
	}
	return m
}
