// Package dayclock divides the sunrise-to-sunrise day into the two fixed
// grids of the Vedic clock: 30 muhurtas of 48 minutes and 21600 pranas of 4
// seconds. The shared epoch for both is the most recent sunrise for the
// observer, so the two grids always agree on where the day started.
package dayclock

import (
	"time"

	sunrise "github.com/nathan-osman/go-sunrise"
)

// MostRecentSunrise returns the latest sunrise at or before t for the given
// observer. The search uses the calendar day of t in t's own location: if
// that day's sunrise is still ahead of t, the previous day's sunrise is used
// instead.
//
// Under polar day or polar night no sunrise exists; the function then falls
// back to local midnight of t's calendar day. That fallback is a documented
// degenerate-input behavior, not an error: the muhurta and prana grids stay
// well defined, just anchored to midnight.
func MostRecentSunrise(t time.Time, latitude, longitude float64) time.Time {
	// Two days back covers extreme UTC offsets where the previous local
	// day's sunrise can still be ahead of t.
	for back := 0; back <= 2; back++ {
		day := t.AddDate(0, 0, -back)
		rise, _ := sunrise.SunriseSunset(latitude, longitude, day.Year(), day.Month(), day.Day())
		if rise.IsZero() {
			// no sunrise this day (polar day/night)
			continue
		}
		if !rise.After(t) {
			return rise
		}
	}
	return localMidnight(t)
}

// localMidnight returns 00:00 of t's calendar day in t's location.
func localMidnight(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
