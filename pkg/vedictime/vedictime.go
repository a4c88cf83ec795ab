// Package vedictime assembles one immutable snapshot of the Vedic clock for
// an explicit instant and observer location. There is no ambient "now" in
// this package or below it: callers supply the instant, which makes every
// computation deterministic and directly testable.
package vedictime

import (
	"time"

	"github.com/chandrakala/vedicclock/pkg/astro"
	"github.com/chandrakala/vedicclock/pkg/dayclock"
	"github.com/chandrakala/vedicclock/pkg/panchanga"
)

// Snapshot is the complete calendar state for one instant. It is constructed
// once per computation and never mutated; a newer snapshot supersedes it.
type Snapshot struct {
	Instant  time.Time `json:"instant"`
	Location Location  `json:"location"`

	// raw celestial quantities, degrees and percent
	SunLongitude        float64 `json:"sunLongitude"`
	MoonLongitude       float64 `json:"moonLongitude"`
	Elongation          float64 `json:"elongation"`
	PhaseFraction       float64 `json:"phaseFraction"`       // geometric: 0 new, 0.5 full
	IlluminationPercent float64 `json:"illuminationPercent"` // optical disk illumination

	Tithi     panchanga.Tithi     `json:"tithi"`
	Nakshatra panchanga.Nakshatra `json:"nakshatra"`
	Masa      panchanga.Masa      `json:"masa"`

	Sunrise time.Time        `json:"sunrise"` // epoch shared by Muhurta and Prana
	Muhurta dayclock.Muhurta `json:"muhurta"`
	Prana   dayclock.Prana   `json:"prana"`
}

// Compute derives the full snapshot for the instant and location. It is a
// pure function: no I/O, no shared state, and identical arguments produce
// identical output. Ephemeris failures propagate unchanged; no partial
// snapshot is ever returned.
func Compute(t time.Time, loc Location) (*Snapshot, error) {
	if err := loc.Validate(); err != nil {
		return nil, err
	}

	sunLong, err := astro.SunLongitude(t)
	if err != nil {
		return nil, err
	}
	moonLong, err := astro.MoonLongitude(t)
	if err != nil {
		return nil, err
	}
	illumination, err := astro.MoonIlluminationPercent(t)
	if err != nil {
		return nil, err
	}
	elongationRate, err := astro.ElongationRate(t)
	if err != nil {
		return nil, err
	}
	moonRate, err := astro.MoonLongitudeRate(t)
	if err != nil {
		return nil, err
	}

	elongation := astro.NormalizeDegrees(moonLong - sunLong)
	sunriseAt := dayclock.MostRecentSunrise(t, loc.Latitude, loc.Longitude)

	return &Snapshot{
		Instant:  t,
		Location: loc,

		SunLongitude:        sunLong,
		MoonLongitude:       moonLong,
		Elongation:          elongation,
		PhaseFraction:       elongation / 360,
		IlluminationPercent: illumination,

		Tithi:     panchanga.TithiFromElongation(elongation, elongationRate),
		Nakshatra: panchanga.NakshatraFromLongitude(moonLong, moonRate),
		Masa:      panchanga.MasaFromSunLongitude(sunLong),

		Sunrise: sunriseAt,
		Muhurta: dayclock.MuhurtaAt(t, sunriseAt),
		Prana:   dayclock.PranaAt(t, sunriseAt),
	}, nil
}
