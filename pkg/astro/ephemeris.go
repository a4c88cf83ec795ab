// Package astro provides geocentric ecliptic positions of the Sun and Moon
// and the derived Sun-Moon elongation quantities the lunar calendar is built
// on. Positions come from the Meeus truncated series; accuracy is a few
// arcminutes, far below the 12-degree tithi and 13°20' nakshatra grids this
// package feeds.
package astro

import (
	"fmt"
	"time"

	"github.com/soniakeys/meeus/v3/base"
	"github.com/soniakeys/meeus/v3/julian"
	"github.com/soniakeys/meeus/v3/moonillum"
	"github.com/soniakeys/meeus/v3/moonposition"
	"github.com/soniakeys/meeus/v3/solar"
	"github.com/soniakeys/unit"
)

// The truncated Meeus series drift badly outside a few millennia of J2000.
// Requests outside this window fail with an EphemerisError rather than
// returning a silently wrong position.
const (
	minYear = 1000
	maxYear = 3000
)

// EphemerisError indicates the ephemeris cannot produce a position for the
// requested instant.
type EphemerisError struct {
	Instant time.Time
	Reason  string
}

func (e *EphemerisError) Error() string {
	return fmt.Sprintf("ephemeris: cannot compute position for %s: %s",
		e.Instant.UTC().Format(time.RFC3339), e.Reason)
}

func checkInstant(t time.Time) error {
	y := t.UTC().Year()
	if y < minYear || y > maxYear {
		return &EphemerisError{
			Instant: t,
			Reason:  fmt.Sprintf("year %d outside ephemeris validity window [%d, %d]", y, minYear, maxYear),
		}
	}
	return nil
}

// SunLongitude returns the Sun's geocentric apparent ecliptic longitude in
// degrees, normalized to [0, 360).
func SunLongitude(t time.Time) (float64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	T := base.J2000Century(julian.TimeToJD(t.UTC()))
	return NormalizeDegrees(solar.ApparentLongitude(T).Deg()), nil
}

// MoonLongitude returns the Moon's geocentric ecliptic longitude in degrees,
// normalized to [0, 360). The calculation is geocentric; topocentric parallax
// (under 1 degree) is below the precision this system needs, so no observer
// location is taken.
func MoonLongitude(t time.Time) (float64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	λ, _, _ := moonposition.Position(julian.TimeToJD(t.UTC()))
	return NormalizeDegrees(λ.Deg()), nil
}

// MoonIlluminationPercent returns the illuminated fraction of the Moon's disk
// as a percentage [0, 100]. This is the optical illumination from the phase
// angle, distinct from the elongation-derived phase fraction.
func MoonIlluminationPercent(t time.Time) (float64, error) {
	if err := checkInstant(t); err != nil {
		return 0, err
	}
	var i unit.Angle = moonillum.PhaseAngle3(julian.TimeToJD(t.UTC()))
	return base.Illuminated(i) * 100, nil
}
