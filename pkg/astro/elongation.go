package astro

import "time"

// RateProbe is the finite-difference interval used to estimate angular rates.
// One hour keeps the Moon's motion (~0.55°/h) well above floating-point noise
// while staying small against the 12° tithi span.
const RateProbe = time.Hour

// Elongation returns the Sun→Moon angular separation in degrees [0, 360).
// 0 is new moon, 180 is full moon.
func Elongation(t time.Time) (float64, error) {
	sun, err := SunLongitude(t)
	if err != nil {
		return 0, err
	}
	moon, err := MoonLongitude(t)
	if err != nil {
		return 0, err
	}
	return NormalizeDegrees(moon - sun), nil
}

// PhaseFraction returns the geometric lunar phase as a fraction [0, 1):
// elongation/360. This is not the illuminated disk fraction; see
// MoonIlluminationPercent for that.
func PhaseFraction(t time.Time) (float64, error) {
	e, err := Elongation(t)
	if err != nil {
		return 0, err
	}
	return e / 360, nil
}

// ElongationRate estimates the elongation's rate of change in degrees per
// hour by probing one RateProbe ahead. The difference is wrapped forward so
// the reported rate is always positive; callers use it only for
// time-to-boundary estimates and must tolerate a few percent error.
func ElongationRate(t time.Time) (float64, error) {
	now, err := Elongation(t)
	if err != nil {
		return 0, err
	}
	later, err := Elongation(t.Add(RateProbe))
	if err != nil {
		return 0, err
	}
	return forwardDelta(now, later) / RateProbe.Hours(), nil
}

// MoonLongitudeRate estimates the Moon's raw longitude rate in degrees per
// hour, by the same finite-difference probe applied to the longitude itself.
// This runs faster than the elongation rate since the Sun's own motion is not
// subtracted; it drives the nakshatra time-to-boundary estimate.
func MoonLongitudeRate(t time.Time) (float64, error) {
	now, err := MoonLongitude(t)
	if err != nil {
		return 0, err
	}
	later, err := MoonLongitude(t.Add(RateProbe))
	if err != nil {
		return 0, err
	}
	return forwardDelta(now, later) / RateProbe.Hours(), nil
}

// forwardDelta returns the forward angular travel from a to b, wrapping
// across 360° so the result is never negative.
func forwardDelta(a, b float64) float64 {
	d := b - a
	if d < 0 {
		d += 360
	}
	return d
}
