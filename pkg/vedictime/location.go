package vedictime

import (
	"errors"
	"fmt"
)

// ErrInvalidLocation is the sentinel wrapped by location validation failures.
var ErrInvalidLocation = errors.New("invalid observer location")

// Location is an observer position on Earth. Latitude is degrees north
// [-90, 90], longitude degrees east [-180, 180].
type Location struct {
	Latitude  float64 `json:"latitude" yaml:"latitude"`
	Longitude float64 `json:"longitude" yaml:"longitude"`
}

// Validate rejects out-of-range coordinates. Bad values are never
// normalized; calculators assume validated input.
func (l Location) Validate() error {
	if l.Latitude < -90 || l.Latitude > 90 {
		return fmt.Errorf("%w: latitude %v outside [-90, 90]", ErrInvalidLocation, l.Latitude)
	}
	if l.Longitude < -180 || l.Longitude > 180 {
		return fmt.Errorf("%w: longitude %v outside [-180, 180]", ErrInvalidLocation, l.Longitude)
	}
	return nil
}
