package orbits

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidParameter is returned when a physical parameter (e.g. gm) is outside its domain.
	ErrInvalidParameter = errors.New("invalid physical parameter")
	// ErrInvalidElements is returned when a conic or element set is rejected at construction.
	ErrInvalidElements = errors.New("invalid element set")
	// ErrInvalidState is returned when a state cannot describe an orbit (e.g. zero position radius).
	ErrInvalidState = errors.New("invalid orbital state")
	// ErrSingularGeometry is returned when a conic is evaluated on or beyond its asymptote.
	ErrSingularGeometry = errors.New("singular conic geometry")
)

// InvalidParameterError is returned when a scalar input is out of its valid range.
type InvalidParameterError struct {
	Name  string  // Name of the parameter, e.g. "gm"
	Value float64 // Offending value
}

func (e *InvalidParameterError) Error() string {
	return fmt.Sprintf("%s: %s=%g", ErrInvalidParameter, e.Name, e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidParameter).
func (e *InvalidParameterError) Unwrap() error { return ErrInvalidParameter }

// InvalidElementsError is returned when an element set is rejected.
type InvalidElementsError struct {
	Element string
	Value   float64
}

func (e *InvalidElementsError) Error() string {
	return fmt.Sprintf("%s: %s=%g", ErrInvalidElements, e.Element, e.Value)
}

// Unwrap allows errors.Is(err, ErrInvalidElements).
func (e *InvalidElementsError) Unwrap() error { return ErrInvalidElements }

// SingularGeometryError is returned when 1+e·cos(ν) vanishes (or goes negative), i.e. the anomaly is on or
// past the asymptote of an open orbit.
type SingularGeometryError struct {
	Anomaly      float64 // true anomaly in radians
	Eccentricity float64
}

func (e *SingularGeometryError) Error() string {
	return fmt.Sprintf("%s: anomaly %.6f rad unreachable for e=%.6f", ErrSingularGeometry, e.Anomaly, e.Eccentricity)
}

// Unwrap allows errors.Is(err, ErrSingularGeometry).
func (e *SingularGeometryError) Unwrap() error { return ErrSingularGeometry }
