// Package orbits models planar two-body orbits at a single instant: conversions between a state and its
// classical orbital elements, the conic section they describe, and impulsive maneuvers.
package orbits

// ConicFromState returns the conic section followed by an object in the provided state.
func ConicFromState(st OrbitalState, gm float64) (ConicSection, error) {
	el, err := NewOrbitalElementsFromState(st, gm)
	if err != nil {
		return ConicSection{}, err
	}
	return ConicFromElements(el), nil
}

// Trajectory returns the sampled locus of the orbit of the provided state.
func Trajectory(st OrbitalState, gm float64, numPoints int, polar bool) ([]Point, error) {
	conic, err := ConicFromState(st, gm)
	if err != nil {
		return nil, err
	}
	return conic.Locus(numPoints, polar), nil
}
