package orbits

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// OrbitalElements defines a planar orbit via its classical elements, and the position of the object on it.
type OrbitalElements struct {
	l, e float64 // semilatus rectum and eccentricity
	ω, ν float64 // argument of periapsis and true anomaly
}

// NewOrbitalElements returns the elements after validating them.
func NewOrbitalElements(l, e, ω, ν float64) (OrbitalElements, error) {
	if err := validateConic(e, l); err != nil {
		return OrbitalElements{}, err
	}
	for _, angle := range []struct {
		name  string
		value float64
	}{{"periapsis angle", ω}, {"true anomaly", ν}} {
		if math.IsNaN(angle.value) || math.IsInf(angle.value, 0) {
			return OrbitalElements{}, &InvalidElementsError{angle.name, angle.value}
		}
	}
	return OrbitalElements{l, e, NormalizeAngle(ω), NormalizeAngle(ν)}, nil
}

// NewOrbitalElementsFromState returns the elements of the orbit followed by an object in the provided state
// around a body of gravitational parameter gm.
// Rectilinear trajectories (zero speed, or purely radial velocity) have a null semilatus rectum and are rejected.
func NewOrbitalElementsFromState(st OrbitalState, gm float64) (OrbitalElements, error) {
	r, θ, v, γ := st.Components()
	l, e, ω, ν, err := ElementsFromComponents(r, θ, v, γ, gm)
	if err != nil {
		return OrbitalElements{}, err
	}
	return NewOrbitalElements(l, e, ω, ν)
}

// ElementsFromComponents is the vis-viva based conversion from the position radius, position angle, flight
// speed and flight path angle to the semilatus rectum, eccentricity, argument of periapsis and true anomaly.
func ElementsFromComponents(r, θ, v, γ, gm float64) (l, e, ω, ν float64, err error) {
	if err = validateGM(gm); err != nil {
		return
	}
	if !(r > 0) || math.IsInf(r, 1) {
		err = fmt.Errorf("%w: position radius %g", ErrInvalidState, r)
		return
	}
	if !(v >= 0) || math.IsInf(v, 1) {
		err = fmt.Errorf("%w: flight speed %g", ErrInvalidState, v)
		return
	}
	sinγ, cosγ := math.Sincos(γ)
	// Normalised squared speed: (v / vcirc)².
	vsq := v * v * r / gm
	l = r * vsq * cosγ * cosγ
	// Eccentricity vector in the local (radial, transverse) frame.
	// Its norm is √(1 - 2·vsq·(1-vsq/2)·cos²γ), without the cancellation near circular speed.
	ex := vsq*cosγ*cosγ - 1
	ey := vsq * sinγ * cosγ
	e = math.Hypot(ex, ey)
	ν = NormalizeAngle(math.Atan2(ey, ex))
	ω = AngleSub(θ, ν)
	return
}

// ComponentsFromElements is the inverse conversion: it returns the position radius, position angle, flight
// speed and flight path angle of an object with the provided elements.
func ComponentsFromElements(l, e, ω, ν, gm float64) (r, θ, v, γ float64, err error) {
	if err = validateGM(gm); err != nil {
		return
	}
	if err = validateConic(e, l); err != nil {
		return
	}
	sinν, cosν := math.Sincos(ν)
	θ = AngleAdd(ω, ν)
	if r, err = conicRadius(ν, e, l); err != nil {
		return
	}
	// Vis-viva normalised by gm/l, 2(1+e·cosν) - (1-e²), as a sum of squares so that it stays accurate for
	// nearly rectilinear orbits.
	vsq := (1+e*cosν)*(1+e*cosν) + (e*sinν)*(e*sinν)
	v = math.Sqrt(vsq * gm / l)
	γ = NormalizeAngle(math.Atan2(e*sinν, 1+e*cosν))
	return
}

func validateGM(gm float64) error {
	if !(gm > 0) || math.IsInf(gm, 1) {
		return &InvalidParameterError{"gm", gm}
	}
	return nil
}

// circularSpeed returns the speed of a circular orbit of radius r.
func circularSpeed(gm, r float64) float64 {
	return math.Sqrt(gm / r)
}

// ToState returns the state of the object on this orbit.
func (o OrbitalElements) ToState(gm float64) (OrbitalState, error) {
	r, θ, v, γ, err := ComponentsFromElements(o.l, o.e, o.ω, o.ν, gm)
	if err != nil {
		return OrbitalState{}, err
	}
	return NewOrbitalStateFromComponents(r, θ, v, γ), nil
}

// SemilatusRectum returns l.
func (o OrbitalElements) SemilatusRectum() float64 { return o.l }

// Eccentricity returns e.
func (o OrbitalElements) Eccentricity() float64 { return o.e }

// PeriapsisAngle returns the argument of periapsis ω.
func (o OrbitalElements) PeriapsisAngle() float64 { return o.ω }

// TrueAnomaly returns ν.
func (o OrbitalElements) TrueAnomaly() float64 { return o.ν }

// Elements returns the four elements.
func (o OrbitalElements) Elements() (l, e, ω, ν float64) {
	return o.l, o.e, o.ω, o.ν
}

// PositionAngle returns the direction of the object (ω+ν).
func (o OrbitalElements) PositionAngle() float64 {
	return AngleAdd(o.ω, o.ν)
}

// SemimajorAxis returns the semimajor axis (negative for hyperbolic orbits).
func (o OrbitalElements) SemimajorAxis() (float64, bool) {
	return conicSemimajorAxis(o.e, o.l)
}

// Periapsis returns the periapsis radius.
func (o OrbitalElements) Periapsis() float64 {
	return conicPeriapsis(o.e, o.l)
}

// Apoapsis returns the apoapsis radius, if any.
func (o OrbitalElements) Apoapsis() (float64, bool) {
	return conicApoapsis(o.e, o.l)
}

// Energy returns the specific mechanical energy ξ.
func (o OrbitalElements) Energy(gm float64) float64 {
	return -gm * (1 - o.e*o.e) / (2 * o.l)
}

// AngularMomentum returns the norm of the specific angular momentum.
func (o OrbitalElements) AngularMomentum(gm float64) float64 {
	return math.Sqrt(gm * o.l)
}

// Period returns the orbital period in the time unit implied by gm. Only closed orbits have one.
func (o OrbitalElements) Period(gm float64) (float64, bool) {
	if o.e >= 1 {
		return 0, false
	}
	a, _ := o.SemimajorAxis()
	return TwoPi * math.Sqrt(a*a*a/gm), true
}

// String implements the stringer interface (hence the value receiver)
func (o OrbitalElements) String() string {
	if o.e < eccentricityε {
		// Circular orbit: only the position angle is meaningful.
		return fmt.Sprintf("l=%.4f e=%.4f θ=%.3f", o.l, o.e, Rad2deg(o.PositionAngle()))
	}
	return fmt.Sprintf("l=%.4f e=%.4f ω=%.3f ν=%.3f", o.l, o.e, Rad2deg(o.ω), Rad2deg(o.ν))
}

// Equals returns whether two element sets are identical.
// For circular orbits, the periapsis is undefined so only ω+ν is compared.
func (o OrbitalElements) Equals(o1 OrbitalElements) (bool, error) {
	if !floats.EqualWithinRel(o.l, o1.l, equalityε) {
		return false, errors.New("semilatus rectum invalid")
	}
	if !floats.EqualWithinAbs(o.e, o1.e, equalityε) {
		return false, errors.New("eccentricity invalid")
	}
	if o.e < eccentricityε {
		if !anglesEqual(o.PositionAngle(), o1.PositionAngle(), equalityε) {
			return false, errors.New("position angle invalid")
		}
		return true, nil
	}
	if !anglesEqual(o.ω, o1.ω, equalityε) {
		return false, errors.New("argument of periapsis invalid")
	}
	if !anglesEqual(o.ν, o1.ν, equalityε) {
		return false, errors.New("true anomaly invalid")
	}
	return true, nil
}
