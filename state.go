package orbits

import (
	"fmt"
	"math"
)

// OrbitalState is the position and velocity of an object, with derived polar quantities.
// A state is never modified: build a new one instead.
type OrbitalState struct {
	position, velocity Vector2D

	positionRadius, positionAngle float64
	flightSpeed, flightHeading    float64
	zenithAngle, flightAngle      float64
}

// NewOrbitalState returns the state of the provided position and velocity vectors.
func NewOrbitalState(position, velocity Vector2D) OrbitalState {
	st := OrbitalState{position: position, velocity: velocity}
	st.positionRadius = position.Norm()
	st.positionAngle = NormalizeAngle(position.Angle())
	st.flightSpeed = velocity.Norm()
	st.flightHeading = NormalizeAngle(velocity.Angle())
	// Zenith angle is between velocity and straight up, the flight path angle is its complement.
	st.zenithAngle = AngleSub(st.flightHeading, st.positionAngle)
	st.flightAngle = AngleSub(0.5*math.Pi, st.zenithAngle)
	return st
}

// NewOrbitalStateFromComponents returns the state from the size and direction of the position and velocity.
// The flight angle is the flight path angle, measured from the local horizontal.
func NewOrbitalStateFromComponents(positionRadius, positionAngle, flightSpeed, flightAngle float64) OrbitalState {
	position := NewVector2DFromPolar(positionRadius, positionAngle)
	velocity := NewVector2DFromPolar(flightSpeed, FlightHeading(positionAngle, flightAngle))
	return NewOrbitalState(position, velocity)
}

// FlightHeading returns the direction of travel: the position direction rotated by the zenith angle.
func FlightHeading(positionAngle, flightAngle float64) float64 {
	zenith := AngleSub(0.5*math.Pi, flightAngle)
	return AngleAdd(positionAngle, zenith)
}

// Position returns the position vector.
func (s OrbitalState) Position() Vector2D { return s.position }

// Velocity returns the velocity vector.
func (s OrbitalState) Velocity() Vector2D { return s.velocity }

// PositionRadius returns |position|.
func (s OrbitalState) PositionRadius() float64 { return s.positionRadius }

// PositionAngle returns the direction of the position, in [0, 2π).
func (s OrbitalState) PositionAngle() float64 { return s.positionAngle }

// FlightSpeed returns |velocity|.
func (s OrbitalState) FlightSpeed() float64 { return s.flightSpeed }

// FlightHeading returns the direction of the velocity, in [0, 2π).
func (s OrbitalState) FlightHeading() float64 { return s.flightHeading }

// ZenithAngle returns the angle from the radial direction to the velocity.
func (s OrbitalState) ZenithAngle() float64 { return s.zenithAngle }

// FlightAngle returns the flight path angle, in [0, 2π).
func (s OrbitalState) FlightAngle() float64 { return s.flightAngle }

// FlightAngleSigned returns the flight path angle in (-π, π].
func (s OrbitalState) FlightAngleSigned() float64 { return wrapπ(s.flightAngle) }

// Components returns the position radius, position angle, flight speed and flight path angle.
func (s OrbitalState) Components() (r, θ, v, γ float64) {
	return s.positionRadius, s.positionAngle, s.flightSpeed, s.flightAngle
}

func (s OrbitalState) String() string {
	return fmt.Sprintf("r=%.4f θ=%.3f v=%.4f γ=%.3f", s.positionRadius, Rad2deg(s.positionAngle), s.flightSpeed, Rad2deg180(s.flightAngle))
}
