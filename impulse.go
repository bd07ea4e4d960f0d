package orbits

import "fmt"

// CalculateImpulse returns the Δv vector, in the reference frame, of an impulse of the provided magnitude applied
// at an angle measured from the current velocity direction: zero is prograde, π/2 points to the left of the
// velocity and π is retrograde.
func CalculateImpulse(st OrbitalState, magnitude, angle float64) Vector2D {
	// Build the impulse relative to the velocity, then rotate the vector (not the axes) into the x-y frame.
	return NewVector2DFromPolar(magnitude, angle).Rotate(st.FlightHeading())
}

// AddImpulseVector returns a new state with the same position and the velocity incremented by Δv.
func AddImpulseVector(st OrbitalState, Δv Vector2D) OrbitalState {
	return NewOrbitalState(st.Position(), st.Velocity().Add(Δv))
}

// AddImpulse returns a new state from the size and direction of an impulse.
func AddImpulse(st OrbitalState, magnitude, angle float64) OrbitalState {
	return AddImpulseVector(st, CalculateImpulse(st, magnitude, angle))
}

// Maneuver is an instantaneous velocity change, defined relative to the velocity at the time of the burn.
type Maneuver struct {
	Magnitude float64 // |Δv|, same unit as the velocity
	Angle     float64 // from the velocity direction, counterclockwise, in radians
}

// NewManeuver returns a maneuver, folding a negative magnitude into the opposite direction.
func NewManeuver(magnitude, angle float64) Maneuver {
	if magnitude < 0 {
		return Maneuver{-magnitude, AngleAdd(angle, 0.5*TwoPi)}
	}
	return Maneuver{magnitude, NormalizeAngle(angle)}
}

// IsNil returns whether this maneuver leaves the state unchanged.
func (m Maneuver) IsNil() bool {
	return m.Magnitude == 0
}

// DeltaV returns the Δv vector of this maneuver for the provided state.
func (m Maneuver) DeltaV(st OrbitalState) Vector2D {
	return CalculateImpulse(st, m.Magnitude, m.Angle)
}

// Apply returns the state right after the burn.
func (m Maneuver) Apply(st OrbitalState) OrbitalState {
	return AddImpulseVector(st, m.DeltaV(st))
}

func (m Maneuver) String() string {
	return fmt.Sprintf("burn |Δv|=%f at %.3f° from velocity", m.Magnitude, Rad2deg180(m.Angle))
}
