package orbits

import (
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestZeroImpulse(t *testing.T) {
	st := NewOrbitalStateFromComponents(1.2, 0.4, 0.8, 0.2)
	for _, angle := range []float64{0, 1.2, math.Pi, 5} {
		st1 := AddImpulse(st, 0, angle)
		if st1.Position() != st.Position() || !st1.Velocity().Equals(st.Velocity(), 0) {
			t.Fatalf("null impulse at %f changed the state: %s -> %s", angle, st, st1)
		}
		el, _ := NewOrbitalElementsFromState(st, 1)
		el1, _ := NewOrbitalElementsFromState(st1, 1)
		if ok, err := el.Equals(el1); !ok {
			t.Fatalf("null impulse changed the orbit: %s", err)
		}
	}
	if !NewManeuver(0, 2).IsNil() {
		t.Fatal("null maneuver should be nil")
	}
}

func TestImpulseDirection(t *testing.T) {
	// Circular orbit at θ=0: the velocity is along +y.
	st := NewOrbitalStateFromComponents(1, 0, 1, 0)
	for _, tc := range []struct {
		angle float64
		exp   Vector2D
	}{
		{0, Vector2D{0, 0.1}},
		{math.Pi / 2, Vector2D{-0.1, 0}},
		{math.Pi, Vector2D{0, -0.1}},
		{-math.Pi / 2, Vector2D{0.1, 0}},
	} {
		if Δv := CalculateImpulse(st, 0.1, tc.angle); !Δv.Equals(tc.exp, 1e-15) {
			t.Fatalf("impulse at %f: got %s expected %s", tc.angle, Δv, tc.exp)
		}
	}
}

func TestPrograde(t *testing.T) {
	st := NewOrbitalStateFromComponents(1, 0, 1, 0)
	st1 := AddImpulse(st, 0.2, 0)
	if !floats.EqualWithinAbs(st1.FlightSpeed(), 1.2, 1e-12) {
		t.Fatalf("speed after a prograde burn %f", st1.FlightSpeed())
	}
	if st1.Position() != st.Position() {
		t.Fatal("an impulse does not move the object")
	}
	el, err := NewOrbitalElementsFromState(st1, 1)
	if err != nil {
		t.Fatal(err)
	}
	// The burn point becomes the periapsis.
	if !floats.EqualWithinAbs(el.Periapsis(), 1, 1e-12) || !anglesEqual(el.PeriapsisAngle(), 0, 1e-9) {
		t.Fatalf("rp=%f ω=%f", el.Periapsis(), el.PeriapsisAngle())
	}
	if !floats.EqualWithinAbs(el.Eccentricity(), 0.44, 1e-12) {
		t.Fatalf("e=%f", el.Eccentricity())
	}
	// A retrograde burn of the same magnitude brings the apoapsis at the burn point.
	el, err = NewOrbitalElementsFromState(AddImpulse(st, 0.2, math.Pi), 1)
	if err != nil {
		t.Fatal(err)
	}
	if ra, _ := el.Apoapsis(); !floats.EqualWithinAbs(ra, 1, 1e-12) || !anglesEqual(el.PeriapsisAngle(), math.Pi, 1e-9) {
		t.Fatalf("ra=%f ω=%f", ra, el.PeriapsisAngle())
	}
}

func TestManeuver(t *testing.T) {
	mnv := NewManeuver(-0.2, 0)
	if mnv.Magnitude != 0.2 || !anglesEqual(mnv.Angle, math.Pi, 1e-15) {
		t.Fatalf("negative magnitude should flip the burn: %s", mnv)
	}
	if mnv.IsNil() {
		t.Fatal("maneuver is not nil")
	}
	if !floats.EqualWithinAbs(NewManeuver(1, -math.Pi/2).Angle, 3*math.Pi/2, 1e-15) {
		t.Fatal("maneuver angle not normalized")
	}
	st := NewOrbitalStateFromComponents(1.3, 2, 0.9, -0.7)
	if exp, got := AddImpulse(st, 0.2, math.Pi), mnv.Apply(st); !got.Velocity().Equals(exp.Velocity(), 1e-15) {
		t.Fatalf("maneuver velocity %s expected %s", got.Velocity(), exp.Velocity())
	}
	if Δv := mnv.DeltaV(st); !floats.EqualWithinAbs(Δv.Norm(), 0.2, 1e-15) {
		t.Fatalf("|Δv|=%f", Δv.Norm())
	}
	if AddImpulseVector(st, Vector2D{0.1, -0.1}).Velocity() != st.Velocity().Add(Vector2D{0.1, -0.1}) {
		t.Fatal("impulse vector not added to the velocity")
	}
}
