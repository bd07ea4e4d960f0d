package orbits

import (
	"errors"
	"math"
	"testing"

	"github.com/gonum/floats"
)

func TestHohmannRaise(t *testing.T) {
	h, err := Hohmann(1, 4, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !floats.EqualWithinAbs(h.Departure.Magnitude, math.Sqrt(1.6)-1, 1e-12) || h.Departure.Angle != 0 {
		t.Fatalf("departure %s", h.Departure)
	}
	if !floats.EqualWithinAbs(h.Arrival.Magnitude, 0.5-math.Sqrt(0.1), 1e-12) || h.Arrival.Angle != 0 {
		t.Fatalf("arrival %s", h.Arrival)
	}
	if !floats.EqualWithinAbs(h.TimeOfFlight, math.Pi*math.Pow(2.5, 1.5), 1e-12) {
		t.Fatalf("time of flight %f", h.TimeOfFlight)
	}
	if !floats.EqualWithinAbs(h.Transfer.Periapsis(), 1, 1e-15) {
		t.Fatalf("rp=%f", h.Transfer.Periapsis())
	}
	if ra, _ := h.Transfer.Apoapsis(); !floats.EqualWithinAbs(ra, 4, 1e-12) {
		t.Fatalf("ra=%f", ra)
	}
	if !floats.EqualWithinAbs(h.TotalΔv(), h.Departure.Magnitude+h.Arrival.Magnitude, 1e-15) {
		t.Fatal("total Δv")
	}
	// Applying the departure burn on the initial circular orbit yields the transfer orbit.
	conic, err := ConicFromState(h.Departure.Apply(NewOrbitalStateFromComponents(1, 0, 1, 0)), 1)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := conic.Equals(h.Transfer); !ok {
		t.Fatalf("%s != %s: %s", conic, h.Transfer, err)
	}
}

func TestHohmannLower(t *testing.T) {
	h, err := Hohmann(4, 1, 1)
	if err != nil {
		t.Fatal(err)
	}
	if !anglesEqual(h.Departure.Angle, math.Pi, 1e-15) || !anglesEqual(h.Arrival.Angle, math.Pi, 1e-15) {
		t.Fatalf("lowering burns should be retrograde: %s %s", h.Departure, h.Arrival)
	}
	if h.Departure.Magnitude <= 0 || h.Arrival.Magnitude <= 0 {
		t.Fatal("burn magnitudes should be positive")
	}
	if !anglesEqual(h.Transfer.Angle0(), math.Pi, 1e-15) {
		t.Fatalf("the periapsis is opposite to the departure, got %f", h.Transfer.Angle0())
	}
	st := NewOrbitalStateFromComponents(4, 0, Unit.CircularSpeed(4), 0)
	conic, err := ConicFromState(h.Departure.Apply(st), 1)
	if err != nil {
		t.Fatal(err)
	}
	if ok, err := conic.Equals(h.Transfer); !ok {
		t.Fatalf("%s != %s: %s", conic, h.Transfer, err)
	}
	up, _ := Hohmann(1, 4, 1)
	if !floats.EqualWithinAbs(up.TotalΔv(), h.TotalΔv(), 1e-12) {
		t.Fatal("raising and lowering should cost the same")
	}
}

func TestHohmannInvalid(t *testing.T) {
	for _, tc := range []struct{ rI, rF, gm float64 }{
		{1, 4, 0},
		{0, 4, 1},
		{1, -4, 1},
	} {
		if _, err := Hohmann(tc.rI, tc.rF, tc.gm); !errors.Is(err, ErrInvalidParameter) {
			t.Fatalf("%+v: expected an invalid parameter, got %v", tc, err)
		}
	}
}
