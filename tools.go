package orbits

import "math"

// HohmannTransfer is the two-impulse transfer between coplanar circular orbits.
type HohmannTransfer struct {
	Departure, Arrival Maneuver
	Transfer           ConicSection
	TimeOfFlight       float64 // in the time unit implied by gm
}

// Hohmann computes an Hohmann transfer from a circular orbit of radius rI to one of radius rF, departing from the
// reference direction (θ=0). Both burns are tangential: prograde when raising the orbit, retrograde otherwise.
func Hohmann(rI, rF, gm float64) (HohmannTransfer, error) {
	if err := validateGM(gm); err != nil {
		return HohmannTransfer{}, err
	}
	if !(rI > 0) || math.IsInf(rI, 1) {
		return HohmannTransfer{}, &InvalidParameterError{"initial radius", rI}
	}
	if !(rF > 0) || math.IsInf(rF, 1) {
		return HohmannTransfer{}, &InvalidParameterError{"final radius", rF}
	}
	rP, rA, angle0 := rI, rF, 0.0
	if rF < rI {
		// Departing from the apoapsis of the transfer orbit.
		rP, rA, angle0 = rF, rI, math.Pi
	}
	l, e := Radii2le(rA, rP)
	transfer, err := NewConicSection(e, l, angle0)
	if err != nil {
		return HohmannTransfer{}, err
	}
	aTransfer := 0.5 * (rI + rF)
	vDeparture := math.Sqrt((2 * gm / rI) - (gm / aTransfer))
	vArrival := math.Sqrt((2 * gm / rF) - (gm / aTransfer))
	return HohmannTransfer{
		Departure:    NewManeuver(vDeparture-circularSpeed(gm, rI), 0),
		Arrival:      NewManeuver(circularSpeed(gm, rF)-vArrival, 0),
		Transfer:     transfer,
		TimeOfFlight: math.Pi * math.Sqrt(math.Pow(aTransfer, 3)/gm),
	}, nil
}

// TotalΔv returns the sum of the magnitudes of both burns.
func (h HohmannTransfer) TotalΔv() float64 {
	return h.Departure.Magnitude + h.Arrival.Magnitude
}
