package orbits

import (
	"fmt"
	"math"
	"os"

	kitlog "github.com/go-kit/kit/log"
)

// viewScaleFactor pads the characteristic length of the conics so that both fit in view.
const viewScaleFactor = 1.3

/* Handles one evaluation of an orbit and of its perturbation by an impulse. */

// Scenario defines the unperturbed state of an object and the maneuver applied to it.
// Each call to Run recomputes everything from scratch, so a Scenario may be re-run after changing its inputs.
type Scenario struct {
	Body          CelestialObject
	Radius        float64 // position radius
	PositionAngle float64 // radians
	Speed         float64
	FlightAngle   float64 // flight path angle in radians, within (-π/2, π/2)
	Maneuver      Maneuver
	LocusPoints   int
	Polar         bool
	logger        kitlog.Logger
}

// Result is the outcome of a Scenario: everything a renderer needs to draw both orbits and the impulse.
type Result struct {
	Initial, Final                 OrbitalState
	InitialElements, FinalElements OrbitalElements
	InitialConic, FinalConic       ConicSection
	InitialLocus, FinalLocus       []Point
	DeltaV                         Vector2D
	Polar                          bool    // loci are (angle, radius) pairs
	Scale                          float64 // view half width fitting both conics
}

// NewScenario returns a new Scenario at the reference direction, with the default locus resolution.
func NewScenario(body CelestialObject, radius, speed, flightAngle float64, mnv Maneuver) *Scenario {
	klog := kitlog.NewLogfmtLogger(kitlog.NewSyncWriter(os.Stdout))
	klog = kitlog.With(klog, "body", body.Name)
	return &Scenario{
		Body:        body,
		Radius:      radius,
		Speed:       speed,
		FlightAngle: flightAngle,
		Maneuver:    mnv,
		LocusPoints: DefaultLocusPoints,
		logger:      klog,
	}
}

// SetLogger replaces the logger of this scenario; nil silences it.
func (s *Scenario) SetLogger(logger kitlog.Logger) {
	if logger == nil {
		logger = kitlog.NewNopLogger()
	}
	s.logger = logger
}

// Validate checks the inputs are within the domain an interactive control is expected to clamp them to.
func (s *Scenario) Validate() error {
	if err := validateGM(s.Body.GM()); err != nil {
		return err
	}
	if !(s.Radius > 0) || math.IsInf(s.Radius, 1) {
		return &InvalidParameterError{"radius", s.Radius}
	}
	if !(s.Speed > 0) || math.IsInf(s.Speed, 1) {
		return &InvalidParameterError{"speed", s.Speed}
	}
	if !(math.Abs(wrapπ(s.FlightAngle)) < 0.5*math.Pi) {
		return &InvalidParameterError{"flight angle", s.FlightAngle}
	}
	if !(s.Maneuver.Magnitude >= 0) || math.IsInf(s.Maneuver.Magnitude, 1) {
		return &InvalidParameterError{"impulse magnitude", s.Maneuver.Magnitude}
	}
	if s.LocusPoints < 2 {
		return &InvalidParameterError{"locus points", float64(s.LocusPoints)}
	}
	return nil
}

// Run computes the orbit before and after the maneuver.
func (s *Scenario) Run() (Result, error) {
	if s.logger == nil {
		s.SetLogger(nil)
	}
	if err := s.Validate(); err != nil {
		s.logger.Log("level", "error", "subsys", "scenario", "err", err)
		return Result{}, err
	}
	gm := s.Body.GM()

	initial := NewOrbitalStateFromComponents(s.Radius, s.PositionAngle, s.Speed, s.FlightAngle)
	initEl, err := NewOrbitalElementsFromState(initial, gm)
	if err != nil {
		s.logger.Log("level", "error", "subsys", "scenario", "state", initial, "err", err)
		return Result{}, fmt.Errorf("initial orbit: %w", err)
	}

	Δv := s.Maneuver.DeltaV(initial)
	final := AddImpulseVector(initial, Δv)
	finalEl, err := NewOrbitalElementsFromState(final, gm)
	if err != nil {
		s.logger.Log("level", "warning", "subsys", "scenario", "maneuver", s.Maneuver, "err", err)
		return Result{}, fmt.Errorf("orbit after %s: %w", s.Maneuver, err)
	}

	res := Result{
		Initial:         initial,
		Final:           final,
		InitialElements: initEl,
		FinalElements:   finalEl,
		InitialConic:    ConicFromElements(initEl),
		FinalConic:      ConicFromElements(finalEl),
		DeltaV:          Δv,
		Polar:           s.Polar,
	}
	res.InitialLocus = res.InitialConic.Locus(s.LocusPoints, s.Polar)
	res.FinalLocus = res.FinalConic.Locus(s.LocusPoints, s.Polar)
	res.Scale = viewScaleFactor * math.Max(res.InitialConic.Scale(), res.FinalConic.Scale())
	s.logger.Log("level", "info", "subsys", "scenario", "initial", res.InitialConic, "final", res.FinalConic, "Δv", s.Maneuver.Magnitude)
	return res, nil
}
