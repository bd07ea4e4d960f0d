package orbits

import (
	"errors"
	"fmt"
	"math"

	"github.com/gonum/floats"
	"github.com/gonum/matrix/mat64"
)

const (
	// DefaultLocusPoints is the default number of segments of a sampled locus.
	DefaultLocusPoints = 3000

	eccentricityε = 1e-9  // conic kind classification
	singularε     = 1e-12 // smallest acceptable 1+e·cos(ν)
	equalityε     = 1e-9
)

// ConicKind is the shape of a conic section.
type ConicKind uint8

const (
	// Circle has a zero eccentricity.
	Circle ConicKind = iota + 1
	// Ellipse has an eccentricity in (0, 1).
	Ellipse
	// Parabola has an eccentricity of one.
	Parabola
	// Hyperbola has an eccentricity greater than one.
	Hyperbola
)

func (k ConicKind) String() string {
	switch k {
	case Circle:
		return "circle"
	case Ellipse:
		return "ellipse"
	case Parabola:
		return "parabola"
	case Hyperbola:
		return "hyperbola"
	default:
		return fmt.Sprintf("ConicKind(%d)", uint8(k))
	}
}

// Point is a locus sample: either (x, y) or (angle, radius).
type Point [2]float64

// ConicSection is the geometric shape of an orbit: it has no notion of time or velocity.
type ConicSection struct {
	e, l   float64
	angle0 float64 // orientation of periapsis in the reference frame
}

// NewConicSection returns a conic section of eccentricity e, semilatus rectum l and periapsis orientation angle0.
func NewConicSection(e, l, angle0 float64) (ConicSection, error) {
	if err := validateConic(e, l); err != nil {
		return ConicSection{}, err
	}
	if math.IsNaN(angle0) || math.IsInf(angle0, 0) {
		return ConicSection{}, &InvalidElementsError{"angle0", angle0}
	}
	return ConicSection{e, l, NormalizeAngle(angle0)}, nil
}

// ConicFromElements returns the conic section described by the orbital elements.
func ConicFromElements(el OrbitalElements) ConicSection {
	return ConicSection{el.e, el.l, el.ω}
}

func validateConic(e, l float64) error {
	if !(l > 0) || math.IsInf(l, 1) {
		return &InvalidElementsError{"semilatus rectum", l}
	}
	if !(e >= 0) || math.IsInf(e, 1) {
		return &InvalidElementsError{"eccentricity", e}
	}
	return nil
}

// Eccentricity returns e.
func (c ConicSection) Eccentricity() float64 { return c.e }

// SemilatusRectum returns l.
func (c ConicSection) SemilatusRectum() float64 { return c.l }

// Angle0 returns the orientation of the periapsis.
func (c ConicSection) Angle0() float64 { return c.angle0 }

// Kind returns the shape of this conic.
func (c ConicSection) Kind() ConicKind {
	switch {
	case c.e < eccentricityε:
		return Circle
	case floats.EqualWithinAbs(c.e, 1, eccentricityε):
		return Parabola
	case c.e < 1:
		return Ellipse
	default:
		return Hyperbola
	}
}

// Anomaly returns the true anomaly of a reference frame angle.
func (c ConicSection) Anomaly(angle float64) float64 {
	return AngleSub(angle, c.angle0)
}

// Radius returns the distance from the focus at the reference frame angle.
// A *SingularGeometryError is returned when the angle is on or past an asymptote.
func (c ConicSection) Radius(angle float64) (float64, error) {
	return conicRadius(c.Anomaly(angle), c.e, c.l)
}

// Position returns the point of the conic at the reference frame angle.
func (c ConicSection) Position(angle float64) (Vector2D, error) {
	r, err := c.Radius(angle)
	if err != nil {
		return Vector2D{}, err
	}
	return NewVector2DFromPolar(r, angle), nil
}

// Periapsis returns the closest distance to the focus.
func (c ConicSection) Periapsis() float64 {
	return conicPeriapsis(c.e, c.l)
}

// Apoapsis returns the farthest distance to the focus. Open orbits have none, which is reported with ok=false.
func (c ConicSection) Apoapsis() (ra float64, ok bool) {
	return conicApoapsis(c.e, c.l)
}

// SemimajorAxis returns the semimajor axis, negative for hyperbolas. Parabolas have no finite semimajor axis.
func (c ConicSection) SemimajorAxis() (a float64, ok bool) {
	return conicSemimajorAxis(c.e, c.l)
}

// AsymptoteAnomaly returns arccos(-1/e), the anomaly of the asymptotes of an open orbit.
func (c ConicSection) AsymptoteAnomaly() (float64, bool) {
	if c.e < 1 {
		return 0, false
	}
	return math.Acos(-1 / c.e), true
}

// Scale returns a characteristic length of the conic, useful to size a view: the major axis of an ellipse,
// 2|a|e for a hyperbola and the latus rectum of a parabola.
func (c ConicSection) Scale() float64 {
	a, ok := c.SemimajorAxis()
	if !ok {
		return 2 * c.l
	}
	if c.e < 1 {
		return 2 * a
	}
	return 2 * math.Abs(a) * c.e
}

// LineOfApsides returns the end points of the line of apsides: from the periapsis to the apoapsis of an ellipse,
// or to the vertex of the other branch of a hyperbola. A parabola has no such segment.
func (c ConicSection) LineOfApsides() ([2]Vector2D, bool) {
	if c.Kind() == Parabola {
		return [2]Vector2D{}, false
	}
	rp := c.Periapsis()
	far := -c.l / (1 - c.e)
	return [2]Vector2D{
		Vector2D{rp, 0}.Rotate(c.angle0),
		Vector2D{far, 0}.Rotate(c.angle0),
	}, true
}

// Locus samples the principal branch of the conic with numPoints segments.
// Closed orbits are sampled over [-π, π] (first and last points coincide). Open orbits are sampled over
// (-θmax, θmax) where θmax is the asymptote anomaly, both ends excluded.
// Points are (x, y) in the reference frame, or (angle, radius) if polar is set. Fewer than two segments
// yield an empty locus.
func (c ConicSection) Locus(numPoints int, polar bool) []Point {
	if numPoints < 2 {
		return nil
	}
	νmax := math.Pi
	if c.e >= 1 {
		νmax = math.Acos(-1 / c.e)
	}
	anomalies := floats.Span(make([]float64, numPoints+1), -νmax, νmax)
	if c.e >= 1 {
		anomalies = anomalies[1:numPoints]
	}

	locus := make([]Point, 0, len(anomalies))
	if polar {
		for _, ν := range anomalies {
			locus = append(locus, Point{AngleAdd(ν, c.angle0), c.l / (1 + c.e*math.Cos(ν))})
		}
		return locus
	}

	// Compute in the apse-centred frame, then rotate the whole block into the reference frame.
	apse := make([]float64, 0, 2*len(anomalies))
	for _, ν := range anomalies {
		s, co := math.Sincos(ν)
		r := c.l / (1 + c.e*co)
		apse = append(apse, r*co, r*s)
	}
	ref := rotateRows(mat64.NewDense(len(anomalies), 2, apse), c.angle0)
	for i := range anomalies {
		row := ref.RawRowView(i)
		locus = append(locus, Point{row[0], row[1]})
	}
	return locus
}

// Equals returns whether two conics are identical. The orientation is ignored for circles.
func (c ConicSection) Equals(o ConicSection) (bool, error) {
	if !floats.EqualWithinAbs(c.e, o.e, equalityε) {
		return false, errors.New("eccentricity differs")
	}
	if !floats.EqualWithinRel(c.l, o.l, equalityε) {
		return false, errors.New("semilatus rectum differs")
	}
	if c.Kind() != Circle && !anglesEqual(c.angle0, o.angle0, equalityε) {
		return false, errors.New("periapsis orientation differs")
	}
	return true, nil
}

func (c ConicSection) String() string {
	return fmt.Sprintf("%s e=%.4f l=%.4f ω=%.3f", c.Kind(), c.e, c.l, Rad2deg(c.angle0))
}

// Helper functions go here.

func conicRadius(ν, e, l float64) (float64, error) {
	d := 1 + e*math.Cos(ν)
	if d <= singularε {
		return 0, &SingularGeometryError{Anomaly: ν, Eccentricity: e}
	}
	return l / d, nil
}

func conicPeriapsis(e, l float64) float64 {
	return l / (1 + e)
}

func conicApoapsis(e, l float64) (float64, bool) {
	if e >= 1 {
		return 0, false
	}
	return l / (1 - e), true
}

func conicSemimajorAxis(e, l float64) (float64, bool) {
	if floats.EqualWithinAbs(e, 1, eccentricityε) {
		return 0, false
	}
	return l / (1 - e*e), true
}

// Radii2le returns the semilatus rectum and the eccentricity of the closed orbit of the given apsides.
func Radii2le(rA, rP float64) (l, e float64) {
	if rA < rP {
		panic("periapsis cannot be greater than apoapsis")
	}
	e = (rA - rP) / (rA + rP)
	l = rP * (1 + e)
	return
}
