package orbits

import (
	"fmt"
	"math"

	"github.com/gonum/floats"
)

// Vector2D is a planar Cartesian vector.
type Vector2D struct {
	X, Y float64
}

// NewVector2DFromPolar returns the vector of the provided norm and direction.
func NewVector2DFromPolar(radius, angle float64) Vector2D {
	s, c := math.Sincos(angle)
	return Vector2D{radius * c, radius * s}
}

// Add returns v + o.
func (v Vector2D) Add(o Vector2D) Vector2D {
	return Vector2D{v.X + o.X, v.Y + o.Y}
}

// Sub returns v - o.
func (v Vector2D) Sub(o Vector2D) Vector2D {
	return Vector2D{v.X - o.X, v.Y - o.Y}
}

// Scale returns s·v.
func (v Vector2D) Scale(s float64) Vector2D {
	return Vector2D{s * v.X, s * v.Y}
}

// Dot returns the inner product.
func (v Vector2D) Dot(o Vector2D) float64 {
	return v.X*o.X + v.Y*o.Y
}

// Norm returns the magnitude of the vector.
func (v Vector2D) Norm() float64 {
	return math.Hypot(v.X, v.Y)
}

// Angle returns atan2(y, x), in (-π, π]. The zero vector has an angle of zero.
func (v Vector2D) Angle() float64 {
	return math.Atan2(v.Y, v.X)
}

// Polar returns the norm and the direction of the vector.
func (v Vector2D) Polar() (radius, angle float64) {
	return v.Norm(), v.Angle()
}

// Rotate returns the vector rotated counterclockwise by θ.
func (v Vector2D) Rotate(θ float64) Vector2D {
	r := MxV22(R2D(θ), v.Slice())
	return Vector2D{r[0], r[1]}
}

// Slice returns the components as a new slice.
func (v Vector2D) Slice() []float64 {
	return []float64{v.X, v.Y}
}

// Equals returns whether both components are within ε.
func (v Vector2D) Equals(o Vector2D, ε float64) bool {
	return floats.EqualWithinAbs(v.X, o.X, ε) && floats.EqualWithinAbs(v.Y, o.Y, ε)
}

func (v Vector2D) String() string {
	return fmt.Sprintf("(%f, %f)", v.X, v.Y)
}
