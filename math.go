package orbits

import (
	"math"

	"github.com/gonum/floats"
)

const (
	// TwoPi is the wrap-around of every angle in this package.
	TwoPi   = 2 * math.Pi
	deg2rad = math.Pi / 180
)

// NormalizeAngle returns a modulo 2π, in [0, 2π).
func NormalizeAngle(a float64) float64 {
	a = math.Mod(a, TwoPi)
	if a < 0 {
		a += TwoPi
	}
	if a >= TwoPi {
		// A tiny negative input rounds up to exactly 2π.
		a = 0
	}
	return a
}

// AngleAdd returns (a + b) mod 2π.
func AngleAdd(a, b float64) float64 {
	return NormalizeAngle(a + b)
}

// AngleSub returns (a - b) mod 2π, where both a and b are first wrapped.
// All orientation angles must be combined with AngleAdd and AngleSub.
func AngleSub(a, b float64) float64 {
	return NormalizeAngle(NormalizeAngle(a) - NormalizeAngle(b))
}

// wrapπ folds an angle in (-π, π].
func wrapπ(a float64) float64 {
	a = NormalizeAngle(a)
	if a > math.Pi {
		a -= TwoPi
	}
	return a
}

// anglesEqual returns whether two angles are equal modulo 2π within ε.
func anglesEqual(a, b, ε float64) bool {
	return floats.EqualWithinAbs(wrapπ(AngleSub(a, b)), 0, ε)
}

// Deg2rad converts degrees to radians, and enforced only positive numbers.
func Deg2rad(a float64) float64 {
	return NormalizeAngle(a * deg2rad)
}

// Rad2deg converts radians to degrees, and enforced only positive numbers.
func Rad2deg(a float64) float64 {
	return NormalizeAngle(a) / deg2rad
}

// Rad2deg180 converts radians to degrees in (-180, 180].
func Rad2deg180(a float64) float64 {
	return wrapπ(a) / deg2rad
}
