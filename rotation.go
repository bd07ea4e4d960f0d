package orbits

import (
	"math"

	"github.com/gonum/matrix/mat64"
)

// R2D is the counterclockwise rotation of a planar vector by θ.
// Note the sign convention: this rotates the vector, not the coordinate axes.
func R2D(θ float64) *mat64.Dense {
	s, c := math.Sincos(θ)
	return mat64.NewDense(2, 2, []float64{c, -s, s, c})
}

// MxV22 multiplies a 2x2 matrix with a vector. Note that there is no dimension check!
func MxV22(m *mat64.Dense, v []float64) []float64 {
	vVec := mat64.NewVector(len(v), v)
	var rVec mat64.Vector
	rVec.MulVec(m, vVec)
	return []float64{rVec.At(0, 0), rVec.At(1, 0)}
}

// rotateRows rotates each (x, y) row of the n×2 matrix pts by θ.
func rotateRows(pts *mat64.Dense, θ float64) *mat64.Dense {
	var rotated mat64.Dense
	rotated.Mul(pts, R2D(θ).T())
	return &rotated
}
