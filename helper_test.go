package orbits

import "testing"

func assertPanic(t *testing.T, f func()) {
	defer func() {
		if r := recover(); r == nil {
			t.Errorf("code did not panic")
		}
	}()
	f()
}

// testAngles spans several turns in both directions.
func testAngles() []float64 {
	angles := []float64{0, 0.5 * TwoPi, TwoPi, -TwoPi, 1e-15, -1e-15}
	for a := -13.0; a <= 13; a += 0.77 {
		angles = append(angles, a)
	}
	return angles
}
