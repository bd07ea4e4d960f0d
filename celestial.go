package orbits

import (
	"fmt"
	"strings"
)

// CelestialObject defines a central body: only its gravitational parameter matters to the orbits.
type CelestialObject struct {
	Name   string
	Radius float64
	μ      float64
}

// NewCelestialObject returns a custom central body.
func NewCelestialObject(name string, radius, gm float64) (CelestialObject, error) {
	if err := validateGM(gm); err != nil {
		return CelestialObject{}, err
	}
	return CelestialObject{name, radius, gm}, nil
}

// GM returns μ (which is unexported because it's a lowercase letter)
func (c CelestialObject) GM() float64 {
	return c.μ
}

// CircularSpeed returns the speed of a circular orbit of radius r.
func (c CelestialObject) CircularSpeed(r float64) float64 {
	return circularSpeed(c.μ, r)
}

// String implements the Stringer interface.
func (c CelestialObject) String() string {
	return c.Name + " body"
}

// Equals returns whether the provided celestial object is the same.
func (c CelestialObject) Equals(b CelestialObject) bool {
	return c.Name == b.Name && c.Radius == b.Radius && c.μ == b.μ
}

// CelestialObjectFromString returns the object from its name
func CelestialObjectFromString(name string) (CelestialObject, error) {
	switch strings.ToLower(name) {
	case "", "unit":
		return Unit, nil
	case "sun":
		return Sun, nil
	case "venus":
		return Venus, nil
	case "earth":
		return Earth, nil
	case "mars":
		return Mars, nil
	case "jupiter":
		return Jupiter, nil
	default:
		return CelestialObject{}, fmt.Errorf("undefined planet '%s'", name)
	}
}

/* Definitions */

// Unit is a normalised body: gm=1 and unit radius, so that speeds are in units of the circular speed at r=1.
var Unit = CelestialObject{"Unit", 1, 1}

// Sun is our closest star (radius in km, μ in km^3/s^2).
var Sun = CelestialObject{"Sun", 695700, 1.32712440017987e11}

// Venus is poisonous.
var Venus = CelestialObject{"Venus", 6051.8, 3.24858599e5}

// Earth is home.
var Earth = CelestialObject{"Earth", 6378.1363, 3.98600433e5}

// Mars is the vacation place.
var Mars = CelestialObject{"Mars", 3396.19, 4.28283100e4}

// Jupiter is big.
var Jupiter = CelestialObject{"Jupiter", 71492.0, 1.266865361e8}
