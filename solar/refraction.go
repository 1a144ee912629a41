package solar

import (
	"math"
)

// Refraction calculates the atmospheric refraction correction in
// degrees for a true (airless) elevation in degrees. The result is
// added to the true elevation to produce the apparent elevation.
//
// The model is piecewise: a tangent series above 5 degrees, a
// polynomial fit through the horizon, and a single reciprocal term
// well below it. Refraction is largest near the horizon and
// negligible near the zenith.
func Refraction(elevation float64) float64 {
	if elevation > 85 {
		return 0
	}

	te := math.Tan(Radians(elevation))
	var correction float64
	switch {
	case elevation > 5:
		correction = 58.1/te - 0.07/(te*te*te) + 0.000086/(te*te*te*te*te)
	case elevation > -0.575:
		correction = 1735 + elevation*(-518.2+elevation*(103.4+elevation*(-12.79+elevation*0.711)))
	default:
		correction = -20.774 / te
	}

	return correction / 3600
}
