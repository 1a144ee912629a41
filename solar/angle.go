package solar

import (
	"math"
)

// Radians converts an angle in degrees to radians.
func Radians(degrees float64) float64 {
	return degrees * math.Pi / 180
}

// Degrees converts an angle in radians to degrees.
func Degrees(radians float64) float64 {
	return radians * 180 / math.Pi
}

// normalize360 wraps an angle in degrees into [0, 360).
func normalize360(degrees float64) float64 {
	degrees = math.Mod(degrees, 360)
	if degrees < 0 {
		degrees += 360
	}
	return degrees
}
