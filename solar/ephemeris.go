package solar

import (
	"math"
)

// The functions in this file are a low-precision polynomial
// ephemeris for the sun, keyed on Julian centuries since J2000.0.
// They follow the equations used by NOAA's solar calculator and
// are accurate to roughly a tenth of a degree for civil-era dates.
// https://gml.noaa.gov/grad/solcalc/calcdetails.html

// GeomMeanLongSun calculates the geometric mean longitude of the
// sun in degrees, normalized into [0, 360).
func GeomMeanLongSun(t float64) float64 {
	return normalize360(280.46646 + t*(36000.76983+t*0.0003032))
}

// GeomMeanAnomalySun calculates the geometric mean anomaly of the
// sun in degrees, the fraction of the sun's orbital period elapsed
// since perihelion for a mean (circular) orbit.
func GeomMeanAnomalySun(t float64) float64 {
	return 357.52911 + t*(35999.05029-0.0001537*t)
}

// EccentricityEarthOrbit calculates the unitless eccentricity of
// earth's orbit.
func EccentricityEarthOrbit(t float64) float64 {
	return 0.016708634 - t*(0.000042037+0.0000001267*t)
}

// SunEqOfCenter calculates the angular difference in degrees
// between the position of the actual sun (with an elliptical
// orbit) and the mean sun (with a circular orbit).
//
// https://en.wikipedia.org/wiki/Equation_of_the_center
func SunEqOfCenter(t float64) float64 {
	m := Radians(GeomMeanAnomalySun(t))

	firstOrder := math.Sin(m) * (1.914602 - t*(0.004817+0.000014*t))
	secondOrder := math.Sin(2*m) * (0.019993 - 0.000101*t)
	thirdOrder := math.Sin(3*m) * 0.000289

	return firstOrder + secondOrder + thirdOrder
}

// SunTrueLong calculates the sun's true longitude in degrees.
func SunTrueLong(t float64) float64 {
	return GeomMeanLongSun(t) + SunEqOfCenter(t)
}

// SunTrueAnomaly calculates the sun's true anomaly in degrees.
func SunTrueAnomaly(t float64) float64 {
	return GeomMeanAnomalySun(t) + SunEqOfCenter(t)
}

// SunRadVector calculates the earth-sun distance in astronomical
// units.
func SunRadVector(t float64) float64 {
	e := EccentricityEarthOrbit(t)
	v := Radians(SunTrueAnomaly(t))
	return 1.000001018 * (1 - e*e) / (1 + e*math.Cos(v))
}

// SunApparentLong calculates the sun's apparent longitude in
// degrees, correcting the true longitude for nutation and
// aberration.
func SunApparentLong(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return SunTrueLong(t) - 0.00569 - 0.00478*math.Sin(Radians(omega))
}

// MeanObliquityOfEcliptic calculates the mean tilt of earth's
// equator against the ecliptic plane, in degrees.
func MeanObliquityOfEcliptic(t float64) float64 {
	seconds := 21.448 - t*(46.815+t*(0.00059-t*0.001813))
	return 23 + (26+seconds/60)/60
}

// ObliquityCorrection adjusts the mean obliquity for nutation,
// in degrees.
func ObliquityCorrection(t float64) float64 {
	omega := 125.04 - 1934.136*t
	return MeanObliquityOfEcliptic(t) + 0.00256*math.Cos(Radians(omega))
}

// SunRightAscension calculates the sun's right ascension in
// degrees. The two-argument arctangent keeps the correct quadrant
// across the full circle.
func SunRightAscension(t float64) float64 {
	epsilon := Radians(ObliquityCorrection(t))
	lambda := Radians(SunApparentLong(t))

	return Degrees(math.Atan2(math.Cos(epsilon)*math.Sin(lambda), math.Cos(lambda)))
}

// SunDeclination calculates the sun's declination in degrees.
func SunDeclination(t float64) float64 {
	epsilon := Radians(ObliquityCorrection(t))
	lambda := Radians(SunApparentLong(t))

	return Degrees(math.Asin(math.Sin(epsilon) * math.Sin(lambda)))
}

// EquationOfTime calculates the difference between apparent solar
// time and mean solar time, in minutes of time.
//
// https://en.wikipedia.org/wiki/Equation_of_time
func EquationOfTime(t float64) float64 {
	l0 := Radians(GeomMeanLongSun(t))
	m := Radians(GeomMeanAnomalySun(t))
	e := EccentricityEarthOrbit(t)

	y := math.Tan(Radians(ObliquityCorrection(t)) / 2)
	y *= y

	etime := y*math.Sin(2*l0) -
		2*e*math.Sin(m) +
		4*e*y*math.Sin(m)*math.Cos(2*l0) -
		0.5*y*y*math.Sin(4*l0) -
		1.25*e*e*math.Sin(2*m)

	return Degrees(etime) * 4
}
