package solar

import (
	"math"
)

const (
	// EpochJulianDate is the Julian date of the unix epoch,
	// 1970-01-01T00:00:00 UTC
	EpochJulianDate = 2440587.5

	// J2000JulianDate is the Julian date of the J2000.0 reference
	// epoch, 2000-01-01T12:00:00 UTC
	// https://en.wikipedia.org/wiki/Epoch_(astronomy)#Julian_years_and_J2000
	J2000JulianDate = 2451545.0

	JulianCenturyDays = 36525
	SecondsPerDay     = 86400 // not including leap seconds
)

// JulianDate returns the Julian date for a unix timestamp in
// seconds. Fractional seconds are preserved.
//
// The conversion is total: non-finite input produces non-finite
// output rather than an error.
func JulianDate(epochSeconds float64) float64 {
	return epochSeconds/SecondsPerDay + EpochJulianDate
}

// Timestamp is the exact inverse of JulianDate, recovering unix
// epoch seconds from a Julian date.
func Timestamp(julianDate float64) float64 {
	return (julianDate - EpochJulianDate) * SecondsPerDay
}

// JulianCentury converts a Julian date to Julian centuries elapsed
// since J2000.0. Dates before the epoch yield negative centuries.
func JulianCentury(julianDate float64) float64 {
	return (julianDate - J2000JulianDate) / JulianCenturyDays
}

// JulianDateFromCentury is the inverse of JulianCentury.
func JulianDateFromCentury(t float64) float64 {
	return t*JulianCenturyDays + J2000JulianDate
}

// JulianDayNumber returns the integer index of the noon-to-noon
// Julian day containing the given instant. The UTC clock fields
// supply the intraday fraction subtracted before rounding.
func JulianDayNumber(epochSeconds float64, hour, minute, second int) int64 {
	fraction := float64(hour)/24 + float64(minute)/1440 + float64(second)/SecondsPerDay
	return int64(math.Round(JulianDate(epochSeconds) - fraction))
}
