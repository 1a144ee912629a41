package solar

// Instant is a single point in time paired with the timezone offset
// it should be interpreted in. The Julian representations are
// computed once at construction and owned by the value, so copies
// of an Instant never share derived state.
type Instant struct {
	Seconds float64 // unix epoch seconds, fractional seconds permitted
	Offset  int     // seconds east of UTC

	julianDate    float64
	julianCentury float64
}

// NewInstant builds an Instant from unix epoch seconds and a
// timezone offset in seconds east of UTC.
func NewInstant(epochSeconds float64, offsetSeconds int) Instant {
	jd := JulianDate(epochSeconds)
	return Instant{
		Seconds:       epochSeconds,
		Offset:        offsetSeconds,
		julianDate:    jd,
		julianCentury: JulianCentury(jd),
	}
}

// JulianDate returns the instant's Julian date in days.
func (i Instant) JulianDate() float64 {
	return i.julianDate
}

// JulianCentury returns the instant's Julian centuries since J2000.0.
func (i Instant) JulianCentury() float64 {
	return i.julianCentury
}

// Local returns the instant's epoch seconds shifted by its
// timezone offset.
func (i Instant) Local() float64 {
	return i.Seconds + float64(i.Offset)
}
