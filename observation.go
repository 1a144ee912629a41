package sundial

import (
	"github.com/subtlepseudonym/sundial/solar"
)

// Location is a point on the earth's surface.
type Location struct {
	Latitude  float64 `json:"latitude"`            // degrees, -90..90
	Longitude float64 `json:"longitude"`           // degrees, -180..180
	Elevation float64 `json:"elevation,omitempty"` // meters above sea level
}

// Observation binds a location, an instant, and a rise/set
// threshold. It carries everything a rise or set solver needs; the
// solving itself is left to a consumer.
type Observation struct {
	Location  Location
	Instant   solar.Instant
	Threshold solar.Threshold
}

// PositionReport is the full set of solar quantities for an
// instant. All angular fields are in degrees; EquationOfTime is in
// minutes of time and RadVector in astronomical units.
type PositionReport struct {
	JulianDate    float64 `json:"julian_date"`
	JulianCentury float64 `json:"julian_century"`
	JulianDay     int64   `json:"julian_day,omitempty"`

	MeanLongitude     float64 `json:"mean_longitude"`
	MeanAnomaly       float64 `json:"mean_anomaly"`
	Eccentricity      float64 `json:"eccentricity"`
	EqOfCenter        float64 `json:"eq_of_center"`
	TrueLongitude     float64 `json:"true_longitude"`
	ApparentLongitude float64 `json:"apparent_longitude"`
	Obliquity         float64 `json:"obliquity"`
	RightAscension    float64 `json:"right_ascension"`
	Declination       float64 `json:"declination"`
	RadVector         float64 `json:"rad_vector"`
	EquationOfTime    float64 `json:"equation_of_time"`
}

// ApparentElevation applies the atmospheric refraction correction
// to a true sun elevation in degrees. This is the elevation an
// observer at the location would actually measure.
func (o Observation) ApparentElevation(trueElevation float64) float64 {
	return trueElevation + solar.Refraction(trueElevation)
}

// ReportAt computes the solar position quantities for the
// observation's instant, including the Julian day number derived
// from the instant's UTC calendar breakdown.
func (o Observation) ReportAt(utc CivilBreakdown) PositionReport {
	report := o.Report()
	report.JulianDay = solar.JulianDayNumber(o.Instant.Seconds, utc.Hour, utc.Minute, utc.Second)
	return report
}

// Report computes the solar position quantities for the
// observation's instant.
func (o Observation) Report() PositionReport {
	t := o.Instant.JulianCentury()
	return PositionReport{
		JulianDate:    o.Instant.JulianDate(),
		JulianCentury: t,

		MeanLongitude:     solar.GeomMeanLongSun(t),
		MeanAnomaly:       solar.GeomMeanAnomalySun(t),
		Eccentricity:      solar.EccentricityEarthOrbit(t),
		EqOfCenter:        solar.SunEqOfCenter(t),
		TrueLongitude:     solar.SunTrueLong(t),
		ApparentLongitude: solar.SunApparentLong(t),
		Obliquity:         solar.ObliquityCorrection(t),
		RightAscension:    solar.SunRightAscension(t),
		Declination:       solar.SunDeclination(t),
		RadVector:         solar.SunRadVector(t),
		EquationOfTime:    solar.EquationOfTime(t),
	}
}
