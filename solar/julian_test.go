package solar

import (
	"math"
	"testing"
)

func TestJulianDateJ2000(t *testing.T) {
	// 2000-01-01T12:00:00 UTC, the J2000.0 epoch
	jd := JulianDate(946728000)
	if jd != J2000JulianDate {
		t.Fatalf("julian date = %f, want %f", jd, J2000JulianDate)
	}

	if c := JulianCentury(jd); c != 0 {
		t.Fatalf("julian century = %f, want 0", c)
	}
}

func TestJulianDateRoundTrip(t *testing.T) {
	epochs := []float64{
		0,            // unix epoch
		946728000,    // J2000.0
		-86400,       // day before unix epoch
		1735689600,   // 2025-01-01
		123456789.25, // fractional seconds
	}

	// one microday of allowed rounding error
	tolerance := 1e-6 * SecondsPerDay

	for _, epoch := range epochs {
		recovered := Timestamp(JulianDate(epoch))
		if math.Abs(recovered-epoch) > tolerance {
			t.Errorf("round trip of %f = %f", epoch, recovered)
		}
	}
}

func TestJulianDateMonotonic(t *testing.T) {
	previous := math.Inf(-1)
	for epoch := -1e9; epoch <= 1e9; epoch += 1e7 {
		jd := JulianDate(epoch)
		if jd <= previous {
			t.Fatalf("julian date not increasing at epoch %f", epoch)
		}
		previous = jd
	}
}

func TestJulianCenturyRoundTrip(t *testing.T) {
	for _, century := range []float64{-2, -0.5, 0, 0.25, 1} {
		recovered := JulianCentury(JulianDateFromCentury(century))
		if math.Abs(recovered-century) > 1e-12 {
			t.Errorf("round trip of %f = %f", century, recovered)
		}
	}
}

func TestJulianDayNumber(t *testing.T) {
	tests := []struct {
		name   string
		epoch  float64
		hour   int
		minute int
		second int
		want   int64
	}{
		{
			name:  "unix epoch",
			epoch: 0,
			want:  2440588,
		},
		{
			name:  "J2000.0",
			epoch: 946728000,
			hour:  12,
			want:  2451545,
		},
		{
			name:  "J2000.0 evening",
			epoch: 946749600, // 2000-01-01T18:00:00 UTC
			hour:  18,
			want:  2451545,
		},
	}

	for _, tt := range tests {
		got := JulianDayNumber(tt.epoch, tt.hour, tt.minute, tt.second)
		if got != tt.want {
			t.Errorf("%s: day number = %d, want %d", tt.name, got, tt.want)
		}
	}
}

func TestNewInstant(t *testing.T) {
	instant := NewInstant(946728000, 19800)

	if jd := instant.JulianDate(); jd != J2000JulianDate {
		t.Errorf("julian date = %f, want %f", jd, J2000JulianDate)
	}
	if c := instant.JulianCentury(); c != 0 {
		t.Errorf("julian century = %f, want 0", c)
	}
	if local := instant.Local(); local != 946747800 {
		t.Errorf("local seconds = %f, want 946747800", local)
	}
}
