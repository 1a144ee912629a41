package sundial

import (
	"errors"
	"fmt"
	"math"
	"time"
)

var (
	// ErrClockRead indicates the OS real-time clock could not be
	// read.
	ErrClockRead = errors.New("clock read failed")

	// ErrCalendarConversion indicates an epoch value could not be
	// broken down into calendar fields.
	ErrCalendarConversion = errors.New("calendar conversion failed")
)

// epoch second bounds of year 1 through year 9999, the range the
// calendar breakdown is defined over
const (
	minCalendarSeconds = -62135596800
	maxCalendarSeconds = 253402300799
)

// CivilBreakdown is the calendar representation of an instant.
type CivilBreakdown struct {
	Year   int
	Month  int
	Day    int
	Hour   int
	Minute int
	Second int
}

// Clock supplies the current instant and calendar breakdowns. It is
// the only fallible boundary in the package; implementations wrap
// platform time facilities so the math underneath stays free of
// them.
type Clock interface {
	// Now reads the current instant as unix epoch seconds.
	Now() (float64, error)

	// Breakdown converts epoch seconds to calendar fields, in UTC
	// or shifted to the local timezone.
	Breakdown(epochSeconds float64, local bool) (CivilBreakdown, error)
}

// SystemClock reads the operating system clock and timezone.
type SystemClock struct{}

func (SystemClock) Now() (float64, error) {
	now := time.Now()
	if now.IsZero() {
		return 0, ErrClockRead
	}
	return float64(now.UnixNano()) / 1e9, nil
}

func (SystemClock) Breakdown(epochSeconds float64, local bool) (CivilBreakdown, error) {
	if math.IsNaN(epochSeconds) || math.IsInf(epochSeconds, 0) {
		return CivilBreakdown{}, fmt.Errorf("%w: non-finite epoch", ErrCalendarConversion)
	}
	if epochSeconds < minCalendarSeconds || epochSeconds > maxCalendarSeconds {
		return CivilBreakdown{}, fmt.Errorf("%w: epoch %f out of range", ErrCalendarConversion, epochSeconds)
	}

	seconds, fraction := math.Modf(epochSeconds)
	t := time.Unix(int64(seconds), int64(fraction*1e9)).UTC()
	if local {
		t = t.Local()
	}

	return CivilBreakdown{
		Year:   t.Year(),
		Month:  int(t.Month()),
		Day:    t.Day(),
		Hour:   t.Hour(),
		Minute: t.Minute(),
		Second: t.Second(),
	}, nil
}

// OffsetSeconds derives a timezone offset in seconds east of UTC
// from two breakdowns of the same instant, one in UTC and one in
// local time.
func OffsetSeconds(utc, local CivilBreakdown) int {
	return (local.Hour-utc.Hour)*3600 + (local.Minute-utc.Minute)*60
}

// LocalOffset reads the clock's local timezone offset at the given
// instant by comparing its UTC and local breakdowns.
func LocalOffset(clock Clock, epochSeconds float64) (int, error) {
	utc, err := clock.Breakdown(epochSeconds, false)
	if err != nil {
		return 0, fmt.Errorf("utc breakdown: %w", err)
	}

	local, err := clock.Breakdown(epochSeconds, true)
	if err != nil {
		return 0, fmt.Errorf("local breakdown: %w", err)
	}

	return OffsetSeconds(utc, local), nil
}
