package sundial

import (
	"testing"
	"time"
)

var london = Location{Latitude: 51.5072, Longitude: -0.1275}

func TestSunScheduleNext(t *testing.T) {
	schedule := SunSchedule{
		Location: london,
		Event:    EventSunset,
	}

	now := time.Date(2014, 1, 2, 0, 0, 0, 0, time.UTC)
	next := schedule.Next(now)

	if !next.After(now) {
		t.Fatalf("next %s not after now", next)
	}

	// london sunset on 2014-01-02 is shortly after 16:00 UTC
	earliest := time.Date(2014, 1, 2, 15, 0, 0, 0, time.UTC)
	latest := time.Date(2014, 1, 2, 17, 0, 0, 0, time.UTC)
	if next.Before(earliest) || next.After(latest) {
		t.Fatalf("next sunset = %s, want within %s..%s", next, earliest, latest)
	}
}

func TestSunScheduleRollsToNextDay(t *testing.T) {
	schedule := SunSchedule{
		Location: london,
		Event:    EventSunrise,
	}

	// past sunrise; the schedule should move to tomorrow
	now := time.Date(2014, 1, 2, 12, 0, 0, 0, time.UTC)
	next := schedule.Next(now)

	if !next.After(now) {
		t.Fatalf("next %s not after now", next)
	}
	if next.Day() != 3 {
		t.Fatalf("next sunrise = %s, want on the 3rd", next)
	}
}

func TestSunScheduleOffset(t *testing.T) {
	base := SunSchedule{Location: london, Event: EventSunset}
	offset := SunSchedule{Location: london, Event: EventSunset, Offset: -time.Hour}

	now := time.Date(2014, 1, 2, 0, 0, 0, 0, time.UTC)
	diff := base.Next(now).Sub(offset.Next(now))

	if diff != time.Hour {
		t.Fatalf("offset moved fire time by %s, want 1h", diff)
	}
}

func TestSunSchedulePolarNight(t *testing.T) {
	schedule := SunSchedule{
		Location: Location{Latitude: 78.2232, Longitude: 15.6267}, // Longyearbyen
		Event:    EventSunset,
	}

	// deep polar night; there is no sunset to schedule against
	now := time.Date(2014, 1, 2, 0, 0, 0, 0, time.UTC)
	if next := schedule.Next(now); !next.IsZero() {
		t.Fatalf("polar night sunset = %s, want zero", next)
	}
}
