package sundial

import (
	"log"
	"time"

	"github.com/nathan-osman/go-sunrise"
)

// Event selects which sun event a SunSchedule fires on.
type Event string

const (
	EventSunrise Event = "sunrise"
	EventSunset  Event = "sunset"
)

// SunSchedule fires at a fixed offset from sunrise or sunset each
// day at a given location.
//
// This implements robfig/cron.Schedule
type SunSchedule struct {
	Location Location      `json:"location"`
	Event    Event         `json:"event"`
	Offset   time.Duration `json:"offset"`
}

// Next returns the next time the schedule's sun event occurs after
// now. A zero time is returned when the event does not occur at
// the schedule's latitude, which removes the entry from the cron
// runner.
func (s SunSchedule) Next(now time.Time) time.Time {
	event := s.eventTime(now)
	if event.IsZero() {
		log.Printf("no %s at latitude %.3f", s.Event, s.Location.Latitude)
		return time.Time{}
	}

	fireTime := event.Add(s.Offset)
	if now.After(fireTime) || now.Equal(fireTime) {
		event = s.eventTime(now.AddDate(0, 0, 1))
		if event.IsZero() {
			log.Printf("no %s at latitude %.3f", s.Event, s.Location.Latitude)
			return time.Time{}
		}
		fireTime = event.Add(s.Offset)
	}

	log.Printf("next %s %s: %s", s.Event, s.Offset, fireTime.Local().Format(time.RFC3339))
	return fireTime
}

func (s SunSchedule) eventTime(date time.Time) time.Time {
	date = date.UTC()
	rise, set := sunrise.SunriseSunset(
		s.Location.Latitude, s.Location.Longitude,
		date.Year(), date.Month(), date.Day(),
	)

	if s.Event == EventSunrise {
		return rise
	}
	return set
}
