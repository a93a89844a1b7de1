package reminder

import (
	"fmt"
	"sort"
	"time"
	_ "time/tzdata"
)

// Kind enumerates the reminder types the bot sends during a day.
type Kind string

const (
	KindMorningGreeting Kind = "morning_greeting"
	KindWaterReminder   Kind = "water_reminder"
	KindEveningReport   Kind = "evening_report"
)

// Event is a single scheduled reminder occurrence.
type Event struct {
	Kind Kind      `json:"kind"`
	At   time.Time `json:"at"`
}

// Schedule computes reminder occurrences in the bot's configured timezone.
type Schedule struct {
	loc         *time.Location
	waterHours  []int
	morningHour int
	eveningHour int
}

// NewSchedule builds a schedule from the configured timezone and hours.
// Water hours outside 0-23 are skipped; morning and evening hours must
// be valid.
func NewSchedule(timezone string, waterHours []int, morningHour, eveningHour int) (*Schedule, error) {
	loc, err := time.LoadLocation(timezone)
	if err != nil {
		return nil, fmt.Errorf("reminder: invalid timezone %q: %w", timezone, err)
	}
	if morningHour < 0 || morningHour > 23 {
		return nil, fmt.Errorf("reminder: morning greeting hour %d out of range 0-23", morningHour)
	}
	if eveningHour < 0 || eveningHour > 23 {
		return nil, fmt.Errorf("reminder: evening report hour %d out of range 0-23", eveningHour)
	}

	hours := make([]int, 0, len(waterHours))
	for _, h := range waterHours {
		if h >= 0 && h <= 23 {
			hours = append(hours, h)
		}
	}

	return &Schedule{
		loc:         loc,
		waterHours:  hours,
		morningHour: morningHour,
		eveningHour: eveningHour,
	}, nil
}

// Location returns the schedule's timezone.
func (s *Schedule) Location() *time.Location {
	return s.loc
}

// Next returns the first reminder occurring strictly after the given time.
func (s *Schedule) Next(after time.Time) Event {
	local := after.In(s.loc)
	for day := 0; day < 2; day++ {
		date := local.AddDate(0, 0, day)
		for _, ev := range s.eventsOn(date) {
			if ev.At.After(after) {
				return ev
			}
		}
	}
	// Unreachable: every day has at least the greeting and the report.
	return Event{}
}

// Today returns the day's reminders in order, in the schedule's timezone.
func (s *Schedule) Today(now time.Time) []Event {
	return s.eventsOn(now.In(s.loc))
}

func (s *Schedule) eventsOn(date time.Time) []Event {
	at := func(hour int) time.Time {
		return time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, s.loc)
	}

	events := make([]Event, 0, len(s.waterHours)+2)
	events = append(events, Event{Kind: KindMorningGreeting, At: at(s.morningHour)})
	for _, h := range s.waterHours {
		events = append(events, Event{Kind: KindWaterReminder, At: at(h)})
	}
	events = append(events, Event{Kind: KindEveningReport, At: at(s.eveningHour)})

	sort.SliceStable(events, func(i, j int) bool {
		return events[i].At.Before(events[j].At)
	})
	return events
}
