package reminder

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustSchedule(t *testing.T) *Schedule {
	t.Helper()
	s, err := NewSchedule("Europe/Moscow", []int{11, 15}, 8, 22)
	require.NoError(t, err)
	return s
}

func TestNewScheduleRejectsBadInput(t *testing.T) {
	_, err := NewSchedule("Mars/Olympus", []int{11}, 8, 22)
	assert.Error(t, err)

	_, err = NewSchedule("Europe/Moscow", nil, 24, 22)
	assert.ErrorContains(t, err, "morning greeting hour")

	_, err = NewSchedule("Europe/Moscow", nil, 8, -1)
	assert.ErrorContains(t, err, "evening report hour")
}

func TestNewScheduleSkipsBadWaterHours(t *testing.T) {
	s, err := NewSchedule("Europe/Moscow", []int{11, 25, -3, 15}, 8, 22)
	require.NoError(t, err)

	noon := time.Date(2026, 8, 29, 9, 0, 0, 0, s.Location())
	events := s.Today(noon)
	require.Len(t, events, 4)
	assert.Equal(t, KindWaterReminder, events[1].Kind)
	assert.Equal(t, 11, events[1].At.Hour())
	assert.Equal(t, KindWaterReminder, events[2].Kind)
	assert.Equal(t, 15, events[2].At.Hour())
}

func TestNext(t *testing.T) {
	s := mustSchedule(t)

	morning := time.Date(2026, 8, 29, 7, 30, 0, 0, s.Location())
	ev := s.Next(morning)
	assert.Equal(t, KindMorningGreeting, ev.Kind)
	assert.Equal(t, 8, ev.At.Hour())

	midday := time.Date(2026, 8, 29, 12, 0, 0, 0, s.Location())
	ev = s.Next(midday)
	assert.Equal(t, KindWaterReminder, ev.Kind)
	assert.Equal(t, 15, ev.At.Hour())

	evening := time.Date(2026, 8, 29, 21, 0, 0, 0, s.Location())
	ev = s.Next(evening)
	assert.Equal(t, KindEveningReport, ev.Kind)

	// After the report the next event rolls over to tomorrow's greeting.
	night := time.Date(2026, 8, 29, 23, 0, 0, 0, s.Location())
	ev = s.Next(night)
	assert.Equal(t, KindMorningGreeting, ev.Kind)
	assert.Equal(t, 30, ev.At.Day())
}

func TestNextConvertsCallerTimezone(t *testing.T) {
	s := mustSchedule(t)

	// 06:00 UTC is 09:00 in Moscow, past the greeting.
	ev := s.Next(time.Date(2026, 8, 29, 6, 0, 0, 0, time.UTC))
	assert.Equal(t, KindWaterReminder, ev.Kind)
	assert.Equal(t, 11, ev.At.In(s.Location()).Hour())
}

func TestTodayOrdered(t *testing.T) {
	s := mustSchedule(t)

	events := s.Today(time.Date(2026, 8, 29, 12, 0, 0, 0, s.Location()))
	require.Len(t, events, 4)
	for i := 1; i < len(events); i++ {
		assert.True(t, events[i].At.After(events[i-1].At))
	}
	assert.Equal(t, KindMorningGreeting, events[0].Kind)
	assert.Equal(t, KindEveningReport, events[3].Kind)
}
