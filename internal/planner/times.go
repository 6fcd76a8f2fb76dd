package planner

import (
	"fmt"
	"time"
)

// The printed grid covers every half hour from 06:00 through 19:30 inclusive,
// 28 rows total.
const (
	dayStartMinutes = 6 * 60
	dayEndMinutes   = 19*60 + 30
	slotStepMinutes = 30
)

// timeKeyFormat is the canonical 24-hour "HH:MM" form used as schedule and
// fill lookup keys.
const timeKeyFormat = "15:04"

// Slot is one half-hour period of the day, identified by its start time.
type Slot struct {
	minutes int // minutes from midnight
}

// Key returns the canonical 24-hour "HH:MM" key for the slot.
func (s Slot) Key() string {
	return fmt.Sprintf("%02d:%02d", s.minutes/60, s.minutes%60)
}

// Label returns the row label printed on the grid: a 12-hour clock without
// AM/PM and without a leading zero ("6:00", "12:30", "7:30").
func (s Slot) Label() string {
	h := s.minutes / 60 % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d", h, s.minutes%60)
}

// Slots returns the fixed universe of schedule rows in strictly increasing
// half-hour steps.
func Slots() []Slot {
	var slots []Slot
	for m := dayStartMinutes; m <= dayEndMinutes; m += slotStepMinutes {
		slots = append(slots, Slot{minutes: m})
	}
	return slots
}

// EndTime returns start plus span half-hour blocks, formatted back to
// 24-hour "HH:MM". This is plain clock arithmetic and wraps past midnight:
// "23:00" with a span of 4 ends at "01:00". It fails only when start does
// not parse as "HH:MM".
func EndTime(start string, span int) (string, error) {
	t, err := time.Parse(timeKeyFormat, start)
	if err != nil {
		return "", fmt.Errorf("invalid start time %q: %w", start, err)
	}
	return t.Add(time.Duration(span) * slotStepMinutes * time.Minute).Format(timeKeyFormat), nil
}

// parseKey converts a canonical "HH:MM" string to minutes from midnight.
func parseKey(s string) (int, error) {
	t, err := time.Parse(timeKeyFormat, s)
	if err != nil {
		return 0, err
	}
	return t.Hour()*60 + t.Minute(), nil
}

func keyFor(minutes int) string {
	return Slot{minutes: minutes}.Key()
}
