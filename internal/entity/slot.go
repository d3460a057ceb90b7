package entity

import (
	"sort"
	"time"
)

// SlotTimes are the bookable times offered for every calendar day.
var SlotTimes = []string{"09:00", "10:00", "11:00", "14:00", "15:00", "16:00"}

const slotWindowDays = 7

// SlotCalendar maps ISO dates (2006-01-02) to the times still available on
// that date. Consuming a slot removes the time from the day's list; a missing
// time means the slot is taken.
//
// The calendar is NOT safe for concurrent use on its own. The appointment
// service guards it with the same mutex that guards the record list.
type SlotCalendar map[string][]string

// NewSlotCalendar builds the rolling window: the seven days after now, each
// with the full set of SlotTimes.
func NewSlotCalendar(now time.Time) SlotCalendar {
	cal := make(SlotCalendar, slotWindowDays)
	for i := 1; i <= slotWindowDays; i++ {
		date := now.AddDate(0, 0, i).Format("2006-01-02")
		cal[date] = append([]string(nil), SlotTimes...)
	}
	return cal
}

// Contains reports whether the date is inside the calendar window.
func (c SlotCalendar) Contains(date string) bool {
	_, ok := c[date]
	return ok
}

// Consume removes the time from the date's availability. It returns false when
// the slot is already taken or the date is outside the window.
func (c SlotCalendar) Consume(date, slotTime string) bool {
	times, ok := c[date]
	if !ok {
		return false
	}
	for i, t := range times {
		if t == slotTime {
			c[date] = append(times[:i:i], times[i+1:]...)
			return true
		}
	}
	return false
}

// Release puts a time back into the date's availability. Releasing an
// already-free slot or a date outside the window is a no-op.
func (c SlotCalendar) Release(date, slotTime string) {
	times, ok := c[date]
	if !ok {
		return
	}
	for _, t := range times {
		if t == slotTime {
			return
		}
	}
	times = append(times, slotTime)
	sort.Strings(times)
	c[date] = times
}

// Dates returns the calendar dates in chronological order.
func (c SlotCalendar) Dates() []string {
	dates := make([]string, 0, len(c))
	for d := range c {
		dates = append(dates, d)
	}
	sort.Strings(dates)
	return dates
}

// Times returns a copy of the remaining times for the date, in order.
func (c SlotCalendar) Times(date string) []string {
	return append([]string(nil), c[date]...)
}

// Clone deep-copies the calendar. Used for rollback snapshots and for handing
// availability out of the mutex domain.
func (c SlotCalendar) Clone() SlotCalendar {
	cp := make(SlotCalendar, len(c))
	for d, times := range c {
		cp[d] = append([]string(nil), times...)
	}
	return cp
}
