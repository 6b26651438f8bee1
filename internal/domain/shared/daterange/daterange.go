// Package daterange models inclusive calendar-date ranges for stays.
// Every date is normalized to 12:00 UTC so that expanding a range into
// days never drifts across a timezone boundary.
package daterange

import (
	"errors"
	"time"
)

const DayFormat = "2006-01-02"

var ErrEndBeforeStart = errors.New("end date is before start date")

// Normalize pins a timestamp to noon UTC of its calendar day.
func Normalize(t time.Time) time.Time {
	u := t.UTC()
	return time.Date(u.Year(), u.Month(), u.Day(), 12, 0, 0, 0, time.UTC)
}

// DateRange is an inclusive [start, end] span of calendar days.
type DateRange struct {
	start time.Time
	end   time.Time
}

func New(start, end time.Time) (DateRange, error) {
	s := Normalize(start)
	e := Normalize(end)
	if e.Before(s) {
		return DateRange{}, ErrEndBeforeStart
	}
	return DateRange{start: s, end: e}, nil
}

func (r DateRange) Start() time.Time { return r.start }
func (r DateRange) End() time.Time   { return r.end }

// Days expands the range into individual calendar days, both ends included.
func (r DateRange) Days() []time.Time {
	var days []time.Time
	for d := r.start; !d.After(r.end); d = d.AddDate(0, 0, 1) {
		days = append(days, d)
	}
	return days
}

// DayStrings is Days rendered as YYYY-MM-DD.
func (r DateRange) DayStrings() []string {
	days := r.Days()
	out := make([]string, len(days))
	for i, d := range days {
		out[i] = d.Format(DayFormat)
	}
	return out
}

// Overlaps reports whether the ranges share at least one calendar day.
func (r DateRange) Overlaps(other DateRange) bool {
	return !r.end.Before(other.start) && !r.start.After(other.end)
}

// ClampTo intersects the range with bounds. ok is false when they are disjoint.
func (r DateRange) ClampTo(bounds DateRange) (DateRange, bool) {
	if !r.Overlaps(bounds) {
		return DateRange{}, false
	}
	s := r.start
	if bounds.start.After(s) {
		s = bounds.start
	}
	e := r.end
	if bounds.end.Before(e) {
		e = bounds.end
	}
	return DateRange{start: s, end: e}, true
}

// Nights counts occupied nights, end-date exclusive: a same-day
// check-in/check-out yields zero nights.
func (r DateRange) Nights() int {
	return int(r.end.Sub(r.start).Hours() / 24)
}

// NightDates lists the dates on which a night is spent: every day of the
// range except the end date.
func (r DateRange) NightDates() []time.Time {
	var nights []time.Time
	for d := r.start; d.Before(r.end); d = d.AddDate(0, 0, 1) {
		nights = append(nights, d)
	}
	return nights
}
