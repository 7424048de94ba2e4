package report

import (
	"time"
)

type Period string

const (
	PeriodToday  Period = "today"
	PeriodWeek   Period = "week"
	PeriodMonth  Period = "month"
	PeriodCustom Period = "custom"
)

func (p Period) Valid() bool {
	switch p {
	case PeriodToday, PeriodWeek, PeriodMonth, PeriodCustom:
		return true
	}
	return false
}

func (p Period) Label() string {
	switch p {
	case PeriodToday:
		return "Today"
	case PeriodWeek:
		return "Last 7 Days"
	case PeriodMonth:
		return "This Month"
	case PeriodCustom:
		return "Custom Period"
	}
	return string(p)
}

// Range is a pair of boundary days. Membership is inclusive of both boundary
// days regardless of time of day.
type Range struct {
	Start time.Time
	End   time.Time
}

// Resolve turns a period into a concrete range relative to now. For the
// custom period, unset boundaries default to a trailing 30-day window.
func (p Period) Resolve(now time.Time, customStart, customEnd time.Time) Range {
	switch p {
	case PeriodToday:
		return Range{Start: now, End: now}
	case PeriodWeek:
		return Range{Start: now.AddDate(0, 0, -7), End: now}
	case PeriodCustom:
		start, end := customStart, customEnd
		if start.IsZero() {
			start = now.AddDate(0, 0, -30)
		}
		if end.IsZero() {
			end = now
		}
		return Range{Start: start, End: end}
	default: // month
		first := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
		last := first.AddDate(0, 1, -1)
		return Range{Start: first, End: last}
	}
}

func startOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// Contains reports whether t falls on a day inside the range. The end
// boundary is extended to end-of-day, so any time on the end day matches.
func (r Range) Contains(t time.Time) bool {
	start := startOfDay(r.Start)
	end := startOfDay(r.End).AddDate(0, 0, 1)
	return !t.Before(start) && t.Before(end)
}
