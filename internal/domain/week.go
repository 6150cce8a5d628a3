package domain

import "time"

// DaysPerWeek is the length of a menu week.
const DaysPerWeek = 7

// Day truncates t to midnight in loc.
func Day(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// WeekStart returns the Sunday that opens the week containing now, shifted by offset weeks.
func WeekStart(now time.Time, offset int, loc *time.Location) time.Time {
	day := Day(now, loc)
	return day.AddDate(0, 0, -int(day.Weekday())+offset*DaysPerWeek)
}

// Week is a Sunday-to-Saturday range.
type Week struct {
	Start time.Time
	End   time.Time
}

// WeekAt returns the week shifted by offset from the one containing now.
func WeekAt(now time.Time, offset int, loc *time.Location) Week {
	start := WeekStart(now, offset, loc)
	return Week{Start: start, End: start.AddDate(0, 0, DaysPerWeek-1)}
}

// Days lists every day of the week in order.
func (w Week) Days() []time.Time {
	days := make([]time.Time, 0, DaysPerWeek)
	for i := 0; i < DaysPerWeek; i++ {
		days = append(days, w.Start.AddDate(0, 0, i))
	}
	return days
}
