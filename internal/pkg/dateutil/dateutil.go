// Package dateutil holds the calendar arithmetic shared by the dashboard
// aggregations: working-day counts and the default Monday-Sunday week range.
package dateutil

import "time"

// DateOnly truncates t to midnight UTC so DATE columns and request dates
// compare cleanly.
func DateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// Weekends counts Saturdays and Sundays in the inclusive range [start, end].
func Weekends(start, end time.Time) int {
	weekends := 0
	for d := DateOnly(start); !d.After(DateOnly(end)); d = d.AddDate(0, 0, 1) {
		if d.Weekday() == time.Saturday || d.Weekday() == time.Sunday {
			weekends++
		}
	}
	return weekends
}

// WorkingDays counts Monday-Friday days in the inclusive range [start, end].
// Holidays are not modeled.
func WorkingDays(start, end time.Time) int {
	s, e := DateOnly(start), DateOnly(end)
	if s.After(e) {
		return 0
	}
	totalDays := int(e.Sub(s).Hours()/24) + 1
	return totalDays - Weekends(s, e)
}

// WeekRange returns the Monday and Sunday of the week containing t.
func WeekRange(t time.Time) (monday, sunday time.Time) {
	d := DateOnly(t)
	offset := int(d.Weekday()) - int(time.Monday)
	if offset < 0 {
		offset += 7 // Sunday
	}
	monday = d.AddDate(0, 0, -offset)
	sunday = monday.AddDate(0, 0, 6)
	return monday, sunday
}
