// Package timeutil provides calendar helpers for week-anchored scheduling.
package timeutil

import "time"

// StartOfDay returns the start of the day (00:00:00) in t's location.
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// StartOfWeek returns the most recent or same Monday at 00:00:00. A lesson on
// a weekday already past still lands in the current calendar week.
func StartOfWeek(t time.Time) time.Time {
	weekday := int(t.Weekday())
	if weekday == 0 {
		weekday = 7 // Sunday
	}
	return StartOfDay(t.AddDate(0, 0, -(weekday - 1)))
}

// EndOfWeek returns the Sunday of t's week at 00:00:00.
func EndOfWeek(t time.Time) time.Time {
	return StartOfWeek(t).AddDate(0, 0, 6)
}

// MondayOffset returns the day offset from Monday (Monday = 0 .. Sunday = 6).
func MondayOffset(d time.Weekday) int {
	return (int(d) + 6) % 7
}

// SameDay reports whether two instants fall on the same calendar day.
func SameDay(a, b time.Time) bool {
	ay, am, ad := a.Date()
	by, bm, bd := b.Date()
	return ay == by && am == bm && ad == bd
}
