// Package lesson contains the weekly lesson slot assigned to a student and
// its attendance counters.
package lesson

import (
	"fmt"
	"strings"

	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

// AttendanceStatus is the outcome of a single lesson: present or absent.
type AttendanceStatus string

const (
	Present AttendanceStatus = "present"
	Absent  AttendanceStatus = "absent"
)

// IsValid checks that the status is one of the two supported values.
func (s AttendanceStatus) IsValid() bool {
	return s == Present || s == Absent
}

// String returns the lowercase status name.
func (s AttendanceStatus) String() string {
	return string(s)
}

// NewAttendanceStatus parses a status from user input, case-insensitively.
func NewAttendanceStatus(value string) (AttendanceStatus, error) {
	s := AttendanceStatus(strings.ToLower(strings.TrimSpace(value)))
	if !s.IsValid() {
		return "", shared.ErrInvalidAttendanceStatus
	}
	return s, nil
}

// Attendance counts lessons held and lessons attended. The zero value is a
// fresh counter. Attended can never exceed Total.
type Attendance struct {
	total    int
	attended int
}

// NewAttendance creates counters with validation.
func NewAttendance(total, attended int) (Attendance, error) {
	if total < 0 || attended < 0 || attended > total {
		return Attendance{}, shared.ErrInvalidAttendance
	}
	return Attendance{total: total, attended: attended}, nil
}

// Total returns the number of lessons held.
func (a Attendance) Total() int { return a.total }

// Attended returns the number of lessons attended.
func (a Attendance) Attended() int { return a.attended }

// Mark returns counters updated for one more lesson: the total always grows
// by one, the attended count grows only for a "present" mark.
func (a Attendance) Mark(status AttendanceStatus) Attendance {
	if status == Present {
		return Attendance{total: a.total + 1, attended: a.attended + 1}
	}
	return Attendance{total: a.total + 1, attended: a.attended}
}

// String formats the counters as "attended/total".
func (a Attendance) String() string {
	return fmt.Sprintf("%d/%d", a.attended, a.total)
}

// Lesson is a recurring weekly slot: a named lesson on a weekday at a wall
// clock time in a location, with attendance counters. Lessons are immutable;
// Mark returns a new value.
type Lesson struct {
	name       shared.LessonName
	day        shared.WeekDay
	time       shared.ClockTime
	location   shared.Location
	attendance Attendance
}

// New creates a Lesson with fresh (zero) attendance counters.
func New(name shared.LessonName, day shared.WeekDay, at shared.ClockTime, location shared.Location) Lesson {
	return Lesson{name: name, day: day, time: at, location: location}
}

// Restore rebuilds a Lesson from persisted state, counters included.
func Restore(name shared.LessonName, day shared.WeekDay, at shared.ClockTime,
	location shared.Location, attendance Attendance) Lesson {
	return Lesson{name: name, day: day, time: at, location: location, attendance: attendance}
}

// Name returns the lesson name.
func (l Lesson) Name() shared.LessonName { return l.name }

// Day returns the weekday of the slot.
func (l Lesson) Day() shared.WeekDay { return l.day }

// Time returns the wall clock time of the slot.
func (l Lesson) Time() shared.ClockTime { return l.time }

// Location returns where the lesson takes place.
func (l Lesson) Location() shared.Location { return l.location }

// Attendance returns the attendance counters.
func (l Lesson) Attendance() Attendance { return l.attendance }

// Mark returns a new Lesson with the attendance counters updated.
func (l Lesson) Mark(status AttendanceStatus) Lesson {
	next := l
	next.attendance = l.attendance.Mark(status)
	return next
}

// Equal compares two lessons by value, counters included.
func (l Lesson) Equal(other Lesson) bool {
	return l == other
}

// String formats the lesson for display.
func (l Lesson) String() string {
	return fmt.Sprintf("[Lesson: %s | Day: %s | Time: %s | Location: %s | Attendance: %s]",
		l.name, l.day, l.time, l.location, l.attendance)
}
