package lesson

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

func sampleLesson(t *testing.T) Lesson {
	t.Helper()
	name, err := shared.NewLessonName("Math")
	require.NoError(t, err)
	day, err := shared.NewWeekDay("monday")
	require.NoError(t, err)
	at, err := shared.NewClockTime("12:00")
	require.NoError(t, err)
	location, err := shared.NewLocation("RoomA")
	require.NoError(t, err)
	return New(name, day, at, location)
}

func TestNewAttendanceStatus(t *testing.T) {
	got, err := NewAttendanceStatus(" PRESENT ")
	require.NoError(t, err)
	assert.Equal(t, Present, got)

	got, err = NewAttendanceStatus("absent")
	require.NoError(t, err)
	assert.Equal(t, Absent, got)

	_, err = NewAttendanceStatus("late")
	assert.ErrorIs(t, err, shared.ErrInvalidAttendanceStatus)
}

func TestAttendanceMark(t *testing.T) {
	var a Attendance
	assert.Equal(t, "0/0", a.String())

	a = a.Mark(Present)
	assert.Equal(t, 1, a.Total())
	assert.Equal(t, 1, a.Attended())

	a = a.Mark(Absent)
	assert.Equal(t, 2, a.Total())
	assert.Equal(t, 1, a.Attended())
	assert.Equal(t, "1/2", a.String())
}

func TestNewAttendanceValidation(t *testing.T) {
	a, err := NewAttendance(5, 3)
	require.NoError(t, err)
	assert.Equal(t, 5, a.Total())
	assert.Equal(t, 3, a.Attended())

	_, err = NewAttendance(2, 3)
	assert.ErrorIs(t, err, shared.ErrInvalidAttendance)
	_, err = NewAttendance(-1, 0)
	assert.ErrorIs(t, err, shared.ErrInvalidAttendance)
	_, err = NewAttendance(0, -1)
	assert.ErrorIs(t, err, shared.ErrInvalidAttendance)
}

func TestLessonMarkPreservesSlot(t *testing.T) {
	l := sampleLesson(t)
	marked := l.Mark(Present)

	assert.Equal(t, l.Name(), marked.Name())
	assert.Equal(t, l.Day(), marked.Day())
	assert.Equal(t, l.Time(), marked.Time())
	assert.Equal(t, l.Location(), marked.Location())
	assert.Equal(t, 1, marked.Attendance().Total())

	// The receiver is unchanged.
	assert.Equal(t, 0, l.Attendance().Total())
}

func TestLessonString(t *testing.T) {
	l := sampleLesson(t).Mark(Present).Mark(Absent)
	assert.Equal(t,
		"[Lesson: Math | Day: monday | Time: 12:00 | Location: RoomA | Attendance: 1/2]",
		l.String())
}
