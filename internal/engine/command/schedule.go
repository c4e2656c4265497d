package command

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tutortrack/tutortrack/internal/domain/lesson"
	"github.com/tutortrack/tutortrack/internal/domain/person"
	"github.com/tutortrack/tutortrack/pkg/timeutil"
)

// ScheduleWord is the command word for showing this week's schedule.
const ScheduleWord = "schedule"

// ScheduleUsage describes the schedule command syntax.
const ScheduleUsage = ScheduleWord + ": Shows all lessons in the current week (Mon-Sun), " +
	"sorted by day and time.\n" +
	"Example: " + ScheduleWord

// Schedule maps every student's weekly slot onto the concrete dates of the
// current week and renders them chronologically, grouped by day. Read-only.
type Schedule struct{}

type scheduleRow struct {
	start   time.Time
	student person.Person
	slot    lesson.Lesson
}

// Execute renders the weekly schedule. The week is anchored at the most
// recent or same Monday, so a slot on a weekday already past still shows on
// this week's date.
func (c Schedule) Execute(ctx *Context) (Result, error) {
	monday := timeutil.StartOfWeek(ctx.Clock())
	sunday := monday.AddDate(0, 0, 6)

	var rows []scheduleRow
	for _, p := range ctx.Model.Persons() {
		slot, ok := p.Lesson()
		if !ok {
			continue
		}
		date := monday.AddDate(0, 0, timeutil.MondayOffset(slot.Day().Weekday()))
		start := date.Add(time.Duration(slot.Time().MinuteOfDay()) * time.Minute)
		rows = append(rows, scheduleRow{start: start, student: p, slot: slot})
	}

	if len(rows) == 0 {
		return Result{Feedback: "No lessons found this week."}, nil
	}

	sort.SliceStable(rows, func(i, j int) bool { return rows[i].start.Before(rows[j].start) })

	var b strings.Builder
	fmt.Fprintf(&b, "Weekly schedule (%s to %s):\n",
		monday.Format("2006-01-02"), sunday.Format("2006-01-02"))

	var currentDay time.Time
	for _, r := range rows {
		if !timeutil.SameDay(r.start, currentDay) {
			currentDay = r.start
			fmt.Fprintf(&b, "\n%s %s\n",
				strings.ToUpper(r.start.Weekday().String()), r.start.Format("2006-01-02"))
		}
		fmt.Fprintf(&b, "  %s - [%s] %s @ %s\n",
			r.slot.Time(), r.student.Name(), r.slot.Name(), r.slot.Location())
	}
	return Result{Feedback: strings.TrimRight(b.String(), "\n")}, nil
}
