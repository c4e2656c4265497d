package command

import (
	"fmt"

	"github.com/tutortrack/tutortrack/internal/domain/lesson"
	"github.com/tutortrack/tutortrack/internal/model"
)

// MarkWord is the command word for marking attendance.
const MarkWord = "mark"

// MarkUsage describes the mark command syntax.
const MarkUsage = MarkWord + ": Marks the attendance of the student identified by the " +
	"index number used in the displayed student list.\n" +
	"Parameters: INDEX (must be a positive integer) s/STATUS (must be 'present' or 'absent')\n" +
	"Example: " + MarkWord + " 1 s/present"

// Mark updates a student's attendance counters for one more lesson.
type Mark struct {
	Index  int // zero-based index into the filtered view
	Status lesson.AttendanceStatus
}

// Execute marks attendance; the total counter always grows by one, the
// attended counter only for a "present" mark.
func (c Mark) Execute(ctx *Context) (Result, error) {
	filtered := ctx.Model.FilteredPersons()
	if c.Index >= len(filtered) {
		return Result{}, NewError(MessageInvalidIndex)
	}
	target := filtered[c.Index]

	edited, err := target.MarkAttendance(c.Status)
	if err != nil {
		return Result{}, &Error{
			Message: fmt.Sprintf("Cannot mark attendance. Student %s has no lesson assigned.", target.Name()),
			Err:     err,
		}
	}

	ctx.Model.SetPerson(target, edited)
	ctx.Model.UpdateFilteredView(model.ShowAll)

	marked, _ := edited.Lesson()
	return Result{
		Feedback: fmt.Sprintf("Marked attendance for Student %s: %s", edited.Name(), marked),
		Mutated:  true,
	}, nil
}
