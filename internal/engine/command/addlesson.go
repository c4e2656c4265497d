package command

import (
	"fmt"

	"github.com/tutortrack/tutortrack/internal/domain/lesson"
	"github.com/tutortrack/tutortrack/internal/model"
)

// AddLessonWord is the command word for assigning a lesson slot.
const AddLessonWord = "addlesson"

// AddLessonUsage describes the addlesson command syntax.
const AddLessonUsage = AddLessonWord + ": Adds a lesson to the student identified by the " +
	"index number used in the displayed student list. An existing lesson will be overwritten " +
	"and its attendance reset.\n" +
	"Parameters: INDEX (must be a positive integer) n/NAME d/DAY t/TIME l/LOCATION\n" +
	"Example: " + AddLessonWord + " 1 n/Math d/Monday t/12:00 l/RoomA"

// AddLesson assigns a weekly lesson slot to a student, replacing any prior
// slot wholesale and resetting attendance to zero.
type AddLesson struct {
	Index  int // zero-based index into the filtered view
	Lesson lesson.Lesson
}

// Execute assigns the lesson. Overwriting an existing lesson is allowed but
// reported with a warning prefix in the feedback.
func (c AddLesson) Execute(ctx *Context) (Result, error) {
	filtered := ctx.Model.FilteredPersons()
	if c.Index >= len(filtered) {
		return Result{}, NewError(MessageInvalidIndex)
	}
	target := filtered[c.Index]
	edited := target.WithLesson(c.Lesson)

	feedback := ""
	if prior, ok := target.Lesson(); ok {
		warning := fmt.Sprintf("Overwriting existing lesson for %s with %s", target.Name(), prior)
		ctx.Log().Warn("lesson overwritten", "student", target.Name().String(), "prior", prior.String())
		feedback = "Warning: " + warning + "\n"
	}

	ctx.Model.SetPerson(target, edited)
	ctx.Model.UpdateFilteredView(model.ShowAll)

	newLesson, _ := edited.Lesson()
	feedback += fmt.Sprintf("Added Lesson to %s: %s", edited.Name(), newLesson)
	return Result{Feedback: feedback, Mutated: true}, nil
}
