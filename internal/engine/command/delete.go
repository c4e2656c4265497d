package command

import "fmt"

// DeleteWord is the command word for deleting a student.
const DeleteWord = "delete"

// DeleteUsage describes the delete command syntax.
const DeleteUsage = DeleteWord + ": Deletes the student identified by the index number " +
	"used in the displayed student list.\n" +
	"Parameters: INDEX (must be a positive integer)\n" +
	"Example: " + DeleteWord + " 1"

// Delete removes the student at a filtered-list index.
type Delete struct {
	Index int // zero-based index into the filtered view
}

// Execute deletes the student, failing when the index is out of bounds.
func (c Delete) Execute(ctx *Context) (Result, error) {
	filtered := ctx.Model.FilteredPersons()
	if c.Index >= len(filtered) {
		return Result{}, NewError(MessageInvalidIndex)
	}
	target := filtered[c.Index]
	ctx.Model.DeletePerson(target)
	return Result{
		Feedback: fmt.Sprintf("Deleted student: %s", target),
		Mutated:  true,
	}, nil
}
