package command

import (
	"fmt"

	"github.com/tutortrack/tutortrack/internal/domain/person"
)

// AddWord is the command word for adding a student.
const AddWord = "add"

// AddUsage describes the add command syntax.
const AddUsage = AddWord + ": Adds a student to the student list.\n" +
	"Parameters: n/NAME p/PHONE e/EMAIL a/ADDRESS [tag/TAG]...\n" +
	"Example: " + AddWord + " n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2 tag/grade10"

// Add creates a new student record.
type Add struct {
	Person person.Person
}

// Execute adds the student, rejecting a same-name duplicate.
func (c Add) Execute(ctx *Context) (Result, error) {
	if err := ctx.Model.AddPerson(c.Person); err != nil {
		return Result{}, &Error{Message: "This student already exists in the student list", Err: err}
	}
	return Result{
		Feedback: fmt.Sprintf("New student added: %s", c.Person),
		Mutated:  true,
	}, nil
}
