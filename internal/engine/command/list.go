package command

import (
	"fmt"
	"strings"

	"github.com/tutortrack/tutortrack/internal/model"
)

// ListWord is the command word for listing all students.
const ListWord = "list"

// ListUsage describes the list command syntax.
const ListUsage = ListWord + ": Shows a list of all students.\n" +
	"Example: " + ListWord

// List resets the filtered view to the full store and renders it.
type List struct{}

// Execute lists every student.
func (c List) Execute(ctx *Context) (Result, error) {
	ctx.Model.UpdateFilteredView(model.ShowAll)
	persons := ctx.Model.FilteredPersons()
	if len(persons) == 0 {
		return Result{Feedback: "No students recorded yet."}, nil
	}

	var b strings.Builder
	b.WriteString("Listed all students:\n")
	for i, p := range persons {
		fmt.Fprintf(&b, "%d. %s\n", i+1, p)
	}
	return Result{Feedback: strings.TrimRight(b.String(), "\n")}, nil
}
