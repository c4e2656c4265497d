package command

import (
	"fmt"
	"strings"

	"github.com/tutortrack/tutortrack/internal/domain/person"
)

// FindWord is the command word for filtering the student list.
const FindWord = "find"

// FindUsage describes the find command syntax.
const FindUsage = FindWord + ": Finds all students whose names contain any of " +
	"the specified keywords (case-insensitive) and displays them as a list with index numbers.\n" +
	"Parameters: KEYWORD [MORE_KEYWORDS]...\n" +
	"Example: " + FindWord + " alice bob charlie"

// Find narrows the filtered view to students whose names match any keyword.
// Index-based commands issued afterwards resolve against this narrowed view.
type Find struct {
	Keywords []string
}

// Execute updates the filtered view and renders the matches.
func (c Find) Execute(ctx *Context) (Result, error) {
	ctx.Model.UpdateFilteredView(person.NameContainsKeywords(c.Keywords))
	persons := ctx.Model.FilteredPersons()

	var b strings.Builder
	fmt.Fprintf(&b, "%d students listed!", len(persons))
	for i, p := range persons {
		fmt.Fprintf(&b, "\n%d. %s", i+1, p)
	}
	return Result{Feedback: b.String()}, nil
}
