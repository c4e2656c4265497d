package command

import (
	"fmt"

	"github.com/tutortrack/tutortrack/internal/domain/finance"
	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

// AddFeeWord is the command word for setting a tuition plan.
const AddFeeWord = "addfee"

// AddFeeUsage describes the addfee command syntax.
const AddFeeUsage = AddFeeWord + ": Adds or updates a tuition fee plan for a student.\n" +
	"Parameters: s/STUDENT_NAME t/[lesson|month] amt/AMOUNT\n" +
	"Example: " + AddFeeWord + " s/John Doe t/lesson amt/50"

// AddFee attaches a tuition plan (rate + billing cadence) to a student,
// located by name. An existing plan is overwritten with a warning.
type AddFee struct {
	StudentName shared.Name
	Plan        finance.TuitionPlan
}

// Execute sets the plan.
func (c AddFee) Execute(ctx *Context) (Result, error) {
	target, ok := ctx.Model.FindByName(c.StudentName)
	if !ok {
		return Result{}, NewError("No student found with the name %q.", c.StudentName)
	}

	hadPlan := target.FinanceOrEmpty().HasPlan()
	updated := target.FinanceOrEmpty().WithPlan(c.Plan)
	ctx.Model.SetPerson(target, target.WithFinance(updated))

	feedback := fmt.Sprintf("Tuition fee set: %s pays %s per %s.",
		target.Name(), c.Plan.Rate, c.Plan.Cadence.Unit())
	if hadPlan {
		feedback = "Warning: Fee plan already exists for this student. Overwriting the existing plan.\n" + feedback
	}
	return Result{Feedback: feedback, Mutated: true}, nil
}
