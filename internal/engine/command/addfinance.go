package command

import (
	"fmt"

	"github.com/tutortrack/tutortrack/internal/domain/shared"
	"github.com/tutortrack/tutortrack/internal/model"
)

// AddFinanceWord is the command word for setting a student's owed amount.
const AddFinanceWord = "addfinance"

// AddFinanceUsage describes the addfinance command syntax.
const AddFinanceUsage = AddFinanceWord + ": Sets the owed amount of the student identified " +
	"by the index number used in the displayed student list. An existing owed amount is " +
	"replaced by the input value; the payment history and tuition plan are kept.\n" +
	"Parameters: INDEX (must be a positive integer) amt/AMOUNT\n" +
	"Example: " + AddFinanceWord + " 1 amt/100.00"

// AddFinance replaces a student's owed amount, creating the ledger when the
// student has none yet.
type AddFinance struct {
	Index  int // zero-based index into the filtered view
	Amount shared.Amount
}

// Execute sets the owed amount.
func (c AddFinance) Execute(ctx *Context) (Result, error) {
	filtered := ctx.Model.FilteredPersons()
	if c.Index >= len(filtered) {
		return Result{}, NewError(MessageInvalidIndex)
	}
	target := filtered[c.Index]

	updated := target.FinanceOrEmpty().WithOwed(c.Amount)
	edited := target.WithFinance(updated)

	ctx.Model.SetPerson(target, edited)
	ctx.Model.UpdateFilteredView(model.ShowAll)

	return Result{
		Feedback: fmt.Sprintf("Added Finance to %s: %s", edited.Name(), updated),
		Mutated:  true,
	}, nil
}
