package command

import (
	"fmt"

	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

// PayWord is the command word for recording a payment.
const PayWord = "pay"

// PayUsage describes the pay command syntax.
const PayUsage = PayWord + ": Records a payment made by the student identified by the " +
	"index number used in the displayed student list, reducing their owed amount.\n" +
	"Parameters: INDEX (must be a positive integer) amt/AMOUNT [note/NOTE]\n" +
	"Example: " + PayWord + " 1 amt/50.00"

// Pay reduces a student's owed amount, floored at zero, and appends exactly
// one entry to their payment history.
type Pay struct {
	Index  int // zero-based index into the filtered view
	Amount shared.Amount
	Note   string
}

// Execute records the payment. A student with no outstanding balance cannot
// be paid against.
func (c Pay) Execute(ctx *Context) (Result, error) {
	filtered := ctx.Model.FilteredPersons()
	if c.Index >= len(filtered) {
		return Result{}, NewError(MessageInvalidIndex)
	}
	target := filtered[c.Index]

	ledger, ok := target.Finance()
	if !ok || !ledger.IsOutstanding() {
		return Result{}, &Error{
			Message: fmt.Sprintf("Student %s has no outstanding balance to pay against.", target.Name()),
			Err:     shared.ErrNoOutstandingBalance,
		}
	}

	paid, entry := ledger.Pay(c.Amount, ctx.Clock(), c.Note)
	ctx.Model.SetPerson(target, target.WithFinance(paid))

	ctx.Log().Info("payment recorded",
		"student", target.Name().String(),
		"amount", c.Amount.String(),
		"receipt", entry.ID(),
		"status", paid.Status().String(),
	)
	return Result{
		Feedback: fmt.Sprintf("Payment of %s recorded for %s. Outstanding: %s (%s)",
			c.Amount, target.Name(), paid.Owed(), paid.Status()),
		Mutated: true,
	}, nil
}
