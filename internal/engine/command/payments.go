package command

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/tutortrack/tutortrack/internal/domain/shared"
	"github.com/tutortrack/tutortrack/pkg/timeutil"
)

// PaymentHistoryWord is the command word for listing all recorded payments.
const PaymentHistoryWord = "payments"

// PaymentHistoryUsage describes the payments command syntax.
const PaymentHistoryUsage = PaymentHistoryWord + ": Shows the payment history for all " +
	"students from newest to oldest.\n" +
	"Example: " + PaymentHistoryWord

// PaymentHistory collects every payment entry across the full store and
// renders them newest first, grouped by date, with a grand total. Read-only.
type PaymentHistory struct{}

type paymentRow struct {
	at      time.Time
	amount  shared.Amount
	note    string
	student shared.Name
}

// Execute renders the history.
func (c PaymentHistory) Execute(ctx *Context) (Result, error) {
	var rows []paymentRow
	for _, p := range ctx.Model.Persons() {
		ledger, ok := p.Finance()
		if !ok {
			continue
		}
		for _, entry := range ledger.History() {
			rows = append(rows, paymentRow{
				at:      entry.At(),
				amount:  entry.Amount(),
				note:    entry.Note(),
				student: p.Name(),
			})
		}
	}

	if len(rows) == 0 {
		return Result{Feedback: "No payment records found."}, nil
	}

	// Newest date first; within a date, newest time first.
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].at.After(rows[j].at) })

	var b strings.Builder
	b.WriteString("Payment History (newest first):\n")

	var currentDay time.Time
	// The grand total can legitimately exceed the single-amount ceiling, so
	// it accumulates in raw cents rather than a capped Amount.
	var totalCents int64
	for _, r := range rows {
		if !timeutil.SameDay(r.at, currentDay) {
			currentDay = r.at
			fmt.Fprintf(&b, "\n%s\n", r.at.Format("2006-01-02"))
		}
		totalCents += r.amount.Cents()
		fmt.Fprintf(&b, "  - [%s] %s", r.student, r.amount)
		if r.note != "" {
			fmt.Fprintf(&b, " - %s", r.note)
		}
		b.WriteString("\n")
	}
	fmt.Fprintf(&b, "\nTotal paid: %d.%02d", totalCents/100, totalCents%100)
	return Result{Feedback: b.String()}, nil
}
