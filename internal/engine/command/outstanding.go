package command

import (
	"fmt"
	"strings"
)

// OutstandingWord is the command word for listing outstanding payments.
const OutstandingWord = "outstanding"

// OutstandingUsage describes the outstanding command syntax.
const OutstandingUsage = OutstandingWord + ": View all outstanding payments.\n" +
	"Example: " + OutstandingWord

// Outstanding lists every student who still owes tuition. It scans the full
// store, not the filtered view, so a narrowed view never hides a debt.
// Read-only.
type Outstanding struct{}

// Execute renders the outstanding balances.
func (c Outstanding) Execute(ctx *Context) (Result, error) {
	var lines []string
	for _, p := range ctx.Model.Persons() {
		ledger, ok := p.Finance()
		if !ok || !ledger.IsOutstanding() {
			continue
		}
		lines = append(lines, fmt.Sprintf("  - %s owes %s (%s)", p.Name(), ledger.Owed(), ledger.Status()))
	}

	if len(lines) == 0 {
		return Result{Feedback: "No outstanding payments found."}, nil
	}
	return Result{
		Feedback: fmt.Sprintf("Listed %d outstanding payments:\n%s", len(lines), strings.Join(lines, "\n")),
	}, nil
}
