// Package finance contains the tuition-finance ledger: the outstanding owed
// amount, the append-only payment history and the optional tuition plan.
package finance

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

// Status is derived from the ledger state, never stored independently:
// a zero balance is Paid, anything else is Unpaid unless the overdue flag
// has been raised by an external rule.
type Status string

const (
	StatusPaid    Status = "paid"
	StatusUnpaid  Status = "unpaid"
	StatusOverdue Status = "overdue"
)

// String returns the display form of the status.
func (s Status) String() string {
	switch s {
	case StatusPaid:
		return "Paid"
	case StatusUnpaid:
		return "Unpaid"
	case StatusOverdue:
		return "Overdue"
	default:
		return "Unknown"
	}
}

// PlanCadence is the billing cadence of a tuition plan.
type PlanCadence string

const (
	PerLesson PlanCadence = "per_lesson"
	PerMonth  PlanCadence = "per_month"
)

// IsValid checks that the cadence is one of the two supported values.
func (c PlanCadence) IsValid() bool {
	return c == PerLesson || c == PerMonth
}

// String returns the display form of the cadence.
func (c PlanCadence) String() string {
	switch c {
	case PerLesson:
		return "Per Lesson"
	case PerMonth:
		return "Monthly"
	default:
		return "Unknown"
	}
}

// Unit returns the billing unit name, e.g. "lesson" in "50.00 per lesson".
func (c PlanCadence) Unit() string {
	if c == PerMonth {
		return "month"
	}
	return "lesson"
}

// NewPlanCadence parses a cadence from user input ("lesson" or "month"),
// case-insensitively.
func NewPlanCadence(value string) (PlanCadence, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "lesson":
		return PerLesson, nil
	case "month":
		return PerMonth, nil
	default:
		return "", shared.ErrInvalidPlanCadence
	}
}

// TuitionPlan is a rate plus a billing cadence attached to a student.
type TuitionPlan struct {
	Cadence PlanCadence
	Rate    shared.Amount
}

// NewTuitionPlan creates a validated TuitionPlan.
func NewTuitionPlan(cadence PlanCadence, rate shared.Amount) (TuitionPlan, error) {
	if !cadence.IsValid() {
		return TuitionPlan{}, shared.ErrInvalidPlanCadence
	}
	if !rate.IsValid() {
		return TuitionPlan{}, shared.ErrInvalidAmount
	}
	return TuitionPlan{Cadence: cadence, Rate: rate}, nil
}

// String returns the plan formatted for display, e.g. "Monthly at 50.00".
func (p TuitionPlan) String() string {
	return fmt.Sprintf("%s at %s", p.Cadence, p.Rate)
}

// PaymentEntry is one recorded payment in a finance history. Entries are
// immutable and never removed; the receipt ID does not take part in value
// equality.
type PaymentEntry struct {
	id     string
	at     time.Time
	amount shared.Amount
	note   string
}

// NewPaymentEntry records a payment made at the given instant. The instant is
// truncated to whole seconds so that entries survive a save/load cycle
// bit-for-bit.
func NewPaymentEntry(at time.Time, amount shared.Amount, note string) PaymentEntry {
	return PaymentEntry{
		id:     uuid.NewString(),
		at:     at.Truncate(time.Second),
		amount: amount,
		note:   note,
	}
}

// RestorePaymentEntry rebuilds an entry from persisted state, keeping its
// original receipt ID.
func RestorePaymentEntry(id string, at time.Time, amount shared.Amount, note string) PaymentEntry {
	if id == "" {
		id = uuid.NewString()
	}
	return PaymentEntry{id: id, at: at.Truncate(time.Second), amount: amount, note: note}
}

// ID returns the receipt identifier.
func (e PaymentEntry) ID() string { return e.id }

// At returns the payment instant.
func (e PaymentEntry) At() time.Time { return e.at }

// Date returns the payment date at midnight, used for grouping.
func (e PaymentEntry) Date() time.Time {
	y, m, d := e.at.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, e.at.Location())
}

// Amount returns the paid amount.
func (e PaymentEntry) Amount() shared.Amount { return e.amount }

// Note returns the optional note; empty when none was given.
func (e PaymentEntry) Note() string { return e.note }

// Equal compares two entries by value, ignoring the receipt ID.
func (e PaymentEntry) Equal(other PaymentEntry) bool {
	return e.at.Equal(other.at) && e.amount == other.amount && e.note == other.note
}

// Finance is the tuition ledger of one student. The zero value is a valid
// ledger with nothing owed. All operations return a new Finance; the receiver
// is never mutated.
type Finance struct {
	owed    shared.Amount
	history []PaymentEntry
	plan    *TuitionPlan
	overdue bool
}

// New returns an empty ledger with a zero owed amount.
func New() Finance {
	return Finance{}
}

// NewWithOwed returns a ledger with the given opening balance.
func NewWithOwed(owed shared.Amount) Finance {
	return Finance{owed: owed}
}

// Restore rebuilds a ledger from persisted state.
func Restore(owed shared.Amount, history []PaymentEntry, plan *TuitionPlan, overdue bool) Finance {
	f := Finance{owed: owed, overdue: overdue}
	if len(history) > 0 {
		f.history = append([]PaymentEntry(nil), history...)
	}
	if plan != nil {
		p := *plan
		f.plan = &p
	}
	return f
}

// Owed returns the outstanding balance.
func (f Finance) Owed() shared.Amount {
	return f.owed
}

// History returns a copy of the payment history in insertion order
// (insertion order is chronological order).
func (f Finance) History() []PaymentEntry {
	if len(f.history) == 0 {
		return nil
	}
	return append([]PaymentEntry(nil), f.history...)
}

// Plan returns the tuition plan, if one is set.
func (f Finance) Plan() (TuitionPlan, bool) {
	if f.plan == nil {
		return TuitionPlan{}, false
	}
	return *f.plan, true
}

// HasPlan reports whether a tuition plan is set.
func (f Finance) HasPlan() bool {
	return f.plan != nil
}

// IsOverdue reports whether the external overdue rule has been raised.
func (f Finance) IsOverdue() bool {
	return f.overdue
}

// Status derives the ledger status from the current state.
func (f Finance) Status() Status {
	if f.owed.IsZero() {
		return StatusPaid
	}
	if f.overdue {
		return StatusOverdue
	}
	return StatusUnpaid
}

// IsOutstanding reports whether the student still owes anything.
func (f Finance) IsOutstanding() bool {
	return !f.owed.IsZero()
}

// Add returns a new ledger with the owed amount increased, capped at the
// amount ceiling.
func (f Finance) Add(amount shared.Amount) Finance {
	next := f
	next.owed = f.owed.Add(amount)
	return next
}

// WithOwed returns a new ledger with the owed amount replaced wholesale.
func (f Finance) WithOwed(owed shared.Amount) Finance {
	next := f
	next.owed = owed
	return next
}

// WithPlan returns a new ledger with the tuition plan replaced.
func (f Finance) WithPlan(plan TuitionPlan) Finance {
	next := f
	next.plan = &plan
	return next
}

// WithOverdue returns a new ledger with the overdue flag set. The flag is
// raised only by external rules, never by a command.
func (f Finance) WithOverdue(overdue bool) Finance {
	next := f
	next.overdue = overdue
	return next
}

// Pay records a payment made at the given instant: the owed amount is reduced
// (floored at zero), exactly one entry is appended to the history, and the
// overdue flag drops once the balance reaches zero. The appended entry is
// returned alongside the new ledger.
func (f Finance) Pay(amount shared.Amount, at time.Time, note string) (Finance, PaymentEntry) {
	entry := NewPaymentEntry(at, amount, note)
	next := f
	next.owed = f.owed.Sub(amount)
	next.history = append(f.History(), entry)
	if next.owed.IsZero() {
		next.overdue = false
	}
	return next, entry
}

// Equal compares two ledgers by value.
func (f Finance) Equal(other Finance) bool {
	if f.owed != other.owed || f.overdue != other.overdue {
		return false
	}
	if len(f.history) != len(other.history) {
		return false
	}
	for i := range f.history {
		if !f.history[i].Equal(other.history[i]) {
			return false
		}
	}
	if (f.plan == nil) != (other.plan == nil) {
		return false
	}
	if f.plan != nil && *f.plan != *other.plan {
		return false
	}
	return true
}

// String formats the ledger state for display.
func (f Finance) String() string {
	return fmt.Sprintf("[Owed Amount: %s]", f.owed)
}
