package finance

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutortrack/tutortrack/internal/domain/shared"
)

func amount(t *testing.T, s string) shared.Amount {
	t.Helper()
	a, err := shared.NewAmount(s)
	require.NoError(t, err)
	return a
}

func TestFinanceStatusDerivation(t *testing.T) {
	empty := New()
	assert.Equal(t, StatusPaid, empty.Status())
	assert.False(t, empty.IsOutstanding())

	owing := NewWithOwed(amount(t, "50.00"))
	assert.Equal(t, StatusUnpaid, owing.Status())
	assert.True(t, owing.IsOutstanding())

	overdue := owing.WithOverdue(true)
	assert.Equal(t, StatusOverdue, overdue.Status())

	// The flag without a balance never shows as overdue.
	assert.Equal(t, StatusPaid, empty.WithOverdue(true).Status())
}

func TestFinancePay(t *testing.T) {
	at := time.Date(2025, 3, 15, 14, 30, 5, 0, time.UTC)
	ledger := NewWithOwed(amount(t, "50.00"))

	paid, entry := ledger.Pay(amount(t, "50.00"), at, "march tuition")

	assert.True(t, paid.Owed().IsZero())
	assert.Equal(t, StatusPaid, paid.Status())
	require.Len(t, paid.History(), 1)
	assert.Equal(t, entry, paid.History()[0])
	assert.Equal(t, amount(t, "50.00"), entry.Amount())
	assert.Equal(t, "march tuition", entry.Note())
	assert.Equal(t, at, entry.At())
	assert.NotEmpty(t, entry.ID())

	// The original ledger is untouched.
	assert.Equal(t, amount(t, "50.00"), ledger.Owed())
	assert.Empty(t, ledger.History())
}

func TestFinancePayFloorsAtZero(t *testing.T) {
	at := time.Now()
	ledger := NewWithOwed(amount(t, "30.00"))

	paid, entry := ledger.Pay(amount(t, "100.00"), at, "")

	assert.True(t, paid.Owed().IsZero())
	// The history keeps the full amount handed over, not the clamped delta.
	assert.Equal(t, amount(t, "100.00"), entry.Amount())
}

func TestFinancePayClearsOverdue(t *testing.T) {
	at := time.Now()
	ledger := NewWithOwed(amount(t, "80.00")).WithOverdue(true)

	partial, _ := ledger.Pay(amount(t, "30.00"), at, "")
	assert.Equal(t, StatusOverdue, partial.Status(), "partial payment keeps the flag")

	settled, _ := partial.Pay(amount(t, "50.00"), at, "")
	assert.Equal(t, StatusPaid, settled.Status())
	assert.False(t, settled.IsOverdue())
	assert.Len(t, settled.History(), 2)
}

func TestFinancePayTruncatesToSeconds(t *testing.T) {
	at := time.Date(2025, 3, 15, 14, 30, 5, 123456789, time.UTC)
	_, entry := NewWithOwed(amount(t, "10.00")).Pay(amount(t, "1.00"), at, "")
	assert.Equal(t, at.Truncate(time.Second), entry.At())
}

func TestPaymentEntryEqualityIgnoresID(t *testing.T) {
	at := time.Date(2025, 3, 15, 14, 30, 5, 0, time.UTC)
	a := NewPaymentEntry(at, amount(t, "10.00"), "x")
	b := NewPaymentEntry(at, amount(t, "10.00"), "x")

	assert.NotEqual(t, a.ID(), b.ID())
	assert.True(t, a.Equal(b))

	c := NewPaymentEntry(at, amount(t, "11.00"), "x")
	assert.False(t, a.Equal(c))
}

func TestRestorePaymentEntryAssignsMissingID(t *testing.T) {
	at := time.Now()
	restored := RestorePaymentEntry("", at, amount(t, "5.00"), "")
	assert.NotEmpty(t, restored.ID())

	kept := RestorePaymentEntry("receipt-1", at, amount(t, "5.00"), "")
	assert.Equal(t, "receipt-1", kept.ID())
}

func TestNewPlanCadence(t *testing.T) {
	lesson, err := NewPlanCadence("lesson")
	require.NoError(t, err)
	assert.Equal(t, PerLesson, lesson)
	assert.Equal(t, "lesson", lesson.Unit())

	month, err := NewPlanCadence(" Month ")
	require.NoError(t, err)
	assert.Equal(t, PerMonth, month)
	assert.Equal(t, "month", month.Unit())

	_, err = NewPlanCadence("weekly")
	assert.ErrorIs(t, err, shared.ErrInvalidPlanCadence)
}

func TestNewTuitionPlan(t *testing.T) {
	plan, err := NewTuitionPlan(PerLesson, amount(t, "50.00"))
	require.NoError(t, err)
	assert.Equal(t, "Per Lesson at 50.00", plan.String())

	_, err = NewTuitionPlan("weekly", amount(t, "50.00"))
	assert.ErrorIs(t, err, shared.ErrInvalidPlanCadence)
}

func TestFinanceAddCapsAtCeiling(t *testing.T) {
	ledger := NewWithOwed(shared.MaxAmount)
	assert.Equal(t, shared.MaxAmount, ledger.Add(amount(t, "1.00")).Owed())
}

func TestFinanceEqual(t *testing.T) {
	at := time.Date(2025, 3, 15, 14, 30, 5, 0, time.UTC)
	a, _ := NewWithOwed(amount(t, "50.00")).Pay(amount(t, "20.00"), at, "n")
	b, _ := NewWithOwed(amount(t, "50.00")).Pay(amount(t, "20.00"), at, "n")
	assert.True(t, a.Equal(b), "receipt IDs differ but equality ignores them")

	c := b.WithOverdue(true)
	assert.False(t, a.Equal(c))
}

func TestFinanceString(t *testing.T) {
	assert.Equal(t, "[Owed Amount: 150.00]", NewWithOwed(amount(t, "150.00")).String())
}
