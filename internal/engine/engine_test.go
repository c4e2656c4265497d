package engine

import (
	"errors"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutortrack/tutortrack/internal/engine/command"
	"github.com/tutortrack/tutortrack/internal/model"
)

type recordingSaver struct {
	calls int
	err   error
}

func (s *recordingSaver) Save(m *model.Model) error {
	s.calls++
	return s.err
}

func newTestEngine(saver Saver) *Engine {
	return New(model.New(),
		WithSaver(saver),
		WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))),
		WithClock(func() time.Time { return time.Date(2025, 3, 14, 10, 0, 0, 0, time.UTC) }),
	)
}

func TestExecuteEndToEnd(t *testing.T) {
	saver := &recordingSaver{}
	eng := newTestEngine(saver)

	res, err := eng.Execute("add n/John Doe p/98765432 e/johnd@example.com a/311 Clementi Ave 2")
	require.NoError(t, err)
	assert.True(t, res.Mutated)

	res, err = eng.Execute("addfinance 1 amt/100.00")
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "[Owed Amount: 100.00]")

	res, err = eng.Execute("pay 1 amt/100.00 note/settled")
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Outstanding: 0.00 (Paid)")

	assert.Equal(t, 3, saver.calls, "every mutating command triggers a save")

	res, err = eng.Execute("list")
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "1. John Doe")
	assert.Equal(t, 3, saver.calls, "read-only commands never save")
}

func TestExecuteParseErrorSkipsSave(t *testing.T) {
	saver := &recordingSaver{}
	eng := newTestEngine(saver)

	_, err := eng.Execute("add n/John Doe")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Invalid command format!")
	assert.Zero(t, saver.calls)

	_, err = eng.Execute("frobnicate")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Unknown command")
}

func TestExecuteCommandErrorSkipsSave(t *testing.T) {
	saver := &recordingSaver{}
	eng := newTestEngine(saver)

	_, err := eng.Execute("add n/John Doe p/98765432 e/johnd@example.com a/Somewhere")
	require.NoError(t, err)
	saver.calls = 0

	_, err = eng.Execute("delete 5")
	require.Error(t, err)
	assert.Equal(t, "The student index provided is invalid", err.Error())
	assert.Zero(t, saver.calls)
}

func TestExecuteReportsSaveFailure(t *testing.T) {
	boom := errors.New("disk full")
	saver := &recordingSaver{err: boom}
	eng := newTestEngine(saver)

	res, err := eng.Execute("add n/John Doe p/98765432 e/johnd@example.com a/Somewhere")
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Contains(t, err.Error(), "could not save student data to file")
	// The in-memory mutation still happened.
	assert.True(t, res.Mutated)
	assert.Equal(t, 1, eng.Model().Size())
}

func TestExecuteWithoutSaver(t *testing.T) {
	eng := New(model.New(), WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))
	_, err := eng.Execute("add n/John Doe p/98765432 e/johnd@example.com a/Somewhere")
	assert.NoError(t, err)
}

func TestScheduleUsesInjectedClock(t *testing.T) {
	eng := newTestEngine(&recordingSaver{})
	_, err := eng.Execute("add n/John Doe p/98765432 e/johnd@example.com a/Somewhere")
	require.NoError(t, err)
	_, err = eng.Execute("addlesson 1 n/Math d/Wednesday t/09:00 l/RoomA")
	require.NoError(t, err)

	// The clock is pinned to Friday 2025-03-14; Wednesday already passed but
	// still maps into the running week.
	res, err := eng.Execute("schedule")
	require.NoError(t, err)
	assert.Contains(t, res.Feedback, "Weekly schedule (2025-03-10 to 2025-03-16):")
	assert.Contains(t, res.Feedback, "WEDNESDAY 2025-03-12")
}

func TestHelpText(t *testing.T) {
	text := HelpText()
	for _, word := range []string{
		command.AddWord, command.DeleteWord, command.ListWord, command.FindWord,
		command.AddLessonWord, command.MarkWord, command.AddFeeWord,
		command.AddFinanceWord, command.PayWord, command.PaymentHistoryWord,
		command.ScheduleWord, command.OutstandingWord, command.HelpWord, command.ExitWord,
	} {
		assert.Contains(t, text, word+":")
	}
}
