package console

import (
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutortrack/tutortrack/internal/engine"
	"github.com/tutortrack/tutortrack/internal/model"
)

func runShell(t *testing.T, input string) string {
	t.Helper()
	eng := engine.New(model.New(),
		engine.WithLogger(slog.New(slog.NewTextHandler(io.Discard, nil))))

	var out strings.Builder
	shell := New(eng, strings.NewReader(input), &out, "> ", nil)
	require.NoError(t, shell.Run())
	return out.String()
}

func TestShellExecutesCommands(t *testing.T) {
	out := runShell(t,
		"add n/John Doe p/98765432 e/johnd@example.com a/Somewhere\n"+
			"list\n"+
			"exit\n")

	assert.Contains(t, out, "Welcome to TutorTrack.")
	assert.Contains(t, out, "New student added: John Doe")
	assert.Contains(t, out, "1. John Doe")
	assert.Contains(t, out, "Exiting TutorTrack as requested ...")
}

func TestShellPrintsErrorsAndContinues(t *testing.T) {
	out := runShell(t, "frobnicate\nlist\nexit\n")

	assert.Contains(t, out, "Unknown command")
	assert.Contains(t, out, "No students recorded yet.")
}

func TestShellSkipsBlankLines(t *testing.T) {
	out := runShell(t, "\n   \nexit\n")
	assert.NotContains(t, out, "Unknown command")
	assert.NotContains(t, out, "Invalid command format!")
}

func TestShellShowsHelp(t *testing.T) {
	out := runShell(t, "help\nexit\n")
	assert.Contains(t, out, "Opened help window.")
	assert.Contains(t, out, "add: Adds a student to the student list.")
	assert.Contains(t, out, "pay: Records a payment")
}

func TestShellEndOfInputExits(t *testing.T) {
	out := runShell(t, "list\n")
	assert.Contains(t, out, "No students recorded yet.")
}
