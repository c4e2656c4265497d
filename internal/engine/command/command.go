// Package command contains one command per verb of the command language.
// A command holds already-validated parameters; Execute applies it against
// the model and reports back through a Result.
//
// Commands are strictly request/response: all preconditions are checked
// against current state before any mutation, so a failed command never leaves
// the model half-updated.
package command

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/tutortrack/tutortrack/internal/model"
)

// Context carries everything a command may need while executing. The clock is
// injected so time-anchored commands (pay, schedule) are deterministic under
// test.
type Context struct {
	Model  *model.Model
	Now    func() time.Time
	Logger *slog.Logger
}

// Clock returns the context's notion of the current time.
func (c *Context) Clock() time.Time {
	if c.Now == nil {
		return time.Now()
	}
	return c.Now()
}

// Log returns the context logger, defaulting to slog's package default.
func (c *Context) Log() *slog.Logger {
	if c.Logger == nil {
		return slog.Default()
	}
	return c.Logger
}

// Result is the structured outcome of a successful command: user-facing
// feedback text plus hints for the hosting shell.
type Result struct {
	Feedback string

	// ShowHelp asks the shell to display usage help.
	ShowHelp bool
	// Exit asks the shell to terminate.
	Exit bool
	// Mutated tells the engine the model changed and a save is due.
	Mutated bool
}

// Command is a single state-transition operation against the model.
type Command interface {
	Execute(ctx *Context) (Result, error)
}

// Error is an execution-time failure: the input was well-formed but violated
// a precondition against current state.
type Error struct {
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	return e.Message
}

// Unwrap returns the underlying cause, if any.
func (e *Error) Unwrap() error {
	return e.Err
}

// NewError creates a command error with a formatted message.
func NewError(format string, args ...any) *Error {
	return &Error{Message: fmt.Sprintf(format, args...)}
}

// MessageInvalidIndex is returned when an index points outside the currently
// filtered list.
const MessageInvalidIndex = "The student index provided is invalid"
