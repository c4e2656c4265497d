// Package engine wires the parser, the command set and the model into a
// single entry point. The hosting shell hands it raw command text and gets
// back a Result; the engine takes care of parsing, execution, persistence
// after mutations and per-command logging.
package engine

import (
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/tutortrack/tutortrack/internal/engine/command"
	"github.com/tutortrack/tutortrack/internal/engine/parser"
	"github.com/tutortrack/tutortrack/internal/model"
)

// Saver persists the full student list after a mutating command. The jsonfile
// store implements it; tests plug in a recording fake.
type Saver interface {
	Save(m *model.Model) error
}

// Engine executes command text against the model. Execution is serialized: a
// command observes the state left by the previous one, never a partial write.
type Engine struct {
	mu     sync.Mutex
	model  *model.Model
	saver  Saver
	logger *slog.Logger
	now    func() time.Time
}

// Option configures an Engine.
type Option func(*Engine)

// WithSaver installs the store to persist to after each mutation.
func WithSaver(s Saver) Option {
	return func(e *Engine) { e.saver = s }
}

// WithLogger installs the engine logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.logger = l }
}

// WithClock overrides the engine's time source.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New creates an Engine over the given model.
func New(m *model.Model, opts ...Option) *Engine {
	e := &Engine{
		model:  m,
		logger: slog.Default(),
		now:    time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Model exposes the underlying model, mainly for the shell's list rendering
// and for tests.
func (e *Engine) Model() *model.Model {
	return e.model
}

// Execute parses and runs one line of command text. The returned error is
// user-presentable: parse errors carry the usage string, execution errors the
// precondition message.
func (e *Engine) Execute(text string) (command.Result, error) {
	e.mu.Lock()
	defer e.mu.Unlock()

	cid := uuid.NewString()
	log := e.logger.With(slog.String("command_id", cid))

	cmd, err := parser.Parse(text)
	if err != nil {
		log.Warn("command rejected by parser", slog.String("input", text), slog.Any("error", err))
		return command.Result{}, err
	}

	res, err := cmd.Execute(&command.Context{
		Model:  e.model,
		Now:    e.now,
		Logger: log,
	})
	if err != nil {
		log.Warn("command failed", slog.Any("error", err))
		return command.Result{}, err
	}

	if res.Mutated && e.saver != nil {
		if saveErr := e.saver.Save(e.model); saveErr != nil {
			// The in-memory state is already updated; report the save failure
			// without rolling back, matching how a lost write surfaces on the
			// next load anyway.
			log.Error("save after mutation failed", slog.Any("error", saveErr))
			return res, errors.Join(errSaveFailed, saveErr)
		}
	}

	log.Info("command executed", slog.Bool("mutated", res.Mutated))
	return res, nil
}

var errSaveFailed = errors.New("could not save student data to file")

// HelpText aggregates every command's usage block.
func HelpText() string {
	blocks := []string{
		command.AddUsage,
		command.DeleteUsage,
		command.ListUsage,
		command.FindUsage,
		command.AddLessonUsage,
		command.MarkUsage,
		command.AddFeeUsage,
		command.AddFinanceUsage,
		command.PayUsage,
		command.PaymentHistoryUsage,
		command.ScheduleUsage,
		command.OutstandingUsage,
		command.HelpUsage,
		command.ExitUsage,
	}
	out := blocks[0]
	for _, b := range blocks[1:] {
		out += "\n\n" + b
	}
	return out
}
