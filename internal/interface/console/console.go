// Package console is the interactive shell: it reads one command per line,
// hands it to the engine and prints the feedback.
package console

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/tutortrack/tutortrack/internal/engine"
)

// Shell runs the read-eval-print loop over an engine.
type Shell struct {
	engine *engine.Engine
	in     io.Reader
	out    io.Writer
	prompt string
	logger *slog.Logger
}

// New creates a Shell. The prompt is printed before every read.
func New(e *engine.Engine, in io.Reader, out io.Writer, prompt string, logger *slog.Logger) *Shell {
	if logger == nil {
		logger = slog.Default()
	}
	return &Shell{engine: e, in: in, out: out, prompt: prompt, logger: logger}
}

// Run drives the loop until an exit command or end of input. Command errors
// are printed and the loop continues; only read failures end it early.
func (s *Shell) Run() error {
	s.logger.Info("interactive session started")
	fmt.Fprintf(s.out, "Welcome to TutorTrack. Type %q to see available commands.\n", "help")

	scanner := bufio.NewScanner(s.in)
	for {
		fmt.Fprint(s.out, s.prompt)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("reading input: %w", err)
			}
			// End of input behaves like exit.
			fmt.Fprintln(s.out)
			return nil
		}

		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		res, err := s.engine.Execute(line)
		if err != nil {
			fmt.Fprintln(s.out, err.Error())
			continue
		}

		if res.Feedback != "" {
			fmt.Fprintln(s.out, res.Feedback)
		}
		if res.ShowHelp {
			fmt.Fprintln(s.out, engine.HelpText())
		}
		if res.Exit {
			return nil
		}
	}
}
