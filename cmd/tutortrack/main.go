// Package main is the entry point for the TutorTrack console application: a
// single-user record manager for private tutors tracking students, lessons,
// attendance and tuition payments.
//
// The layering follows DDD:
// - Domain: students, lessons and finance ledgers as immutable values
// - Engine: command parsing and execution against the in-memory model
// - Storage: the JSON file the student list persists to
// - Interface: the interactive console shell
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/joho/godotenv"

	"github.com/tutortrack/tutortrack/config"
	"github.com/tutortrack/tutortrack/internal/engine"
	"github.com/tutortrack/tutortrack/internal/interface/console"
	"github.com/tutortrack/tutortrack/internal/model"
	"github.com/tutortrack/tutortrack/internal/storage/jsonfile"
	"github.com/tutortrack/tutortrack/pkg/logging"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, "tutortrack:", err)
		os.Exit(1)
	}
}

func run() error {
	// .env is optional; real environment variables win either way.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger, closeLog, err := logging.Setup(cfg.Logging.Level, cfg.Logging.FilePath)
	if err != nil {
		return fmt.Errorf("setting up logging: %w", err)
	}
	defer closeLog()

	store := jsonfile.New(cfg.Storage.DataFilePath)
	persons, err := store.Load()
	if err != nil {
		return fmt.Errorf("loading student data: %w", err)
	}
	logger.Info("student data loaded",
		slog.String("path", store.Path()),
		slog.Int("students", len(persons)),
	)

	m := model.NewWithPersons(persons)
	eng := engine.New(m,
		engine.WithSaver(store),
		engine.WithLogger(logger),
	)

	shell := console.New(eng, os.Stdin, os.Stdout, cfg.App.Prompt, logger)
	if err := shell.Run(); err != nil {
		return err
	}

	logger.Info("shutting down")
	return nil
}
