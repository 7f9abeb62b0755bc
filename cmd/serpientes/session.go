package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/serpientes/internal/board"
	"github.com/vovakirdan/serpientes/internal/config"
	"github.com/vovakirdan/serpientes/internal/game"
	"github.com/vovakirdan/serpientes/internal/narration"
	"github.com/vovakirdan/serpientes/internal/storage"
)

const logFilePath = "~/.serpientes/serpientes.log"

// session is one player's game opened from the global flags.
type session struct {
	cfg    config.Config
	board  *board.Board
	store  *storage.Store // nil when progress lives in memory
	engine *game.Engine
	logger *log.Logger
}

// newLogger creates a logger at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// openLogFile opens the log file the board screen writes to, since the
// terminal is taken by the game. It falls back to discarding logs.
func openLogFile() io.WriteCloser {
	path, err := storage.ExpandPath(logFilePath)
	if err != nil {
		return nopCloser{io.Discard}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nopCloser{io.Discard}
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nopCloser{io.Discard}
	}
	return f
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// loadConfig reads the config file and applies the flag overrides.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagMute {
		cfg.Narration.Muted = true
	}
	if flagLocale != "" {
		cfg.Narration.Locale = flagLocale
	}
	return cfg, nil
}

// newNarrator returns the configured speech program, or logs the verses when
// none is set or it cannot be found.
func newNarrator(cfg config.NarrationConfig, logger *log.Logger) narration.Narrator {
	if cfg.Command == "" {
		return narration.NewLogNarrator(logger)
	}
	n, err := narration.NewCommandNarrator(cfg.Command, cfg.Args)
	if err != nil {
		logger.Warn("speech command unavailable, verses will only be logged", "error", err)
		return narration.NewLogNarrator(logger)
	}
	return narration.Multi(n, narration.NewLogNarrator(logger))
}

// openSession loads the config, opens the progress database and resumes the
// player's game. Without requireStore a database that cannot be opened is
// replaced by in-memory progress. die may be nil.
func openSession(ctx context.Context, logger *log.Logger, die game.Die, requireStore bool) (*session, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	b, err := cfg.Board.Build()
	if err != nil {
		return nil, err
	}
	for _, w := range cfg.Warnings() {
		logger.Warn("board", "warning", w)
	}

	s := &session{cfg: cfg, board: b, logger: logger}

	var persist game.Persistence
	store, err := storage.Open(flagDBPath)
	switch {
	case err == nil:
		s.store = store
		persist = store.Progress(flagPlayer)
	case requireStore:
		return nil, err
	default:
		logger.Warn("could not open progress database, progress will not be saved", "error", err)
		persist = game.NewMemoryStore()
	}

	if die == nil && flagSeed != 0 {
		die = game.NewRandomDie(flagSeed)
	}

	s.engine = game.New(game.Config{
		Board:    b,
		Rules:    cfg.Board.Rules(),
		Store:    persist,
		Narrator: newNarrator(cfg.Narration, logger),
		Locale:   cfg.Narration.Locale,
		Muted:    cfg.Narration.Muted,
		Die:      die,
		Player:   flagPlayer,
		Logger:   logger,
	})
	if err := s.engine.Load(ctx); err != nil {
		s.Close()
		return nil, err
	}
	return s, nil
}

// Close releases the database.
func (s *session) Close() {
	if s.store != nil {
		s.store.Close()
	}
}
