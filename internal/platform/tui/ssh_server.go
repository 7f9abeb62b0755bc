package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"sync"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/serpientes/internal/board"
	"github.com/vovakirdan/serpientes/internal/config"
	"github.com/vovakirdan/serpientes/internal/core"
	"github.com/vovakirdan/serpientes/internal/game"
	"github.com/vovakirdan/serpientes/internal/narration"
	"github.com/vovakirdan/serpientes/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.serpientes/host_key.
	HostKeyPath string

	// DBPath is the path to the progress database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game is the board, narration and animation configuration every session uses.
	Game config.Config

	// Logger defaults to a timestamped stderr logger.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      storage.DefaultPath,
		IdleTimeout: 30 * time.Minute,
		Game:        config.Default(),
	}
}

// SSHServer wraps a Wish SSH server. Every SSH user plays their own game,
// saved under their user name.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	board  *board.Board
	logger *log.Logger
	active *playerSessions
}

// playerSessions tracks which players are connected. A player's progress is
// written by a single engine, so a second session for them is refused.
type playerSessions struct {
	mu      sync.Mutex
	players map[string]bool
}

func newPlayerSessions() *playerSessions {
	return &playerSessions{players: make(map[string]bool)}
}

// acquire marks player as connected. It reports false if they already are.
func (p *playerSessions) acquire(player string) bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.players[player] {
		return false
	}
	p.players[player] = true
	return true
}

func (p *playerSessions) release(player string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	delete(p.players, player)
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "serpientes-ssh",
		})
	}

	b, err := cfg.Game.Board.Build()
	if err != nil {
		return nil, err
	}
	for _, w := range cfg.Game.Warnings() {
		logger.Warn("board", "warning", w)
	}

	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open progress database, progress will not survive the session", "error", err)
		// Continue without storage
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		board:  b,
		logger: logger,
		active: newPlayerSessions(),
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".serpientes", "host_key")
	}

	hostKeyDir := filepath.Dir(hostKeyPath)
	if mkdirErr := os.MkdirAll(hostKeyDir, 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.singleSessionMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// newEngine builds the game of one player. Verses are narrated into the server log;
// the remote terminal shows them on the board.
func (s *SSHServer) newEngine(ctx context.Context, player string) (*game.Engine, error) {
	logger := s.logger.With("user", player)

	var store game.Persistence = game.NewMemoryStore()
	var history game.VictoryRecorder
	if s.store != nil {
		progress := s.store.Progress(player)
		store, history = progress, progress
	}

	engine := game.New(game.Config{
		Board:     s.board,
		Rules:     s.config.Game.Board.Rules(),
		Store:     store,
		Victories: history,
		Narrator:  narration.NewLogNarrator(logger),
		Locale:    s.config.Game.Narration.Locale,
		Muted:     s.config.Game.Narration.Muted,
		Player:    player,
		Logger:    logger,
	})
	if err := engine.Load(ctx); err != nil {
		return nil, err
	}
	return engine, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	player := sessionPlayer(sshSession)

	ctx := sshSession.Context()
	engine, err := s.newEngine(ctx, player)
	if err != nil {
		s.logger.Error("cannot load progress", "user", player, "error", err)
		wish.Fatalln(sshSession, "No se pudo cargar tu partida.")
		return nil, nil
	}

	var history VictoryLister
	if s.store != nil {
		history = s.store
	}

	model := NewModel(ctx, engine, Options{
		Runtime: core.RuntimeConfig{
			ScreenW: pty.Window.Width,
			ScreenH: pty.Window.Height,
			Seed:    time.Now().UnixNano(),
			Player:  player,
		},
		Animation: s.config.Game.Animation,
		History:   history,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// sessionPlayer returns whose game an SSH session plays.
func sessionPlayer(sshSession ssh.Session) string {
	if player := sshSession.User(); player != "" {
		return player
	}
	return core.DefaultPlayer
}

// singleSessionMiddleware refuses a session for a player who is already playing.
func (s *SSHServer) singleSessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		player := sessionPlayer(sshSession)
		if !s.active.acquire(player) {
			s.logger.Warn("refusing second session", "user", player)
			wish.Fatalln(sshSession, "Ya tienes una partida abierta en otra sesión.")
			return
		}
		defer s.active.release(player)
		next(sshSession)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	err := s.server.Shutdown(ctx)
	if s.store != nil {
		s.store.Close()
	}
	return err
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}
