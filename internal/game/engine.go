package game

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/serpientes/internal/board"
	"github.com/vovakirdan/serpientes/internal/narration"
)

var (
	// ErrMoveInProgress is returned when a roll arrives before the previous move settled.
	ErrMoveInProgress = errors.New("game: a move is still in progress")
	// ErrGameOver is returned when rolling after a victory without a reset.
	ErrGameOver = errors.New("game: game is over, reset to play again")
	// ErrInvalidDie is returned for die values outside 1..Faces.
	ErrInvalidDie = errors.New("game: die value out of range")
	// ErrCorruptState marks saved progress that cannot be used.
	ErrCorruptState = errors.New("game: corrupt saved state")
)

// Config wires an Engine to its collaborators. Only Board is required.
type Config struct {
	Board *board.Board
	Rules Rules

	// Store defaults to an in-memory store.
	Store Persistence
	// Victories defaults to Store when it implements VictoryRecorder.
	Victories VictoryRecorder

	// Narrator defaults to narration.Discard.
	Narrator narration.Narrator
	Locale   string
	Muted    bool

	// Die defaults to a RandomDie seeded from the clock.
	Die    Die
	Player string
	Logger *log.Logger
}

// Snapshot is a consistent copy of the engine's observable state.
type Snapshot struct {
	State State
	// Display is where the token is drawn while a move is being played back.
	// It equals State.Position once the move has settled.
	Display int
	Phase   Phase
	Pending int
	Rolls   int
	// LastEvent is the most recent event handed out by Advance.
	LastEvent *Event
	Muted     bool
}

// Busy reports whether a move is still being played back.
func (s Snapshot) Busy() bool {
	return s.Pending > 0
}

// Engine owns one player's game. Moves are resolved and saved immediately;
// their events are then handed out one at a time by Advance so a front end can
// animate them. A new roll is rejected until every event has been handed out.
//
// Engine is safe for concurrent use, but the rules assume a single owner.
type Engine struct {
	mu sync.Mutex

	board     *board.Board
	rules     Rules
	store     Persistence
	victories VictoryRecorder
	narrator  narration.Narrator
	die       Die
	locale    string
	player    string
	logger    *log.Logger

	state     State
	display   int
	phase     Phase
	pending   []Event
	lastEvent *Event
	muted     bool
}

// New creates an engine positioned at the start of a fresh game.
// Call Load to resume saved progress.
func New(cfg Config) *Engine {
	if cfg.Board == nil {
		cfg.Board = board.Default()
	}
	if cfg.Store == nil {
		cfg.Store = NewMemoryStore()
	}
	if cfg.Victories == nil {
		if rec, ok := cfg.Store.(VictoryRecorder); ok {
			cfg.Victories = rec
		}
	}
	if cfg.Narrator == nil {
		cfg.Narrator = narration.Discard
	}
	if cfg.Locale == "" {
		cfg.Locale = narration.DefaultLocale
	}
	if cfg.Die == nil {
		cfg.Die = NewRandomDie(time.Now().UnixNano())
	}
	if cfg.Logger == nil {
		cfg.Logger = log.New(io.Discard)
	}

	return &Engine{
		board:     cfg.Board,
		rules:     cfg.Rules,
		store:     cfg.Store,
		victories: cfg.Victories,
		narrator:  cfg.Narrator,
		die:       cfg.Die,
		locale:    cfg.Locale,
		player:    cfg.Player,
		logger:    cfg.Logger,
		state:     NewState(),
		phase:     PhaseIdle,
		muted:     cfg.Muted,
	}
}

// Board returns the board the engine plays on.
func (e *Engine) Board() *board.Board {
	return e.board
}

// Load replaces the current game with the saved progress.
// Corrupt progress is discarded: the game restarts and the store is rewritten.
func (e *Engine) Load(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.pending) > 0 {
		return ErrMoveInProgress
	}

	st, err := e.store.Load(ctx)
	if err == nil {
		err = st.Validate(e.board.Layout.TotalSpaces())
	}
	switch {
	case errors.Is(err, ErrCorruptState):
		e.logger.Warn("discarding corrupt progress", "player", e.player, "error", err)
		st = NewState()
		if saveErr := e.store.Save(ctx, st); saveErr != nil {
			e.logger.Warn("could not rewrite progress", "player", e.player, "error", saveErr)
		}
	case err != nil:
		return fmt.Errorf("game: load progress: %w", err)
	}

	e.state = st
	e.display = st.Position
	e.lastEvent = nil
	e.phase = PhaseIdle
	if st.Position == e.board.Final() {
		e.phase = PhaseVictory
	}

	e.logger.Debug("progress loaded", "player", e.player, "position", st.Position, "verses", len(st.Verses))
	return nil
}

// Roll draws a die value and moves by it.
func (e *Engine) Roll(ctx context.Context) (Outcome, error) {
	if err := e.ready(); err != nil {
		return Outcome{}, err
	}
	return e.Move(ctx, e.die.Roll())
}

// Move resolves a move by die spaces, saves the settled state and queues the
// move's events for Advance.
func (e *Engine) Move(ctx context.Context, die int) (Outcome, error) {
	if die < 1 || die > Faces {
		return Outcome{}, fmt.Errorf("%w: %d", ErrInvalidDie, die)
	}

	e.mu.Lock()
	defer e.mu.Unlock()

	if err := e.readyLocked(); err != nil {
		return Outcome{}, err
	}

	from := e.state.Position
	out := Resolve(e.board, e.state, die, e.rules)

	out.State.Rolls++
	e.state = out.State
	e.pending = append(e.pending[:0], out.Events...)
	e.phase = PhaseMoving

	if err := e.store.Save(ctx, e.state); err != nil {
		e.logger.Warn("could not save progress", "player", e.player, "error", err)
	}

	e.logger.Info("move resolved",
		"player", e.player,
		"die", die,
		"from", from,
		"target", out.Target,
		"settled", out.State.Position,
		"events", len(out.Events),
	)

	if out.Victory() {
		e.recordVictoryLocked(ctx)
	}

	return out, nil
}

// Advance hands out the next queued event and moves the displayed token.
// Collected verses are spoken when their event is handed out; reaching the
// final space plays back every collected verse. The second result is false
// when nothing is queued.
func (e *Engine) Advance(ctx context.Context) (Event, bool) {
	e.mu.Lock()
	if len(e.pending) == 0 {
		e.mu.Unlock()
		return Event{}, false
	}

	ev := e.pending[0]
	e.pending = e.pending[1:]
	e.lastEvent = &ev

	var lines []string
	switch ev.Kind {
	case EventStep:
		e.display = ev.To
		e.phase = PhaseMoving
	case EventRemapped:
		e.display = ev.To
		e.phase = PhaseRemapping
	case EventVerseCollected:
		e.phase = PhaseSettled
		lines = []string{ev.Verse}
	case EventVictory:
		e.display = ev.To
		e.phase = PhaseVictory
		lines = append(lines, e.state.Verses...)
	}
	if len(e.pending) == 0 && (e.phase == PhaseMoving || e.phase == PhaseRemapping) {
		e.phase = PhaseSettled
	}
	muted := e.muted
	e.mu.Unlock()

	e.logger.Debug("event", "player", e.player, "event", ev.String())
	e.speak(ctx, lines, muted)
	return ev, true
}

// Peek returns the next queued event without handing it out.
func (e *Engine) Peek() (Event, bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if len(e.pending) == 0 {
		return Event{}, false
	}
	return e.pending[0], true
}

// Settle hands out every queued event and returns them.
func (e *Engine) Settle(ctx context.Context) []Event {
	var out []Event
	for {
		ev, ok := e.Advance(ctx)
		if !ok {
			return out
		}
		out = append(out, ev)
	}
}

// PlayVictory speaks every collected verse again, in order.
func (e *Engine) PlayVictory(ctx context.Context) {
	e.mu.Lock()
	lines := append([]string(nil), e.state.Verses...)
	muted := e.muted
	e.mu.Unlock()

	e.speak(ctx, lines, muted)
}

// Reset starts a new game and saves it. It is how the victory screen is dismissed.
func (e *Engine) Reset(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(e.pending) > 0 {
		return ErrMoveInProgress
	}

	e.state = NewState()
	e.display = 0
	e.phase = PhaseIdle
	e.lastEvent = nil

	if err := e.store.Save(ctx, e.state); err != nil {
		return fmt.Errorf("game: save reset: %w", err)
	}
	e.logger.Info("new game", "player", e.player)
	return nil
}

// SetMuted turns narration on or off.
func (e *Engine) SetMuted(muted bool) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.muted = muted
}

// Snapshot returns a copy of the engine's state.
func (e *Engine) Snapshot() Snapshot {
	e.mu.Lock()
	defer e.mu.Unlock()

	snap := Snapshot{
		State:   e.state.Clone(),
		Display: e.display,
		Phase:   e.phase,
		Pending: len(e.pending),
		Rolls:   e.state.Rolls,
		Muted:   e.muted,
	}
	if e.lastEvent != nil {
		ev := *e.lastEvent
		snap.LastEvent = &ev
	}
	return snap
}

func (e *Engine) ready() error {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.readyLocked()
}

func (e *Engine) readyLocked() error {
	if len(e.pending) > 0 {
		return ErrMoveInProgress
	}
	if e.phase == PhaseVictory {
		return ErrGameOver
	}
	return nil
}

func (e *Engine) recordVictoryLocked(ctx context.Context) {
	v := Victory{
		ID:         uuid.New(),
		Player:     e.player,
		Rolls:      e.state.Rolls,
		Verses:     append([]string(nil), e.state.Verses...),
		FinishedAt: time.Now(),
	}
	e.logger.Info("victory", "player", e.player, "game", v.ID, "rolls", v.Rolls, "verses", len(v.Verses))

	if e.victories == nil {
		return
	}
	if err := e.victories.RecordVictory(ctx, v); err != nil {
		e.logger.Warn("could not record victory", "player", e.player, "error", err)
	}
}

func (e *Engine) speak(ctx context.Context, lines []string, muted bool) {
	for _, line := range lines {
		u := narration.Utterance{Text: line, Locale: e.locale, Muted: muted}
		if err := e.narrator.Speak(ctx, u); err != nil {
			e.logger.Warn("narration failed", "error", err)
		}
	}
}
