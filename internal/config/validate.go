package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/serpientes/internal/board"
	"github.com/vovakirdan/serpientes/internal/game"
)

// ErrInvalidBoard is returned when the board section cannot describe a playable board.
var ErrInvalidBoard = errors.New("config: invalid board")

// Validate checks the whole configuration.
func (c Config) Validate() error {
	if _, err := c.Board.Build(); err != nil {
		return err
	}
	a := c.Animation
	for _, d := range []struct {
		name  string
		value time.Duration
	}{
		{"step_delay", a.StepDelay},
		{"settle_delay", a.SettleDelay},
		{"roll_duration", a.RollDuration},
		{"roll_interval", a.RollInterval},
		{"detail_duration", a.DetailDuration},
		{"empty_detail_duration", a.EmptyDetailDuration},
	} {
		if d.value < 0 {
			return fmt.Errorf("config: animation %s must not be negative", d.name)
		}
	}
	if a.RollInterval == 0 && a.RollDuration > 0 {
		return errors.New("config: animation roll_interval must be positive when roll_duration is set")
	}
	return nil
}

// Layout returns the grid described by the board section.
func (b BoardConfig) Layout() board.Layout {
	return board.Layout{Rows: b.Rows, Columns: b.Columns}
}

// Build validates the board section and returns the board.
func (b BoardConfig) Build() (*board.Board, error) {
	if b.Rows <= 0 || b.Columns <= 0 {
		return nil, fmt.Errorf("%w: dimensions %dx%d must be positive", ErrInvalidBoard, b.Rows, b.Columns)
	}

	verses := make(map[int]string, len(b.Verses))
	for _, v := range b.Verses {
		if _, dup := verses[v.Space]; dup {
			return nil, fmt.Errorf("%w: space %d has more than one verse", ErrInvalidBoard, v.Space)
		}
		verses[v.Space] = v.Text
	}

	bd, err := board.New(b.Layout(), verses, toRemaps(b.Ladders), toRemaps(b.Snakes))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidBoard, err)
	}
	return bd, nil
}

// Rules returns the move rules selected by the board section.
func (b BoardConfig) Rules() game.Rules {
	return game.Rules{CollectAfterRemap: b.CollectAfterRemap}
}

// Warnings reports configurations that are accepted but probably unintended.
// A chained remap only takes its first hop.
func (c Config) Warnings() []string {
	bd, err := c.Board.Build()
	if err != nil {
		return nil
	}
	var out []string
	for _, r := range bd.Spaces.Chains() {
		next, _ := bd.Spaces.RemapOf(r.To)
		out = append(out, fmt.Sprintf("%d->%d lands on another %s (%d->%d); only the first hop is taken",
			r.From, r.To, bd.Spaces.KindOf(r.To), r.To, next))
	}
	return out
}

func toRemaps(in []RemapConfig) []board.Remap {
	out := make([]board.Remap, len(in))
	for i, r := range in {
		out[i] = board.Remap{From: r.From, To: r.To}
	}
	return out
}
