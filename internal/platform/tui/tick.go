// Package tui provides the Bubble Tea front end for the board: the board view,
// the dice and move animation, overlays, and SSH hosting via Wish.
package tui

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/serpientes/internal/game"
)

// diceTickMsg advances the dice animation. seq ties it to one roll.
type diceTickMsg struct {
	seq     int
	elapsed time.Duration
}

// advancedMsg carries the event handed out by the engine.
type advancedMsg struct {
	event game.Event
	ok    bool
}

// detailExpiredMsg closes the detail overlay it was scheduled for.
type detailExpiredMsg struct {
	seq int
}

// playbackDoneMsg reports the end of a verse playback.
type playbackDoneMsg struct{}

func diceTick(seq int, interval, elapsed time.Duration) tea.Cmd {
	return tea.Tick(interval, func(time.Time) tea.Msg {
		return diceTickMsg{seq: seq, elapsed: elapsed + interval}
	})
}

// advanceCmd hands out the next event after delay. Narration happens inside
// Advance, so it runs off the update loop.
func advanceCmd(ctx context.Context, e *game.Engine, delay time.Duration) tea.Cmd {
	return tea.Tick(delay, func(time.Time) tea.Msg {
		ev, ok := e.Advance(ctx)
		return advancedMsg{event: ev, ok: ok}
	})
}

func detailTimeout(seq int, d time.Duration) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg {
		return detailExpiredMsg{seq: seq}
	})
}

func playVictoryCmd(ctx context.Context, e *game.Engine) tea.Cmd {
	return func() tea.Msg {
		e.PlayVictory(ctx)
		return playbackDoneMsg{}
	}
}
