package narration

import (
	"context"

	"github.com/charmbracelet/log"
)

// LogNarrator writes each voiced line to a logger. It is the fallback used when
// no speech program is configured.
type LogNarrator struct {
	logger *log.Logger
}

// NewLogNarrator creates a narrator that logs to logger.
func NewLogNarrator(logger *log.Logger) *LogNarrator {
	return &LogNarrator{logger: logger}
}

// Speak logs u unless it is muted.
func (n *LogNarrator) Speak(_ context.Context, u Utterance) error {
	if u.Muted || n.logger == nil {
		return nil
	}
	n.logger.Info("narrate", "locale", u.Locale, "text", u.Text)
	return nil
}
