// Package narration speaks lines of the poem. The engine receives a Narrator
// explicitly, so it can run without any speech backend.
package narration

import (
	"context"
	"sync"
)

// DefaultLocale is the voice used for the Spanish verses.
const DefaultLocale = "es-MX"

// Utterance is a single line handed to a narrator.
type Utterance struct {
	Text   string
	Locale string
	// Muted lines must not be voiced. Narrators still receive them so a
	// front end can show the text while the voice is off.
	Muted bool
}

// Narrator speaks utterances. Implementations must return promptly when ctx is done.
type Narrator interface {
	Speak(ctx context.Context, u Utterance) error
}

// Func adapts a plain function to the Narrator interface.
type Func func(ctx context.Context, u Utterance) error

// Speak calls f.
func (f Func) Speak(ctx context.Context, u Utterance) error {
	return f(ctx, u)
}

// Discard ignores every utterance.
var Discard Narrator = Func(func(context.Context, Utterance) error { return nil })

// Multi fans an utterance out to every narrator in order.
// It stops at the first error.
func Multi(narrators ...Narrator) Narrator {
	return Func(func(ctx context.Context, u Utterance) error {
		for _, n := range narrators {
			if err := n.Speak(ctx, u); err != nil {
				return err
			}
		}
		return nil
	})
}

// Recorder keeps every utterance it receives. Safe for concurrent use.
type Recorder struct {
	mu    sync.Mutex
	lines []Utterance
}

// Speak records u.
func (r *Recorder) Speak(_ context.Context, u Utterance) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = append(r.lines, u)
	return nil
}

// Lines returns a copy of the recorded utterances.
func (r *Recorder) Lines() []Utterance {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]Utterance, len(r.lines))
	copy(out, r.lines)
	return out
}

// Reset forgets everything recorded so far.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lines = nil
}
