package game

import "fmt"

// EventKind identifies what happened during a move.
type EventKind int

const (
	// EventStep moves the token one space forward.
	EventStep EventKind = iota
	// EventRemapped moves the token along a snake or ladder.
	EventRemapped
	// EventVerseCollected adds a verse to the collection.
	EventVerseCollected
	// EventVictory ends the game.
	EventVictory
)

// String returns a human-readable name for the kind.
func (k EventKind) String() string {
	switch k {
	case EventStep:
		return "step"
	case EventRemapped:
		return "remapped"
	case EventVerseCollected:
		return "verse"
	case EventVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Event is one entry of a move's ordered event sequence.
type Event struct {
	Kind EventKind
	From int
	To   int
	// Verse is set for EventVerseCollected.
	Verse string
}

// Ladder reports whether a remap event went forward.
func (e Event) Ladder() bool {
	return e.Kind == EventRemapped && e.To > e.From
}

// String formats the event for logs and the CLI.
func (e Event) String() string {
	switch e.Kind {
	case EventStep:
		return fmt.Sprintf("step %d -> %d", e.From, e.To)
	case EventRemapped:
		what := "snake"
		if e.Ladder() {
			what = "ladder"
		}
		return fmt.Sprintf("%s %d -> %d", what, e.From, e.To)
	case EventVerseCollected:
		return fmt.Sprintf("verse at %d: %q", e.To, e.Verse)
	case EventVictory:
		return fmt.Sprintf("victory at %d", e.To)
	default:
		return e.Kind.String()
	}
}

// Phase is where the engine is in its move cycle.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseMoving
	PhaseRemapping
	PhaseSettled
	PhaseVictory
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseMoving:
		return "moving"
	case PhaseRemapping:
		return "remapping"
	case PhaseSettled:
		return "settled"
	case PhaseVictory:
		return "victory"
	default:
		return "unknown"
	}
}
