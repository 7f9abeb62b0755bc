package game

import "github.com/vovakirdan/serpientes/internal/board"

// Rules tweak how a move settles.
type Rules struct {
	// CollectAfterRemap also collects the verse of the space a snake or ladder
	// drops the player on. Off by default: only the landing space of the die
	// roll is read for a verse, and a remapped move collects nothing.
	CollectAfterRemap bool
}

// Outcome is the result of resolving one die roll.
type Outcome struct {
	Die    int
	Target int
	Events []Event
	State  State
}

// Victory reports whether the move ended the game.
func (o Outcome) Victory() bool {
	n := len(o.Events)
	return n > 0 && o.Events[n-1].Kind == EventVictory
}

// Collected returns the verse picked up by the move, if any.
func (o Outcome) Collected() (string, bool) {
	for _, e := range o.Events {
		if e.Kind == EventVerseCollected {
			return e.Verse, true
		}
	}
	return "", false
}

// Resolve applies a die roll to state and returns the ordered events together
// with the settled state. It never mutates state and is deterministic.
//
// The target is state.Position+die clamped to the final space, so an overshoot
// stops exactly on the final space. The token advances one EventStep at a
// time. On the target:
//   - the final space emits EventVictory and nothing else applies;
//   - a snake or ladder hops once (EventRemapped), even when its destination is
//     itself a snake or ladder;
//   - otherwise a verse not yet collected is appended (EventVerseCollected).
//
// die is expected in 1..Faces; other values are clamped so that the settled
// position always stays on the board.
func Resolve(b *board.Board, state State, die int, rules Rules) Outcome {
	final := b.Final()
	next := state.Clone()
	next.Position = clamp(next.Position, 0, final)

	target := clamp(next.Position+die, next.Position, final)
	out := Outcome{Die: die, Target: target}

	for pos := next.Position; pos < target; pos++ {
		out.Events = append(out.Events, Event{Kind: EventStep, From: pos, To: pos + 1})
	}
	next.Position = target

	if target == final {
		out.Events = append(out.Events, Event{Kind: EventVictory, From: target, To: target})
		out.State = next
		return out
	}

	landed := target
	if to, ok := b.Spaces.RemapOf(target); ok {
		out.Events = append(out.Events, Event{Kind: EventRemapped, From: target, To: to})
		next.Position = to
		landed = to

		if to == final {
			out.Events = append(out.Events, Event{Kind: EventVictory, From: to, To: to})
			out.State = next
			return out
		}
		if !rules.CollectAfterRemap {
			out.State = next
			return out
		}
	}

	if verse, ok := b.Spaces.VerseAt(landed); ok && next.collect(verse) {
		out.Events = append(out.Events, Event{Kind: EventVerseCollected, From: landed, To: landed, Verse: verse})
	}

	out.State = next
	return out
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
