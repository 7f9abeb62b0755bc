package game

import (
	"math/rand"
	"sync"
)

// Faces is the number of faces on the die.
const Faces = 6

// Die produces die values in 1..Faces.
type Die interface {
	Roll() int
}

// RandomDie is a uniform six-sided die. Equal seeds give equal sequences.
type RandomDie struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewRandomDie creates a die seeded with seed.
func NewRandomDie(seed int64) *RandomDie {
	return &RandomDie{rng: rand.New(rand.NewSource(seed))}
}

// Roll returns a value in 1..Faces.
func (d *RandomDie) Roll() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.rng.Intn(Faces) + 1
}

// FixedDie returns its values in order and then repeats the last one.
// Used by tests and by the CLI's --die flag.
type FixedDie struct {
	values []int
	next   int
}

// NewFixedDie creates a die that rolls values in sequence.
func NewFixedDie(values ...int) *FixedDie {
	return &FixedDie{values: values}
}

// Roll returns the next value in the sequence.
func (d *FixedDie) Roll() int {
	if len(d.values) == 0 {
		return 1
	}
	v := d.values[min(d.next, len(d.values)-1)]
	d.next++
	return v
}
