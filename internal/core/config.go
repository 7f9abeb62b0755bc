package core

// RuntimeConfig is what a front end is started with.
type RuntimeConfig struct {
	ScreenW int    // Screen width in characters
	ScreenH int    // Screen height in characters
	Seed    int64  // Die seed, 0 means use current time in platform layer
	Player  string // Whose progress is loaded and saved
	Muted   bool   // Start with the voice off
}

// DefaultPlayer is used when no player name is known.
const DefaultPlayer = "local"

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW: 80,
		ScreenH: 24,
		Seed:    0,
		Player:  DefaultPlayer,
	}
}
