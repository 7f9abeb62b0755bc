package config

import (
	_ "embed"
	"sort"
	"time"

	"github.com/vovakirdan/serpientes/internal/board"
	"github.com/vovakirdan/serpientes/internal/narration"
)

//go:embed defaults/serpientes.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration, mirroring the embedded file.
func Default() Config {
	spaces := make([]int, 0, len(board.DefaultVerses))
	for space := range board.DefaultVerses {
		spaces = append(spaces, space)
	}
	sort.Ints(spaces)

	verses := make([]VerseConfig, 0, len(spaces))
	for _, space := range spaces {
		verses = append(verses, VerseConfig{Space: space, Text: board.DefaultVerses[space]})
	}

	return Config{
		Board: BoardConfig{
			Rows:    board.DefaultRows,
			Columns: board.DefaultColumns,
			Verses:  verses,
			Ladders: remapConfigs(board.DefaultLadders),
			Snakes:  remapConfigs(board.DefaultSnakes),
		},
		Narration: NarrationConfig{
			Locale: narration.DefaultLocale,
		},
		Animation: DefaultAnimation(),
	}
}

// DefaultAnimation returns the standard timings.
func DefaultAnimation() AnimationConfig {
	return AnimationConfig{
		StepDelay:           300 * time.Millisecond,
		SettleDelay:         500 * time.Millisecond,
		RollDuration:        time.Second,
		RollInterval:        100 * time.Millisecond,
		DetailDuration:      3 * time.Second,
		EmptyDetailDuration: 1500 * time.Millisecond,
	}
}

func remapConfigs(in []board.Remap) []RemapConfig {
	out := make([]RemapConfig, len(in))
	for i, r := range in {
		out[i] = RemapConfig{From: r.From, To: r.To}
	}
	return out
}
