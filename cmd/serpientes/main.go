// serpientes is a snakes and ladders board game where every space can hide a
// verse of a poem.
//
// Usage:
//
//	serpientes play              - Play on this terminal
//	serpientes serve             - Start SSH server for remote play
//	serpientes roll              - Roll once without the board screen
//	serpientes status            - Show the saved game
//	serpientes reset             - Start over
//	serpientes board             - Print the board
//	serpientes history           - List finished games
//
// Global flags:
//
//	--config <path>  - Board and narration config YAML
//	--db <path>      - Progress database (default: ~/.serpientes/progress.db)
//	--player <name>  - Whose game to use (default: $USER)
//	--seed <value>   - RNG seed for reproducible rolls
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/serpientes/internal/core"
	"github.com/vovakirdan/serpientes/internal/storage"
)

var (
	// Global flags
	flagConfig   string
	flagDBPath   string
	flagSeed     int64
	flagPlayer   string
	flagMute     bool
	flagLocale   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "serpientes",
	Short: "Serpientes & Poemas - snakes, ladders and verses in your terminal",
	Long: `Serpientes & Poemas is a snakes and ladders game for one player.
Some spaces carry a verse: stop on them to collect it. Reach the last
space and the whole poem you gathered is read back to you.

Available commands:
  play     - Play on this terminal
  serve    - Start SSH server for remote play
  roll     - Roll once and print what happened
  status   - Show the saved game
  reset    - Start a new game
  board    - Print the board
  history  - List finished games

Examples:
  serpientes play
  serpientes play --mute
  serpientes roll --die 4
  serpientes serve --ssh :2222
  serpientes history --all`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom config YAML")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", storage.DefaultPath, "Path to progress database")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagPlayer, "player", defaultPlayer(), "Player whose game is used")
	rootCmd.PersistentFlags().BoolVar(&flagMute, "mute", false, "Start with narration muted")
	rootCmd.PersistentFlags().StringVar(&flagLocale, "locale", "", "Narration locale (overrides config)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(rollCmd)
	rootCmd.AddCommand(statusCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(boardCmd)
	rootCmd.AddCommand(historyCmd)
}

func defaultPlayer() string {
	if u := os.Getenv("USER"); u != "" {
		return u
	}
	return core.DefaultPlayer
}
