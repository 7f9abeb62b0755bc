package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/serpientes/internal/game"
)

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show the saved game",
	Long: `Show the position and the collected verses of --player.

Examples:
  serpientes status
  serpientes status --player ana`,
	Args: cobra.NoArgs,
	RunE: runStatus,
}

func runStatus(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "serpientes")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sess, err := openSession(ctx, logger, nil, true)
	if err != nil {
		return err
	}
	defer sess.Close()

	snap := sess.engine.Snapshot()
	b := sess.board

	fmt.Printf("Player: %s\n", flagPlayer)
	fmt.Printf("Space:  %d of %d\n", snap.State.Position, b.Final())
	fmt.Printf("Verses: %d of %d\n", len(snap.State.Verses), len(b.Spaces.VerseSpaces()))
	if snap.Phase == game.PhaseVictory {
		fmt.Println("Status: won, run 'serpientes reset' to play again")
	}

	if len(snap.State.Verses) > 0 {
		fmt.Println()
		for _, v := range snap.State.Verses {
			fmt.Printf("  %s\n", v)
		}
	}

	wins, err := sess.store.VictoryCount(ctx, flagPlayer)
	if err == nil {
		fmt.Println()
		fmt.Printf("Games won: %d\n", wins)
	}
	return nil
}
