package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/serpientes/internal/game"
)

var flagDie int

var rollCmd = &cobra.Command{
	Use:   "roll",
	Short: "Roll once and print what happened",
	Long: `Roll the die for --player without opening the board, print every
event of the move and save the result.

Examples:
  serpientes roll
  serpientes roll --die 6
  serpientes roll --player ana --mute`,
	Args: cobra.NoArgs,
	RunE: runRoll,
}

func init() {
	rollCmd.Flags().IntVar(&flagDie, "die", 0, "Use this die value instead of rolling (1-6)")
}

func runRoll(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "serpientes")
	if err != nil {
		return err
	}

	var die game.Die
	if flagDie != 0 {
		die = game.NewFixedDie(flagDie)
	}

	ctx := cmd.Context()
	sess, err := openSession(ctx, logger, die, true)
	if err != nil {
		return err
	}
	defer sess.Close()

	out, err := sess.engine.Roll(ctx)
	if errors.Is(err, game.ErrGameOver) {
		fmt.Println("This game is already won. Run 'serpientes reset' to play again.")
		return nil
	}
	if err != nil {
		return err
	}

	fmt.Printf("Rolled %d\n", out.Die)
	for _, ev := range sess.engine.Settle(ctx) {
		fmt.Printf("  %s\n", ev)
	}

	st := out.State
	fmt.Println()
	fmt.Printf("Space %d of %d, %d verses collected\n", st.Position, sess.board.Final(), len(st.Verses))
	if out.Victory() {
		fmt.Println("You reached the goal!")
	}
	return nil
}
