package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Start a new game",
	Long: `Discard the saved position and verses of --player and start over.
Finished games stay in the history.

Examples:
  serpientes reset
  serpientes reset --player ana`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func runReset(cmd *cobra.Command, _ []string) error {
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

	if err := sess.engine.Reset(ctx); err != nil {
		return err
	}
	fmt.Printf("New game for %s.\n", flagPlayer)
	return nil
}
