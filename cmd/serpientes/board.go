package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/serpientes/internal/platform/tui"
)

var flagPlain bool

var boardCmd = &cobra.Command{
	Use:   "board",
	Short: "Print the board",
	Long: `Print the board with its snakes, ladders and verse spaces, and the
token of --player on its saved space.

Legend:
  ●  your token      ♪  verse
  ↑n ladder to n     ↓n snake to n

Examples:
  serpientes board
  serpientes board --plain
  serpientes board --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	RunE: runBoard,
}

func init() {
	boardCmd.Flags().BoolVar(&flagPlain, "plain", false, "Print without colors")
}

func runBoard(cmd *cobra.Command, _ []string) error {
	logger, err := newLogger(os.Stderr, "serpientes")
	if err != nil {
		return err
	}

	sess, err := openSession(cmd.Context(), logger, nil, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	s := tui.BoardScreen(sess.board, sess.engine.Snapshot().State.Position)
	if flagPlain {
		fmt.Println(s.String())
	} else {
		fmt.Println(tui.RenderScreen(s))
	}
	return nil
}
