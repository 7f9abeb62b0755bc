package main

import (
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/serpientes/internal/core"
	"github.com/vovakirdan/serpientes/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play on this terminal",
	Long: `Open the board and continue the saved game of --player.

Controls:
  Space/Enter - Roll the die
  D / click   - Show the current space again
  M           - Voice on/off
  H           - Finished games
  P           - Read the collected verses again (after winning)
  R           - New game (after winning)
  ?           - Help
  Q/Ctrl+C    - Quit

Logs are written to ~/.serpientes/serpientes.log.

Examples:
  serpientes play
  serpientes play --player ana --mute
  serpientes play --config ./my-board.yaml`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) error {
	logFile := openLogFile()
	defer logFile.Close()

	logger, err := newLogger(logFile, "serpientes")
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	sess, err := openSession(ctx, logger, nil, false)
	if err != nil {
		return err
	}
	defer sess.Close()

	// Get terminal size for the first frame
	rc := core.DefaultConfig()
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		rc.ScreenW = w
		rc.ScreenH = h
	}
	rc.Seed = flagSeed
	rc.Player = flagPlayer
	rc.Muted = sess.cfg.Narration.Muted

	opts := tui.Options{
		Runtime:   rc,
		Animation: sess.cfg.Animation,
	}
	if sess.store != nil {
		opts.History = sess.store
	}

	return tui.Run(ctx, sess.engine, opts)
}
