package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var (
	flagAll   bool
	flagLimit int
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List finished games",
	Long: `List the latest victories of --player, newest first.

Examples:
  serpientes history
  serpientes history --limit 5
  serpientes history --all`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagAll, "all", false, "Show the victories of every player")
	historyCmd.Flags().IntVar(&flagLimit, "limit", 10, "Number of victories to show")
}

func runHistory(cmd *cobra.Command, _ []string) error {
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

	player := flagPlayer
	if flagAll {
		player = ""
	}

	entries, err := sess.store.RecentVictories(ctx, player, flagLimit)
	if err != nil {
		return err
	}

	if len(entries) == 0 {
		fmt.Println("No finished games yet.")
		fmt.Println()
		fmt.Println("Run 'serpientes play' and reach the last space!")
		return nil
	}

	rows := make([][]string, len(entries))
	for i, e := range entries {
		rows[i] = []string{
			strconv.Itoa(i + 1),
			e.Player,
			e.CreatedAt.Local().Format("2006-01-02 15:04"),
			strconv.Itoa(e.Rolls),
			strconv.Itoa(len(e.Verses)),
			e.GameID.String(),
		}
	}

	headerStyle := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Padding(0, 1)
	cellStyle := lipgloss.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("240"))).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		}).
		Headers("#", "Player", "Date", "Rolls", "Verses", "Game").
		Rows(rows...)

	fmt.Println(t)
	return nil
}
