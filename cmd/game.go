package cmd

import (
	"fmt"
	"io"
	"strings"

	colorize "github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/arcanaland/quill/internal/game"
)

// gameCmd represents the game command
var gameCmd = &cobra.Command{
	Use:   "game",
	Short: "Start a two-player game",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		player1, _ := cmd.Flags().GetString("player1")
		player2, _ := cmd.Flags().GetString("player2")

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Welcome to Quill!")
		fmt.Fprintln(out, strings.Repeat("🪶", 12))
		fmt.Fprintln(out)

		printGameState(out, game.New(player1, player2))
	},
}

func init() {
	RootCmd.AddCommand(gameCmd)

	gameCmd.Flags().String("player1", "Player 1", "Name of the first player")
	gameCmd.Flags().String("player2", "Player 2", "Name of the second player")
}

func printGameState(w io.Writer, g *game.Game) {
	rule := divider(w, "=")
	fmt.Fprintln(w)
	fmt.Fprintln(w, rule)
	fmt.Fprintf(w, "%s %d\n", colorize.CyanString("Turn:"), g.CurrentTurn)
	fmt.Fprintln(w, rule)

	fmt.Fprintf(w, "\n👤 %s\n", colorize.HiWhiteString(g.Player1.Name))
	fmt.Fprintf(w, "\n👤 %s\n", colorize.HiWhiteString(g.Player2.Name))
}
