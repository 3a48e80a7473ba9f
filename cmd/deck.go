package cmd

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/arcanaland/quill/internal/config"
	"github.com/arcanaland/quill/internal/deck"
	"github.com/arcanaland/quill/internal/logger"
)

// deckCmd represents the deck command group
var deckCmd = &cobra.Command{
	Use:   "deck",
	Short: "Manage decks in your deck library",
	Long:  `Commands for managing Lorcana decks in your deck library.`,
}

// deckListCmd represents the deck list command
var deckListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List available decks in your deck library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		// Check if deck library exists
		if _, err := os.Stat(libraryPath); os.IsNotExist(err) {
			fmt.Fprintf(out, "Deck library at %s does not exist.\n", libraryPath)
			fmt.Fprintln(out, "Run 'quill deck init' to create it.")
			return nil
		}

		defaultDeck, err := config.GetDefaultDeck()
		if err != nil {
			return fmt.Errorf("error getting default deck: %w", err)
		}

		entries, err := os.ReadDir(libraryPath)
		if err != nil {
			return fmt.Errorf("error reading deck library: %w", err)
		}

		found := 0
		for _, entry := range entries {
			if entry.IsDir() || !deck.IsDeckFile(entry.Name()) {
				continue
			}

			d, err := deck.LoadDeck(filepath.Join(libraryPath, entry.Name()))
			if err != nil {
				// Not a valid deck, skip
				logger.L().Warn("deck.skipped", "file", entry.Name(), "error", err)
				continue
			}
			found++

			name := deckName(entry.Name())
			summary := fmt.Sprintf("%d cards, %s", d.CardCount(), formatInks(d.Inks()))
			if name == defaultDeck || entry.Name() == defaultDeck {
				fmt.Fprintf(out, "* %s (%s) [DEFAULT]\n", name, summary)
			} else {
				fmt.Fprintf(out, "  %s (%s)\n", name, summary)
			}
		}

		if found == 0 {
			fmt.Fprintln(out, "No decks found in your deck library.")
			fmt.Fprintln(out, "You can add decks by copying them to:", libraryPath)
		}
		return nil
	},
}

// deckShowCmd represents the deck show command
var deckShowCmd = &cobra.Command{
	Use:   "show [deck_name]",
	Short: "Show the contents of a deck",
	Long: `Show prints the card count, inks and card breakdown of a deck.
If no deck is given, the default deck from your config is used.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var name string
		if len(args) == 1 {
			name = args[0]
		} else {
			defaultDeck, err := config.GetDefaultDeck()
			if err != nil {
				return fmt.Errorf("error getting default deck: %w", err)
			}
			if defaultDeck == "" {
				return fmt.Errorf("no deck given and no default deck set; run 'quill deck set-default'")
			}
			name = defaultDeck
		}

		deckPath, err := config.GetDeckPath(name)
		if err != nil {
			return err
		}

		d, err := deck.LoadDeck(deckPath)
		if err != nil {
			return fmt.Errorf("error loading deck: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, divider(out, "─"))
		fmt.Fprintf(out, "Deck: %s\n", deckName(deckPath))
		printDeckInfo(out, d)
		return nil
	},
}

// deckSetDefaultCmd represents the deck set-default command
var deckSetDefaultCmd = &cobra.Command{
	Use:   "set-default [deck_name]",
	Short: "Set the default deck",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		name := args[0]

		deckPath, err := config.GetDeckPath(name)
		if err != nil {
			return err
		}

		// Try to load the deck to make sure it's valid
		if _, err := deck.LoadDeck(deckPath); err != nil {
			return fmt.Errorf("not a valid deck: %w", err)
		}

		if err := config.SetDefaultDeck(name); err != nil {
			return fmt.Errorf("error setting default deck: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default deck set to: %s\n", name)
		return nil
	},
}

// deckInitCmd represents the deck init command
var deckInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize the deck library",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		out := cmd.OutOrStdout()
		libraryPath := config.GetDeckLibraryPath()

		if err := os.MkdirAll(libraryPath, 0755); err != nil {
			return fmt.Errorf("error creating deck library: %w", err)
		}

		fmt.Fprintln(out, "Deck library initialized at:", libraryPath)
		fmt.Fprintln(out, "You can now add decks by copying JSON or YAML deck files to this directory.")

		if _, err := config.LoadConfig(); err != nil {
			return fmt.Errorf("error initializing config: %w", err)
		}

		fmt.Fprintln(out, "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(deckCmd)
	deckCmd.AddCommand(deckListCmd)
	deckCmd.AddCommand(deckShowCmd)
	deckCmd.AddCommand(deckSetDefaultCmd)
	deckCmd.AddCommand(deckInitCmd)
}

// deckName strips the directory and deck file extension from a path
func deckName(path string) string {
	base := filepath.Base(path)
	for _, ext := range deck.Extensions {
		if strings.EqualFold(filepath.Ext(base), ext) {
			return strings.TrimSuffix(base, filepath.Ext(base))
		}
	}
	return base
}
