package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/quill/internal/config"
	"github.com/arcanaland/quill/internal/deck"
	"github.com/arcanaland/quill/internal/logger"
	"github.com/arcanaland/quill/internal/validator"
)

// errValidationFailed is returned after the report has been printed, so
// the process exits non-zero without repeating the reason.
var errValidationFailed = errors.New("validation failed")

// validateCmd represents the validate command
var validateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a deck against a format",
	Long: `Validate loads a deck from a JSON or YAML file and checks it against a format.
The file is looked up in your deck library first (extension optional), then as a path.

Examples:
  quill validate ./amber-steel.json
  quill validate --format testing amber-steel`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		formatName, _ := cmd.Flags().GetString("format")

		format, err := resolveFormat(formatName)
		if err != nil {
			return err
		}

		deckPath, err := config.GetDeckPath(args[0])
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "Validating deck from: %s\n", deckPath)

		d, err := deck.LoadDeck(deckPath)
		if err != nil {
			return fmt.Errorf("error loading deck: %w", err)
		}
		log := logger.L().With("path", deckPath, "format", format.Name())
		log.Debug("deck.loaded", "cards", d.CardCount())

		if err := format.Validate(d); err != nil {
			log.Debug("deck.invalid", "error", err)
			fmt.Fprintf(out, "%s Deck validation failed: %v\n", failMark(), err)
			printDeckInfo(out, d)
			return errValidationFailed
		}

		log.Debug("deck.valid")
		fmt.Fprintf(out, "%s Deck is valid for %s format!\n", okMark(), format.Name())
		printDeckInfo(out, d)
		return nil
	},
}

func init() {
	validateCmd.Flags().StringP("format", "f", "", "Deck format to validate against (testing or standard)")
}

// resolveFormat picks the named format, falling back to the configured
// default and then to the standard format.
func resolveFormat(name string) (validator.Format, error) {
	if name == "" {
		if configured, err := config.GetDefaultFormat(); err == nil && configured != "" {
			name = configured
		} else {
			if err != nil {
				logger.L().Warn("config.unreadable", "error", err)
			}
			name = validator.DefaultFormat
		}
	}
	return validator.Lookup(name)
}
