package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/arcanaland/quill/internal/config"
	"github.com/arcanaland/quill/internal/validator"
)

// formatsCmd represents the formats command group
var formatsCmd = &cobra.Command{
	Use:   "formats",
	Short: "List the deck formats quill can validate against",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		current, err := config.GetDefaultFormat()
		if err != nil || current == "" {
			current = validator.DefaultFormat
		}

		out := cmd.OutOrStdout()
		for _, name := range validator.Names() {
			if name == current {
				fmt.Fprintf(out, "* %s [DEFAULT]\n", name)
			} else {
				fmt.Fprintf(out, "  %s\n", name)
			}
		}
		return nil
	},
}

// formatsSetDefaultCmd represents the formats set-default command
var formatsSetDefaultCmd = &cobra.Command{
	Use:   "set-default [format]",
	Short: "Set the format used when --format is not given",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		f, err := validator.Lookup(args[0])
		if err != nil {
			return err
		}

		if err := config.SetDefaultFormat(f.Name()); err != nil {
			return fmt.Errorf("error setting default format: %w", err)
		}

		fmt.Fprintf(cmd.OutOrStdout(), "Default format set to: %s\n", f.Name())
		return nil
	},
}

func init() {
	RootCmd.AddCommand(formatsCmd)
	formatsCmd.AddCommand(formatsSetDefaultCmd)
}
