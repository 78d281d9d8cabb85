package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newDictCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "dict",
		Short: "Dictionary commands",
	}

	cmd.AddCommand(newDictImportCmd())
	cmd.AddCommand(newDictInfoCmd())

	return cmd
}

func newDictImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <path>",
		Short: "Load a word list file into the word store",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := app.LoadDictionary(cmd.Context(), args[0]); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.PrintMessage(fmt.Sprintf("Imported %d words into the %s word store", app.DictionaryService.WordCount(), cfg.StorageType))
			return nil
		},
	}
}

func newDictInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Show the size of the loaded dictionary",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDictionary(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(map[string]any{
				"storage":    cfg.StorageType,
				"word_count": app.DictionaryService.WordCount(),
			})
			return nil
		},
	}
}
