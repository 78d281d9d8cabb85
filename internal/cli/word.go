package cli

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabble-go/internal/services/dictionary"
)

func newWordCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "word <word>...",
		Short: "Check words against the dictionary (* matches any letter)",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := loadDictionary(cmd.Context()); err != nil {
				return err
			}

			out := NewOutput(cfg.Output)
			out.Print(lookupWords(app.DictionaryService, args))
			return nil
		},
	}
}

func lookupWords(dict dictionary.ServiceInterface, words []string) []WordLookup {
	results := make([]WordLookup, 0, len(words))
	for _, w := range words {
		upper := strings.ToUpper(w)
		resolved, ok := dict.Resolve(upper)
		lookup := WordLookup{Word: upper, Valid: ok}
		if ok {
			lookup.Resolved = resolved
		}
		results = append(results, lookup)
	}
	return results
}
