package cli

import (
	"context"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/mcoot/scrabble-go/internal/factory"
)

var (
	cfg *Config
	app *factory.App
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	v := newViper()

	rootCmd := &cobra.Command{
		Use:   "scrabble",
		Short: "Play Scrabble-style word games in the terminal",
		Long: `scrabble runs a rules and scoring engine for a Scrabble-style word game.

It supports interactive play for 2-4 players on a single terminal, word
lookups against the dictionary, and importing word lists into the
configured word store.`,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			var err error
			cfg, err = LoadConfig(v)
			if err != nil {
				return err
			}

			logger := cfg.Logger()
			slog.SetDefault(logger)

			app, err = factory.NewWithoutDictionary(cfg.FactoryConfig(logger))
			return err
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if app == nil {
				return nil
			}
			return app.Close()
		},
		SilenceUsage: true,
	}

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.String(keyDictionary, v.GetString(keyDictionary), "Word list path, one word per line (env: SCRABBLE_DICTIONARY)")
	flags.String(keyStorage, v.GetString(keyStorage), "Word store: memory, redis (env: STORAGE_TYPE)")
	flags.String("redis-url", v.GetString(keyRedisURL), "Redis URL for the redis word store (env: REDIS_URL)")
	flags.StringP(keyOutput, "o", v.GetString(keyOutput), "Output format: text, json")
	flags.BoolP(keyVerbose, "v", v.GetBool(keyVerbose), "Verbose logging")

	_ = v.BindPFlag(keyDictionary, flags.Lookup(keyDictionary))
	_ = v.BindPFlag(keyStorage, flags.Lookup(keyStorage))
	_ = v.BindPFlag(keyRedisURL, flags.Lookup("redis-url"))
	_ = v.BindPFlag(keyOutput, flags.Lookup(keyOutput))
	_ = v.BindPFlag(keyVerbose, flags.Lookup(keyVerbose))

	// Add subcommands
	rootCmd.AddCommand(newPlayCmd(v))
	rootCmd.AddCommand(newWordCmd())
	rootCmd.AddCommand(newDictCmd())
	rootCmd.AddCommand(newBoardCmd())

	return rootCmd
}

// loadDictionary prefers a word list already held in a shared store and
// falls back to the configured file
func loadDictionary(ctx context.Context) error {
	if cfg.StorageType == factory.StorageTypeRedis {
		if err := app.LoadDictionary(ctx, ""); err == nil {
			return nil
		}
		app.Logger.Info("word store empty, loading dictionary file",
			slog.String("path", cfg.DictionaryPath),
		)
	}
	return app.LoadDictionary(ctx, cfg.DictionaryPath)
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
