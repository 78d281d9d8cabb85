package cli

import (
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

func newPlayCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "play",
		Short: "Start an interactive game for 2-4 players",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			if err := loadDictionary(ctx); err != nil {
				return err
			}

			rl, err := NewReadline(filepath.Join(os.TempDir(), "scrabble.history"))
			if err != nil {
				return err
			}

			out := NewOutputTo(cfg.Output, rl.Stdout())
			shell := NewShell(app.GameController, app.DictionaryService, out, app.Logger)
			if err := shell.NewGame(ctx, cfg.Players); err != nil {
				rl.Close()
				return err
			}
			out.PrintMessage("Type 'help' for commands.")

			return shell.Run(ctx, rl)
		},
	}

	cmd.Flags().IntP(keyPlayers, "p", v.GetInt(keyPlayers), "Number of players, 2-4 (env: SCRABBLE_PLAYERS)")
	_ = v.BindPFlag(keyPlayers, cmd.Flags().Lookup(keyPlayers))

	return cmd
}
