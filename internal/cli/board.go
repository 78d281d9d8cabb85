package cli

import (
	"github.com/spf13/cobra"

	"github.com/mcoot/scrabble-go/internal/model"
)

func newBoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the bonus square layout",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := NewOutput(cfg.Output)
			out.Print(renderBoard(model.NewBoard(), model.StandardBonusBoard, nil))
			return nil
		},
	}
}
