package testutil

import (
	"fmt"
	"slices"

	"github.com/mcoot/scrabble-go/internal/model"
)

// RigGame replaces every rack with the given letters and rebuilds the bag
// from the remaining tiles in symbol order, keeping bagSize of them.
// A negative bagSize keeps every remaining tile.
func RigGame(game *model.Game, bagSize int, racks ...string) error {
	if len(racks) != game.PlayerCount {
		return model.ErrInvalidPlayerCount
	}

	rest := model.StandardDistribution()
	for i, letters := range racks {
		r := &model.Rack{}
		for _, ch := range letters {
			l := model.Letter(ch)
			idx := slices.Index(rest, l)
			if idx < 0 {
				return fmt.Errorf("%w: not enough %c tiles", model.ErrNoSuchTileInRack, ch)
			}
			rest = slices.Delete(rest, idx, idx+1)
			if err := r.Add(l); err != nil {
				return err
			}
		}
		game.Racks[i] = r
	}
	if bagSize >= 0 && bagSize < len(rest) {
		rest = rest[:bagSize]
	}
	game.Bag = model.NewBag(rest)
	game.RackSlots = nil
	return nil
}
