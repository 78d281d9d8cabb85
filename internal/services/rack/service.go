package rack

import (
	"errors"
	"log/slog"

	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
)

// Service manages the bag and the players' racks
type Service struct {
	random random.Random
	logger *slog.Logger
}

// New creates a new RackService
func New(random random.Random, logger *slog.Logger) *Service {
	return &Service{
		random: random,
		logger: logger,
	}
}

// NewBag creates a bag with the standard distribution in shuffled order
func (s *Service) NewBag() *model.Bag {
	tiles := model.StandardDistribution()
	s.random.Shuffle(len(tiles), func(i, j int) {
		tiles[i], tiles[j] = tiles[j], tiles[i]
	})
	return model.NewBag(tiles)
}

// Deal creates one rack per player, filling each in turn order
func (s *Service) Deal(bag *model.Bag, players int) []*model.Rack {
	racks := make([]*model.Rack, players)
	for i := range racks {
		racks[i] = &model.Rack{}
		s.Refill(racks[i], bag)
	}
	return racks
}

// Refill draws tiles until the rack is full or the bag runs out.
// It returns the number of tiles drawn and whether the bag ran out first.
func (s *Service) Refill(rack *model.Rack, bag *model.Bag) (int, bool) {
	drawn := 0
	for !rack.IsFull() {
		letter, err := bag.Draw()
		if errors.Is(err, model.ErrEmptyBag) {
			s.logger.Debug("bag exhausted during refill",
				slog.Int("drawn", drawn),
				slog.Int("rack_size", rack.Size()),
			)
			return drawn, true
		}
		_ = rack.Add(letter)
		drawn++
	}
	return drawn, false
}

// Take removes one copy of the letter from the rack and returns the
// slot it occupied
func (s *Service) Take(rack *model.Rack, letter model.Letter) (int, error) {
	slot := rack.IndexOf(letter)
	if err := rack.Remove(letter); err != nil {
		return -1, err
	}
	return slot, nil
}

// Restore puts a taken tile back into its slot. A negative slot appends.
func (s *Service) Restore(rack *model.Rack, slot int, letter model.Letter) error {
	return rack.Insert(slot, letter)
}

// Interface for dependency injection
type ServiceInterface interface {
	NewBag() *model.Bag
	Deal(bag *model.Bag, players int) []*model.Rack
	Refill(rack *model.Rack, bag *model.Bag) (int, bool)
	Take(rack *model.Rack, letter model.Letter) (int, error)
	Restore(rack *model.Rack, slot int, letter model.Letter) error
}

var _ ServiceInterface = (*Service)(nil)
