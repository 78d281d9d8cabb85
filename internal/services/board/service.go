package board

import (
	"log/slog"

	"github.com/mcoot/scrabble-go/internal/model"
)

// Service provides board operations
type Service struct {
	logger *slog.Logger
}

// New creates a new BoardService
func New(logger *slog.Logger) *Service {
	return &Service{
		logger: logger,
	}
}

// PlaceLetter places a letter at the specified position on a board
func (s *Service) PlaceLetter(board *model.Board, letter rune, pos model.Position) error {
	normalized, err := ValidateLetter(letter)
	if err != nil {
		return err
	}
	if err := s.ValidatePlacement(board, pos); err != nil {
		return err
	}
	return board.Place(pos, normalized)
}

// ValidatePlacement checks if a position is valid and empty
func (s *Service) ValidatePlacement(board *model.Board, pos model.Position) error {
	if !pos.InBounds() {
		return model.ErrInvalidPosition
	}
	if !board.IsEmpty(pos) {
		return model.ErrPositionOccupied
	}
	return nil
}

// ValidateLetter checks if a letter is A-Z or the blank marker, returning it upper-cased
func ValidateLetter(letter rune) (model.Letter, error) {
	normalized, ok := model.NormalizeLetter(letter)
	if !ok {
		return 0, model.ErrInvalidLetter
	}
	return normalized, nil
}

// RevertPending removes every tile placed this turn, most recent first,
// and returns them in original placement order
func (s *Service) RevertPending(board *model.Board) ([]model.Placement, error) {
	pending := board.Pending()
	reverted := make([]model.Placement, len(pending))
	for i := len(pending) - 1; i >= 0; i-- {
		letter, err := board.Remove(pending[i])
		if err != nil {
			return nil, err
		}
		reverted[i] = model.Placement{Position: pending[i], Letter: letter}
	}
	if len(reverted) > 0 {
		s.logger.Debug("reverted pending tiles", slog.Int("count", len(reverted)))
	}
	return reverted, nil
}

// Commit makes the pending tiles permanent
func (s *Service) Commit(board *model.Board) []model.Position {
	return board.Commit()
}

// Interface for dependency injection
type ServiceInterface interface {
	PlaceLetter(board *model.Board, letter rune, pos model.Position) error
	ValidatePlacement(board *model.Board, pos model.Position) error
	RevertPending(board *model.Board) ([]model.Placement, error)
	Commit(board *model.Board) []model.Position
}

var _ ServiceInterface = (*Service)(nil)
