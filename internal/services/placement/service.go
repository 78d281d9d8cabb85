package placement

import (
	"fmt"

	"github.com/mcoot/scrabble-go/internal/model"
)

// Service computes the set of squares a tile may be placed on.
//
// Legality only tracks orthogonal adjacency, so a turn may grow in a
// branching shape. Such moves are caught later when their runs fail
// dictionary validation.
type Service struct{}

// New creates a new PlacementService
func New() *Service {
	return &Service{}
}

// Recompute derives the legal squares from the board alone.
// Before the first commit only the centre is legal.
func (s *Service) Recompute(board *model.Board, firstMoveCommitted bool) model.SquareSet {
	if !firstMoveCommitted {
		return model.NewSquareSet(model.Center)
	}

	legal := make(model.SquareSet)
	occupied := board.Occupied()
	for pos := range occupied {
		for _, n := range pos.Neighbors() {
			if !occupied.Contains(n) {
				legal.Add(n)
			}
		}
	}
	return legal
}

// Extend updates the set after a tile lands on pos: pos is no longer legal
// and its empty neighbours become legal
func (s *Service) Extend(legal model.SquareSet, board *model.Board, pos model.Position) {
	legal.Remove(pos)
	for _, n := range pos.Neighbors() {
		if board.IsEmpty(n) {
			legal.Add(n)
		}
	}
}

// Validate checks that pos may receive a tile
func (s *Service) Validate(legal model.SquareSet, pos model.Position) error {
	if !pos.InBounds() {
		return fmt.Errorf("%w: %w", model.ErrIllegalSquare, model.ErrInvalidPosition)
	}
	if !legal.Contains(pos) {
		return model.ErrIllegalSquare
	}
	return nil
}

// Interface for dependency injection
type ServiceInterface interface {
	Recompute(board *model.Board, firstMoveCommitted bool) model.SquareSet
	Extend(legal model.SquareSet, board *model.Board, pos model.Position)
	Validate(legal model.SquareSet, pos model.Position) error
}

var _ ServiceInterface = (*Service)(nil)
