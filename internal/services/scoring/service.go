package scoring

import (
	"github.com/samber/lo"

	"github.com/mcoot/scrabble-go/internal/model"
)

// Service provides scoring functionality for moves
type Service struct {
	bonuses *model.BonusBoard
}

// New creates a new ScoringService
func New(bonuses *model.BonusBoard) *Service {
	return &Service{
		bonuses: bonuses,
	}
}

// ScoreMove calculates the score of the words formed by a move.
// Bonus squares only count for tiles placed this turn, and a bonus square
// shared by two crossing words counts for both.
func (s *Service) ScoreMove(board *model.Board, words []model.Word, newPositions []model.Position) model.MoveScore {
	fresh := model.NewSquareSet(newPositions...)

	result := model.MoveScore{
		Words: make([]model.WordScore, 0, len(words)),
	}
	for _, w := range words {
		ws := s.scoreWord(board, w, fresh)
		result.Words = append(result.Words, ws)
		result.Total += ws.Score
	}
	return result
}

func (s *Service) scoreWord(board *model.Board, word model.Word, fresh model.SquareSet) model.WordScore {
	letterSum := 0
	multiplier := 1

	for _, pos := range word.Positions {
		letterScore := board.Get(pos).Value()

		if fresh.Contains(pos) {
			switch s.bonuses.At(pos) {
			case model.BonusDoubleLetter:
				letterScore *= 2
			case model.BonusTripleLetter:
				letterScore *= 3
			case model.BonusDoubleWord:
				multiplier *= 2
			case model.BonusTripleWord:
				multiplier *= 3
			}
		}

		letterSum += letterScore
	}

	return model.WordScore{
		Word:       word,
		LetterSum:  letterSum,
		Multiplier: multiplier,
		Score:      letterSum * multiplier,
	}
}

// DetermineWinners returns every player index holding the maximum score
func (s *Service) DetermineWinners(scores []int) []int {
	if len(scores) == 0 {
		return nil
	}

	top := lo.Max(scores)
	winners := []int{}
	for i, score := range scores {
		if score == top {
			winners = append(winners, i)
		}
	}
	return winners
}

// Interface for dependency injection
type ServiceInterface interface {
	ScoreMove(board *model.Board, words []model.Word, newPositions []model.Position) model.MoveScore
	DetermineWinners(scores []int) []int
}

var _ ServiceInterface = (*Service)(nil)
