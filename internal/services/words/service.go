package words

import (
	"strings"

	"github.com/mcoot/scrabble-go/internal/model"
)

// Service extracts candidate words from the board
type Service struct{}

// New creates a new WordService
func New() *Service {
	return &Service{}
}

// direction is a unit step along a row or column
type direction struct {
	dRow, dCol int
}

func (d direction) step(p model.Position, n int) model.Position {
	return model.Position{Row: p.Row + n*d.dRow, Col: p.Col + n*d.dCol}
}

var (
	horizontal = direction{dRow: 0, dCol: 1}
	vertical   = direction{dRow: 1, dCol: 0}
)

// Extract returns every maximal run of length >= 2 passing through one of
// the new positions. A run reached from several new tiles is returned once.
func (s *Service) Extract(board *model.Board, newPositions []model.Position) []model.Word {
	seen := make(map[string]struct{})
	var result []model.Word

	for _, pos := range newPositions {
		for _, dir := range []direction{horizontal, vertical} {
			word, ok := s.runThrough(board, pos, dir)
			if !ok {
				continue
			}
			key := wordKey(word)
			if _, dup := seen[key]; dup {
				continue
			}
			seen[key] = struct{}{}
			result = append(result, word)
		}
	}

	return result
}

// runThrough scans back to the start of the run containing pos, then reads
// forward to its end
func (s *Service) runThrough(board *model.Board, pos model.Position, dir direction) (model.Word, bool) {
	if board.IsEmpty(pos) {
		return model.Word{}, false
	}

	start := pos
	for prev := dir.step(start, -1); prev.InBounds() && !board.IsEmpty(prev); prev = dir.step(prev, -1) {
		start = prev
	}

	var sb strings.Builder
	var positions []model.Position
	for cur := start; cur.InBounds() && !board.IsEmpty(cur); cur = dir.step(cur, 1) {
		sb.WriteRune(rune(board.Get(cur)))
		positions = append(positions, cur)
	}

	if len(positions) < 2 {
		return model.Word{}, false
	}

	return model.Word{
		Text:       sb.String(),
		Positions:  positions,
		Horizontal: dir == horizontal,
	}, true
}

// wordKey identifies a run by its text and cells
func wordKey(w model.Word) string {
	var sb strings.Builder
	sb.WriteString(w.Text)
	for _, p := range w.Positions {
		sb.WriteString(p.String())
	}
	return sb.String()
}

// Interface for dependency injection
type ServiceInterface interface {
	Extract(board *model.Board, newPositions []model.Position) []model.Word
}

var _ ServiceInterface = (*Service)(nil)
