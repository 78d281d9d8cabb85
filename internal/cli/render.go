package cli

import (
	"fmt"
	"strings"
	"unicode"

	"github.com/samber/lo"

	"github.com/mcoot/scrabble-go/internal/model"
)

// renderBoard draws the board with column and row headers. Empty squares
// show their bonus, pending tiles are lower-case and legal squares are
// marked with '+' when legal is non-nil.
func renderBoard(board *model.Board, bonuses *model.BonusBoard, legal model.SquareSet) BoardView {
	var rows []string

	var header strings.Builder
	header.WriteString("   ")
	for col := 0; col < model.BoardSize; col++ {
		fmt.Fprintf(&header, "%3d", col)
	}
	rows = append(rows, header.String())

	for row := 0; row < model.BoardSize; row++ {
		var line strings.Builder
		fmt.Fprintf(&line, "%2d ", row)
		for col := 0; col < model.BoardSize; col++ {
			line.WriteString(fmt.Sprintf("%3s", cellText(board, bonuses, legal, model.Position{Row: row, Col: col})))
		}
		rows = append(rows, line.String())
	}

	return BoardView{
		Rows: rows,
		Text: strings.Join(rows, "\n") + "\n",
	}
}

func cellText(board *model.Board, bonuses *model.BonusBoard, legal model.SquareSet, pos model.Position) string {
	if letter := board.Get(pos); letter != 0 {
		if board.IsPending(pos) {
			return string(unicode.ToLower(rune(letter)))
		}
		return letter.String()
	}
	if legal != nil && legal.Contains(pos) {
		return "+"
	}
	if b := bonuses.At(pos); b != model.BonusNone {
		return b.String()
	}
	if pos == model.Center {
		return "*"
	}
	return "."
}

func rackString(letters []model.Letter) string {
	return strings.Join(lo.Map(letters, func(l model.Letter, _ int) string {
		return l.String()
	}), " ")
}

func newGameView(game *model.Game) GameView {
	return GameView{
		ID:            string(game.ID),
		Phase:         string(game.Phase),
		Round:         game.Round(),
		CurrentPlayer: game.CurrentPlayer() + 1,
		Scores:        game.Scores(),
		BagRemaining:  game.BagRemaining(),
		Rack:          rackString(game.CurrentRack().Letters()),
		Pending:       len(game.PendingMove()),
		Winners:       oneBased(game.Winners),
	}
}

func newWordView(w model.Word, score int) WordView {
	direction := "down"
	if w.Horizontal {
		direction = "across"
	}
	return WordView{
		Word:      w.Text,
		Start:     w.Start().String(),
		Direction: direction,
		Score:     score,
	}
}

func scoredWordViews(scores []model.WordScore) []WordView {
	return lo.Map(scores, func(ws model.WordScore, _ int) WordView {
		return newWordView(ws.Word, ws.Score)
	})
}

func newMoveResult(outcome *model.TurnOutcome, scores []int) MoveResult {
	return MoveResult{
		Player:       outcome.Player + 1,
		Words:        scoredWordViews(outcome.Words),
		Score:        outcome.ScoreDelta,
		Scores:       scores,
		NextPlayer:   outcome.NextPlayer + 1,
		Round:        outcome.NextRound,
		BagRemaining: outcome.BagRemaining,
		GameOver:     outcome.GameOver,
		Winners:      oneBased(outcome.Winners),
	}
}

func newHistory(game *model.Game) []HistoryEntry {
	return lo.Map(game.History, func(m model.MoveRecord, _ int) HistoryEntry {
		return HistoryEntry{
			Round:  m.Round,
			Player: m.Player + 1,
			Words:  scoredWordViews(m.Words),
			Score:  m.Score,
		}
	})
}

func oneBased(players []int) []int {
	if len(players) == 0 {
		return nil
	}
	return lo.Map(players, func(p int, _ int) int {
		return p + 1
	})
}
