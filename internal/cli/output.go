package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mcoot/scrabble-go/internal/model"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to stdout
func NewOutput(format string) *Output {
	return NewOutputTo(format, os.Stdout)
}

// NewOutputTo creates a new Output formatter writing to w
func NewOutputTo(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintError outputs an error
func (o *Output) PrintError(err error) {
	if o.format == "json" {
		errData := map[string]any{
			"error": map[string]string{
				"message": err.Error(),
			},
		}
		data, _ := json.Marshal(errData)
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintf(o.w, "Error: %s\n", err)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		data, _ := json.Marshal(map[string]string{"message": msg})
		fmt.Fprintln(o.w, string(data))
	} else {
		fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case GameView:
		o.printGameView(v)
	case BoardView:
		fmt.Fprint(o.w, v.Text)
	case MoveResult:
		o.printMoveResult(v)
	case CheckResult:
		o.printCheckResult(v)
	case []WordLookup:
		o.printWordLookups(v)
	case LegalView:
		o.printLegalView(v)
	case []HistoryEntry:
		o.printHistory(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// GameView is a snapshot of the game from the current player's seat.
// Player numbers are 1-based.
type GameView struct {
	ID            string `json:"id"`
	Phase         string `json:"phase"`
	Round         int    `json:"round"`
	CurrentPlayer int    `json:"current_player"`
	Scores        []int  `json:"scores"`
	BagRemaining  int    `json:"bag_remaining"`
	Rack          string `json:"rack"`
	Pending       int    `json:"pending_tiles"`
	Winners       []int  `json:"winners,omitempty"`
}

// BoardView is a rendered board
type BoardView struct {
	Rows []string `json:"rows"`
	Text string   `json:"-"`
}

// LegalView lists the squares the current player may use
type LegalView struct {
	Squares []model.Position `json:"squares"`
}

// WordView is one scored word
type WordView struct {
	Word      string `json:"word"`
	Start     string `json:"start"`
	Direction string `json:"direction"`
	Score     int    `json:"score,omitempty"`
}

// CheckResult is the outcome of a successful move check
type CheckResult struct {
	Words []WordView `json:"words"`
}

// MoveResult is the outcome of a submitted move
type MoveResult struct {
	Player       int        `json:"player"`
	Words        []WordView `json:"words"`
	Score        int        `json:"score"`
	Scores       []int      `json:"scores"`
	NextPlayer   int        `json:"next_player"`
	Round        int        `json:"round"`
	BagRemaining int        `json:"bag_remaining"`
	GameOver     bool       `json:"game_over"`
	Winners      []int      `json:"winners,omitempty"`
}

// WordLookup is the result of checking a word against the dictionary
type WordLookup struct {
	Word     string `json:"word"`
	Valid    bool   `json:"valid"`
	Resolved string `json:"resolved,omitempty"`
}

// HistoryEntry is one committed move
type HistoryEntry struct {
	Round  int        `json:"round"`
	Player int        `json:"player"`
	Words  []WordView `json:"words"`
	Score  int        `json:"score"`
}

func (o *Output) printGameView(v GameView) {
	fmt.Fprintf(o.w, "Game:      %s\n", v.ID)
	fmt.Fprintf(o.w, "Phase:     %s\n", v.Phase)
	fmt.Fprintf(o.w, "Round:     %d\n", v.Round)
	fmt.Fprintf(o.w, "Bag:       %d tiles\n", v.BagRemaining)
	fmt.Fprintf(o.w, "Scores:    %s\n", formatScores(v.Scores))
	if len(v.Winners) > 0 {
		fmt.Fprintln(o.w, formatWinners(v.Winners, v.Scores))
		return
	}
	fmt.Fprintf(o.w, "To play:   Player %d\n", v.CurrentPlayer)
	fmt.Fprintf(o.w, "Rack:      %s\n", v.Rack)
	if v.Pending > 0 {
		fmt.Fprintf(o.w, "Placed:    %d tiles this turn\n", v.Pending)
	}
}

func (o *Output) printMoveResult(v MoveResult) {
	fmt.Fprintf(o.w, "Player %d scored %d\n", v.Player, v.Score)
	for _, w := range v.Words {
		fmt.Fprintf(o.w, "  %-15s %s %-6s %d\n", w.Word, w.Start, w.Direction, w.Score)
	}
	fmt.Fprintf(o.w, "Scores: %s\n", formatScores(v.Scores))
	if v.GameOver {
		fmt.Fprintln(o.w, "Game over!")
		fmt.Fprintln(o.w, formatWinners(v.Winners, v.Scores))
		return
	}
	fmt.Fprintf(o.w, "Bag: %d tiles. Round %d, Player %d to play.\n", v.BagRemaining, v.Round, v.NextPlayer)
}

func (o *Output) printCheckResult(v CheckResult) {
	words := make([]string, 0, len(v.Words))
	for _, w := range v.Words {
		words = append(words, w.Word)
	}
	fmt.Fprintf(o.w, "Move is valid: %s\n", strings.Join(words, ", "))
	fmt.Fprintln(o.w, "Type 'submit' to play it.")
}

func (o *Output) printWordLookups(v []WordLookup) {
	for _, l := range v {
		switch {
		case !l.Valid:
			fmt.Fprintf(o.w, "%s: not a word\n", l.Word)
		case l.Resolved != l.Word:
			fmt.Fprintf(o.w, "%s: valid (%s)\n", l.Word, l.Resolved)
		default:
			fmt.Fprintf(o.w, "%s: valid\n", l.Word)
		}
	}
}

func (o *Output) printLegalView(v LegalView) {
	squares := make([]string, 0, len(v.Squares))
	for _, p := range v.Squares {
		squares = append(squares, p.String())
	}
	fmt.Fprintf(o.w, "Legal squares: %s\n", strings.Join(squares, " "))
}

func (o *Output) printHistory(v []HistoryEntry) {
	if len(v) == 0 {
		fmt.Fprintln(o.w, "No moves yet.")
		return
	}
	for _, h := range v {
		words := make([]string, 0, len(h.Words))
		for _, w := range h.Words {
			words = append(words, w.Word)
		}
		fmt.Fprintf(o.w, "Round %d  Player %d  %-4d %s\n", h.Round, h.Player, h.Score, strings.Join(words, ", "))
	}
}

func formatScores(scores []int) string {
	parts := make([]string, 0, len(scores))
	for i, s := range scores {
		parts = append(parts, fmt.Sprintf("P%d=%d", i+1, s))
	}
	return strings.Join(parts, "  ")
}

// formatWinners announces the 1-based winners
func formatWinners(winners []int, scores []int) string {
	if len(winners) == 0 {
		return "No winner."
	}
	top := scores[winners[0]-1]
	if len(winners) == 1 {
		return fmt.Sprintf("Player %d wins with %d points.", winners[0], top)
	}
	names := make([]string, 0, len(winners))
	for _, w := range winners {
		names = append(names, fmt.Sprintf("Player %d", w))
	}
	return fmt.Sprintf("Tie between %s with %d points.", strings.Join(names, " and "), top)
}
