package model

import "time"

// GameID uniquely identifies a game
type GameID string

// GamePhase represents the turn state of a game
type GamePhase string

const (
	PhaseAwaitingPlacement GamePhase = "awaiting_placement" // Current player is placing tiles
	PhaseValidatedReady    GamePhase = "validated_ready"    // Pending move passed a check
	PhaseGameOver          GamePhase = "game_over"          // Terminal
)

// Player count limits
const (
	MinPlayers = 2
	MaxPlayers = 4
)

// Game is the complete state of one game
type Game struct {
	ID          GameID
	PlayerCount int
	Phase       GamePhase

	Board *Board
	Bag   *Bag
	Racks []*Rack // Indexed by player

	// Turn management
	TotalScores        []int // Indexed by player
	CurrentPlayerIdx   int   // 0-indexed
	CurrentRound       int   // 1-indexed
	FirstMoveCommitted bool
	Legal              SquareSet
	RackSlots          []int // Rack index each pending tile was taken from

	History []MoveRecord
	Winners []int // Set once the game is over

	CreatedAt time.Time
	UpdatedAt time.Time
}

// MoveRecord is a committed move kept in the game history
type MoveRecord struct {
	Player     int
	Round      int
	Placements []Placement
	Words      []WordScore
	Score      int
	At         time.Time
}

// TurnOutcome reports the result of a submitted move
type TurnOutcome struct {
	Player       int
	Words        []WordScore
	ScoreDelta   int
	NextPlayer   int
	NextRound    int
	BagRemaining int
	GameOver     bool
	Winners      []int // Only set when GameOver
}

// LegalSquares returns the currently legal squares in row-major order
func (g *Game) LegalSquares() []Position {
	return g.Legal.Sorted()
}

// RackOf returns a copy of the player's rack, or nil for an unknown player
func (g *Game) RackOf(player int) []Letter {
	if player < 0 || player >= len(g.Racks) {
		return nil
	}
	return g.Racks[player].Letters()
}

// CurrentRack returns the rack of the player whose turn it is
func (g *Game) CurrentRack() *Rack {
	return g.Racks[g.CurrentPlayerIdx]
}

// BagRemaining returns the number of undrawn tiles
func (g *Game) BagRemaining() int {
	return g.Bag.Remaining()
}

// CurrentPlayer returns the 0-indexed player whose turn it is
func (g *Game) CurrentPlayer() int {
	return g.CurrentPlayerIdx
}

// Round returns the 1-indexed round number
func (g *Game) Round() int {
	return g.CurrentRound
}

// Scores returns a copy of every player's total
func (g *Game) Scores() []int {
	result := make([]int, len(g.TotalScores))
	copy(result, g.TotalScores)
	return result
}

// PendingMove returns the tiles placed this turn in placement order
func (g *Game) PendingMove() []Placement {
	positions := g.Board.Pending()
	result := make([]Placement, 0, len(positions))
	for _, pos := range positions {
		result = append(result, Placement{Position: pos, Letter: g.Board.Get(pos)})
	}
	return result
}

// IsOver returns true once the game has reached its terminal phase
func (g *Game) IsOver() bool {
	return g.Phase == PhaseGameOver
}

// TileCount returns the number of tiles across bag, racks and board
func (g *Game) TileCount() int {
	count := g.Bag.Remaining() + g.Board.TileCount()
	for _, r := range g.Racks {
		count += r.Size()
	}
	return count
}
