package model

// Board is the shared 15x15 grid of placed tiles.
// Cells placed during the current turn are tracked as pending until Commit.
type Board struct {
	Cells   [BoardSize][BoardSize]Letter // Row-major: Cells[row][col], 0 means empty
	pending []Position                   // Placement order of uncommitted cells
}

// NewBoard creates an empty board
func NewBoard() *Board {
	return &Board{}
}

// Get returns the letter at the given position, or 0 if empty
func (b *Board) Get(pos Position) Letter {
	if !pos.InBounds() {
		return 0
	}
	return b.Cells[pos.Row][pos.Col]
}

// IsEmpty returns true if the cell at the given position is empty
func (b *Board) IsEmpty(pos Position) bool {
	return b.Get(pos) == 0
}

// Place puts a letter on an empty cell and marks it pending
func (b *Board) Place(pos Position, letter Letter) error {
	if !pos.InBounds() {
		return ErrInvalidPosition
	}
	if !b.IsEmpty(pos) {
		return ErrPositionOccupied
	}
	b.Cells[pos.Row][pos.Col] = letter
	b.pending = append(b.pending, pos)
	return nil
}

// Remove clears a cell placed this turn and returns its letter.
// Committed cells can never be removed.
func (b *Board) Remove(pos Position) (Letter, error) {
	i := b.pendingIndex(pos)
	if i < 0 {
		return 0, ErrNotPending
	}
	letter := b.Cells[pos.Row][pos.Col]
	b.Cells[pos.Row][pos.Col] = 0
	b.pending = append(b.pending[:i], b.pending[i+1:]...)
	return letter, nil
}

// Commit makes every pending cell permanent and returns them in placement order
func (b *Board) Commit() []Position {
	committed := b.pending
	b.pending = nil
	return committed
}

// Pending returns the cells placed this turn in placement order
func (b *Board) Pending() []Position {
	result := make([]Position, len(b.pending))
	copy(result, b.pending)
	return result
}

// IsPending reports whether the cell was placed this turn
func (b *Board) IsPending(pos Position) bool {
	return b.pendingIndex(pos) >= 0
}

// Occupied returns the set of non-empty cells
func (b *Board) Occupied() SquareSet {
	occupied := make(SquareSet)
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col] != 0 {
				occupied.Add(Position{Row: row, Col: col})
			}
		}
	}
	return occupied
}

// TileCount returns the number of tiles on the board, pending included
func (b *Board) TileCount() int {
	count := 0
	for row := 0; row < BoardSize; row++ {
		for col := 0; col < BoardSize; col++ {
			if b.Cells[row][col] != 0 {
				count++
			}
		}
	}
	return count
}

func (b *Board) pendingIndex(pos Position) int {
	for i, p := range b.pending {
		if p == pos {
			return i
		}
	}
	return -1
}

// Placement is one tile put on the board during the current turn
type Placement struct {
	Position Position
	Letter   Letter
}

// Word is a candidate word: a maximal run of occupied cells of length >= 2
type Word struct {
	Text       string
	Positions  []Position
	Horizontal bool // true = left-to-right, false = top-to-bottom
}

// Start returns the first cell of the word
func (w Word) Start() Position {
	if len(w.Positions) == 0 {
		return Position{}
	}
	return w.Positions[0]
}

// WordScore is the scored value of one word in a move
type WordScore struct {
	Word       Word
	LetterSum  int // Sum of letter values after letter bonuses
	Multiplier int // Product of word bonuses
	Score      int // LetterSum * Multiplier
}

// MoveScore is the complete scoring result for a move
type MoveScore struct {
	Words []WordScore
	Total int
}
