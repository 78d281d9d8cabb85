package model

// Bonus is the scoring category of a board square
type Bonus int

const (
	BonusNone Bonus = iota
	BonusDoubleLetter
	BonusTripleLetter
	BonusDoubleWord
	BonusTripleWord
)

func (b Bonus) String() string {
	switch b {
	case BonusDoubleLetter:
		return "DL"
	case BonusTripleLetter:
		return "TL"
	case BonusDoubleWord:
		return "DW"
	case BonusTripleWord:
		return "TW"
	default:
		return ""
	}
}

// BonusBoard is the fixed table of bonus squares
type BonusBoard struct {
	cells [BoardSize][BoardSize]Bonus
}

// bonusLayout lists every bonus square of the standard board
var bonusLayout = map[Bonus][]Position{
	BonusTripleWord: {
		{0, 0}, {0, 7}, {0, 14},
		{7, 0}, {7, 14},
		{14, 0}, {14, 7}, {14, 14},
	},
	BonusDoubleWord: {
		{1, 1}, {1, 13}, {2, 2}, {2, 12}, {3, 3}, {3, 11}, {4, 4}, {4, 10},
		{10, 4}, {10, 10}, {11, 3}, {11, 11}, {12, 2}, {12, 12}, {13, 1}, {13, 13},
	},
	BonusTripleLetter: {
		{1, 5}, {1, 9},
		{5, 1}, {5, 5}, {5, 9}, {5, 13},
		{9, 1}, {9, 5}, {9, 9}, {9, 13},
		{13, 5}, {13, 9},
	},
	BonusDoubleLetter: {
		{0, 3}, {0, 11},
		{2, 6}, {2, 8},
		{3, 0}, {3, 7}, {3, 14},
		{6, 2}, {6, 6}, {6, 8}, {6, 12},
		{7, 3}, {7, 11},
		{8, 2}, {8, 6}, {8, 8}, {8, 12},
		{11, 0}, {11, 7}, {11, 14},
		{12, 6}, {12, 8},
		{14, 3}, {14, 11},
	},
}

// StandardBonusBoard is the shared, read-only standard layout
var StandardBonusBoard = newStandardBonusBoard()

func newStandardBonusBoard() *BonusBoard {
	b := &BonusBoard{}
	for bonus, positions := range bonusLayout {
		for _, pos := range positions {
			b.cells[pos.Row][pos.Col] = bonus
		}
	}
	return b
}

// At returns the bonus of the square, or BonusNone if off the board
func (b *BonusBoard) At(pos Position) Bonus {
	if !pos.InBounds() {
		return BonusNone
	}
	return b.cells[pos.Row][pos.Col]
}
