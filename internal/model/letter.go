package model

import "unicode"

// Letter is a single tile symbol: 'A'-'Z' or the blank marker
type Letter rune

// Blank is the marker for a blank tile
const Blank Letter = '*'

// Tile set constants
const (
	RackSize   = 7
	TotalTiles = 100
)

// letterValues holds the point value of every tile symbol
var letterValues = map[Letter]int{
	'A': 1, 'B': 3, 'C': 3, 'D': 2, 'E': 1,
	'F': 4, 'G': 2, 'H': 4, 'I': 1, 'J': 8,
	'K': 5, 'L': 1, 'M': 3, 'N': 1, 'O': 1,
	'P': 3, 'Q': 10, 'R': 1, 'S': 1, 'T': 1,
	'U': 1, 'V': 4, 'W': 4, 'X': 8, 'Y': 4,
	'Z': 10, Blank: 0,
}

// letterCounts is the number of tiles of each symbol in a fresh bag
var letterCounts = map[Letter]int{
	'A': 9, 'B': 2, 'C': 2, 'D': 4, 'E': 12,
	'F': 2, 'G': 3, 'H': 2, 'I': 9, 'J': 1,
	'K': 1, 'L': 4, 'M': 2, 'N': 6, 'O': 8,
	'P': 2, 'Q': 1, 'R': 6, 'S': 4, 'T': 6,
	'U': 4, 'V': 2, 'W': 2, 'X': 1, 'Y': 2,
	'Z': 1, Blank: 2,
}

// NormalizeLetter upper-cases r and reports whether it is a valid tile symbol
func NormalizeLetter(r rune) (Letter, bool) {
	l := Letter(unicode.ToUpper(r))
	if l == Blank || (l >= 'A' && l <= 'Z') {
		return l, true
	}
	return 0, false
}

// Value returns the point value of the letter. Blanks are worth 0.
func (l Letter) Value() int {
	return letterValues[l]
}

// IsBlank reports whether the letter is the blank marker
func (l Letter) IsBlank() bool {
	return l == Blank
}

func (l Letter) String() string {
	return string(rune(l))
}

// StandardDistribution returns the 100 tiles of a fresh bag in symbol order
func StandardDistribution() []Letter {
	tiles := make([]Letter, 0, TotalTiles)
	for l := Letter('A'); l <= 'Z'; l++ {
		for i := 0; i < letterCounts[l]; i++ {
			tiles = append(tiles, l)
		}
	}
	for i := 0; i < letterCounts[Blank]; i++ {
		tiles = append(tiles, Blank)
	}
	return tiles
}
