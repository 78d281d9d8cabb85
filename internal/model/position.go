package model

import (
	"fmt"
	"sort"
)

// BoardSize is the dimension of the square board
const BoardSize = 15

// Position identifies a cell on the board
type Position struct {
	Row int // 0-indexed from top
	Col int // 0-indexed from left
}

// Center is the square the first move must cover
var Center = Position{Row: 7, Col: 7}

// InBounds returns true if the position lies on the board
func (p Position) InBounds() bool {
	return p.Row >= 0 && p.Row < BoardSize && p.Col >= 0 && p.Col < BoardSize
}

// Neighbors returns the in-bounds orthogonal neighbours (up, down, left, right)
func (p Position) Neighbors() []Position {
	candidates := []Position{
		{Row: p.Row - 1, Col: p.Col},
		{Row: p.Row + 1, Col: p.Col},
		{Row: p.Row, Col: p.Col - 1},
		{Row: p.Row, Col: p.Col + 1},
	}
	result := candidates[:0]
	for _, c := range candidates {
		if c.InBounds() {
			result = append(result, c)
		}
	}
	return result
}

func (p Position) String() string {
	return fmt.Sprintf("(%d,%d)", p.Row, p.Col)
}

// SquareSet is an unordered set of board positions
type SquareSet map[Position]struct{}

// NewSquareSet creates a set holding the given positions
func NewSquareSet(positions ...Position) SquareSet {
	s := make(SquareSet, len(positions))
	for _, p := range positions {
		s.Add(p)
	}
	return s
}

// Add inserts a position
func (s SquareSet) Add(p Position) {
	s[p] = struct{}{}
}

// Remove deletes a position
func (s SquareSet) Remove(p Position) {
	delete(s, p)
}

// Contains reports whether the position is in the set
func (s SquareSet) Contains(p Position) bool {
	_, ok := s[p]
	return ok
}

// Sorted returns the positions in row-major order
func (s SquareSet) Sorted() []Position {
	result := make([]Position, 0, len(s))
	for p := range s {
		result = append(result, p)
	}
	sort.Slice(result, func(i, j int) bool {
		if result[i].Row != result[j].Row {
			return result[i].Row < result[j].Row
		}
		return result[i].Col < result[j].Col
	})
	return result
}

// Clone returns an independent copy of the set
func (s SquareSet) Clone() SquareSet {
	c := make(SquareSet, len(s))
	for p := range s {
		c[p] = struct{}{}
	}
	return c
}
