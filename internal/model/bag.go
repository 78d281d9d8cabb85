package model

// Bag is the ordered supply of undrawn tiles. It only ever shrinks.
type Bag struct {
	tiles []Letter
}

// NewBag creates a bag holding the given tiles in draw order
func NewBag(tiles []Letter) *Bag {
	b := &Bag{tiles: make([]Letter, len(tiles))}
	copy(b.tiles, tiles)
	return b
}

// Draw removes and returns the first tile in the bag
func (b *Bag) Draw() (Letter, error) {
	if len(b.tiles) == 0 {
		return 0, ErrEmptyBag
	}
	l := b.tiles[0]
	b.tiles = b.tiles[1:]
	return l, nil
}

// Remaining returns the number of undrawn tiles
func (b *Bag) Remaining() int {
	return len(b.tiles)
}

// IsEmpty returns true once every tile has been drawn
func (b *Bag) IsEmpty() bool {
	return len(b.tiles) == 0
}
