package model

import "slices"

// Rack is a player's hand of at most RackSize tiles
type Rack struct {
	Tiles []Letter
}

// Size returns the number of tiles on the rack
func (r *Rack) Size() int {
	return len(r.Tiles)
}

// IsFull returns true when the rack holds RackSize tiles
func (r *Rack) IsFull() bool {
	return len(r.Tiles) >= RackSize
}

// Contains reports whether at least one copy of the letter is on the rack
func (r *Rack) Contains(l Letter) bool {
	return r.IndexOf(l) >= 0
}

// Add appends a tile to the rack
func (r *Rack) Add(l Letter) error {
	if r.IsFull() {
		return ErrRackFull
	}
	r.Tiles = append(r.Tiles, l)
	return nil
}

// Insert puts a tile at index i, or at the end when i is out of range
func (r *Rack) Insert(i int, l Letter) error {
	if r.IsFull() {
		return ErrRackFull
	}
	if i < 0 || i > len(r.Tiles) {
		i = len(r.Tiles)
	}
	r.Tiles = slices.Insert(r.Tiles, i, l)
	return nil
}

// Remove takes the first copy of the letter off the rack
func (r *Rack) Remove(l Letter) error {
	i := r.IndexOf(l)
	if i < 0 {
		return ErrNoSuchTileInRack
	}
	r.Tiles = append(r.Tiles[:i], r.Tiles[i+1:]...)
	return nil
}

// Letters returns a copy of the rack contents in order
func (r *Rack) Letters() []Letter {
	out := make([]Letter, len(r.Tiles))
	copy(out, r.Tiles)
	return out
}

// IndexOf returns the index of the first copy of the letter, or -1
func (r *Rack) IndexOf(l Letter) int {
	for i, t := range r.Tiles {
		if t == l {
			return i
		}
	}
	return -1
}
