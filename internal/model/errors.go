package model

import "errors"

// Common errors used across the application
var (
	// Game errors
	ErrGameNotFound       = errors.New("game not found")
	ErrInvalidPlayerCount = errors.New("player count must be between 2 and 4")
	ErrGameOver           = errors.New("game is over")
	ErrNotReady           = errors.New("move has not been checked")

	// Placement errors
	ErrIllegalSquare    = errors.New("square is not currently legal")
	ErrNoSuchTileInRack = errors.New("tile is not on the rack")
	ErrInvalidLetter    = errors.New("invalid letter")
	ErrInvalidPosition  = errors.New("invalid board position")
	ErrPositionOccupied = errors.New("position is already occupied")
	ErrNotPending       = errors.New("position was not placed this turn")

	// Move errors
	ErrInvalidMove = errors.New("invalid move")

	// Tile errors
	ErrEmptyBag = errors.New("bag is empty")
	ErrRackFull = errors.New("rack is full")

	// Dictionary errors
	ErrDictionaryNotLoaded   = errors.New("dictionary not loaded")
	ErrDictionaryLoadFailure = errors.New("dictionary could not be loaded")
)
