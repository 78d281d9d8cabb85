package storage

import (
	"context"

	"github.com/mcoot/scrabble-go/internal/model"
)

// GameStore holds live games for the lifetime of the process
type GameStore interface {
	SaveGame(ctx context.Context, game *model.Game) error
	GetGame(ctx context.Context, id model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, id model.GameID) error
}

// WordStore holds the dictionary word list
type WordStore interface {
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}

// Storage defines the interface for data persistence
type Storage interface {
	GameStore
	WordStore
}
