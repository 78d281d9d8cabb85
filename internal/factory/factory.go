package factory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/mcoot/scrabble-go/internal/dependencies/clock"
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/board"
	"github.com/mcoot/scrabble-go/internal/services/dictionary"
	"github.com/mcoot/scrabble-go/internal/services/game"
	"github.com/mcoot/scrabble-go/internal/services/placement"
	"github.com/mcoot/scrabble-go/internal/services/rack"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
	"github.com/mcoot/scrabble-go/internal/services/words"
	"github.com/mcoot/scrabble-go/internal/storage"
	"github.com/mcoot/scrabble-go/internal/storage/memory"
	redisstorage "github.com/mcoot/scrabble-go/internal/storage/redis"
)

// Storage type constants
const (
	StorageTypeMemory = "memory"
	StorageTypeRedis  = "redis"
)

// App contains all wired application components
type App struct {
	// Storage
	GameStore storage.GameStore
	WordStore storage.WordStore

	// External dependencies
	Clock  clock.Clock
	Random random.Random
	Logger *slog.Logger

	// Services
	DictionaryService *dictionary.Service
	BoardService      *board.Service
	RackService       *rack.Service
	PlacementService  *placement.Service
	WordService       *words.Service
	ScoringService    *scoring.Service
	GameController    *game.Controller
}

// Config holds configuration for the application factory
type Config struct {
	// DictionaryPath is the path to the word list file (optional)
	// If empty, the word list is read from the word store
	DictionaryPath string
	// Logger is the application logger (optional)
	// If nil, a no-op logger is used
	Logger *slog.Logger
	// StorageType selects the word store backend ("memory" or "redis")
	// If empty, defaults to "memory". Games are always held in memory.
	StorageType string
	// RedisConfig holds Redis connection settings (required if StorageType is "redis")
	RedisConfig *redisstorage.Config
}

// New creates a new application with all dependencies wired and the
// dictionary loaded. The engine cannot run without a dictionary, so any
// load failure is returned wrapping model.ErrDictionaryLoadFailure.
func New(ctx context.Context, cfg Config) (*App, error) {
	app, err := NewWithoutDictionary(cfg)
	if err != nil {
		return nil, err
	}

	if err := app.LoadDictionary(ctx, cfg.DictionaryPath); err != nil {
		return nil, err
	}
	return app, nil
}

// NewWithoutDictionary wires the application but leaves the dictionary empty
func NewWithoutDictionary(cfg Config) (*App, error) {
	// Use no-op logger if not provided
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewJSONHandler(io.Discard, nil))
	}

	games := memory.New()

	// Create word store based on type
	var wordStore storage.WordStore
	storageType := cfg.StorageType
	if storageType == "" {
		storageType = StorageTypeMemory
	}

	switch storageType {
	case StorageTypeMemory:
		wordStore = games
	case StorageTypeRedis:
		if cfg.RedisConfig == nil {
			return nil, errors.New("RedisConfig required when StorageType is redis")
		}
		redisStore, err := redisstorage.New(*cfg.RedisConfig)
		if err != nil {
			return nil, err
		}
		wordStore = redisStore
	default:
		return nil, errors.New("invalid StorageType: must be 'memory' or 'redis'")
	}

	return newWithDependencies(games, wordStore, clock.New(), random.New(), logger), nil
}

// LoadDictionary loads the word list from path, or from the word store if
// path is empty
func (a *App) LoadDictionary(ctx context.Context, path string) error {
	var err error
	if path != "" {
		err = a.DictionaryService.LoadFromFile(ctx, path)
	} else {
		err = a.DictionaryService.LoadFromStorage(ctx)
	}
	if err != nil {
		if errors.Is(err, model.ErrDictionaryLoadFailure) {
			return err
		}
		return fmt.Errorf("%w: %w", model.ErrDictionaryLoadFailure, err)
	}
	return nil
}

// Close releases connections held by the word store
func (a *App) Close() error {
	if closer, ok := a.WordStore.(io.Closer); ok {
		return closer.Close()
	}
	return nil
}

// newWithDependencies creates an App with the given dependencies (useful for testing)
func newWithDependencies(games storage.GameStore, wordStore storage.WordStore, clk clock.Clock, rnd random.Random, logger *slog.Logger) *App {
	// Create services
	dictService := dictionary.New(wordStore, logger)
	boardService := board.New(logger)
	rackService := rack.New(rnd, logger)
	placementService := placement.New()
	wordService := words.New()
	scoringService := scoring.New(model.StandardBonusBoard)
	gameController := game.NewController(games, game.Services{
		Board:      boardService,
		Rack:       rackService,
		Placement:  placementService,
		Words:      wordService,
		Dictionary: dictService,
		Scoring:    scoringService,
	}, clk, rnd, logger)

	return &App{
		GameStore:         games,
		WordStore:         wordStore,
		Clock:             clk,
		Random:            rnd,
		Logger:            logger,
		DictionaryService: dictService,
		BoardService:      boardService,
		RackService:       rackService,
		PlacementService:  placementService,
		WordService:       wordService,
		ScoringService:    scoringService,
		GameController:    gameController,
	}
}
