package game

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/mcoot/scrabble-go/internal/dependencies/clock"
	"github.com/mcoot/scrabble-go/internal/dependencies/random"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/board"
	"github.com/mcoot/scrabble-go/internal/services/dictionary"
	"github.com/mcoot/scrabble-go/internal/services/placement"
	"github.com/mcoot/scrabble-go/internal/services/rack"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
	"github.com/mcoot/scrabble-go/internal/services/words"
	"github.com/mcoot/scrabble-go/internal/storage"
)

// Controller manages game state machine and turn flow
type Controller struct {
	storage           storage.GameStore
	boardService      *board.Service
	rackService       *rack.Service
	placementService  *placement.Service
	wordService       *words.Service
	dictionaryService dictionary.ServiceInterface
	scoringService    *scoring.Service
	clock             clock.Clock
	random            random.Random
	logger            *slog.Logger
}

// Services groups the engine services the controller orchestrates
type Services struct {
	Board      *board.Service
	Rack       *rack.Service
	Placement  *placement.Service
	Words      *words.Service
	Dictionary dictionary.ServiceInterface
	Scoring    *scoring.Service
}

// NewController creates a new GameController
func NewController(
	storage storage.GameStore,
	services Services,
	clock clock.Clock,
	random random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:           storage,
		boardService:      services.Board,
		rackService:       services.Rack,
		placementService:  services.Placement,
		wordService:       services.Words,
		dictionaryService: services.Dictionary,
		scoringService:    services.Scoring,
		clock:             clock,
		random:            random,
		logger:            logger,
	}
}

// CreateGame initializes a new game for the given number of players
func (c *Controller) CreateGame(ctx context.Context, playerCount int) (*model.Game, error) {
	if playerCount < model.MinPlayers || playerCount > model.MaxPlayers {
		return nil, model.ErrInvalidPlayerCount
	}

	now := c.clock.Now()
	gameID := model.GameID(c.random.String(12, "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"))

	bag := c.rackService.NewBag()
	game := &model.Game{
		ID:           gameID,
		PlayerCount:  playerCount,
		Phase:        model.PhaseAwaitingPlacement,
		Board:        model.NewBoard(),
		Bag:          bag,
		Racks:        c.rackService.Deal(bag, playerCount),
		TotalScores:  make([]int, playerCount),
		CurrentRound: 1,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	game.Legal = c.placementService.Recompute(game.Board, false)

	if err := c.storage.SaveGame(ctx, game); err != nil {
		c.logger.Error("failed to save game",
			slog.String("game_id", string(game.ID)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("game created",
		slog.String("game_id", string(gameID)),
		slog.Int("player_count", playerCount),
		slog.Int("bag_remaining", bag.Remaining()),
	)

	return game, nil
}

// GetGame retrieves a game by ID
func (c *Controller) GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	return c.storage.GetGame(ctx, gameID)
}

// DeleteGame discards a game, e.g. when a new one replaces it
func (c *Controller) DeleteGame(ctx context.Context, gameID model.GameID) error {
	return c.storage.DeleteGame(ctx, gameID)
}

// PlaceTile moves a tile from the current player's rack onto a legal square
func (c *Controller) PlaceTile(ctx context.Context, gameID model.GameID, letter rune, pos model.Position) error {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return err
	}

	normalized, err := board.ValidateLetter(letter)
	if err != nil {
		return err
	}
	if err := c.placementService.Validate(game.Legal, pos); err != nil {
		return err
	}
	playerRack := game.CurrentRack()
	if !playerRack.Contains(normalized) {
		return model.ErrNoSuchTileInRack
	}

	if err := c.boardService.PlaceLetter(game.Board, rune(normalized), pos); err != nil {
		return err
	}
	slot, err := c.rackService.Take(playerRack, normalized)
	if err != nil {
		return err
	}
	game.RackSlots = append(game.RackSlots, slot)
	c.placementService.Extend(game.Legal, game.Board, pos)

	// A new tile invalidates any earlier check
	game.Phase = model.PhaseAwaitingPlacement
	game.UpdatedAt = c.clock.Now()

	c.logger.Debug("tile placed",
		slog.String("game_id", string(game.ID)),
		slog.Int("player", game.CurrentPlayerIdx),
		slog.String("letter", normalized.String()),
		slog.Int("row", pos.Row),
		slog.Int("col", pos.Col),
	)

	return c.storage.SaveGame(ctx, game)
}

// ResetMove returns every tile placed this turn to the rack
func (c *Controller) ResetMove(ctx context.Context, gameID model.GameID) error {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return err
	}

	if err := c.revertPending(game); err != nil {
		return err
	}

	game.UpdatedAt = c.clock.Now()
	return c.storage.SaveGame(ctx, game)
}

// CheckMove validates the pending move. On failure the move is reverted
// to the rack and an error wrapping ErrInvalidMove is returned.
func (c *Controller) CheckMove(ctx context.Context, gameID model.GameID) ([]model.Word, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}

	if !c.dictionaryService.IsLoaded() {
		return nil, model.ErrDictionaryNotLoaded
	}

	found, reason := c.validatePending(game)
	if reason != "" {
		c.logger.Info("move rejected",
			slog.String("game_id", string(game.ID)),
			slog.Int("player", game.CurrentPlayerIdx),
			slog.String("reason", reason),
		)
		if err := c.revertPending(game); err != nil {
			return nil, err
		}
		game.UpdatedAt = c.clock.Now()
		if err := c.storage.SaveGame(ctx, game); err != nil {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %s", model.ErrInvalidMove, reason)
	}

	game.Phase = model.PhaseValidatedReady
	game.UpdatedAt = c.clock.Now()
	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}
	return found, nil
}

// validatePending returns the words formed by the pending move, or a
// non-empty reason when the move is invalid
func (c *Controller) validatePending(game *model.Game) ([]model.Word, string) {
	pending := game.Board.Pending()
	if len(pending) == 0 {
		return nil, "no tiles placed"
	}

	if !game.FirstMoveCommitted && !game.Board.IsPending(model.Center) {
		return nil, "first move must cover the centre square"
	}

	found := c.wordService.Extract(game.Board, pending)
	if len(found) == 0 {
		return nil, "no word of two or more letters formed"
	}

	// Blanks in each word resolve independently of the other words
	for _, w := range found {
		if !c.dictionaryService.IsValidWord(w.Text) {
			return nil, fmt.Sprintf("%q is not a valid word", w.Text)
		}
	}

	return found, ""
}

// SubmitMove commits a checked move, scores it and passes the turn
func (c *Controller) SubmitMove(ctx context.Context, gameID model.GameID) (*model.TurnOutcome, error) {
	game, err := c.activeGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.Phase != model.PhaseValidatedReady {
		return nil, model.ErrNotReady
	}

	player := game.CurrentPlayerIdx
	placements := game.PendingMove()
	newPositions := game.Board.Pending()

	found := c.wordService.Extract(game.Board, newPositions)
	score := c.scoringService.ScoreMove(game.Board, found, newPositions)
	game.TotalScores[player] += score.Total

	// The game ends on the first submit that finds the bag already empty
	bagWasEmpty := game.Bag.IsEmpty()

	c.boardService.Commit(game.Board)
	game.RackSlots = nil
	drawn, _ := c.rackService.Refill(game.Racks[player], game.Bag)
	game.FirstMoveCommitted = true

	now := c.clock.Now()
	game.History = append(game.History, model.MoveRecord{
		Player:     player,
		Round:      game.CurrentRound,
		Placements: placements,
		Words:      score.Words,
		Score:      score.Total,
		At:         now,
	})

	c.logger.Info("move submitted",
		slog.String("game_id", string(game.ID)),
		slog.Int("player", player),
		slog.Int("round", game.CurrentRound),
		slog.Int("score", score.Total),
		slog.Int("tiles_drawn", drawn),
		slog.Int("bag_remaining", game.Bag.Remaining()),
	)

	c.advanceTurn(game, bagWasEmpty)
	game.UpdatedAt = now

	if err := c.storage.SaveGame(ctx, game); err != nil {
		return nil, err
	}

	return &model.TurnOutcome{
		Player:       player,
		Words:        score.Words,
		ScoreDelta:   score.Total,
		NextPlayer:   game.CurrentPlayerIdx,
		NextRound:    game.CurrentRound,
		BagRemaining: game.Bag.Remaining(),
		GameOver:     game.IsOver(),
		Winners:      game.Winners,
	}, nil
}

// advanceTurn moves to the next player or completes the game
func (c *Controller) advanceTurn(game *model.Game, bagWasEmpty bool) {
	game.CurrentPlayerIdx = (game.CurrentPlayerIdx + 1) % game.PlayerCount
	if game.CurrentPlayerIdx == 0 {
		game.CurrentRound++
	}
	game.Legal = c.placementService.Recompute(game.Board, game.FirstMoveCommitted)

	if bagWasEmpty {
		game.Phase = model.PhaseGameOver
		game.Winners = c.scoringService.DetermineWinners(game.TotalScores)
		c.logger.Info("game completed",
			slog.String("game_id", string(game.ID)),
			slog.Int("rounds", game.CurrentRound),
			slog.Any("winners", game.Winners),
		)
		return
	}

	game.Phase = model.PhaseAwaitingPlacement
}

// revertPending puts the pending tiles back into their rack slots and
// recomputes legal squares from the committed board
func (c *Controller) revertPending(game *model.Game) error {
	reverted, err := c.boardService.RevertPending(game.Board)
	if err != nil {
		return err
	}
	// Undo in reverse so each slot index is valid when it is restored
	for i := len(reverted) - 1; i >= 0; i-- {
		slot := -1
		if i < len(game.RackSlots) {
			slot = game.RackSlots[i]
		}
		if err := c.rackService.Restore(game.CurrentRack(), slot, reverted[i].Letter); err != nil {
			return err
		}
	}
	game.RackSlots = nil
	game.Legal = c.placementService.Recompute(game.Board, game.FirstMoveCommitted)
	game.Phase = model.PhaseAwaitingPlacement
	return nil
}

// activeGame loads a game that still accepts commands
func (c *Controller) activeGame(ctx context.Context, gameID model.GameID) (*model.Game, error) {
	game, err := c.storage.GetGame(ctx, gameID)
	if err != nil {
		return nil, err
	}
	if game.IsOver() {
		return nil, model.ErrGameOver
	}
	return game, nil
}

// Interface for dependency injection
type ControllerInterface interface {
	CreateGame(ctx context.Context, playerCount int) (*model.Game, error)
	GetGame(ctx context.Context, gameID model.GameID) (*model.Game, error)
	DeleteGame(ctx context.Context, gameID model.GameID) error
	PlaceTile(ctx context.Context, gameID model.GameID, letter rune, pos model.Position) error
	ResetMove(ctx context.Context, gameID model.GameID) error
	CheckMove(ctx context.Context, gameID model.GameID) ([]model.Word, error)
	SubmitMove(ctx context.Context, gameID model.GameID) (*model.TurnOutcome, error)
}

var _ ControllerInterface = (*Controller)(nil)
