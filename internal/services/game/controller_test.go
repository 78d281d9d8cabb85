package game

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/scrabble-go/internal/dependencies/mocks"
	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/board"
	"github.com/mcoot/scrabble-go/internal/services/dictionary"
	"github.com/mcoot/scrabble-go/internal/services/placement"
	"github.com/mcoot/scrabble-go/internal/services/rack"
	"github.com/mcoot/scrabble-go/internal/services/scoring"
	"github.com/mcoot/scrabble-go/internal/services/words"
	"github.com/mcoot/scrabble-go/internal/storage/memory"
	"github.com/mcoot/scrabble-go/internal/testutil"
)

type ControllerSuite struct {
	suite.Suite
	logs        *testutil.LogCapture
	storage     *memory.Storage
	dictService *dictionary.Service
	clock       *mocks.MockClock
	random      *mocks.MockRandom
	controller  *Controller
	ctx         context.Context
}

func TestControllerSuite(t *testing.T) {
	suite.Run(t, new(ControllerSuite))
}

func (s *ControllerSuite) SetupTest() {
	logger, logs := testutil.CaptureLogger()
	s.logs = logs
	s.storage = memory.New()
	s.dictService = dictionary.New(s.storage, logger)
	s.clock = mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	s.random = mocks.NewMockRandom()
	s.controller = NewController(s.storage, Services{
		Board:      board.New(logger),
		Rack:       rack.New(s.random, logger),
		Placement:  placement.New(),
		Words:      words.New(),
		Dictionary: s.dictService,
		Scoring:    scoring.New(model.StandardBonusBoard),
	}, s.clock, s.random, logger)
	s.ctx = context.Background()

	s.Require().NoError(s.dictService.LoadWords([]string{"cat", "at", "ta", "to", "act", "oat", "dog", "go"}))
}

// createGame creates a game with a fixed ID
func (s *ControllerSuite) createGame(players int) *model.Game {
	s.random.QueueString("GAME12345678")
	game, err := s.controller.CreateGame(s.ctx, players)
	s.Require().NoError(err)
	return game
}

func (s *ControllerSuite) rigGame(game *model.Game, bagSize int, racks ...string) {
	s.Require().NoError(testutil.RigGame(game, bagSize, racks...))
}

func (s *ControllerSuite) place(gameID model.GameID, letter rune, row, col int) {
	s.Require().NoError(s.controller.PlaceTile(s.ctx, gameID, letter, model.Position{Row: row, Col: col}))
}

// playCat places CAT across the centre and submits it
func (s *ControllerSuite) playCat(gameID model.GameID) *model.TurnOutcome {
	s.place(gameID, 'A', 7, 7)
	s.place(gameID, 'C', 7, 6)
	s.place(gameID, 'T', 7, 8)
	_, err := s.controller.CheckMove(s.ctx, gameID)
	s.Require().NoError(err)
	outcome, err := s.controller.SubmitMove(s.ctx, gameID)
	s.Require().NoError(err)
	return outcome
}

// CreateGame tests

func (s *ControllerSuite) TestCreateGameSucceeds() {
	game := s.createGame(2)

	s.Equal(model.GameID("GAME12345678"), game.ID)
	s.Equal(2, game.PlayerCount)
	s.Equal(model.PhaseAwaitingPlacement, game.Phase)
	s.Equal(0, game.CurrentPlayer())
	s.Equal(1, game.Round())
	s.Equal([]int{0, 0}, game.Scores())
	s.Equal([]model.Position{model.Center}, game.LegalSquares())
	s.Equal(1, s.random.ShuffleCalls)
}

func (s *ControllerSuite) TestCreateGameDealsFullRacks() {
	game := s.createGame(4)

	s.Len(game.Racks, 4)
	for p := 0; p < 4; p++ {
		s.Len(game.RackOf(p), model.RackSize)
	}
	s.Equal(model.TotalTiles-4*model.RackSize, game.BagRemaining())
	s.Equal(model.TotalTiles, game.TileCount())
}

func (s *ControllerSuite) TestCreateGameRejectsPlayerCount() {
	for _, n := range []int{0, 1, 5} {
		_, err := s.controller.CreateGame(s.ctx, n)
		s.ErrorIs(err, model.ErrInvalidPlayerCount, "players=%d", n)
	}
}

func (s *ControllerSuite) TestCreateGameIsPersisted() {
	game := s.createGame(2)

	retrieved, err := s.controller.GetGame(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(game.ID, retrieved.ID)
}

func (s *ControllerSuite) TestDeleteGame() {
	game := s.createGame(2)

	s.Require().NoError(s.controller.DeleteGame(s.ctx, game.ID))

	_, err := s.controller.GetGame(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameNotFound)
}

func (s *ControllerSuite) TestUnknownGame() {
	err := s.controller.PlaceTile(s.ctx, "MISSING", 'A', model.Center)
	s.ErrorIs(err, model.ErrGameNotFound)
}

// PlaceTile tests

func (s *ControllerSuite) TestPlaceTileMovesTileFromRack() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")

	s.place(game.ID, 'a', 7, 7)

	s.Equal(model.Letter('A'), game.Board.Get(model.Center))
	s.Equal([]model.Letter{'C', 'T', 'D', 'O', 'G', 'S'}, game.RackOf(0))
	s.Equal([]model.Placement{{Position: model.Center, Letter: 'A'}}, game.PendingMove())
}

func (s *ControllerSuite) TestPlaceTileExtendsLegalSquares() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")

	s.place(game.ID, 'A', 7, 7)

	s.Equal([]model.Position{{Row: 6, Col: 7}, {Row: 7, Col: 6}, {Row: 7, Col: 8}, {Row: 8, Col: 7}}, game.LegalSquares())
}

func (s *ControllerSuite) TestPlaceTileOffCentreOnFirstMoveIsIllegal() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")

	err := s.controller.PlaceTile(s.ctx, game.ID, 'C', model.Position{Row: 0, Col: 0})
	s.ErrorIs(err, model.ErrIllegalSquare)
	s.Equal(0, game.Board.TileCount())
	s.Len(game.RackOf(0), model.RackSize)
}

func (s *ControllerSuite) TestPlaceTileOutOfBounds() {
	game := s.createGame(2)

	err := s.controller.PlaceTile(s.ctx, game.ID, 'A', model.Position{Row: 15, Col: 0})
	s.ErrorIs(err, model.ErrIllegalSquare)
	s.ErrorIs(err, model.ErrInvalidPosition)
}

func (s *ControllerSuite) TestPlaceTileNotInRack() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")

	err := s.controller.PlaceTile(s.ctx, game.ID, 'Z', model.Center)
	s.ErrorIs(err, model.ErrNoSuchTileInRack)
}

func (s *ControllerSuite) TestPlaceTileInvalidLetter() {
	game := s.createGame(2)

	err := s.controller.PlaceTile(s.ctx, game.ID, '1', model.Center)
	s.ErrorIs(err, model.ErrInvalidLetter)
}

func (s *ControllerSuite) TestPlaceTileOnOccupiedSquareIsIllegal() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	s.place(game.ID, 'A', 7, 7)

	err := s.controller.PlaceTile(s.ctx, game.ID, 'C', model.Center)
	s.ErrorIs(err, model.ErrIllegalSquare)
}

func (s *ControllerSuite) TestPlaceTileAfterCheckRequiresNewCheck() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	s.place(game.ID, 'A', 7, 7)
	s.place(game.ID, 'T', 7, 8)
	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(model.PhaseValidatedReady, game.Phase)

	s.place(game.ID, 'C', 7, 6)

	s.Equal(model.PhaseAwaitingPlacement, game.Phase)
	_, err = s.controller.SubmitMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNotReady)
}

// ResetMove tests

func (s *ControllerSuite) TestResetMoveRestoresRackAndBoard() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	before := game.RackOf(0)

	s.place(game.ID, 'A', 7, 7)
	s.place(game.ID, 'C', 7, 6)
	s.Require().NoError(s.controller.ResetMove(s.ctx, game.ID))

	s.Equal(before, game.RackOf(0))
	s.Equal(0, game.Board.TileCount())
	s.Empty(game.PendingMove())
	s.Equal([]model.Position{model.Center}, game.LegalSquares())
}

func (s *ControllerSuite) TestResetMoveKeepsRackOrder() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")

	s.place(game.ID, 'A', 7, 7)
	s.place(game.ID, 'S', 7, 8)
	s.place(game.ID, 'C', 7, 6)
	s.Equal([]model.Letter("TDOG"), game.RackOf(0))

	s.Require().NoError(s.controller.ResetMove(s.ctx, game.ID))

	s.Equal([]model.Letter("CATDOGS"), game.RackOf(0))
	s.Empty(game.RackSlots)
}

func (s *ControllerSuite) TestResetMoveWithNothingPlaced() {
	game := s.createGame(2)

	s.Require().NoError(s.controller.ResetMove(s.ctx, game.ID))
	s.Len(game.RackOf(0), model.RackSize)
}

// CheckMove tests

func (s *ControllerSuite) TestCheckMoveReturnsWords() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	s.place(game.ID, 'A', 7, 7)
	s.place(game.ID, 'C', 7, 6)
	s.place(game.ID, 'T', 7, 8)

	found, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Require().Len(found, 1)
	s.Equal("CAT", found[0].Text)
	s.True(found[0].Horizontal)
	s.Equal(model.Position{Row: 7, Col: 6}, found[0].Start())
	s.Equal(model.PhaseValidatedReady, game.Phase)
}

func (s *ControllerSuite) TestCheckMoveWithNoTiles() {
	game := s.createGame(2)

	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrInvalidMove)
}

func (s *ControllerSuite) TestCheckMoveSingleTileFormsNoWord() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	s.place(game.ID, 'A', 7, 7)

	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrInvalidMove)
	s.Equal(0, game.Board.TileCount())
}

func (s *ControllerSuite) TestCheckMoveInvalidWordReverts() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	before := game.RackOf(0)
	s.place(game.ID, 'A', 7, 7)
	s.place(game.ID, 'G', 7, 8)

	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrInvalidMove)
	s.ErrorContains(err, "AG")

	s.Equal(0, game.Board.TileCount())
	s.Equal(before, game.RackOf(0))
	s.Equal(model.PhaseAwaitingPlacement, game.Phase)
	s.Equal([]model.Position{model.Center}, game.LegalSquares())
}

func (s *ControllerSuite) TestCheckMoveNeedsDictionary() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	s.controller.dictionaryService = dictionary.New(s.storage, testutil.NopLogger())
	s.place(game.ID, 'A', 7, 7)
	s.place(game.ID, 'T', 7, 8)

	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)

	s.Equal(2, game.Board.TileCount())
	s.Equal(model.PhaseAwaitingPlacement, game.Phase)
}

func (s *ControllerSuite) TestCheckMoveLogsRejection() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	s.place(game.ID, 'A', 7, 7)
	s.place(game.ID, 'G', 7, 8)

	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().Error(err)

	records := s.logs.Records("move rejected")
	s.Require().Len(records, 1)
	s.Equal("GAME12345678", records[0]["game_id"])
	s.Contains(records[0]["reason"], "AG")
}

func (s *ControllerSuite) TestCheckMoveFirstMoveMustCoverCentre() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")

	// Bypass legality to put a word away from the centre
	s.Require().NoError(game.Racks[0].Remove('C'))
	s.Require().NoError(game.Racks[0].Remove('A'))
	s.Require().NoError(game.Board.Place(model.Position{Row: 0, Col: 0}, 'C'))
	s.Require().NoError(game.Board.Place(model.Position{Row: 0, Col: 1}, 'A'))

	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrInvalidMove)
	s.ErrorContains(err, "centre")

	s.Equal(0, game.Board.TileCount())
	s.Len(game.RackOf(0), model.RackSize)
}

func (s *ControllerSuite) TestCheckMoveAcceptsBlank() {
	game := s.createGame(2)
	s.rigGame(game, -1, "C*TDOGS", "EEIIOUR")
	s.place(game.ID, '*', 7, 7)
	s.place(game.ID, 'C', 7, 6)
	s.place(game.ID, 'T', 7, 8)

	found, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal("C*T", found[0].Text)

	outcome, err := s.controller.SubmitMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(4, outcome.ScoreDelta)
}

// SubmitMove tests

func (s *ControllerSuite) TestSubmitMoveRequiresCheck() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	s.place(game.ID, 'A', 7, 7)
	s.place(game.ID, 'T', 7, 8)

	_, err := s.controller.SubmitMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrNotReady)
}

func (s *ControllerSuite) TestSubmitMoveScoresFirstMove() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")

	outcome := s.playCat(game.ID)

	s.Equal(0, outcome.Player)
	s.Equal(5, outcome.ScoreDelta)
	s.Require().Len(outcome.Words, 1)
	s.Equal("CAT", outcome.Words[0].Word.Text)
	s.Equal(1, outcome.NextPlayer)
	s.Equal(1, outcome.NextRound)
	s.False(outcome.GameOver)
	s.Equal([]int{5, 0}, game.Scores())
}

func (s *ControllerSuite) TestSubmitMoveRefillsRack() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	bagBefore := game.BagRemaining()

	outcome := s.playCat(game.ID)

	s.Len(game.RackOf(0), model.RackSize)
	s.Equal(bagBefore-3, outcome.BagRemaining)
	s.Equal(model.TotalTiles, game.TileCount())
}

func (s *ControllerSuite) TestSubmitMoveCommitsBoard() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")

	s.playCat(game.ID)

	s.Empty(game.PendingMove())
	s.True(game.FirstMoveCommitted)
	s.Equal(3, game.Board.TileCount())
	s.Require().Len(game.History, 1)
	s.Equal(5, game.History[0].Score)
	s.Len(game.History[0].Placements, 3)
}

func (s *ControllerSuite) TestSubmitMoveRecomputesLegalSquares() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")

	s.playCat(game.ID)

	expected := []model.Position{
		{Row: 6, Col: 6}, {Row: 6, Col: 7}, {Row: 6, Col: 8},
		{Row: 7, Col: 5}, {Row: 7, Col: 9},
		{Row: 8, Col: 6}, {Row: 8, Col: 7}, {Row: 8, Col: 8},
	}
	s.Equal(expected, game.LegalSquares())
	for _, pos := range game.LegalSquares() {
		s.True(game.Board.IsEmpty(pos), "legal square %s is occupied", pos)
	}
}

func (s *ControllerSuite) TestRoundAdvancesAfterLastPlayer() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "TEIIOUR")
	s.playCat(game.ID)

	// Player 1 plays AT downwards from the existing A
	s.place(game.ID, 'T', 8, 7)
	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().NoError(err)
	outcome, err := s.controller.SubmitMove(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(1, outcome.Player)
	s.Equal(2, outcome.ScoreDelta)
	s.Equal(0, outcome.NextPlayer)
	s.Equal(2, outcome.NextRound)
	s.Equal(2, game.Round())
}

func (s *ControllerSuite) TestTieListsAllWinners() {
	game := s.createGame(2)
	s.rigGame(game, 3, "CATDOGS", "CTEIOUR")
	s.playCat(game.ID)
	s.Equal(0, game.BagRemaining())
	s.False(game.IsOver())

	// Player 1 plays CAT down through the existing A for the same score
	s.place(game.ID, 'C', 6, 7)
	s.place(game.ID, 'T', 8, 7)
	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().NoError(err)
	outcome, err := s.controller.SubmitMove(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(5, outcome.ScoreDelta)
	s.True(outcome.GameOver)
	s.Equal([]int{0, 1}, outcome.Winners)
	s.Equal(model.PhaseGameOver, game.Phase)
}

func (s *ControllerSuite) TestGameEndsWhenRefillFindsBagEmpty() {
	game := s.createGame(2)
	s.rigGame(game, 4, "CATDOGS", "TEIIOUR")

	s.playCat(game.ID)
	s.Equal(1, game.BagRemaining())

	// Player 1 draws the last tile
	s.place(game.ID, 'T', 8, 7)
	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().NoError(err)
	outcome, err := s.controller.SubmitMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Equal(0, outcome.BagRemaining)
	s.False(outcome.GameOver)
	s.Equal(model.PhaseAwaitingPlacement, game.Phase)

	// Player 0 plays O on the double letter square forming TO twice
	s.place(game.ID, 'O', 8, 8)
	found, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().NoError(err)
	s.Len(found, 2)
	outcome, err = s.controller.SubmitMove(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Equal(6, outcome.ScoreDelta)
	s.True(outcome.GameOver)
	s.Equal([]int{0}, outcome.Winners)
	s.Equal([]int{11, 2}, game.Scores())
	s.Equal(model.PhaseGameOver, game.Phase)
}

func (s *ControllerSuite) TestDrawingLastTilesDoesNotEndGame() {
	game := s.createGame(2)
	s.rigGame(game, 1, "CATDOGS", "TEIIOUR")

	// Three tiles used, only one left to draw
	outcome := s.playCat(game.ID)
	s.Equal(0, outcome.BagRemaining)
	s.False(outcome.GameOver)
	s.Empty(outcome.Winners)
	s.Equal(model.PhaseAwaitingPlacement, game.Phase)
	s.Len(game.RackOf(0), 5)

	s.place(game.ID, 'T', 8, 7)
	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().NoError(err)
	outcome, err = s.controller.SubmitMove(s.ctx, game.ID)
	s.Require().NoError(err)

	s.True(outcome.GameOver)
	s.Equal([]int{0}, outcome.Winners)
	s.Equal([]int{5, 2}, game.Scores())
}

func (s *ControllerSuite) TestCommandsRejectedAfterGameOver() {
	game := s.createGame(2)
	s.rigGame(game, 0, "CATDOGS", "TEIIOUR")
	outcome := s.playCat(game.ID)
	s.Require().True(outcome.GameOver)

	err := s.controller.PlaceTile(s.ctx, game.ID, 'D', model.Position{Row: 8, Col: 7})
	s.ErrorIs(err, model.ErrGameOver)
	err = s.controller.ResetMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameOver)
	_, err = s.controller.CheckMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameOver)
	_, err = s.controller.SubmitMove(s.ctx, game.ID)
	s.ErrorIs(err, model.ErrGameOver)
}

func (s *ControllerSuite) TestHistoryTimestamps() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "TEIIOUR")
	s.clock.Step = time.Second

	s.playCat(game.ID)
	s.place(game.ID, 'T', 8, 7)
	_, err := s.controller.CheckMove(s.ctx, game.ID)
	s.Require().NoError(err)
	_, err = s.controller.SubmitMove(s.ctx, game.ID)
	s.Require().NoError(err)

	s.Require().Len(game.History, 2)
	s.True(game.History[1].At.After(game.History[0].At))
	s.Equal(game.History[1].At, game.UpdatedAt)
	s.Equal(1, game.History[1].Player)
	s.Equal(1, game.History[1].Round)

	submitted := s.logs.Records("move submitted")
	s.Len(submitted, 2)
}

func (s *ControllerSuite) TestUpdatedAtFollowsClock() {
	game := s.createGame(2)
	s.rigGame(game, -1, "CATDOGS", "EEIIOUR")
	s.clock.Advance(time.Minute)

	s.place(game.ID, 'A', 7, 7)

	s.Equal(s.clock.Now(), game.UpdatedAt)
	s.True(game.UpdatedAt.After(game.CreatedAt))
}
