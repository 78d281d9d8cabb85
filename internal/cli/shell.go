package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/chzyer/readline"

	"github.com/mcoot/scrabble-go/internal/model"
	"github.com/mcoot/scrabble-go/internal/services/dictionary"
	"github.com/mcoot/scrabble-go/internal/services/game"
)

// ErrQuit is returned by Execute when the user leaves the shell
var ErrQuit = errors.New("quit")

const shellHelp = `Commands:
  place <letter> <row> <col>  put a tile from your rack on the board (* is a blank)
  reset                       return this turn's tiles to your rack
  check                       validate the tiles placed this turn
  submit                      play a checked move and end your turn
  rack                        show your rack
  board                       show the board with legal squares marked +
  legal                       list the squares you may place on
  status                      show scores, bag and turn
  history                     list the moves played so far
  word <word>...              look words up in the dictionary
  new [players]               abandon this game and start another (2-4 players)
  help                        show this help
  quit                        leave the game
Rows and columns run from 0 to 14; the centre is 7 7.`

// Shell is the interactive front end for one game at a time
type Shell struct {
	controller game.ControllerInterface
	dictionary dictionary.ServiceInterface
	bonuses    *model.BonusBoard
	out        *Output
	logger     *slog.Logger

	gameID model.GameID
}

// NewShell creates a new Shell
func NewShell(
	controller game.ControllerInterface,
	dictionary dictionary.ServiceInterface,
	out *Output,
	logger *slog.Logger,
) *Shell {
	return &Shell{
		controller: controller,
		dictionary: dictionary,
		bonuses:    model.StandardBonusBoard,
		out:        out,
		logger:     logger,
	}
}

// GameID returns the game the shell is playing
func (s *Shell) GameID() model.GameID {
	return s.gameID
}

// NewGame discards the current game, if any, and starts a fresh one
func (s *Shell) NewGame(ctx context.Context, players int) error {
	created, err := s.controller.CreateGame(ctx, players)
	if err != nil {
		return err
	}

	if s.gameID != "" {
		if err := s.controller.DeleteGame(ctx, s.gameID); err != nil {
			s.logger.Warn("failed to discard game",
				slog.String("game_id", string(s.gameID)),
				slog.String("error", err.Error()),
			)
		}
	}
	s.gameID = created.ID

	s.out.PrintMessage(fmt.Sprintf("New game for %d players.", players))
	return s.printTurn(ctx)
}

// Execute runs one shell command
func (s *Shell) Execute(ctx context.Context, line string) error {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return nil
	}
	cmd, args := strings.ToLower(fields[0]), fields[1:]

	switch cmd {
	case "quit", "exit":
		return ErrQuit
	case "help":
		s.out.PrintMessage(shellHelp)
		return nil
	case "new":
		return s.newGame(ctx, args)
	case "word":
		return s.lookup(args)
	}

	if s.gameID == "" {
		return errors.New("no game in progress: type 'new' to start one")
	}

	switch cmd {
	case "place":
		return s.place(ctx, args)
	case "reset":
		if err := s.controller.ResetMove(ctx, s.gameID); err != nil {
			return err
		}
		return s.printRack(ctx)
	case "check":
		return s.check(ctx)
	case "submit":
		return s.submit(ctx)
	case "rack":
		return s.printRack(ctx)
	case "board":
		return s.printBoard(ctx)
	case "legal":
		g, err := s.controller.GetGame(ctx, s.gameID)
		if err != nil {
			return err
		}
		s.out.Print(LegalView{Squares: g.LegalSquares()})
		return nil
	case "status", "scores":
		g, err := s.controller.GetGame(ctx, s.gameID)
		if err != nil {
			return err
		}
		s.out.Print(newGameView(g))
		return nil
	case "history":
		g, err := s.controller.GetGame(ctx, s.gameID)
		if err != nil {
			return err
		}
		s.out.Print(newHistory(g))
		return nil
	default:
		return fmt.Errorf("unknown command %q: type 'help' for a list", cmd)
	}
}

func (s *Shell) newGame(ctx context.Context, args []string) error {
	players := model.MinPlayers
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("player count must be a number: %w", err)
		}
		players = n
	}
	return s.NewGame(ctx, players)
}

func (s *Shell) place(ctx context.Context, args []string) error {
	if len(args) != 3 {
		return errors.New("usage: place <letter> <row> <col>")
	}
	letter := []rune(args[0])
	if len(letter) != 1 {
		return model.ErrInvalidLetter
	}
	row, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("row must be a number: %w", err)
	}
	col, err := strconv.Atoi(args[2])
	if err != nil {
		return fmt.Errorf("col must be a number: %w", err)
	}

	if err := s.controller.PlaceTile(ctx, s.gameID, letter[0], model.Position{Row: row, Col: col}); err != nil {
		return err
	}
	return s.printBoard(ctx)
}

func (s *Shell) check(ctx context.Context) error {
	found, err := s.controller.CheckMove(ctx, s.gameID)
	if err != nil {
		if errors.Is(err, model.ErrInvalidMove) {
			s.out.PrintMessage("Tiles returned to your rack.")
		}
		return err
	}

	result := CheckResult{Words: make([]WordView, 0, len(found))}
	for _, w := range found {
		result.Words = append(result.Words, newWordView(w, 0))
	}
	s.out.Print(result)
	return nil
}

func (s *Shell) submit(ctx context.Context) error {
	outcome, err := s.controller.SubmitMove(ctx, s.gameID)
	if err != nil {
		if errors.Is(err, model.ErrNotReady) {
			return fmt.Errorf("%w: run 'check' first", err)
		}
		return err
	}

	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return err
	}
	s.out.Print(newMoveResult(outcome, g.Scores()))
	if outcome.GameOver {
		s.out.PrintMessage("Type 'new' to play again or 'quit' to leave.")
		return nil
	}
	return s.printTurn(ctx)
}

func (s *Shell) lookup(args []string) error {
	if len(args) == 0 {
		return errors.New("usage: word <word>...")
	}
	s.out.Print(lookupWords(s.dictionary, args))
	return nil
}

func (s *Shell) printTurn(ctx context.Context) error {
	if err := s.printBoard(ctx); err != nil {
		return err
	}
	return s.printRack(ctx)
}

func (s *Shell) printBoard(ctx context.Context) error {
	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return err
	}
	var legal model.SquareSet
	if !g.IsOver() {
		legal = g.Legal
	}
	s.out.Print(renderBoard(g.Board, s.bonuses, legal))
	return nil
}

func (s *Shell) printRack(ctx context.Context) error {
	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil {
		return err
	}
	s.out.PrintMessage(fmt.Sprintf("Player %d rack: %s", g.CurrentPlayer()+1, rackString(g.CurrentRack().Letters())))
	return nil
}

// Prompt returns the prompt for the player whose turn it is
func (s *Shell) Prompt(ctx context.Context) string {
	if s.gameID == "" {
		return "scrabble> "
	}
	g, err := s.controller.GetGame(ctx, s.gameID)
	if err != nil || g.IsOver() {
		return "scrabble> "
	}
	return fmt.Sprintf("P%d> ", g.CurrentPlayer()+1)
}

func filterInput(r rune) (rune, bool) {
	switch r {
	// block CtrlZ feature
	case readline.CharCtrlZ:
		return r, false
	}
	return r, true
}

// NewReadline creates the line editor used by Run
func NewReadline(historyFile string) (*readline.Instance, error) {
	return readline.NewEx(&readline.Config{
		Prompt:          "scrabble> ",
		HistoryFile:     historyFile,
		EOFPrompt:       "exit",
		InterruptPrompt: "^C",

		HistorySearchFold:   true,
		FuncFilterInputRune: filterInput,
	})
}

// Run reads commands until the user quits or input ends
func (s *Shell) Run(ctx context.Context, rl *readline.Instance) error {
	defer rl.Close()

	for {
		rl.SetPrompt(s.Prompt(ctx))

		line, err := rl.Readline()
		if errors.Is(err, readline.ErrInterrupt) {
			if len(line) == 0 {
				return nil
			}
			continue
		} else if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return err
		}

		err = s.Execute(ctx, line)
		if errors.Is(err, ErrQuit) {
			return nil
		}
		if err != nil {
			s.logger.Debug("command failed",
				slog.String("line", line),
				slog.String("error", err.Error()),
			)
			s.out.PrintError(err)
		}
	}
}
