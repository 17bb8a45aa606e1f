package game

import (
	stderrors "errors"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/config"
	"github.com/lgbarn/pawns-go/internal/engine"
	"github.com/lgbarn/pawns-go/internal/errors"
	"github.com/lgbarn/pawns-go/internal/output"
)

// ExitCommand ends the game immediately without a result.
const ExitCommand = "exit"

// Status is where a session stands after an input.
type Status int

const (
	InProgress Status = iota
	Finished
	Exited
)

// Outcome describes the effect of one submitted input.
type Outcome struct {
	Status  Status
	Move    engine.Result  // the committed move, when one was played
	Verdict engine.Verdict // set when Status is Finished
}

// MoveSource supplies the input for the side to move.
type MoveSource interface {
	NextInput(board *chess.Board, mover, opponent chess.Player) (string, error)
}

// automatic is implemented by computer-driven sources, whose input is
// echoed after the prompt.
type automatic interface {
	Automatic() bool
}

// Session owns the board and turn state of one game.
type Session struct {
	rules   engine.Rules
	board   *chess.Board
	turn    Turn
	record  *chess.Game
	printer *output.Printer
	log     zerolog.Logger
	done    bool
}

// NewSession sets up a game between the named players from cfg's start position.
func NewSession(cfg *config.Config, whiteName, blackName string, logger zerolog.Logger) (*Session, error) {
	fen := cfg.StartFEN
	if fen == "" {
		fen = engine.InitialFEN
	}
	board, toMove, err := engine.NewBoardFromFEN(fen)
	if err != nil {
		return nil, errors.Wrap(err, "start position")
	}

	id := uuid.NewString()
	s := &Session{
		rules:   cfg.Rules(),
		board:   board,
		turn:    NewTurn(chess.NewPlayer(whiteName, chess.White), chess.NewPlayer(blackName, chess.Black), toMove),
		record:  chess.NewGame(id, whiteName, blackName, fen),
		printer: output.NewPrinter(cfg.OutputFile),
		log:     logger.With().Str("game", id).Logger(),
	}

	s.log.Info().
		Str("white", whiteName).
		Str("black", blackName).
		Str("fen", fen).
		Bool("allow_jump", s.rules.AllowJump).
		Msg("game started")
	return s, nil
}

// Board returns the live board.
func (s *Session) Board() *chess.Board {
	return s.board
}

// Turn returns a copy of the current turn state.
func (s *Session) Turn() Turn {
	return s.turn
}

// Record returns the game record.
func (s *Session) Record() *chess.Game {
	return s.record
}

// Done returns true once the game has finished or been exited.
func (s *Session) Done() bool {
	return s.done
}

// Submit handles one line of input from the active player. Rejected input
// returns an error and leaves the turn with the same player; a committed move
// is adjudicated and, unless the game is over, passes the turn.
func (s *Session) Submit(input string) (Outcome, error) {
	if s.done {
		return Outcome{Status: Exited}, errors.Wrap(errors.ErrIllegalMove, "game is over")
	}

	input = strings.ToLower(strings.TrimSpace(input))
	if input == ExitCommand {
		s.abandon()
		return Outcome{Status: Exited}, nil
	}

	mover, opponent := s.turn.Active, s.turn.Waiting

	move, err := chess.ParseMove(input)
	if err != nil {
		s.log.Debug().Str("colour", mover.Colour.String()).Str("input", input).Msg("malformed input")
		return Outcome{Status: InProgress}, err
	}

	res := s.rules.Evaluate(s.board, move, mover, opponent)
	if !res.Legal() {
		s.log.Debug().Err(res.Err).Str("colour", mover.Colour.String()).Str("move", input).Msg("move rejected")
		return Outcome{Status: InProgress}, res.Err
	}
	if err := engine.Commit(s.board, res); err != nil {
		return Outcome{Status: InProgress}, err
	}

	s.turn.Active.LastMove = move
	ply := s.record.AddMove(mover.Colour, move, res.Class)
	s.log.Info().
		Int("ply", ply).
		Str("colour", mover.Colour.String()).
		Str("move", move.String()).
		Str("class", res.Class.String()).
		Msg("move committed")

	verdict := s.rules.Adjudicate(s.board, s.turn.Active, s.turn.Waiting)
	if verdict.Over() {
		s.finish(verdict, opponent.Colour)
		return Outcome{Status: Finished, Move: res, Verdict: verdict}, nil
	}

	s.turn = s.turn.Next()
	return Outcome{Status: InProgress, Move: res}, nil
}

// Play runs the turn loop until the game ends, a player exits or input runs
// out. The board is drawn at the start and after every committed move.
func (s *Session) Play(white, black MoveSource) *chess.Game {
	sources := map[chess.Colour]MoveSource{chess.White: white, chess.Black: black}

	s.printer.Board(s.board) //nolint:errcheck // terminal output
	for !s.done {
		mover, opponent := s.turn.Active, s.turn.Waiting
		s.printer.Turn(mover.Name)

		src := sources[mover.Colour]
		input, err := src.NextInput(s.board, mover, opponent)
		if err != nil {
			if !stderrors.Is(err, io.EOF) {
				s.log.Error().Err(err).Str("colour", mover.Colour.String()).Msg("reading move")
			}
			s.abandon()
			break
		}
		if auto, ok := src.(automatic); ok && auto.Automatic() {
			s.printer.Echo(input)
		}

		outcome, err := s.Submit(input)
		if err != nil {
			s.printer.Rejection(err)
			continue
		}
		if outcome.Status == Exited {
			break
		}

		s.printer.Board(s.board) //nolint:errcheck // terminal output
		if outcome.Status == Finished {
			s.announce(outcome.Verdict)
		}
	}

	s.printer.Bye()
	return s.record
}

func (s *Session) announce(v engine.Verdict) {
	if v.IsStalemate() {
		s.printer.Stalemate()
		return
	}
	s.printer.Win(v.Winner)
}

func (s *Session) finish(v engine.Verdict, toMove chess.Colour) {
	s.done = true
	s.record.Finish(v.Result(), v.Termination, engine.FormatFEN(s.board, toMove))
	s.log.Info().
		Str("result", v.Result()).
		Str("termination", v.Termination.String()).
		Int("plies", s.record.PlyCount()).
		Msg("game over")
}

func (s *Session) abandon() {
	s.done = true
	s.record.Finish(chess.ResultUnknown, chess.Abandoned, engine.FormatFEN(s.board, s.turn.Active.Colour))
	s.log.Info().
		Str("colour", s.turn.Active.Colour.String()).
		Int("plies", s.record.PlyCount()).
		Msg("game abandoned")
}
