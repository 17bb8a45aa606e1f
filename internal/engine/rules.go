// Package engine provides pawn move validation and board manipulation.
package engine

import (
	"strings"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/errors"
)

// Rules holds the rule variations the engine supports.
type Rules struct {
	// AllowJump lets a double step pass over an occupied intermediate
	// square. Only the destination square is checked when set.
	AllowJump bool
}

// StandardRules blocks double steps over an occupied square.
var StandardRules = Rules{}

// Result is the outcome of evaluating a move. It is legal when Err is nil.
type Result struct {
	Move   chess.Move
	Colour chess.Colour
	Class  chess.MoveClass

	// Captured is the pawn removed by a capture. Only meaningful when
	// Class.IsCapture() is true.
	Captured chess.Pawn

	Err error
}

// Legal returns true if the move may be committed.
func (r Result) Legal() bool {
	return r.Err == nil
}

// IsCapture returns true if committing the move removes an opposing pawn.
func (r Result) IsCapture() bool {
	return r.Legal() && r.Class.IsCapture()
}

// Evaluate decides whether mover may play move on board. It never modifies
// the board, so it is safe to call for probing.
//
// The opponent's LastMove is consulted for en passant eligibility.
func (r Rules) Evaluate(board *chess.Board, move chess.Move, mover, opponent chess.Player) Result {
	res := Result{Move: move, Colour: mover.Colour}

	if !move.From.Valid() || !move.To.Valid() {
		res.Err = illegal(mover, move, move.From, "square off the board")
		return res
	}

	pawn, ok := board.PawnAt(move.From)
	if !ok || pawn.Colour != mover.Colour {
		res.Err = &errors.MoveError{
			Err:    errors.ErrNoPawn,
			Colour: colourName(mover.Colour),
			Move:   move.String(),
			Square: move.From.String(),
		}
		return res
	}

	switch move.FileDelta() {
	case 0:
		r.evaluateAdvance(board, pawn, mover, &res)
	case -1, 1:
		evaluateDiagonal(board, pawn, mover, opponent, &res)
	default:
		res.Err = illegal(mover, move, move.To, "more than one file")
	}
	return res
}

// Evaluate checks a move under StandardRules.
func Evaluate(board *chess.Board, move chess.Move, mover, opponent chess.Player) Result {
	return StandardRules.Evaluate(board, move, mover, opponent)
}

// illegal builds the MoveError for a rule violation.
func illegal(mover chess.Player, move chess.Move, sq chess.Square, reason string) error {
	return &errors.MoveError{
		Err:    errors.ErrIllegalMove,
		Colour: colourName(mover.Colour),
		Move:   move.String(),
		Square: sq.String(),
		Reason: reason,
	}
}

// colourName is the lower-case colour name used in player-facing messages.
func colourName(c chess.Colour) string {
	return strings.ToLower(c.String())
}
