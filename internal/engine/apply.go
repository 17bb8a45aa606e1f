package engine

import (
	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/errors"
)

// Commit applies an evaluated move to the board: the captured pawn (direct
// or en passant) is removed, then the moving pawn is relocated.
// An illegal result is returned as its error and the board is left untouched.
func Commit(board *chess.Board, res Result) error {
	if !res.Legal() {
		return res.Err
	}

	pawn, ok := board.PawnAt(res.Move.From)
	if !ok || pawn.Colour != res.Colour {
		return errors.Wrapf(errors.ErrIllegalMove, "commit %s: board changed since evaluation", res.Move)
	}

	if res.Class.IsCapture() {
		if !board.RemovePawn(res.Captured) {
			return errors.Wrapf(errors.ErrIllegalMove, "commit %s: captured pawn missing from %s", res.Move, res.Captured.Square)
		}
	}

	board.RelocatePawn(res.Move.From, res.Move.To)
	return nil
}
