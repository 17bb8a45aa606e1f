package engine

import "github.com/lgbarn/pawns-go/internal/chess"

// Verdict is the state of the game after a committed move.
type Verdict struct {
	Termination chess.Termination
	// Winner is only meaningful for ReachedLastRank and CapturedAll.
	Winner chess.Colour
}

// Over returns true if the game has ended.
func (v Verdict) Over() bool {
	return v.Termination != chess.Unterminated
}

// IsStalemate returns true if the game ended without a winner.
func (v Verdict) IsStalemate() bool {
	return v.Termination == chess.NoLegalMoves
}

// Result returns the PGN-style result string of the verdict.
func (v Verdict) Result() string {
	switch v.Termination {
	case chess.ReachedLastRank, chess.CapturedAll:
		return chess.WinResult(v.Winner)
	case chess.NoLegalMoves:
		return chess.ResultDraw
	}
	return chess.ResultUnknown
}

// Adjudicate decides whether the move mover just committed ends the game.
// mover.LastMove must already hold that move; it is what the opponent's
// en passant replies are probed against.
//
// Checks run in order: mover reached its winning rank, opponent has no
// pawns left, opponent has no legal reply (stalemate).
func (r Rules) Adjudicate(board *chess.Board, mover, opponent chess.Player) Verdict {
	if !mover.LastMove.IsZero() && mover.LastMove.To.Rank == mover.Colour.WinningRank() {
		return Verdict{Termination: chess.ReachedLastRank, Winner: mover.Colour}
	}
	if board.Count(opponent.Colour) == 0 {
		return Verdict{Termination: chess.CapturedAll, Winner: mover.Colour}
	}
	if !r.HasLegalMoves(board, opponent, mover) {
		return Verdict{Termination: chess.NoLegalMoves}
	}
	return Verdict{}
}
