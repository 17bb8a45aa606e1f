package engine

import "github.com/lgbarn/pawns-go/internal/chess"

// CandidateMoves returns the geometrically possible moves of a pawn: one
// and (from its start rank) two squares forward, and both forward diagonals.
// Squares off the board are dropped.
func CandidateMoves(pawn chess.Pawn) []chess.Move {
	dir := pawn.Colour.Forward()
	moves := make([]chess.Move, 0, 4)

	for _, dc := range []int{-1, 0, 1} {
		if to, ok := pawn.Square.Offset(dc, dir); ok {
			moves = append(moves, chess.NewMove(pawn.Square, to))
		}
	}
	if maxAdvance(pawn.Colour, pawn.Square) == 2 {
		if to, ok := pawn.Square.Offset(0, 2*dir); ok {
			moves = append(moves, chess.NewMove(pawn.Square, to))
		}
	}
	return moves
}

// LegalMoves returns every legal move for mover, in board order.
func (r Rules) LegalMoves(board *chess.Board, mover, opponent chess.Player) []Result {
	var legal []Result
	for _, pawn := range board.Pawns(mover.Colour) {
		for _, move := range CandidateMoves(pawn) {
			if res := r.Evaluate(board, move, mover, opponent); res.Legal() {
				legal = append(legal, res)
			}
		}
	}
	return legal
}

// HasLegalMoves returns true if mover has at least one legal move.
func (r Rules) HasLegalMoves(board *chess.Board, mover, opponent chess.Player) bool {
	for _, pawn := range board.Pawns(mover.Colour) {
		for _, move := range CandidateMoves(pawn) {
			if r.Evaluate(board, move, mover, opponent).Legal() {
				return true
			}
		}
	}
	return false
}
