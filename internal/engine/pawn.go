package engine

import "github.com/lgbarn/pawns-go/internal/chess"

// maxAdvance returns how many ranks a pawn on sq may advance: two from its
// start rank, one otherwise.
func maxAdvance(colour chess.Colour, sq chess.Square) int {
	if sq.Rank == colour.StartRank() {
		return 2
	}
	return 1
}

// evaluateAdvance checks a same-file move. Pawns never capture straight ahead.
func (r Rules) evaluateAdvance(board *chess.Board, pawn chess.Pawn, mover chess.Player, res *Result) {
	move := res.Move
	dir := pawn.Colour.Forward()
	steps := move.RankDelta() * dir

	if steps < 1 || steps > maxAdvance(pawn.Colour, pawn.Square) {
		res.Err = illegal(mover, move, move.To, "not a forward step")
		return
	}
	if board.Get(move.To) != chess.Empty {
		res.Err = illegal(mover, move, move.To, "destination occupied")
		return
	}

	res.Class = chess.PawnAdvance
	if steps == 2 {
		if !r.AllowJump {
			middle, _ := move.From.Offset(0, dir)
			if board.Get(middle) != chess.Empty {
				res.Err = illegal(mover, move, middle, "path blocked")
				return
			}
		}
		res.Class = chess.PawnDoubleAdvance
	}
}

// evaluateDiagonal checks a one-file move: a direct capture or en passant.
func evaluateDiagonal(board *chess.Board, pawn chess.Pawn, mover, opponent chess.Player, res *Result) {
	move := res.Move

	if move.RankDelta() != pawn.Colour.Forward() {
		res.Err = illegal(mover, move, move.To, "diagonal must advance one rank")
		return
	}

	if target, ok := board.PawnAt(move.To); ok {
		if target.Colour == pawn.Colour {
			res.Err = illegal(mover, move, move.To, "own pawn on destination")
			return
		}
		res.Class = chess.PawnCapture
		res.Captured = target
		return
	}

	// Empty destination: only an en passant capture is possible.
	if move.From.Rank != pawn.Colour.EnPassantRank() {
		res.Err = illegal(mover, move, move.To, "nothing to capture")
		return
	}

	passedSq := chess.Sq(move.To.Col, move.From.Rank)
	passed, ok := board.PawnAt(passedSq)
	if !ok || passed.Colour == pawn.Colour {
		res.Err = illegal(mover, move, passedSq, "no pawn to capture en passant")
		return
	}
	if !justDoubleStepped(opponent, passedSq) {
		res.Err = illegal(mover, move, passedSq, "pawn did not just double-step")
		return
	}

	res.Class = chess.EnPassantCapture
	res.Captured = passed
}

// justDoubleStepped reports whether the opponent's most recent move was a
// double step ending on sq.
func justDoubleStepped(opponent chess.Player, sq chess.Square) bool {
	last := opponent.LastMove
	if last.IsZero() || last.To != sq {
		return false
	}
	return last.FileDelta() == 0 && last.RankDelta()*opponent.Colour.Forward() == 2
}
