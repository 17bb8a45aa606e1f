package engine

import (
	"testing"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/errors"
	"github.com/lgbarn/pawns-go/internal/testutil"
)

// TestEvaluate_Advance covers same-file moves from start and non-start ranks.
func TestEvaluate_Advance(t *testing.T) {
	tests := []struct {
		name      string
		white     []string
		black     []string
		colour    chess.Colour
		move      string
		wantLegal bool
		wantClass chess.MoveClass
	}{
		{"white single from start", []string{"e2"}, nil, chess.White, "e2e3", true, chess.PawnAdvance},
		{"white double from start", []string{"e2"}, nil, chess.White, "e2e4", true, chess.PawnDoubleAdvance},
		{"white triple from start", []string{"e2"}, nil, chess.White, "e2e5", false, 0},
		{"black single from start", nil, []string{"e7"}, chess.Black, "e7e6", true, chess.PawnAdvance},
		{"black double from start", nil, []string{"e7"}, chess.Black, "e7e5", true, chess.PawnDoubleAdvance},
		{"black triple from start", nil, []string{"e7"}, chess.Black, "e7e4", false, 0},
		{"white single off start", []string{"c3"}, nil, chess.White, "c3c4", true, chess.PawnAdvance},
		{"white double off start", []string{"c3"}, nil, chess.White, "c3c5", false, 0},
		{"black double off start", nil, []string{"c5"}, chess.Black, "c5c3", false, 0},
		{"white backwards", []string{"c4"}, nil, chess.White, "c4c3", false, 0},
		{"black backwards", nil, []string{"c4"}, chess.Black, "c4c5", false, 0},
		{"null move", []string{"c4"}, nil, chess.White, "c4c4", false, 0},
		{"destination occupied by opponent", []string{"e4"}, []string{"e5"}, chess.White, "e4e5", false, 0},
		{"destination occupied by own pawn", []string{"e2", "e3"}, nil, chess.White, "e2e3", false, 0},
		{"double onto occupied square", []string{"e2"}, []string{"e4"}, chess.White, "e2e4", false, 0},
		{"double over occupied square", []string{"e2"}, []string{"e3"}, chess.White, "e2e4", false, 0},
		{"black double over occupied square", []string{"d6"}, []string{"d7"}, chess.Black, "d7d5", false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(t, tt.white, tt.black)
			white, black := testutil.Players()
			mover, opponent := white, black
			if tt.colour == chess.Black {
				mover, opponent = black, white
			}

			res := Evaluate(board, chess.MustParseMove(tt.move), mover, opponent)
			if res.Legal() != tt.wantLegal {
				t.Fatalf("Evaluate(%s) legal = %v (err %v), want %v", tt.move, res.Legal(), res.Err, tt.wantLegal)
			}
			if tt.wantLegal {
				testutil.AssertEqual(t, res.Class, tt.wantClass, "move class")
				testutil.AssertFalse(t, res.IsCapture(), "advance is not a capture")
			} else {
				testutil.AssertErrorIs(t, res.Err, errors.ErrIllegalMove)
			}
		})
	}
}

// TestEvaluate_AllowJump checks that AllowJump only looks at the destination of a double step.
func TestEvaluate_AllowJump(t *testing.T) {
	board := testutil.BoardWith(t, []string{"e2"}, []string{"e3"})
	white, black := testutil.Players()
	move := chess.MustParseMove("e2e4")

	if Evaluate(board, move, white, black).Legal() {
		t.Error("StandardRules: double step over e3 should be illegal")
	}

	res := Rules{AllowJump: true}.Evaluate(board, move, white, black)
	if !res.Legal() {
		t.Fatalf("AllowJump: double step over e3 rejected: %v", res.Err)
	}
	testutil.AssertEqual(t, res.Class, chess.PawnDoubleAdvance)
}

func TestEvaluate_NoPawn(t *testing.T) {
	board := chess.NewInitialBoard()
	white, black := testutil.Players()

	tests := []struct {
		name  string
		mover chess.Player
		opp   chess.Player
		move  string
	}{
		{"empty source", white, black, "e3e4"},
		{"opponent pawn at source", white, black, "e7e6"},
		{"black moving white pawn", black, white, "d2d3"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := Evaluate(board, chess.MustParseMove(tt.move), tt.mover, tt.opp)
			testutil.AssertErrorIs(t, res.Err, errors.ErrNoPawn)
		})
	}
}

func TestEvaluate_Diagonal(t *testing.T) {
	tests := []struct {
		name      string
		white     []string
		black     []string
		colour    chess.Colour
		move      string
		wantLegal bool
		wantTaken string
	}{
		{"white captures right", []string{"e4"}, []string{"f5"}, chess.White, "e4f5", true, "f5"},
		{"white captures left", []string{"e4"}, []string{"d5"}, chess.White, "e4d5", true, "d5"},
		{"black captures", []string{"c3"}, []string{"d4"}, chess.Black, "d4c3", true, "c3"},
		{"onto own pawn", []string{"e4", "f5"}, nil, chess.White, "e4f5", false, ""},
		{"onto empty square", []string{"e4"}, nil, chess.White, "e4f5", false, ""},
		{"two files", []string{"e4"}, []string{"g5"}, chess.White, "e4g5", false, ""},
		{"two ranks", []string{"e4"}, []string{"f6"}, chess.White, "e4f6", false, ""},
		{"backwards capture", []string{"e4"}, []string{"f3"}, chess.White, "e4f3", false, ""},
		{"sideways", []string{"e4"}, []string{"f4"}, chess.White, "e4f4", false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(t, tt.white, tt.black)
			white, black := testutil.Players()
			mover, opponent := white, black
			if tt.colour == chess.Black {
				mover, opponent = black, white
			}

			res := Evaluate(board, chess.MustParseMove(tt.move), mover, opponent)
			if res.Legal() != tt.wantLegal {
				t.Fatalf("Evaluate(%s) legal = %v (err %v), want %v", tt.move, res.Legal(), res.Err, tt.wantLegal)
			}
			if !tt.wantLegal {
				testutil.AssertErrorIs(t, res.Err, errors.ErrIllegalMove)
				return
			}
			testutil.AssertEqual(t, res.Class, chess.PawnCapture)
			testutil.AssertEqual(t, res.Captured.Square.String(), tt.wantTaken)
			testutil.AssertEqual(t, res.Captured.Colour, mover.Colour.Opposite())
		})
	}
}

func TestEvaluate_EnPassant(t *testing.T) {
	tests := []struct {
		name      string
		white     []string
		black     []string
		colour    chess.Colour
		lastMove  string // opponent's last move, "" for none
		move      string
		wantLegal bool
	}{
		{"white takes d5 after d7d5", []string{"e5"}, []string{"d5"}, chess.White, "d7d5", "e5d6", true},
		{"white takes f5 after f7f5", []string{"e5"}, []string{"f5"}, chess.White, "f7f5", "e5f6", true},
		{"black takes e4 after e2e4", []string{"e4"}, []string{"d4"}, chess.Black, "e2e4", "d4e3", true},
		{"opponent moved another pawn", []string{"e5"}, []string{"d5", "a6"}, chess.White, "a7a6", "e5d6", false},
		{"opponent has not moved", []string{"e5"}, []string{"d5"}, chess.White, "", "e5d6", false},
		{"single step is not passing", []string{"e5"}, []string{"d5"}, chess.White, "d6d5", "e5d6", false},
		{"capturer on wrong rank", []string{"e4"}, []string{"d4"}, chess.White, "d6d4", "e4d5", false},
		{"no pawn beside", []string{"e5"}, []string{"c5"}, chess.White, "c7c5", "e5d6", false},
		{"own pawn beside", []string{"e5", "d5"}, []string{"h5"}, chess.White, "h7h5", "e5d6", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board := testutil.BoardWith(t, tt.white, tt.black)
			white, black := testutil.Players()
			mover, opponent := white, black
			if tt.colour == chess.Black {
				mover, opponent = black, white
			}
			if tt.lastMove != "" {
				opponent = testutil.WithLastMove(t, opponent, tt.lastMove)
			}

			res := Evaluate(board, chess.MustParseMove(tt.move), mover, opponent)
			if res.Legal() != tt.wantLegal {
				t.Fatalf("Evaluate(%s) legal = %v (err %v), want %v", tt.move, res.Legal(), res.Err, tt.wantLegal)
			}
			if tt.wantLegal {
				testutil.AssertEqual(t, res.Class, chess.EnPassantCapture)
				testutil.AssertEqual(t, res.Captured.Square, opponent.LastMove.To, "captured the pawn that just moved")
			}
		})
	}
}

func TestEvaluate_DoesNotMutate(t *testing.T) {
	board := testutil.BoardWith(t, []string{"e5", "a2"}, []string{"d5", "b3"})
	before := FormatFEN(board, chess.White)
	white, black := testutil.Players()
	black = testutil.WithLastMove(t, black, "d7d5")

	for _, move := range []string{"e5d6", "a2b3", "a2a4", "e5e6", "e5f6"} {
		Evaluate(board, chess.MustParseMove(move), white, black)
	}

	testutil.AssertEqual(t, FormatFEN(board, chess.White), before)
}
