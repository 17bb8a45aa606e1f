package engine

import (
	"testing"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/errors"
	"github.com/lgbarn/pawns-go/internal/testutil"
)

func TestNewBoardFromFEN(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		wantMove  chess.Colour
		wantWhite int
		wantBlack int
	}{
		{"initial", InitialFEN, chess.White, 8, 8},
		{"no side field", "8/pppppppp/8/8/8/8/PPPPPPPP/8", chess.White, 8, 8},
		{"black to move", "8/8/8/3pP3/8/8/8/8 b", chess.Black, 1, 1},
		{"empty board", "8/8/8/8/8/8/8/8 w", chess.White, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, toMove, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			testutil.AssertEqual(t, toMove, tt.wantMove)
			testutil.AssertEqual(t, board.Count(chess.White), tt.wantWhite)
			testutil.AssertEqual(t, board.Count(chess.Black), tt.wantBlack)
		})
	}
}

func TestNewBoardFromFEN_Errors(t *testing.T) {
	tests := []struct {
		name string
		fen  string
	}{
		{"empty", ""},
		{"too few ranks", "8/8/8/8/8/8/8"},
		{"short rank", "8/8/8/7/8/8/8/8"},
		{"long rank", "8/8/8/44P/8/8/8/8"},
		{"non-pawn piece", "8/8/8/3N4/8/8/8/8"},
		{"pawn on rank 8", "P7/8/8/8/8/8/8/8"},
		{"pawn on rank 1", "8/8/8/8/8/8/8/p7"},
		{"bad side", "8/8/8/8/8/8/8/8 x"},
		{"too many pawns", "8/8/PPPPPPPP/8/P7/8/8/8"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := NewBoardFromFEN(tt.fen)
			testutil.AssertErrorIs(t, err, errors.ErrInvalidFEN, "NewBoardFromFEN(%q)", tt.fen)
		})
	}
}

func TestFormatFEN_RoundTrip(t *testing.T) {
	for _, fen := range []string{InitialFEN, "8/8/3P4/8/2p5/8/8/8 b", "8/p6p/8/8/8/8/P6P/8 w"} {
		board, toMove, err := NewBoardFromFEN(fen)
		testutil.AssertNoError(t, err)
		testutil.AssertEqual(t, FormatFEN(board, toMove), fen)
	}
}
