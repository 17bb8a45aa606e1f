package engine

import (
	"testing"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/errors"
	"github.com/lgbarn/pawns-go/internal/testutil"
)

func TestCommit(t *testing.T) {
	tests := []struct {
		name      string
		fen       string
		colour    chess.Colour
		lastMove  string
		move      string
		wantFEN   string
		wantWhite int
		wantBlack int
	}{
		{
			name:      "double step",
			fen:       InitialFEN,
			colour:    chess.White,
			move:      "e2e4",
			wantFEN:   "8/pppppppp/8/8/4P3/8/PPPP1PPP/8 b",
			wantWhite: 8,
			wantBlack: 8,
		},
		{
			name:      "direct capture",
			fen:       "8/8/8/3p4/4P3/8/8/8 w",
			colour:    chess.White,
			move:      "e4d5",
			wantFEN:   "8/8/8/3P4/8/8/8/8 b",
			wantWhite: 1,
			wantBlack: 0,
		},
		{
			name:      "white en passant",
			fen:       "8/8/8/3pP3/8/8/8/8 w",
			colour:    chess.White,
			lastMove:  "d7d5",
			move:      "e5d6",
			wantFEN:   "8/8/3P4/8/8/8/8/8 b",
			wantWhite: 1,
			wantBlack: 0,
		},
		{
			name:      "black en passant",
			fen:       "8/p7/8/8/3pP3/8/8/8 b",
			colour:    chess.Black,
			lastMove:  "e2e4",
			move:      "d4e3",
			wantFEN:   "8/p7/8/8/8/4p3/8/8 w",
			wantWhite: 0,
			wantBlack: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			board, _, err := NewBoardFromFEN(tt.fen)
			if err != nil {
				t.Fatalf("NewBoardFromFEN(%q) error: %v", tt.fen, err)
			}
			white, black := testutil.Players()
			mover, opponent := white, black
			if tt.colour == chess.Black {
				mover, opponent = black, white
			}
			if tt.lastMove != "" {
				opponent = testutil.WithLastMove(t, opponent, tt.lastMove)
			}

			res := Evaluate(board, chess.MustParseMove(tt.move), mover, opponent)
			testutil.AssertNoError(t, res.Err, "evaluate %s", tt.move)
			testutil.AssertNoError(t, Commit(board, res), "commit %s", tt.move)

			testutil.AssertEqual(t, FormatFEN(board, tt.colour.Opposite()), tt.wantFEN)
			testutil.AssertEqual(t, board.Count(chess.White), tt.wantWhite, "white pawns")
			testutil.AssertEqual(t, board.Count(chess.Black), tt.wantBlack, "black pawns")
		})
	}
}

func TestCommit_IllegalLeavesBoard(t *testing.T) {
	board := chess.NewInitialBoard()
	white, black := testutil.Players()

	res := Evaluate(board, chess.MustParseMove("e2e5"), white, black)
	err := Commit(board, res)

	testutil.AssertErrorIs(t, err, errors.ErrIllegalMove)
	testutil.AssertEqual(t, FormatFEN(board, chess.White), InitialFEN)
}

func TestCommit_StaleResult(t *testing.T) {
	board := testutil.BoardWith(t, []string{"e4"}, []string{"d5"})
	white, black := testutil.Players()

	res := Evaluate(board, chess.MustParseMove("e4d5"), white, black)
	testutil.AssertNoError(t, Commit(board, res))

	// Replaying the same result against the changed board must fail.
	testutil.AssertErrorIs(t, Commit(board, res), errors.ErrIllegalMove)
	testutil.AssertEqual(t, board.Count(chess.White), 1)
}
