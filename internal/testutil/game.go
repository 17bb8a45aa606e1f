package testutil

import (
	"testing"

	"github.com/lgbarn/pawns-go/internal/chess"
)

// Players returns a fresh White/Black pair named after their colours.
func Players() (white, black chess.Player) {
	return chess.NewPlayer("White player", chess.White), chess.NewPlayer("Black player", chess.Black)
}

// BoardWith builds a board holding only the listed pawns. Squares are in
// algebraic notation; t.Fatal is called for a malformed square.
func BoardWith(t *testing.T, white, black []string) *chess.Board {
	t.Helper()
	board := chess.NewBoard()
	place := func(squares []string, colour chess.Colour) {
		for _, s := range squares {
			sq, err := chess.ParseSquare(s)
			if err != nil {
				t.Fatalf("BoardWith: %v", err)
			}
			board.Place(sq, colour)
		}
	}
	place(white, chess.White)
	place(black, chess.Black)
	return board
}

// WithLastMove returns p with LastMove set to the parsed move.
func WithLastMove(t *testing.T, p chess.Player, move string) chess.Player {
	t.Helper()
	m, err := chess.ParseMove(move)
	if err != nil {
		t.Fatalf("WithLastMove: %v", err)
	}
	p.LastMove = m
	return p
}
