// Package chess provides the board, square and move types for pawns-only chess.
package chess

import "fmt"

// Colour represents the colour of a pawn or player.
type Colour int

const (
	Black Colour = iota
	White
)

// String returns the string representation of a colour.
func (c Colour) String() string {
	if c == White {
		return "White"
	}
	return "Black"
}

// Opposite returns the opposite colour.
func (c Colour) Opposite() Colour {
	if c == White {
		return Black
	}
	return White
}

// Glyph returns the single character used to draw a pawn of this colour.
func (c Colour) Glyph() byte {
	if c == White {
		return 'W'
	}
	return 'B'
}

// Forward returns +1 for White, -1 for Black (the pawn direction in ranks).
func (c Colour) Forward() int {
	if c == White {
		return 1
	}
	return -1
}

// StartRank is the rank from which a pawn of this colour may double-step.
func (c Colour) StartRank() Rank {
	if c == White {
		return '2'
	}
	return '7'
}

// WinningRank is the rank a pawn of this colour must reach to win.
func (c Colour) WinningRank() Rank {
	if c == White {
		return LastRank
	}
	return FirstRank
}

// EnPassantRank is the rank a pawn of this colour must stand on to capture en passant.
func (c Colour) EnPassantRank() Rank {
	if c == White {
		return '5'
	}
	return '4'
}

// ParseColour converts "white"/"black" (any case, or w/b) to a Colour.
func ParseColour(s string) (Colour, error) {
	switch s {
	case "white", "White", "WHITE", "w", "W":
		return White, nil
	case "black", "Black", "BLACK", "b", "B":
		return Black, nil
	}
	return Black, fmt.Errorf("unknown colour %q", s)
}

// Rank represents a chess rank (row) - '1' to '8'.
type Rank byte

// Col represents a chess file (column) - 'a' to 'h'.
type Col byte

// Constants for board dimensions and coordinates.
const (
	BoardSize = 8

	RankBase  = '1'
	ColBase   = 'a'
	FirstRank = RankBase
	LastRank  = RankBase + BoardSize - 1
	FirstCol  = ColBase
	LastCol   = ColBase + BoardSize - 1
)

// Valid reports whether the rank lies on the board.
func (r Rank) Valid() bool {
	return r >= FirstRank && r <= LastRank
}

// Valid reports whether the column lies on the board.
func (c Col) Valid() bool {
	return c >= FirstCol && c <= LastCol
}

// RankConvert converts a rank character to a 0-based board index, or -1 if off the board.
func RankConvert(rank Rank) int {
	if rank.Valid() {
		return int(rank - RankBase)
	}
	return -1
}

// ColConvert converts a column character to a 0-based board index, or -1 if off the board.
func ColConvert(col Col) int {
	if col.Valid() {
		return int(col - ColBase)
	}
	return -1
}

// Square is a (file, rank) pair. The zero value is not on the board.
type Square struct {
	Col  Col
	Rank Rank
}

// Sq builds a square from its column and rank characters.
func Sq(col Col, rank Rank) Square {
	return Square{Col: col, Rank: rank}
}

// ParseSquare parses a two-character algebraic square such as "e4".
func ParseSquare(s string) (Square, error) {
	if len(s) != 2 {
		return Square{}, fmt.Errorf("square %q: want 2 characters", s)
	}
	sq := Square{Col: Col(s[0]), Rank: Rank(s[1])}
	if !sq.Valid() {
		return Square{}, fmt.Errorf("square %q is off the board", s)
	}
	return sq, nil
}

// Valid reports whether the square lies on the board.
func (s Square) Valid() bool {
	return s.Col.Valid() && s.Rank.Valid()
}

// IsZero reports whether s is the zero Square.
func (s Square) IsZero() bool {
	return s == Square{}
}

// Offset returns the square dc files and dr ranks away, and whether it is on the board.
func (s Square) Offset(dc, dr int) (Square, bool) {
	to := Square{Col: Col(int(s.Col) + dc), Rank: Rank(int(s.Rank) + dr)}
	return to, to.Valid()
}

// String returns the algebraic name of the square.
func (s Square) String() string {
	if !s.Valid() {
		return "-"
	}
	return string([]byte{byte(s.Col), byte(s.Rank)})
}

// Piece is the content of a board square.
type Piece int

const (
	Empty Piece = iota
	WhitePawn
	BlackPawn
)

// PawnOf returns the piece value for a pawn of the given colour.
func PawnOf(colour Colour) Piece {
	if colour == White {
		return WhitePawn
	}
	return BlackPawn
}

// Colour returns the colour of a pawn piece. It must not be called on Empty.
func (p Piece) Colour() Colour {
	if p == WhitePawn {
		return White
	}
	return Black
}

// String returns the string representation of a piece.
func (p Piece) String() string {
	switch p {
	case WhitePawn:
		return "WhitePawn"
	case BlackPawn:
		return "BlackPawn"
	}
	return "Empty"
}
