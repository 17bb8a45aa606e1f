package chess

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/lgbarn/pawns-go/internal/errors"
)

// notationPattern matches long algebraic pawn moves such as "e2e4".
var notationPattern = regexp.MustCompile(`^(?:[a-h][1-8]){2}$`)

// Move is a source/destination square pair. The zero value means "no move".
type Move struct {
	From Square
	To   Square
}

// NewMove creates a move between two squares.
func NewMove(from, to Square) Move {
	return Move{From: from, To: to}
}

// IsValidNotation reports whether s is a 4-character move such as "e2e4".
// Matching is case-insensitive.
func IsValidNotation(s string) bool {
	return notationPattern.MatchString(strings.ToLower(s))
}

// ParseMove parses 4-character long algebraic notation into a Move.
func ParseMove(s string) (Move, error) {
	lower := strings.ToLower(s)
	if !notationPattern.MatchString(lower) {
		return Move{}, fmt.Errorf("%q: %w", s, errors.ErrInvalidNotation)
	}
	return Move{
		From: Sq(Col(lower[0]), Rank(lower[1])),
		To:   Sq(Col(lower[2]), Rank(lower[3])),
	}, nil
}

// MustParseMove is like ParseMove but panics on malformed input.
// It is intended for fixed move literals.
func MustParseMove(s string) Move {
	m, err := ParseMove(s)
	if err != nil {
		panic(err)
	}
	return m
}

// IsZero returns true if no move is recorded.
func (m Move) IsZero() bool {
	return m == Move{}
}

// FileDelta is the signed number of files travelled.
func (m Move) FileDelta() int {
	return int(m.To.Col) - int(m.From.Col)
}

// RankDelta is the signed number of ranks travelled.
func (m Move) RankDelta() int {
	return int(m.To.Rank) - int(m.From.Rank)
}

// String returns the move in long algebraic notation.
func (m Move) String() string {
	if m.IsZero() {
		return ""
	}
	return m.From.String() + m.To.String()
}

// Player is one side of the game. LastMove is the zero Move until the
// player completes a turn.
type Player struct {
	Name     string
	Colour   Colour
	LastMove Move
}

// NewPlayer creates a player who has not moved yet.
func NewPlayer(name string, colour Colour) Player {
	return Player{Name: name, Colour: colour}
}
