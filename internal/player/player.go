// Package player provides the sources of moves for each side: a human at
// the terminal or a computer choosing among legal moves.
package player

import (
	"bufio"
	"io"
	"strings"

	"golang.org/x/exp/rand"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/engine"
	"github.com/lgbarn/pawns-go/internal/errors"
)

// Human reads one line of input per turn. Both players share the scanner
// so that names and moves come from the same stream in order.
type Human struct {
	scanner *bufio.Scanner
}

// NewHuman creates a human move source reading from scanner.
func NewHuman(scanner *bufio.Scanner) *Human {
	return &Human{scanner: scanner}
}

// NextInput returns the next input line, or io.EOF when the stream ends.
func (h *Human) NextInput(_ *chess.Board, _, _ chess.Player) (string, error) {
	return ReadLine(h.scanner)
}

// ReadLine returns the next line from scanner with surrounding whitespace
// trimmed, or io.EOF when the stream ends.
func ReadLine(scanner *bufio.Scanner) (string, error) {
	if !scanner.Scan() {
		if err := scanner.Err(); err != nil {
			return "", err
		}
		return "", io.EOF
	}
	return strings.TrimSpace(scanner.Text()), nil
}

// Random plays a uniformly chosen legal move.
type Random struct {
	rules engine.Rules
	rng   *rand.Rand
}

// NewRandom creates a computer move source.
func NewRandom(rules engine.Rules, seed uint64) *Random {
	return &Random{
		rules: rules,
		rng:   rand.New(rand.NewSource(seed)),
	}
}

// NextInput picks one of mover's legal moves.
func (r *Random) NextInput(board *chess.Board, mover, opponent chess.Player) (string, error) {
	moves := r.rules.LegalMoves(board, mover, opponent)
	if len(moves) == 0 {
		return "", errors.Wrapf(errors.ErrIllegalMove, "%s has no legal move", mover.Colour)
	}
	return moves[r.rng.Intn(len(moves))].Move.String(), nil
}

// Automatic marks the source as computer-driven.
func (r *Random) Automatic() bool {
	return true
}
