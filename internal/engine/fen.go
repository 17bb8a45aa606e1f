package engine

import (
	"fmt"
	"strings"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/errors"
)

// InitialFEN is the FEN string for the pawns-only starting position.
const InitialFEN = "8/pppppppp/8/8/8/8/PPPPPPPP/8 w"

// NewBoardFromFEN creates a board from a pawn FEN string and returns it
// together with the side to move. The side-to-move field is optional and
// defaults to White. Only 'P' and 'p' are accepted as pieces, and no pawn
// may stand on rank 1 or 8.
func NewBoardFromFEN(fen string) (*chess.Board, chess.Colour, error) {
	parts := strings.Fields(fen)
	if len(parts) < 1 {
		return nil, chess.White, fmt.Errorf("empty FEN string: %w", errors.ErrInvalidFEN)
	}

	board := chess.NewBoard()
	if err := parsePawnPositions(board, parts[0]); err != nil {
		return nil, chess.White, err
	}

	toMove, err := parseSideToMove(parts)
	if err != nil {
		return nil, chess.White, err
	}

	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if board.Count(colour) > chess.PawnsPerSide {
			return nil, chess.White, fmt.Errorf("%d %s pawns: %w", board.Count(colour), colour, errors.ErrInvalidFEN)
		}
	}

	return board, toMove, nil
}

// MustBoardFromFEN is like NewBoardFromFEN but panics on error.
func MustBoardFromFEN(fen string) *chess.Board {
	board, _, err := NewBoardFromFEN(fen)
	if err != nil {
		panic(err)
	}
	return board
}

// parsePawnPositions parses the placement field of a pawn FEN string.
func parsePawnPositions(board *chess.Board, positions string) error {
	ranks := strings.Split(positions, "/")
	if len(ranks) != chess.BoardSize {
		return fmt.Errorf("want %d ranks, got %d: %w", chess.BoardSize, len(ranks), errors.ErrInvalidFEN)
	}

	for i, row := range ranks {
		rank := chess.Rank(chess.LastRank - i)
		col := chess.Col(chess.FirstCol)

		for _, c := range row {
			switch {
			case c >= '1' && c <= '8':
				col += chess.Col(c - '0')
			case c == 'P' || c == 'p':
				if !col.Valid() {
					return fmt.Errorf("rank %c overflows: %w", rank, errors.ErrInvalidFEN)
				}
				if rank == chess.FirstRank || rank == chess.LastRank {
					return fmt.Errorf("pawn on rank %c: %w", rank, errors.ErrInvalidFEN)
				}
				colour := chess.White
				if c == 'p' {
					colour = chess.Black
				}
				board.Place(chess.Sq(col, rank), colour)
				col++
			default:
				return fmt.Errorf("invalid piece character: %c: %w", c, errors.ErrInvalidFEN)
			}
		}

		if col != chess.LastCol+1 {
			return fmt.Errorf("rank %c has %d files: %w", rank, int(col-chess.FirstCol), errors.ErrInvalidFEN)
		}
	}
	return nil
}

// parseSideToMove parses the optional side-to-move field.
func parseSideToMove(parts []string) (chess.Colour, error) {
	if len(parts) < 2 {
		return chess.White, nil
	}
	switch parts[1] {
	case "w":
		return chess.White, nil
	case "b":
		return chess.Black, nil
	}
	return chess.White, fmt.Errorf("invalid side to move %q: %w", parts[1], errors.ErrInvalidFEN)
}

// FormatFEN renders the board and side to move as a pawn FEN string.
func FormatFEN(board *chess.Board, toMove chess.Colour) string {
	var sb strings.Builder

	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		empty := 0
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			piece := board.Get(chess.Sq(col, rank))
			if piece == chess.Empty {
				empty++
				continue
			}
			if empty > 0 {
				sb.WriteByte(byte('0' + empty))
				empty = 0
			}
			if piece == chess.WhitePawn {
				sb.WriteByte('P')
			} else {
				sb.WriteByte('p')
			}
		}
		if empty > 0 {
			sb.WriteByte(byte('0' + empty))
		}
		if rank > chess.FirstRank {
			sb.WriteByte('/')
		}
	}

	if toMove == chess.White {
		sb.WriteString(" w")
	} else {
		sb.WriteString(" b")
	}
	return sb.String()
}
