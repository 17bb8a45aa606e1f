// Package output renders the board, player-facing messages and game records.
package output

import (
	"bufio"
	"io"

	"github.com/lgbarn/pawns-go/internal/chess"
)

const (
	horizontalRule = "  +---+---+---+---+---+---+---+---+\n"
	vertical       = "|"
	padding        = " "
)

// WriteBoard draws the board: ranks 8 down to 1, files a to h, one glyph per
// pawn, and a file-label line underneath followed by a blank line.
func WriteBoard(w io.Writer, board *chess.Board) error {
	bw := bufio.NewWriter(w)

	for rank := chess.Rank(chess.LastRank); rank >= chess.FirstRank; rank-- {
		bw.WriteString(horizontalRule)
		bw.WriteByte(byte(rank))
		bw.WriteString(padding + vertical)
		for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
			bw.WriteString(padding)
			bw.WriteByte(glyphAt(board, chess.Sq(col, rank)))
			bw.WriteString(padding + vertical)
		}
		bw.WriteByte('\n')
	}

	bw.WriteString(horizontalRule)
	bw.WriteString(padding)
	for col := chess.Col(chess.FirstCol); col <= chess.LastCol; col++ {
		bw.WriteString("   ")
		bw.WriteByte(byte(col))
	}
	bw.WriteString("\n\n")

	return bw.Flush()
}

// glyphAt returns 'W' or 'B' for an occupied square and a blank otherwise.
func glyphAt(board *chess.Board, sq chess.Square) byte {
	if pawn, ok := board.PawnAt(sq); ok {
		return pawn.Colour.Glyph()
	}
	return padding[0]
}
