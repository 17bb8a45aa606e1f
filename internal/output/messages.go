package output

import (
	stderrors "errors"
	"fmt"
	"io"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/errors"
)

// Player-facing message texts.
const (
	MsgTitle        = "Pawns-Only Chess"
	MsgPlayerOne    = "First Player's name:"
	MsgPlayerTwo    = "Second Player's name:"
	MsgPlayersTurn  = "%s's turn:"
	MsgInvalidInput = "Invalid Input"
	MsgNoPawn       = "No %s pawn at %s"
	MsgWin          = "%s Wins!"
	MsgStalemate    = "Stalemate!"
	MsgBye          = "Bye!"
)

// Printer writes the game's messages and board to the player's terminal.
type Printer struct {
	w io.Writer
}

// NewPrinter creates a printer writing to w.
func NewPrinter(w io.Writer) *Printer {
	return &Printer{w: w}
}

// Line writes a single line of text.
func (p *Printer) Line(text string) {
	fmt.Fprintln(p.w, text)
}

// Title writes the game banner.
func (p *Printer) Title() {
	p.Line(MsgTitle)
}

// Turn prompts the named player for a move.
func (p *Printer) Turn(name string) {
	p.Line(fmt.Sprintf(MsgPlayersTurn, name))
}

// Board renders the board.
func (p *Printer) Board(board *chess.Board) error {
	return WriteBoard(p.w, board)
}

// Rejection explains why input was refused. A missing pawn names the colour
// and square; everything else is reported as invalid input.
func (p *Printer) Rejection(err error) {
	var moveErr *errors.MoveError
	if stderrors.Is(err, errors.ErrNoPawn) && stderrors.As(err, &moveErr) {
		p.Line(fmt.Sprintf(MsgNoPawn, moveErr.Colour, moveErr.Square))
		return
	}
	p.Line(MsgInvalidInput)
}

// Win announces the winning colour.
func (p *Printer) Win(winner chess.Colour) {
	p.Line(fmt.Sprintf(MsgWin, winner))
}

// Stalemate announces a stalemate.
func (p *Printer) Stalemate() {
	p.Line(MsgStalemate)
}

// Bye writes the farewell.
func (p *Printer) Bye() {
	p.Line(MsgBye)
}

// Echo repeats input chosen by a computer player after its prompt.
func (p *Printer) Echo(input string) {
	p.Line(input)
}
