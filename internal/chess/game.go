package chess

// MoveClass categorizes the pawn moves the rules allow.
type MoveClass int

const (
	PawnAdvance MoveClass = iota
	PawnDoubleAdvance
	PawnCapture
	EnPassantCapture
)

// String returns the string representation of a move class.
func (c MoveClass) String() string {
	switch c {
	case PawnAdvance:
		return "advance"
	case PawnDoubleAdvance:
		return "double-advance"
	case PawnCapture:
		return "capture"
	case EnPassantCapture:
		return "en-passant"
	}
	return "unknown"
}

// IsCapture returns true if the move class removes an opposing pawn.
func (c MoveClass) IsCapture() bool {
	return c == PawnCapture || c == EnPassantCapture
}

// Termination records why a game ended.
type Termination int

const (
	Unterminated Termination = iota
	ReachedLastRank
	CapturedAll
	NoLegalMoves
	Abandoned
)

// String returns the string representation of a termination.
func (t Termination) String() string {
	switch t {
	case ReachedLastRank:
		return "reached last rank"
	case CapturedAll:
		return "captured all pawns"
	case NoLegalMoves:
		return "stalemate"
	case Abandoned:
		return "abandoned"
	}
	return "unterminated"
}

// Result strings, as used in PGN.
const (
	ResultWhiteWins = "1-0"
	ResultBlackWins = "0-1"
	ResultDraw      = "1/2-1/2"
	ResultUnknown   = "*"
)

// WinResult returns the result string for a win by the given colour.
func WinResult(winner Colour) string {
	if winner == White {
		return ResultWhiteWins
	}
	return ResultBlackWins
}

// PlayedMove is one committed move in a game record.
type PlayedMove struct {
	Ply    int
	Colour Colour
	Move   Move
	Class  MoveClass
}

// Game is the record of a single game: who played, what was played and how it ended.
type Game struct {
	ID       string
	White    string
	Black    string
	StartFEN string

	Moves []PlayedMove

	Result      string
	Termination Termination
	FinalFEN    string
}

// NewGame creates a new, unfinished game record.
func NewGame(id, white, black, startFEN string) *Game {
	return &Game{
		ID:       id,
		White:    white,
		Black:    black,
		StartFEN: startFEN,
		Result:   ResultUnknown,
	}
}

// AddMove appends a committed move and returns its ply number (1-based).
func (g *Game) AddMove(colour Colour, move Move, class MoveClass) int {
	ply := len(g.Moves) + 1
	g.Moves = append(g.Moves, PlayedMove{Ply: ply, Colour: colour, Move: move, Class: class})
	return ply
}

// PlyCount returns the number of committed moves.
func (g *Game) PlyCount() int {
	return len(g.Moves)
}

// Finish sets the result and termination of the game.
func (g *Game) Finish(result string, termination Termination, finalFEN string) {
	g.Result = result
	g.Termination = termination
	g.FinalFEN = finalFEN
}

// IsFinished returns true once a termination has been recorded.
func (g *Game) IsFinished() bool {
	return g.Termination != Unterminated
}
