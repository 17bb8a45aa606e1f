package chess

// Pawn is a pawn standing on a square.
type Pawn struct {
	Colour Colour
	Square Square
}

// PawnsPerSide is the number of pawns each colour starts with.
const PawnsPerSide = BoardSize

// Board holds the live pawns. At most one pawn occupies a square.
type Board struct {
	// squares[col][rank] with 0-based indices.
	squares [BoardSize][BoardSize]Piece

	counts [2]int
}

// NewBoard creates a new empty board.
func NewBoard() *Board {
	return &Board{}
}

// NewInitialBoard returns a board with eight pawns per side on their start ranks.
func NewInitialBoard() *Board {
	b := NewBoard()
	b.SetupInitialPosition()
	return b
}

// SetupInitialPosition clears the board and places White on rank 2 and Black on rank 7.
func (b *Board) SetupInitialPosition() {
	*b = Board{}
	for col := Col(FirstCol); col <= LastCol; col++ {
		b.Place(Sq(col, White.StartRank()), White)
		b.Place(Sq(col, Black.StartRank()), Black)
	}
}

// Get returns the piece at the given square, or Empty if it is off the board.
func (b *Board) Get(sq Square) Piece {
	if !sq.Valid() {
		return Empty
	}
	return b.squares[ColConvert(sq.Col)][RankConvert(sq.Rank)]
}

// PawnAt returns the pawn at sq. The boolean is false if the square is empty.
func (b *Board) PawnAt(sq Square) (Pawn, bool) {
	piece := b.Get(sq)
	if piece == Empty {
		return Pawn{}, false
	}
	return Pawn{Colour: piece.Colour(), Square: sq}, true
}

// Place puts a pawn of the given colour on sq, replacing whatever was there.
func (b *Board) Place(sq Square, colour Colour) {
	if !sq.Valid() {
		return
	}
	b.set(sq, PawnOf(colour))
}

// RemovePawn takes the pawn off the board. It reports false if the pawn
// was not on its square.
func (b *Board) RemovePawn(p Pawn) bool {
	if b.Get(p.Square) != PawnOf(p.Colour) {
		return false
	}
	b.set(p.Square, Empty)
	return true
}

// RelocatePawn moves the pawn at from onto to. It reports false, leaving the
// board untouched, when there is no pawn at from.
func (b *Board) RelocatePawn(from, to Square) bool {
	piece := b.Get(from)
	if piece == Empty || !to.Valid() {
		return false
	}
	b.set(from, Empty)
	b.set(to, piece)
	return true
}

func (b *Board) set(sq Square, piece Piece) {
	c, r := ColConvert(sq.Col), RankConvert(sq.Rank)
	if old := b.squares[c][r]; old != Empty {
		b.counts[old.Colour()]--
	}
	if piece != Empty {
		b.counts[piece.Colour()]++
	}
	b.squares[c][r] = piece
}

// Count returns how many pawns of the given colour are on the board.
func (b *Board) Count(colour Colour) int {
	return b.counts[colour]
}

// Pawns returns the pawns of the given colour, ordered by file then rank.
func (b *Board) Pawns(colour Colour) []Pawn {
	pawns := make([]Pawn, 0, b.counts[colour])
	want := PawnOf(colour)
	for c := 0; c < BoardSize; c++ {
		for r := 0; r < BoardSize; r++ {
			if b.squares[c][r] == want {
				pawns = append(pawns, Pawn{
					Colour: colour,
					Square: Sq(Col(ColBase+c), Rank(RankBase+r)),
				})
			}
		}
	}
	return pawns
}

// Copy creates a deep copy of the board.
func (b *Board) Copy() *Board {
	newBoard := &Board{}
	*newBoard = *b
	return newBoard
}
