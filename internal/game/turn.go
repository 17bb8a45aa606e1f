// Package game runs a pawns-only chess game: whose turn it is, applying
// submitted moves and deciding when the game is over.
package game

import "github.com/lgbarn/pawns-go/internal/chess"

// Turn is the active/waiting player pair. It is passed by value; Next
// returns the pair for the following turn.
type Turn struct {
	Active  chess.Player
	Waiting chess.Player
}

// NewTurn creates the turn state with toMove active.
func NewTurn(white, black chess.Player, toMove chess.Colour) Turn {
	if toMove == chess.Black {
		return Turn{Active: black, Waiting: white}
	}
	return Turn{Active: white, Waiting: black}
}

// Next swaps the active and waiting players.
func (t Turn) Next() Turn {
	return Turn{Active: t.Waiting, Waiting: t.Active}
}

// Player returns the player of the given colour.
func (t Turn) Player(colour chess.Colour) chess.Player {
	if t.Active.Colour == colour {
		return t.Active
	}
	return t.Waiting
}
