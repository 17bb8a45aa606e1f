package output

import (
	"encoding/json"
	"io"
	"os"
	"strings"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/errors"
)

// JSONGame represents a game record in JSON format.
type JSONGame struct {
	ID          string     `json:"id"`
	White       string     `json:"white"`
	Black       string     `json:"black"`
	InitialFEN  string     `json:"initialFEN,omitempty"`
	Moves       []JSONMove `json:"moves"`
	PlyCount    int        `json:"plyCount"`
	Result      string     `json:"result"`
	Termination string     `json:"termination"`
	FinalFEN    string     `json:"finalFEN,omitempty"`
}

// JSONMove represents a move in JSON format.
type JSONMove struct {
	Ply   int    `json:"ply"`
	Color string `json:"color"` // "white" or "black"
	UCI   string `json:"uci"`
	From  string `json:"from"`
	To    string `json:"to"`
	Class string `json:"class"`
}

// GameToJSON converts a game record to its JSON representation.
func GameToJSON(game *chess.Game) *JSONGame {
	jg := &JSONGame{
		ID:          game.ID,
		White:       game.White,
		Black:       game.Black,
		InitialFEN:  game.StartFEN,
		Moves:       make([]JSONMove, 0, len(game.Moves)),
		PlyCount:    game.PlyCount(),
		Result:      game.Result,
		Termination: game.Termination.String(),
		FinalFEN:    game.FinalFEN,
	}
	for _, m := range game.Moves {
		jg.Moves = append(jg.Moves, JSONMove{
			Ply:   m.Ply,
			Color: strings.ToLower(m.Colour.String()),
			UCI:   m.Move.String(),
			From:  m.Move.From.String(),
			To:    m.Move.To.String(),
			Class: m.Class.String(),
		})
	}
	return jg
}

// WriteGameJSON writes a single game record as indented JSON.
func WriteGameJSON(w io.Writer, game *chess.Game) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(GameToJSON(game))
}

// WriteGameJSONFile writes the game record to path, replacing any existing file.
func WriteGameJSONFile(path string, game *chess.Game) error {
	file, err := os.Create(path) //nolint:gosec // G304: CLI tool writes user-specified files
	if err != nil {
		return errors.Wrapf(err, "creating record file %s", path)
	}
	if err := WriteGameJSON(file, game); err != nil {
		file.Close() //nolint:errcheck,gosec // G104: write error takes precedence
		return errors.Wrapf(err, "writing record file %s", path)
	}
	return file.Close()
}
