// flags.go - Command-line flag definitions and configuration
package main

import (
	"flag"
	"time"

	"github.com/rs/zerolog"

	"github.com/lgbarn/pawns-go/internal/config"
)

var (
	// Game options
	startFEN  = flag.String("fen", "", "Starting position as pawn FEN (e.g. '8/pppppppp/8/8/8/8/PPPPPPPP/8 w')")
	allowJump = flag.Bool("allowjump", false, "Allow a double step over an occupied square")

	// Computer opponent
	computer = flag.String("cpu", "", "Colour played by the computer: white or black")
	seed     = flag.Uint64("seed", 0, "Random seed for the computer (0 = time based)")

	// Logging and records
	logFile    = flag.String("log", "", "Write JSON logs to this file")
	verbose    = flag.Bool("v", false, "Log rejected input as well as moves")
	recordFile = flag.String("record", "", "Write the JSON game record to this file on exit")

	// Information
	help    = flag.Bool("h", false, "Show this help message")
	version = flag.Bool("version", false, "Show version information")
)

// applyFlags copies the parsed command-line flags into cfg.
func applyFlags(cfg *config.Config) {
	if *startFEN != "" {
		cfg.StartFEN = *startFEN
	}
	cfg.AllowJump = *allowJump
	cfg.Computer = *computer
	cfg.RecordFile = *recordFile

	cfg.Seed = *seed
	if cfg.Seed == 0 {
		cfg.Seed = uint64(time.Now().UnixNano())
	}

	if *verbose {
		cfg.LogLevel = zerolog.DebugLevel
	}
}
