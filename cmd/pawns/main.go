// pawns is a two-player, terminal pawns-only chess game.
package main

import (
	"bufio"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/config"
	"github.com/lgbarn/pawns-go/internal/game"
	"github.com/lgbarn/pawns-go/internal/output"
	"github.com/lgbarn/pawns-go/internal/player"
)

const programVersion = "0.1.0"

// computerName is shown in prompts for a computer-controlled side.
const computerName = "Computer"

func main() {
	flag.Usage = usage
	flag.Parse()

	if *help {
		usage()
		os.Exit(0)
	}

	if *version {
		fmt.Printf("pawns version %s\n", programVersion)
		os.Exit(0)
	}

	cfg := config.NewConfig()
	applyFlags(cfg)

	closeLog := setupLogFile(cfg)
	defer closeLog()

	if err := run(cfg); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		closeLog()
		os.Exit(1)
	}
}

// setupLogFile opens the -log file, if any, and returns its closer.
func setupLogFile(cfg *config.Config) func() {
	if *logFile == "" {
		return func() {}
	}

	file, err := os.OpenFile(*logFile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644) //nolint:gosec // G302: 0644 is appropriate for user-created log files
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening log file %s: %v\n", *logFile, err)
		os.Exit(1)
	}
	cfg.LogFile = file
	return func() {
		file.Close() //nolint:errcheck,gosec // G104: cleanup on exit
	}
}

// run plays one game with cfg's streams: it reads the player names, plays
// until the game ends and writes the record if one was requested.
func run(cfg *config.Config) error {
	if err := cfg.Validate(); err != nil {
		return err
	}

	logger := cfg.NewLogger()
	printer := output.NewPrinter(cfg.OutputFile)
	scanner := bufio.NewScanner(cfg.Input)

	printer.Title()

	cpuColour, hasComputer := cfg.ComputerColour()
	names := map[chess.Colour]string{}
	prompts := map[chess.Colour]string{chess.White: output.MsgPlayerOne, chess.Black: output.MsgPlayerTwo}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if hasComputer && colour == cpuColour {
			names[colour] = computerName
			continue
		}
		printer.Line(prompts[colour])
		name, err := player.ReadLine(scanner)
		if err == io.EOF {
			printer.Bye()
			return nil
		}
		if err != nil {
			return err
		}
		names[colour] = name
	}

	session, err := game.NewSession(cfg, names[chess.White], names[chess.Black], logger)
	if err != nil {
		return err
	}

	sources := map[chess.Colour]game.MoveSource{}
	for _, colour := range []chess.Colour{chess.White, chess.Black} {
		if hasComputer && colour == cpuColour {
			sources[colour] = player.NewRandom(cfg.Rules(), cfg.Seed)
		} else {
			sources[colour] = player.NewHuman(scanner)
		}
	}

	record := session.Play(sources[chess.White], sources[chess.Black])

	if cfg.RecordFile != "" {
		if err := output.WriteGameJSONFile(cfg.RecordFile, record); err != nil {
			return err
		}
		logger.Debug().Str("file", cfg.RecordFile).Msg("game record written")
	}
	return nil
}

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: pawns [options]\n\n")
	fmt.Fprintf(os.Stderr, "Pawns-only chess for two players at one terminal.\n")
	fmt.Fprintf(os.Stderr, "Enter moves as <from><to>, e.g. e2e4; type exit to quit.\n\n")
	fmt.Fprintf(os.Stderr, "Options:\n")
	flag.PrintDefaults()
}
