// Package config provides configuration for a pawns game session.
package config

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/lgbarn/pawns-go/internal/chess"
	"github.com/lgbarn/pawns-go/internal/engine"
	"github.com/lgbarn/pawns-go/internal/errors"
)

// Config holds all program configuration.
type Config struct {
	// Streams
	Input      io.Reader
	OutputFile io.Writer
	LogFile    io.Writer

	// LogLevel is the minimum level written to LogFile.
	LogLevel zerolog.Level

	// StartFEN is the starting position; empty means the standard one.
	StartFEN string

	// AllowJump lets a double step pass an occupied square.
	AllowJump bool

	// Computer names the colour played by the computer ("white", "black"),
	// or is empty when both sides are human.
	Computer string

	// Seed for the computer player; 0 picks a time-based seed.
	Seed uint64

	// RecordFile receives the JSON game record on exit, if set.
	RecordFile string
}

// NewConfig creates a new Config with default values.
func NewConfig() *Config {
	return &Config{
		Input:      os.Stdin,
		OutputFile: os.Stdout,
		LogFile:    io.Discard,
		LogLevel:   zerolog.InfoLevel,
		StartFEN:   engine.InitialFEN,
	}
}

// Validate checks values that come from the command line.
func (c *Config) Validate() error {
	if c.Computer != "" {
		if _, err := chess.ParseColour(c.Computer); err != nil {
			return fmt.Errorf("-cpu: %v: %w", err, errors.ErrInvalidConfig)
		}
	}
	if c.StartFEN != "" {
		if _, _, err := engine.NewBoardFromFEN(c.StartFEN); err != nil {
			return fmt.Errorf("-fen: %w: %w", errors.ErrInvalidConfig, err)
		}
	}
	if c.Input == nil || c.OutputFile == nil {
		return fmt.Errorf("input and output streams are required: %w", errors.ErrInvalidConfig)
	}
	return nil
}

// ComputerColour returns the colour the computer plays, if any.
func (c *Config) ComputerColour() (chess.Colour, bool) {
	if c.Computer == "" {
		return chess.White, false
	}
	colour, err := chess.ParseColour(c.Computer)
	if err != nil {
		return chess.White, false
	}
	return colour, true
}

// Rules returns the move rules selected by the configuration.
func (c *Config) Rules() engine.Rules {
	return engine.Rules{AllowJump: c.AllowJump}
}

// NewLogger builds the structured logger writing to LogFile.
func (c *Config) NewLogger() zerolog.Logger {
	w := c.LogFile
	if w == nil {
		w = io.Discard
	}
	return zerolog.New(w).Level(c.LogLevel).With().Timestamp().Logger()
}
