package config

import (
	"io"

	"github.com/rs/zerolog"
)

// ConfigBuilder provides a fluent API for building Config instances.
type ConfigBuilder struct {
	cfg *Config
}

// NewConfigBuilder creates a new ConfigBuilder with default values.
func NewConfigBuilder() *ConfigBuilder {
	return &ConfigBuilder{
		cfg: NewConfig(),
	}
}

// Build returns the built Config.
func (b *ConfigBuilder) Build() *Config {
	return b.cfg
}

// WithInput sets the stream player input is read from.
func (b *ConfigBuilder) WithInput(r io.Reader) *ConfigBuilder {
	b.cfg.Input = r
	return b
}

// WithOutput sets the output writer.
func (b *ConfigBuilder) WithOutput(w io.Writer) *ConfigBuilder {
	b.cfg.OutputFile = w
	return b
}

// WithLog sets the log writer and minimum level.
func (b *ConfigBuilder) WithLog(w io.Writer, level zerolog.Level) *ConfigBuilder {
	b.cfg.LogFile = w
	b.cfg.LogLevel = level
	return b
}

// WithStartFEN sets the starting position.
func (b *ConfigBuilder) WithStartFEN(fen string) *ConfigBuilder {
	b.cfg.StartFEN = fen
	return b
}

// WithAllowJump controls whether a double step may pass an occupied square.
func (b *ConfigBuilder) WithAllowJump(enabled bool) *ConfigBuilder {
	b.cfg.AllowJump = enabled
	return b
}

// WithComputer makes the computer play the named colour.
func (b *ConfigBuilder) WithComputer(colour string) *ConfigBuilder {
	b.cfg.Computer = colour
	return b
}

// WithSeed sets the computer player's random seed.
func (b *ConfigBuilder) WithSeed(seed uint64) *ConfigBuilder {
	b.cfg.Seed = seed
	return b
}

// WithRecordFile sets where the JSON game record is written.
func (b *ConfigBuilder) WithRecordFile(path string) *ConfigBuilder {
	b.cfg.RecordFile = path
	return b
}
