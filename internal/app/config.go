package app

import (
	"errors"
	"fmt"

	"github.com/specialistvlad/seqdecode/internal/decoder"
	"github.com/specialistvlad/seqdecode/internal/render"
)

// DefaultRecordingPath is read when no path is given anywhere.
const DefaultRecordingPath = "sequence.bin"

// Config holds everything a single decode run needs. It is built once and
// not modified afterwards.
type Config struct {
	RecordingPath string

	ConvertEscape bool
	SplitCommands bool

	Highlight    string // auto, always or never
	OutputFormat string // text or json

	LogFormat string
	LogLevel  string
}

// NewConfig validates cfg and returns a copy of it.
func NewConfig(cfg Config) (*Config, error) {
	if cfg.RecordingPath == "" {
		return nil, errors.New("RecordingPath is a required configuration field and cannot be empty")
	}

	switch cfg.Highlight {
	case render.HighlightAuto, render.HighlightAlways, render.HighlightNever:
	default:
		return nil, fmt.Errorf("invalid highlight %q: must be 'auto', 'always' or 'never'", cfg.Highlight)
	}

	switch cfg.OutputFormat {
	case render.FormatText, render.FormatJSON:
	default:
		return nil, fmt.Errorf("invalid output-format %q: must be 'text' or 'json'", cfg.OutputFormat)
	}

	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, fmt.Errorf("invalid log-format %q: must be 'text' or 'json'", cfg.LogFormat)
	}

	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return nil, fmt.Errorf("invalid log-level %q: must be 'debug', 'info', 'warn', or 'error'", cfg.LogLevel)
	}

	return &cfg, nil
}

// DecoderOptions returns the pipeline switches carried by the config.
func (c *Config) DecoderOptions() decoder.Options {
	return decoder.Options{
		ConvertEscape: c.ConvertEscape,
		SplitCommands: c.SplitCommands,
	}
}
