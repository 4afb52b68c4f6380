package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/seqdecode/internal/app"
	"github.com/specialistvlad/seqdecode/internal/config"
	"github.com/specialistvlad/seqdecode/internal/fsutil"
	"github.com/specialistvlad/seqdecode/internal/render"
)

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// loader reads the settings file, if one is named or present.
func Parse(args []string, output io.Writer, loader config.Loader) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("seqdecode", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
seqdecode - decode a recorded list of codepoints into readable text.

Usage:
  seqdecode [options] [RECORDING_PATH]

Arguments:
  RECORDING_PATH
    File holding a list of integers such as [27, 91, 51, 49, 109].
    Defaults to `+app.DefaultRecordingPath+`.

Options:
`)
		flagSet.PrintDefaults()
	}

	recordingFlag := flagSet.String("recording-path", "", "Path to the recording file (default \""+app.DefaultRecordingPath+"\").")
	convertFlag := flagSet.Bool("convert-escape", false, "Rewrite every ESC character to the literal token ESC.")
	splitFlag := flagSet.Bool("split-commands", false, "Print one numbered line per ESC-separated segment.")
	configFlag := flagSet.String("config", "", "Path to an HCL settings file (default \""+config.DefaultFile+"\" if present).")
	highlightFlag := flagSet.String("highlight", render.HighlightAuto, "Highlight escape markers. Options: 'auto', 'always' or 'never'.")
	outputFlag := flagSet.String("output-format", render.FormatText, "Output format. Options: 'text' or 'json'.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'.")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'.")

	if err := flagSet.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, &ExitError{Code: 2, Message: "only one recording path may be given"}
	}

	// Only flags the user actually passed take part in the merge, so a
	// settings file value is not clobbered by a flag's default.
	var flags config.Settings
	flagSet.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "recording-path":
			flags.RecordingPath = recordingFlag
		case "convert-escape":
			flags.ConvertEscape = convertFlag
		case "split-commands":
			flags.SplitCommands = splitFlag
		case "highlight":
			v := strings.ToLower(*highlightFlag)
			flags.Highlight = &v
		case "output-format":
			v := strings.ToLower(*outputFlag)
			flags.OutputFormat = &v
		case "log-format":
			v := strings.ToLower(*logFormatFlag)
			flags.LogFormat = &v
		case "log-level":
			v := strings.ToLower(*logLevelFlag)
			flags.LogLevel = &v
		}
	})
	if flagSet.NArg() == 1 {
		if flags.RecordingPath != nil {
			return nil, false, &ExitError{Code: 2, Message: "recording path given both as --recording-path and as an argument"}
		}
		path := flagSet.Arg(0)
		flags.RecordingPath = &path
	}

	fileSettings, err := loadSettings(*configFlag, loader)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	merged := config.Settings{}.Merge(fileSettings).Merge(&flags)
	slog.Debug("Settings merged.", "from_file", fileSettings != nil)

	cfg, err := app.NewConfig(app.Config{
		RecordingPath: config.StringOr(merged.RecordingPath, app.DefaultRecordingPath),
		ConvertEscape: config.BoolOr(merged.ConvertEscape, false),
		SplitCommands: config.BoolOr(merged.SplitCommands, false),
		Highlight:     config.StringOr(merged.Highlight, render.HighlightAuto),
		OutputFormat:  config.StringOr(merged.OutputFormat, render.FormatText),
		LogFormat:     config.StringOr(merged.LogFormat, "text"),
		LogLevel:      config.StringOr(merged.LogLevel, "warn"),
	})
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// loadSettings reads the named settings file, or the default one when it
// exists in the working directory. It returns nil settings when there is
// nothing to read.
func loadSettings(path string, loader config.Loader) (*config.Settings, error) {
	if path == "" {
		if !fsutil.Exists(config.DefaultFile) {
			return nil, nil
		}
		path = config.DefaultFile
	}
	if loader == nil {
		return nil, fmt.Errorf("no settings loader available to read %s", path)
	}
	return loader.Load(context.Background(), path)
}
