package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/seqdecode/internal/app"
	"github.com/specialistvlad/seqdecode/internal/cli"
	"github.com/specialistvlad/seqdecode/internal/config"
)

// main is the entrypoint for the seqdecode application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	os.Exit(run(os.Stdout, os.Stderr, os.Args[1:]))
}

// run encapsulates the main application logic and returns the process exit
// code, which keeps it testable.
func run(outW, errW io.Writer, args []string) int {
	appConfig, shouldExit, err := cli.Parse(args, errW, config.NewHCLLoader())
	if err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(errW, exitErr.Message)
			return exitErr.Code
		}
		fmt.Fprintln(errW, err)
		return 1
	}
	if shouldExit {
		return 0
	}

	seqApp := app.NewApp(outW, errW, appConfig)
	if err := seqApp.Run(context.Background()); err != nil {
		fmt.Fprintf(errW, "seqdecode: %v\n", err)
		return 1
	}
	return 0
}
