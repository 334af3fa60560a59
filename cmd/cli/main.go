package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/specialistvlad/recprint/internal/app"
	"github.com/specialistvlad/recprint/internal/cli"
	"github.com/specialistvlad/recprint/internal/config"
	"github.com/specialistvlad/recprint/internal/hclbatch"
)

// main is the entrypoint for the recprint application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelWarn,
	})))

	// The real main function handles errors and exit codes.
	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error handling.
func run(outW, errW io.Writer, args []string) error {
	return runWithLoader(outW, errW, args, hclbatch.NewLoader())
}

// runWithLoader is run with the batch loader supplied by the caller. Usage
// text and flag diagnostics go to errW so outW only ever carries records.
func runWithLoader(outW, errW io.Writer, args []string, loader config.Loader) (err error) {
	cfg, shouldExit, err := cli.Parse(args, errW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("application panicked: %v", r)
		}
	}()

	return app.NewApp(outW, errW, cfg, loader).Run(context.Background())
}
