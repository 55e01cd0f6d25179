package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/specialistvlad/porrinha/internal/app"
	"github.com/specialistvlad/porrinha/internal/argvec"
	"github.com/specialistvlad/porrinha/internal/cli"
	"github.com/specialistvlad/porrinha/internal/hcl"
)

// main is the entrypoint for the porrinha application.
func main() {
	// Use a minimal logger until the full one is configured.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	// The real main function handles errors and exit codes.
	if err := run(ctx, os.Stdout, os.Stderr, os.Args); err != nil {
		stop()
		var exitErr *cli.ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run encapsulates the main application logic for easier testing and error
// handling. argv includes the program name.
func run(ctx context.Context, outW, errW io.Writer, argv []string) error {
	args := argvec.New(argv)
	args.SetLog(errW)

	appConfig, shouldExit, err := cli.Parse(args, outW)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}

	loader := hcl.NewLoader()
	porrinha := app.New(outW, errW, appConfig, loader)
	return porrinha.Run(ctx, appConfig)
}
