package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/specialistvlad/porrinha/internal/app"
	"github.com/specialistvlad/porrinha/internal/argvec"
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

const (
	playerOpen  = "["
	playerClose = "]"
)

// isPlayer matches the token that starts a player sub-command, e.g. "[mean]".
var isPlayer = argvec.Bracketed(playerOpen, playerClose)

const usage = `
porrinha - guess the total number of chopsticks hidden by every player.

Usage:
  porrinha [options] [--] [kind] [arg...] [kind] [arg...]...

Players:
  [fixed] HAND GUESS   always hides HAND and calls GUESS
  [random] [SEED]      random legal moves
  [mean]               hides half and expects the others to do the same

Options:
  --chopsticks N       starting chopsticks per player (default 3)
  --rounds N           round limit, 0 for none (default 100)
  --config FILE        HCL match file; its players sit first
  --log-level LEVEL    debug, info, warn or error (default info)
  --log-format FORMAT  text or json (default text)
  -h, --help           show this help
`

// Parse processes the command line held by args. It returns a populated
// Config, a boolean indicating if the program should exit cleanly, or an
// ExitError. Diagnostics about badly formed numbers go to args.Log().
func Parse(args *argvec.Vector, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.", "args", args.String())
	if args.Size() == 0 {
		fmt.Fprint(output, usage)
		return nil, true, nil
	}
	cfg := app.Config{
		LogFormat: "text",
		LogLevel:  "info",
	}

options:
	for args.Size() > 0 {
		opt, _ := args.Peek()
		if isPlayer(opt) {
			break
		}
		_ = args.Shift()

		var err error
		switch opt {
		case "--":
			break options
		case "-h", "--help":
			fmt.Fprint(output, usage)
			return nil, true, nil
		case "--chopsticks":
			cfg.Chopsticks, err = intOption(args, opt)
		case "--rounds":
			cfg.Rounds, err = intOption(args, opt)
		case "--config":
			cfg.ConfigPath, err = stringOption(args, opt)
		case "--log-level":
			cfg.LogLevel, err = stringOption(args, opt)
		case "--log-format":
			cfg.LogFormat, err = stringOption(args, opt)
		default:
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("unknown option %q", opt)}
		}
		if err != nil {
			return nil, false, err
		}
	}
	slog.Debug("Options parsed successfully.")

	for args.Size() > 0 {
		spec, err := args.SubCmdUntil(isPlayer)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		if !isPlayer(spec.ProgramName()) {
			return nil, false, &ExitError{Code: 2, Message: fmt.Sprintf("expected a player such as [mean], got %q", spec.ProgramName())}
		}
		spec.SetProgramName(argvec.Unbracket(spec.ProgramName(), playerOpen, playerClose))
		cfg.Players = append(cfg.Players, spec)
	}
	slog.Debug("Player sub-commands split.", "count", len(cfg.Players))

	if cfg.ConfigPath == "" && len(cfg.Players) == 0 {
		return nil, false, &ExitError{Code: 2, Message: "no players given: name at least one [kind] or pass --config"}
	}

	cfg.LogFormat = strings.ToLower(cfg.LogFormat)
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		return nil, false, &ExitError{Code: 2, Message: "invalid log-format: must be 'text' or 'json'"}
	}

	cfg.LogLevel = strings.ToLower(cfg.LogLevel)
	switch cfg.LogLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, &ExitError{Code: 2, Message: "invalid log-level: must be 'debug', 'info', 'warn', or 'error'"}
	}
	slog.Debug("CLI parameter validation complete.")

	config, err := app.NewConfig(cfg)
	if err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}
	return config, false, nil
}

// intOption reads the integer value of opt. A malformed number is logged by
// argvec and left as zero for app.NewConfig to judge.
func intOption(args *argvec.Vector, opt string) (*int, error) {
	var n int
	if err := argvec.Parse(args, &n); err != nil {
		return nil, missingValue(opt, err)
	}
	return &n, nil
}

func stringOption(args *argvec.Vector, opt string) (string, error) {
	s, err := args.Next()
	if err != nil {
		return "", missingValue(opt, err)
	}
	return s, nil
}

func missingValue(opt string, err error) error {
	if errors.Is(err, argvec.ErrOutOfRange) {
		return &ExitError{Code: 2, Message: fmt.Sprintf("option %s needs a value", opt)}
	}
	return err
}
