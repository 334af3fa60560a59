package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/specialistvlad/recprint/internal/app"
	"github.com/specialistvlad/recprint/internal/record"
)

// Environment variables consulted for options not given on the command line.
const (
	EnvBatch     = "RECPRINT_BATCH"
	EnvLogLevel  = "RECPRINT_LOG_LEVEL"
	EnvLogFormat = "RECPRINT_LOG_FORMAT"
)

const defaultEnvFile = ".env"

// ExitError is a custom error type that includes a specific exit code.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

func usageError(format string, args ...any) *ExitError {
	return &ExitError{Code: 2, Message: fmt.Sprintf(format, args...)}
}

// Parse processes command-line arguments. It returns a populated Config,
// a boolean indicating if the program should exit cleanly, or an ExitError.
// Usage text, including the -h output, and flag errors are written to
// output, which the binary points at standard error.
func Parse(args []string, output io.Writer) (*app.Config, bool, error) {
	slog.Debug("CLI parser started.")
	flagSet := flag.NewFlagSet("recprint", flag.ContinueOnError)
	flagSet.SetOutput(output)

	flagSet.Usage = func() {
		fmt.Fprint(output, `
recprint - prints a batch of records, one line per record, decoding each
opaque payload as ASCII text.

Usage:
  recprint [options] [BATCH_PATH]

Arguments:
  BATCH_PATH
    Path to a .hcl batch file or a directory of .hcl files.
    Without it the built-in sample batch is printed.

Options:
`)
		flagSet.PrintDefaults()
	}

	batchFlag := flagSet.String("batch", "", "Path to the batch file or directory. Env: "+EnvBatch+".")
	bFlag := flagSet.String("b", "", "Path to the batch file or directory (shorthand).")
	generateFlag := flagSet.Int("generate", -1, "Print N generated records instead of a batch file. Negative disables.")
	expectLenFlag := flagSet.Int("expect-len", record.ExpectedLen, "Batch length that does not trigger the warning line.")
	logFormatFlag := flagSet.String("log-format", "text", "Log output format. Options: 'text' or 'json'. Env: "+EnvLogFormat+".")
	logLevelFlag := flagSet.String("log-level", "warn", "Set the logging level. Options: 'debug', 'info', 'warn', 'error'. Env: "+EnvLogLevel+".")
	envFileFlag := flagSet.String("env-file", defaultEnvFile, "Dotenv file supplying defaults for the environment variables.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, usageError("%s", err.Error())
	}
	slog.Debug("Arguments parsed successfully.")

	if flagSet.NArg() > 1 {
		return nil, false, usageError("expected at most one batch path, got %d", flagSet.NArg())
	}

	explicit := make(map[string]bool)
	flagSet.Visit(func(f *flag.Flag) { explicit[f.Name] = true })

	env, err := readEnv(*envFileFlag, explicit["env-file"])
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	path := ""
	switch {
	case *batchFlag != "":
		path = *batchFlag
	case *bFlag != "":
		path = *bFlag
	case flagSet.NArg() > 0:
		path = flagSet.Arg(0)
	case !explicit["generate"]:
		path = env(EnvBatch)
	}
	slog.Debug("Batch path determined.", "path", path)

	logFormat := strings.ToLower(*logFormatFlag)
	if v := env(EnvLogFormat); v != "" && !explicit["log-format"] {
		logFormat = strings.ToLower(v)
	}
	if logFormat != "text" && logFormat != "json" {
		return nil, false, usageError("invalid log-format: must be 'text' or 'json'")
	}

	logLevel := strings.ToLower(*logLevelFlag)
	if v := env(EnvLogLevel); v != "" && !explicit["log-level"] {
		logLevel = strings.ToLower(v)
	}
	switch logLevel {
	case "debug", "info", "warn", "error":
		// valid
	default:
		return nil, false, usageError("invalid log-level: must be 'debug', 'info', 'warn', or 'error'")
	}
	slog.Debug("CLI parameter validation complete.")

	cfg, err := app.NewConfig(app.Config{
		BatchPath:   path,
		Generate:    *generateFlag,
		ExpectedLen: *expectLenFlag,
		LogFormat:   logFormat,
		LogLevel:    logLevel,
	})
	if err != nil {
		return nil, false, usageError("%s", err.Error())
	}

	slog.Debug("CLI parser finished successfully.", "config", cfg)
	return cfg, false, nil
}

// readEnv returns a lookup where the process environment wins over values
// read from the dotenv file. A missing file is only an error when the user
// named it explicitly.
func readEnv(file string, required bool) (func(string) string, error) {
	fromFile, err := godotenv.Read(file)
	if err != nil {
		if !required && errors.Is(err, fs.ErrNotExist) {
			fromFile = map[string]string{}
		} else {
			return nil, fmt.Errorf("failed to read env file %s: %w", file, err)
		}
	}

	return func(key string) string {
		if v, ok := os.LookupEnv(key); ok {
			return v
		}
		return fromFile[key]
	}, nil
}
