package cmd

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/zostay/go-mailparse"
	"github.com/zostay/go-mailparse/internal/config"
)

// Exit codes beyond the usual 1 for failure.
const (
	ExitNoContent      = 2
	ExitCharsetProblem = 3
)

// ExitError is returned by a command that must exit with a particular code.
type ExitError struct {
	Code int
	Err  error
}

func (e *ExitError) Error() string {
	return e.Err.Error()
}

func (e *ExitError) Unwrap() error {
	return e.Err
}

// app holds the state shared by every subcommand.
type app struct {
	configPath string
	maxDepth   int
	fields     []string
	logLevel   string

	cfg    *config.Config
	logger *slog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:           "mailparse",
		Short:         "Tools for inspecting email messages",
		SilenceErrors: true,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.configPath, "config", "", "path to a YAML configuration file")
	flags.IntVar(&a.maxDepth, "max-depth", 0, "how deep to descend into nested parts, negative for no limit")
	flags.StringSliceVar(&a.fields, "field", nil, "additional header field to collect addresses from")
	flags.StringVar(&a.logLevel, "log-level", "", "log level: debug, info, warn or error")

	rootCmd.AddCommand(
		newSummaryCmd(a),
		newContentCmd(a),
		newPartsCmd(a),
		newMboxCmd(a),
	)

	return rootCmd
}

// Execute runs the mailparse command.
func Execute() error {
	return newRootCmd().Execute()
}

// setup loads the configuration, applies the flags given on the command line
// over it and sets up the logger.
func (a *app) setup(cmd *cobra.Command) error {
	var err error
	if a.configPath != "" {
		a.cfg, err = config.LoadFromFile(a.configPath)
	} else {
		a.cfg, err = config.Load()
	}
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("max-depth") {
		a.cfg.Parser.MaxDepth = a.maxDepth
	}
	if flags.Changed("field") {
		a.cfg.Parser.AddressFields = append(a.cfg.Parser.AddressFields, a.fields...)
	}
	if flags.Changed("log-level") {
		a.cfg.Logging.Level = a.logLevel
	}

	a.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{
		Level: a.cfg.LogLevel(),
	}))

	return nil
}

// parser returns a parser configured for the command.
func (a *app) parser() *mailparse.Parser {
	opts := append(a.cfg.Options(), mailparse.WithLogger(a.logger))
	return mailparse.New(opts...)
}

// readInput reads the named file or the standard input when the name is "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "-" {
		return io.ReadAll(cmd.InOrStdin())
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("unable to read message: %w", err)
	}
	return raw, nil
}

// parseInput reads and parses the message named by path.
func (a *app) parseInput(cmd *cobra.Command, path string) (*mailparse.Parsed, error) {
	raw, err := readInput(cmd, path)
	if err != nil {
		return nil, err
	}

	m, err := a.parser().Parse(raw)
	if err != nil {
		return nil, fmt.Errorf("unable to parse message: %w", err)
	}

	return m, nil
}
