package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatkit/internal/config"
	"github.com/alexisbeaulieu97/floatkit/internal/logger"
)

type rootFlags struct {
	configPath string
	verbose    bool
}

// app carries what every subcommand needs once flags are parsed.
type app struct {
	flags *rootFlags
	cfg   config.Config
	log   *logger.Logger
}

// setup loads configuration and builds the logger. --verbose forces debug
// output regardless of the configured level.
func (a *app) setup(cmd *cobra.Command) error {
	cfg, err := config.Load(a.flags.configPath)
	if err != nil {
		return newCommandError("load configuration", a.flags.configPath, err, "Fix the reported key or run 'floatkit config show' with no --config to see defaults.")
	}
	if a.flags.verbose {
		cfg.Log.Level = "debug"
	}

	opts := cfg.LoggerOptions()
	opts.Writer = cmd.ErrOrStderr()
	log, err := logger.New(opts)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}

	a.cfg = cfg
	a.log = log
	return nil
}

func newRootCmd() *cobra.Command {
	a := &app{flags: &rootFlags{}}

	cmd := &cobra.Command{
		Use:           "floatkit",
		Short:         "Floating overlay primitives for terminal UIs",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVarP(&a.flags.configPath, "config", "c", "", "Path to a YAML config file")
	cmd.PersistentFlags().BoolVarP(&a.flags.verbose, "verbose", "v", false, "Enable debug logging")

	cmd.AddCommand(newDemoCmd(a))
	cmd.AddCommand(newPlaceCmd(a))
	cmd.AddCommand(newConfigCmd(a))
	cmd.AddCommand(newVersionCmd())

	return cmd
}

func newCommandError(operation, context string, cause error, suggestion string) error {
	return &commandError{operation: operation, context: context, cause: cause, suggestion: suggestion}
}

type commandError struct {
	operation  string
	context    string
	cause      error
	suggestion string
}

func (e *commandError) Error() string {
	if e.context == "" {
		return fmt.Sprintf("Failed to %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.cause, e.suggestion)
	}
	return fmt.Sprintf("Failed to %s: %s\n\nError: %v\n\nSuggestion: %s", e.operation, e.context, e.cause, e.suggestion)
}

func (e *commandError) Unwrap() error {
	return e.cause
}
