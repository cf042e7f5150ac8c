package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/floatkit/internal/logger"
	"github.com/alexisbeaulieu97/floatkit/internal/toast"
	"github.com/alexisbeaulieu97/floatkit/internal/tui"
)

type demoOptions struct {
	logFile string
}

func newDemoCmd(a *app) *cobra.Command {
	opts := &demoOptions{}

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Launch the interactive overlay showcase",
		Long:  "Launch a full-screen showcase with a select, a tooltip, a confirmation dialog and notifications. Mouse and keyboard both work.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDemo(cmd, a, opts)
		},
	}

	cmd.Flags().StringVar(&opts.logFile, "log-file", "", "Write diagnostics to this file while the screen is in use")

	return cmd
}

func runDemo(cmd *cobra.Command, a *app, opts *demoOptions) error {
	if !term.IsTerminal(int(os.Stdin.Fd())) {
		return newCommandError("start demo", "", fmt.Errorf("stdin is not a terminal"), "Run the demo from an interactive terminal.")
	}

	// The alternate screen owns stderr, so diagnostics go to a file or nowhere.
	var sink io.Writer = io.Discard
	if opts.logFile != "" {
		f, err := os.OpenFile(opts.logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return newCommandError("start demo", "opening --log-file", err, "Choose a writable path.")
		}
		defer f.Close()
		sink = f
	}
	logOpts := a.cfg.LoggerOptions()
	logOpts.Writer = sink
	log, err := logger.New(logOpts)
	if err != nil {
		return fmt.Errorf("create logger: %w", err)
	}
	toast.Default.SetLogger(log)

	model := tui.NewModel(tui.Options{Config: a.cfg, Logger: log})
	defer model.Close()

	log.WithComponent("demo").Info("showcase started")
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseAllMotion())
	if _, err := p.Run(); err != nil {
		return newCommandError("run demo", "", err, "Check that your terminal supports the alternate screen.")
	}
	log.WithComponent("demo").Info("showcase closed")
	return nil
}
