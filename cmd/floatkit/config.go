package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/floatkit/internal/config"
	"github.com/alexisbeaulieu97/floatkit/pkg/diff"
)

func newConfigCmd(a *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Inspect configuration",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "show",
		Short: "Print the effective configuration as YAML",
		Long:  "Print the configuration after defaults, the config file and FLOATKIT_* environment variables are merged.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out, err := config.Marshal(a.cfg)
			if err != nil {
				return newCommandError("render configuration", "", err, "Report this as a bug.")
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "diff",
		Short: "Show how the effective configuration differs from the defaults",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			defaults, err := config.Marshal(config.Default())
			if err != nil {
				return newCommandError("render configuration", "defaults", err, "Report this as a bug.")
			}
			effective, err := config.Marshal(a.cfg)
			if err != nil {
				return newCommandError("render configuration", "", err, "Report this as a bug.")
			}

			out := diff.Lines(defaults, effective, "defaults", "effective")
			if out == "" {
				_, err = fmt.Fprintln(cmd.OutOrStdout(), "Configuration matches the defaults.")
				return err
			}
			added, removed := diff.Changed(defaults, effective)
			a.log.WithFields(map[string]any{"added": added, "removed": removed}).Debug("configuration differs from defaults")
			_, err = fmt.Fprint(cmd.OutOrStdout(), out)
			return err
		},
	})

	return cmd
}
