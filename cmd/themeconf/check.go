package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/eringen/themeconf"
)

func newCheckCommand(cli *cliContext) *cobra.Command {
	return &cobra.Command{
		Use:   "check <file>...",
		Short: "Validate configuration files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := themeconf.Load(args...)
			if err != nil {
				return err
			}
			cli.logger.Debug().
				Strs("files", args).
				Str("title", cfg.Title).
				Int("locales", len(cfg.Locales)).
				Int("nav_items", len(cfg.ThemeConfig.Nav)).
				Msg("configuration resolved")
			fmt.Fprintln(cmd.OutOrStdout(), "ok")
			return nil
		},
	}
}
