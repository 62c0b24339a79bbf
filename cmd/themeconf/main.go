package main

import (
	"fmt"
	"os"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// version is set at build time via ldflags.
var version = "dev"

func main() {
	if err := newRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// cliContext carries state shared by every subcommand.
type cliContext struct {
	logger zerolog.Logger
}

func newRootCommand() *cobra.Command {
	var logLevel string
	cli := &cliContext{logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "themeconf",
		Short: "Validate and resolve blog theme configuration files",
		Long: `themeconf - validate and resolve blog theme configuration files

Configuration files may be JSON (comments allowed), YAML or TOML. When
several files are given they are layered in order, later files winning.`,
		Example: `  themeconf init myblog
  themeconf check themeconf.yaml
  themeconf show themeconf.yaml themeconf.local.yaml
  themeconf dump --format toml themeconf.yaml`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := newLogger(cmd.ErrOrStderr(), logLevel)
			if err != nil {
				return err
			}
			cli.logger = logger
			return nil
		},
	}
	root.PersistentFlags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	root.AddCommand(
		newCheckCommand(cli),
		newShowCommand(),
		newDumpCommand(),
		newServeCommand(cli),
		newInitCommand(),
		newVersionCommand(),
	)
	return root
}

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the themeconf version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "themeconf %s\n", version)
		},
	}
}
