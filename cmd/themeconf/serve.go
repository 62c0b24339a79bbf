package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/spf13/cobra"

	"github.com/eringen/themeconf"
)

// serveSettings holds the hand-off server settings. Flags win over the
// environment, which wins over the defaults.
type serveSettings struct {
	Addr    string `env:"THEMECONF_ADDR" envDefault:":4000"`
	BaseURL string `env:"THEMECONF_BASE_URL" envDefault:"http://localhost:4000"`
}

func newServeCommand(cli *cliContext) *cobra.Command {
	var addr, baseURL string
	cmd := &cobra.Command{
		Use:   "serve <file>...",
		Short: "Serve the resolved configuration to a theme renderer",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := loadServeSettings(cmd, addr, baseURL)
			if err != nil {
				return err
			}
			cfg, err := themeconf.Load(args...)
			if err != nil {
				return err
			}

			srv := themeconf.NewServer(cfg,
				themeconf.WithBaseURL(settings.BaseURL),
				themeconf.WithLogger(cli.logger),
			)

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			errCh := make(chan error, 1)
			go func() {
				errCh <- srv.Start(settings.Addr)
			}()

			select {
			case err := <-errCh:
				return err
			case <-ctx.Done():
			}

			cli.logger.Info().Msg("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (env THEMECONF_ADDR, default :4000)")
	cmd.Flags().StringVar(&baseURL, "base-url", "", "canonical site URL (env THEMECONF_BASE_URL, default http://localhost:4000)")
	return cmd
}

func loadServeSettings(cmd *cobra.Command, addr, baseURL string) (serveSettings, error) {
	var s serveSettings
	if err := env.Parse(&s); err != nil {
		return serveSettings{}, fmt.Errorf("parse environment: %w", err)
	}
	if cmd.Flags().Changed("addr") {
		s.Addr = addr
	}
	if cmd.Flags().Changed("base-url") {
		s.BaseURL = baseURL
	}
	return s, nil
}
