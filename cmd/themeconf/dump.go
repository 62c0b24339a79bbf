package main

import (
	"encoding/json"
	"fmt"

	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/eringen/themeconf"
)

func newDumpCommand() *cobra.Command {
	var format string
	cmd := &cobra.Command{
		Use:   "dump <file>...",
		Short: "Print the resolved configuration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := themeconf.Load(args...)
			if err != nil {
				return err
			}
			out, err := encodeConfig(cfg, themeconf.Format(format))
			if err != nil {
				return err
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", string(themeconf.FormatJSON), "output format (json, yaml, toml)")
	return cmd
}

// encodeConfig writes cfg in the same shape it is read from, so the output
// loads again with themeconf.Load.
func encodeConfig(cfg themeconf.SiteConfig, format themeconf.Format) ([]byte, error) {
	tree := cfg.Tree()
	switch format {
	case themeconf.FormatJSON:
		b, err := json.MarshalIndent(tree, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("encode json: %w", err)
		}
		return append(b, '\n'), nil
	case themeconf.FormatYAML:
		b, err := yaml.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("encode yaml: %w", err)
		}
		return b, nil
	case themeconf.FormatTOML:
		b, err := toml.Marshal(tree)
		if err != nil {
			return nil, fmt.Errorf("encode toml: %w", err)
		}
		return b, nil
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}
