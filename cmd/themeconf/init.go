package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"text/template"

	"github.com/spf13/cobra"

	"github.com/eringen/themeconf/scaffold"
)

// scaffoldData holds the template variables passed to every scaffold template.
type scaffoldData struct {
	Title       string
	Description string
	Lang        string
}

func newInitCommand() *cobra.Command {
	var data scaffoldData
	cmd := &cobra.Command{
		Use:   "init [dir]",
		Short: "Write a sample configuration file",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) == 1 {
				dir = args[0]
			}
			created, err := runInit(dir, data)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, path := range created {
				fmt.Fprintf(out, "  created %s\n", path)
			}
			fmt.Fprintln(out)
			fmt.Fprintln(out, "Edit the file, then run 'themeconf check' on it.")
			return nil
		},
	}
	cmd.Flags().StringVar(&data.Title, "title", "", "site title (default: derived from the directory name)")
	cmd.Flags().StringVar(&data.Description, "description", "", "site description")
	cmd.Flags().StringVar(&data.Lang, "lang", "en-US", "site language")
	return cmd
}

func runInit(dir string, data scaffoldData) ([]string, error) {
	if data.Title == "" {
		abs, err := filepath.Abs(dir)
		if err != nil {
			return nil, err
		}
		data.Title = toTitle(filepath.Base(abs))
	}

	root := "templates"
	var created []string
	err := fs.WalkDir(scaffold.Templates, root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		relPath, err := filepath.Rel(root, path)
		if err != nil {
			return err
		}
		outPath := strings.TrimSuffix(filepath.Join(dir, relPath), ".tmpl")

		if d.IsDir() {
			return os.MkdirAll(outPath, 0o755)
		}

		content, err := scaffold.Templates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		tmpl, err := template.New(filepath.Base(path)).Parse(string(content))
		if err != nil {
			return fmt.Errorf("parse template %s: %w", path, err)
		}

		if err := writeTemplate(outPath, tmpl, data); err != nil {
			return err
		}
		created = append(created, outPath)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// writeTemplate renders tmpl into a new file at outPath. O_EXCL keeps an
// existing configuration from being overwritten.
func writeTemplate(outPath string, tmpl *template.Template, data scaffoldData) error {
	f, err := os.OpenFile(outPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%s already exists", outPath)
		}
		return fmt.Errorf("create %s: %w", outPath, err)
	}
	if err := tmpl.Execute(f, data); err != nil {
		f.Close()
		return fmt.Errorf("execute template %s: %w", tmpl.Name(), err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close %s: %w", outPath, err)
	}
	return nil
}

// toTitle converts a hyphenated or lowercase name to a title-case string.
// e.g. "my-blog" -> "My Blog", "myblog" -> "Myblog"
func toTitle(s string) string {
	parts := strings.Split(s, "-")
	for i, p := range parts {
		if len(p) > 0 {
			parts[i] = strings.ToUpper(p[:1]) + p[1:]
		}
	}
	return strings.Join(parts, " ")
}
