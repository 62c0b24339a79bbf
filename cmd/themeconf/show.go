package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/eringen/themeconf"
)

func newShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <file>...",
		Short: "Summarize the resolved configuration",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := themeconf.Load(args...)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderSummary(cfg, isTerminal(out)))
			return nil
		},
	}
}

func renderSummary(cfg themeconf.SiteConfig, colorize bool) string {
	tc := cfg.ThemeConfig
	sections := []string{
		renderTable("Site", []string{"Setting", "Value"}, siteRows(cfg), colorize),
		renderTable("Locales", []string{"Path", "Lang", "Tag"}, localeRows(cfg), colorize),
	}
	if len(tc.Nav) > 0 {
		rows := make([][]string, 0, len(tc.Nav))
		for i, item := range tc.Nav {
			rows = append(rows, []string{strconv.Itoa(i + 1), item.Text, item.Link, yesNo(item.Exact)})
		}
		sections = append(sections, renderTable("Navigation", []string{"#", "Text", "Link", "Exact"}, rows, colorize))
	}
	if info := tc.PersonalInfo; info != nil && len(info.SNS) > 0 {
		sections = append(sections, renderTable("Social", []string{"Platform", "Account", "Link", "Icon"}, socialRows(info), colorize))
	}
	return strings.Join(sections, "\n\n")
}

func siteRows(cfg themeconf.SiteConfig) [][]string {
	tc := cfg.ThemeConfig
	defaultLocale := "-"
	if key, loc, ok := cfg.DefaultLocale(); ok {
		defaultLocale = fmt.Sprintf("%s (%s)", key, loc.Lang)
	}
	background := tc.Header.Background.Mode().String()
	if tc.Header.Background.URL != "" {
		background += " " + tc.Header.Background.URL
	}
	comments := "disabled"
	if tc.Comments != nil {
		comments = tc.Comments.Owner + "/" + tc.Comments.Repo
	}
	rows := [][]string{
		{"Title", cfg.Title},
		{"Description", cfg.Description},
		{"Theme", cfg.Theme},
		{"Default locale", defaultLocale},
		{"Theme language", orDash(tc.Lang)},
	}
	if info := tc.PersonalInfo; info != nil {
		rows = append(rows,
			[]string{"Nickname", orDash(info.Nickname)},
			[]string{"Email", orDash(info.Email)},
			[]string{"Avatar", orDash(info.Avatar)},
		)
	}
	rows = append(rows,
		[]string{"Header background", background},
		[]string{"Header title", yesNo(tc.Header.ShowTitle)},
		[]string{"Last updated", yesNo(tc.LastUpdated)},
		[]string{"Comments", comments},
		[]string{"Posts per page", strconv.Itoa(tc.Pagination.PerPage)},
		[]string{"Home page", yesNo(tc.DefaultPages.Home)},
		[]string{"Posts page", yesNo(tc.DefaultPages.Posts)},
	)
	return rows
}

func localeRows(cfg themeconf.SiteConfig) [][]string {
	keys := make([]string, 0, len(cfg.Locales))
	for k := range cfg.Locales {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	rows := make([][]string, 0, len(keys))
	for _, k := range keys {
		loc := cfg.Locales[k]
		rows = append(rows, []string{k, loc.Lang, loc.Tag().String()})
	}
	return rows
}

func socialRows(info *themeconf.PersonalInfo) [][]string {
	platforms := make([]string, 0, len(info.SNS))
	for p := range info.SNS {
		platforms = append(platforms, p)
	}
	slices.Sort(platforms)
	rows := make([][]string, 0, len(platforms))
	for _, p := range platforms {
		acct := info.SNS[p]
		icon := "custom"
		if acct.Known() {
			icon = "built-in"
		}
		rows = append(rows, []string{p, acct.Account, acct.Link, icon})
	}
	return rows
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}

func orDash(s string) string {
	if strings.TrimSpace(s) == "" {
		return "-"
	}
	return s
}
