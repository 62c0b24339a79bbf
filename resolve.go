package themeconf

import (
	"fmt"
	"slices"
	"strings"
)

const (
	pathThemeConfig  = "themeConfig"
	pathPersonalInfo = "themeConfig.personalInfo"
	pathSNS          = "themeConfig.personalInfo.sns"
	pathBackground   = "themeConfig.header.background"
	pathNav          = "themeConfig.nav"
)

// Resolve validates raw and returns the resolved configuration with every
// documented default applied. raw is typically the output of Decode or
// LoadFiles but may come from any source.
//
// Resolve stops at the first problem and reports it as a *ConfigError.
// Checks run in this order: required top-level fields, locales, theme
// blocks, social accounts, navigation, then link syntax. Resolve has no side
// effects and never retains or modifies raw.
func Resolve(raw map[string]any) (SiteConfig, error) {
	root := newObject("", raw)

	var cfg SiteConfig
	var err error
	if cfg.Title, err = root.requireString("title"); err != nil {
		return SiteConfig{}, err
	}
	if cfg.Description, err = root.requireString("description"); err != nil {
		return SiteConfig{}, err
	}
	locales, err := root.requireObject("locales")
	if err != nil {
		return SiteConfig{}, err
	}
	if cfg.Theme, err = root.requireString("theme"); err != nil {
		return SiteConfig{}, err
	}

	if cfg.Locales, err = resolveLocales(locales); err != nil {
		return SiteConfig{}, err
	}
	if cfg.ThemeConfig, err = resolveThemeConfig(root); err != nil {
		return SiteConfig{}, err
	}
	if err := checkLinks(&cfg.ThemeConfig); err != nil {
		return SiteConfig{}, err
	}

	cfg.Extensions = root.extensions()
	return cfg, nil
}

func resolveLocales(o *object) (map[string]Locale, error) {
	keys := o.keys()
	if len(keys) == 0 {
		return nil, &ConfigError{Kind: KindEmptyLocales, Path: o.path}
	}
	locales := make(map[string]Locale, len(keys))
	for _, key := range keys {
		entry, err := o.requireObject(key)
		if err != nil {
			return nil, err
		}
		lang, err := entry.requireString("lang")
		if err != nil {
			return nil, err
		}
		locales[key] = Locale{Lang: lang, Extensions: entry.extensions()}
	}
	return locales, nil
}

func resolveThemeConfig(root *object) (ThemeConfig, error) {
	var tc ThemeConfig
	tc.setDefaults()

	o, ok, err := root.optionalObject(pathThemeConfig)
	if err != nil || !ok {
		return tc, err
	}

	if tc.Lang, err = o.optionalString("lang"); err != nil {
		return ThemeConfig{}, err
	}
	if tc.LastUpdated, err = o.optionalBool("lastUpdated", true); err != nil {
		return ThemeConfig{}, err
	}

	info, sns, err := resolvePersonalInfo(o)
	if err != nil {
		return ThemeConfig{}, err
	}
	tc.PersonalInfo = info
	if tc.Header, err = resolveHeader(o); err != nil {
		return ThemeConfig{}, err
	}
	if tc.Comments, err = resolveComments(o); err != nil {
		return ThemeConfig{}, err
	}
	if tc.Pagination, err = resolvePagination(o); err != nil {
		return ThemeConfig{}, err
	}
	if tc.DefaultPages, err = resolveDefaultPages(o); err != nil {
		return ThemeConfig{}, err
	}

	if sns != nil {
		if info.SNS, err = resolveSNS(sns); err != nil {
			return ThemeConfig{}, err
		}
	}
	if tc.Nav, err = resolveNav(o); err != nil {
		return ThemeConfig{}, err
	}

	tc.Extensions = o.extensions()
	return tc, nil
}

// resolvePersonalInfo returns the sns mapping unresolved; social accounts are
// validated after the remaining theme blocks.
func resolvePersonalInfo(tc *object) (*PersonalInfo, *object, error) {
	o, ok, err := tc.optionalObject("personalInfo")
	if err != nil || !ok {
		return nil, nil, err
	}

	info := &PersonalInfo{}
	fields := []struct {
		key string
		dst *string
	}{
		{"nickname", &info.Nickname},
		{"description", &info.Description},
		{"email", &info.Email},
		{"location", &info.Location},
		{"organization", &info.Organization},
		{"avatar", &info.Avatar},
	}
	for _, f := range fields {
		if *f.dst, err = o.optionalString(f.key); err != nil {
			return nil, nil, err
		}
	}

	sns, _, err := o.optionalObject("sns")
	if err != nil {
		return nil, nil, err
	}
	info.Extensions = o.extensions()
	return info, sns, nil
}

func resolveSNS(o *object) (map[string]SocialAccount, error) {
	keys := o.keys()
	accounts := make(map[string]SocialAccount, len(keys))
	for _, platform := range keys {
		entry, err := o.requireObject(platform)
		if err != nil {
			return nil, err
		}
		acct := SocialAccount{Platform: platform}
		if acct.Account, err = entry.requireString("account"); err != nil {
			return nil, err
		}
		if acct.Link, err = entry.requireString("link"); err != nil {
			return nil, err
		}
		acct.Extensions = entry.extensions()
		accounts[platform] = acct
	}
	return accounts, nil
}

func resolveHeader(tc *object) (HeaderConfig, error) {
	var h HeaderConfig
	h.setDefaults()

	o, ok, err := tc.optionalObject("header")
	if err != nil || !ok {
		return h, err
	}

	bg, ok, err := o.optionalObject("background")
	if err != nil {
		return HeaderConfig{}, err
	}
	if ok {
		if h.Background.URL, err = bg.optionalString("url"); err != nil {
			return HeaderConfig{}, err
		}
		if h.Background.UseGeo, err = bg.optionalBool("useGeo", true); err != nil {
			return HeaderConfig{}, err
		}
		h.Background.Extensions = bg.extensions()
	}
	if h.ShowTitle, err = o.optionalBool("showTitle", true); err != nil {
		return HeaderConfig{}, err
	}
	h.Extensions = o.extensions()
	return h, nil
}

// resolveComments enforces the all-or-nothing rule. A block with none of the
// four credentials counts as absent; empty strings count as missing.
func resolveComments(tc *object) (*CommentsConfig, error) {
	o, ok, err := tc.optionalObject("comments")
	if err != nil || !ok {
		return nil, err
	}

	c := &CommentsConfig{}
	fields := []struct {
		key string
		dst *string
	}{
		{"owner", &c.Owner},
		{"repo", &c.Repo},
		{"clientId", &c.ClientID},
		{"clientSecret", &c.ClientSecret},
	}
	var missing []string
	for _, f := range fields {
		if *f.dst, err = o.optionalString(f.key); err != nil {
			return nil, err
		}
		if *f.dst == "" {
			missing = append(missing, f.key)
		}
	}
	switch len(missing) {
	case 0:
		c.Extensions = o.extensions()
		return c, nil
	case len(fields):
		return nil, nil
	default:
		return nil, &ConfigError{
			Kind:   KindIncompleteComments,
			Path:   o.at(missing[0]),
			Detail: "missing " + strings.Join(missing, ", "),
		}
	}
}

func resolvePagination(tc *object) (PaginationConfig, error) {
	var p PaginationConfig
	o, ok, err := tc.optionalObject("pagination")
	if err != nil {
		return PaginationConfig{}, err
	}
	if ok {
		if v, present := o.lookup("perPage"); present {
			n, isInt := asInt(v)
			if !isInt || n < 1 {
				return PaginationConfig{}, &ConfigError{
					Kind:   KindInvalidPagination,
					Path:   o.at("perPage"),
					Detail: fmt.Sprintf("want a positive integer, got %v", v),
				}
			}
			p.PerPage = n
		}
		p.Extensions = o.extensions()
	}
	p.setDefaults()
	return p, nil
}

func resolveDefaultPages(tc *object) (DefaultPagesConfig, error) {
	var d DefaultPagesConfig
	d.setDefaults()

	o, ok, err := tc.optionalObject("defaultPages")
	if err != nil || !ok {
		return d, err
	}
	if d.Home, err = o.optionalBool("home", true); err != nil {
		return DefaultPagesConfig{}, err
	}
	if d.Posts, err = o.optionalBool("posts", true); err != nil {
		return DefaultPagesConfig{}, err
	}
	d.Extensions = o.extensions()
	return d, nil
}

func resolveNav(tc *object) ([]NavItem, error) {
	v, ok := tc.lookup("nav")
	if !ok {
		return []NavItem{}, nil
	}
	items, ok := asSlice(v)
	if !ok {
		return nil, invalidType(pathNav, "sequence", v)
	}

	nav := make([]NavItem, 0, len(items))
	for i, item := range items {
		path := indexPath(pathNav, i)
		m, ok := asMap(item)
		if !ok {
			return nil, invalidType(path, "mapping", item)
		}
		o := newObject(path, m)
		var n NavItem
		var err error
		if n.Text, err = o.requireString("text"); err != nil {
			return nil, err
		}
		if n.Link, err = o.requireString("link"); err != nil {
			return nil, err
		}
		if n.Exact, err = o.optionalBool("exact", false); err != nil {
			return nil, err
		}
		n.Extensions = o.extensions()
		nav = append(nav, n)
	}
	return nav, nil
}

// checkLinks runs the syntax pass over every URI field of an otherwise
// resolved theme config. It never touches the network.
func checkLinks(tc *ThemeConfig) error {
	if info := tc.PersonalInfo; info != nil {
		if info.Avatar != "" && !validReference(info.Avatar) {
			return invalidLink(joinPath(pathPersonalInfo, "avatar"), info.Avatar)
		}
		platforms := make([]string, 0, len(info.SNS))
		for p := range info.SNS {
			platforms = append(platforms, p)
		}
		slices.Sort(platforms)
		for _, p := range platforms {
			if link := info.SNS[p].Link; !validLink(link) {
				return invalidLink(joinPath(joinPath(pathSNS, p), "link"), link)
			}
		}
	}
	if url := tc.Header.Background.URL; url != "" && !validReference(url) {
		return invalidLink(joinPath(pathBackground, "url"), url)
	}
	for i, item := range tc.Nav {
		if !validLink(item.Link) {
			return invalidLink(joinPath(indexPath(pathNav, i), "link"), item.Link)
		}
	}
	return nil
}
