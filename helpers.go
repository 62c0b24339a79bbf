package themeconf

import (
	"encoding/json"
	"net/url"
	"path"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// BackgroundMode is how the theme paints the header background.
type BackgroundMode int

const (
	BackgroundBlank BackgroundMode = iota
	BackgroundGeo
	BackgroundImage
)

func (m BackgroundMode) String() string {
	switch m {
	case BackgroundGeo:
		return "geopattern"
	case BackgroundImage:
		return "image"
	default:
		return "blank"
	}
}

// Mode applies the header precedence: an image URL wins over UseGeo, and
// with neither the background is blank.
func (b Background) Mode() BackgroundMode {
	switch {
	case b.URL != "":
		return BackgroundImage
	case b.UseGeo:
		return BackgroundGeo
	default:
		return BackgroundBlank
	}
}

// Tag parses Lang as a BCP 47 tag, returning language.Und when it does not
// parse.
func (l Locale) Tag() language.Tag {
	tag, err := language.Parse(l.Lang)
	if err != nil {
		return language.Und
	}
	return tag
}

// DefaultLocale returns the root locale ("/") when present, otherwise the
// first locale by key.
func (c SiteConfig) DefaultLocale() (string, Locale, bool) {
	if loc, ok := c.Locales["/"]; ok {
		return "/", loc, true
	}
	keys := make([]string, 0, len(c.Locales))
	for k := range c.Locales {
		keys = append(keys, k)
	}
	if len(keys) == 0 {
		return "", Locale{}, false
	}
	slices.Sort(keys)
	return keys[0], c.Locales[keys[0]], true
}

// BuildURL joins a base URL with path segments, keeping any path the base
// already has. The result ends in a slash when the last segment does.
func BuildURL(base string, pathSegments ...string) string {
	u, err := url.Parse(base)
	if err != nil {
		return base
	}
	joined := path.Join(pathSegments...)
	u.Path = path.Join("/", u.Path, joined)
	if len(pathSegments) == 0 || strings.HasSuffix(pathSegments[len(pathSegments)-1], "/") {
		if !strings.HasSuffix(u.Path, "/") {
			u.Path += "/"
		}
	}
	return u.String()
}

// ResolveLink makes a root-relative link absolute under base, so a site
// served from a subpath keeps its prefix. Absolute links and unparsable
// input are returned unchanged.
func ResolveLink(base, link string) string {
	ref, err := url.Parse(link)
	if err != nil || ref.IsAbs() || ref.Host != "" {
		return link
	}
	resolved, err := url.Parse(BuildURL(base, ref.Path))
	if err != nil {
		return link
	}
	resolved.RawQuery = ref.RawQuery
	resolved.Fragment = ref.Fragment
	return resolved.String()
}

// Pages lists the canonical URLs of the pages the site is known to have:
// the theme's default home and posts pages when enabled, then every
// root-relative navigation link, without duplicates.
func (c SiteConfig) Pages(baseURL string) []string {
	var links []string
	if c.ThemeConfig.DefaultPages.Home {
		links = append(links, "/")
	}
	if c.ThemeConfig.DefaultPages.Posts {
		links = append(links, "/posts/")
	}
	for _, item := range c.ThemeConfig.Nav {
		if strings.HasPrefix(item.Link, "/") && !strings.HasPrefix(item.Link, "//") {
			links = append(links, item.Link)
		}
	}

	seen := make(map[string]struct{}, len(links))
	pages := make([]string, 0, len(links))
	for _, link := range links {
		if _, ok := seen[link]; ok {
			continue
		}
		seen[link] = struct{}{}
		pages = append(pages, ResolveLink(baseURL, link))
	}
	return pages
}

// WebsiteJSONLD returns a JSON-LD string for a WebSite schema using the
// resolved configuration.
func WebsiteJSONLD(cfg SiteConfig, baseURL string) string {
	data := map[string]any{
		"@context":    "https://schema.org",
		"@type":       "WebSite",
		"name":        cfg.Title,
		"url":         BuildURL(baseURL),
		"description": cfg.Description,
	}
	if _, loc, ok := cfg.DefaultLocale(); ok {
		data["inLanguage"] = loc.Lang
	}
	if info := cfg.ThemeConfig.PersonalInfo; info != nil && info.Nickname != "" {
		author := map[string]any{
			"@type": "Person",
			"name":  info.Nickname,
		}
		if info.Email != "" {
			author["email"] = info.Email
		}
		platforms := make([]string, 0, len(info.SNS))
		for p := range info.SNS {
			platforms = append(platforms, p)
		}
		slices.Sort(platforms)
		if len(platforms) > 0 {
			sameAs := make([]string, 0, len(platforms))
			for _, p := range platforms {
				sameAs = append(sameAs, info.SNS[p].Link)
			}
			author["sameAs"] = sameAs
		}
		data["author"] = author
	}
	b, err := json.Marshal(data)
	if err != nil {
		return "{}"
	}
	return string(b)
}
