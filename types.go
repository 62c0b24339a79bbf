package themeconf

// Extensions holds keys a schema object does not recognise, copied verbatim
// from the raw configuration so newer theme options survive resolution.
type Extensions map[string]any

// SiteConfig is the fully resolved configuration handed to the theme renderer.
// Values are produced once by Resolve and must be treated as read-only.
type SiteConfig struct {
	Title       string            `json:"title" yaml:"title" toml:"title"`
	Description string            `json:"description" yaml:"description" toml:"description"`
	Locales     map[string]Locale `json:"locales" yaml:"locales" toml:"locales"`
	Theme       string            `json:"theme" yaml:"theme" toml:"theme"`
	ThemeConfig ThemeConfig       `json:"themeConfig" yaml:"themeConfig" toml:"themeConfig"`
	Extensions  Extensions        `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// Locale describes one localized version of the site, keyed by path in
// SiteConfig.Locales.
type Locale struct {
	Lang       string     `json:"lang" yaml:"lang" toml:"lang"`
	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// ThemeConfig carries the theme-specific options.
type ThemeConfig struct {
	Lang         string             `json:"lang,omitempty" yaml:"lang,omitempty" toml:"lang,omitempty"`
	LastUpdated  bool               `json:"lastUpdated" yaml:"lastUpdated" toml:"lastUpdated"`
	PersonalInfo *PersonalInfo      `json:"personalInfo,omitempty" yaml:"personalInfo,omitempty" toml:"personalInfo,omitempty"`
	Header       HeaderConfig       `json:"header" yaml:"header" toml:"header"`
	Nav          []NavItem          `json:"nav" yaml:"nav" toml:"nav"`
	Comments     *CommentsConfig    `json:"comments,omitempty" yaml:"comments,omitempty" toml:"comments,omitempty"`
	Pagination   PaginationConfig   `json:"pagination" yaml:"pagination" toml:"pagination"`
	DefaultPages DefaultPagesConfig `json:"defaultPages" yaml:"defaultPages" toml:"defaultPages"`
	Extensions   Extensions         `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// PersonalInfo describes the site owner. Empty fields are omitted from render.
type PersonalInfo struct {
	Nickname     string                   `json:"nickname,omitempty" yaml:"nickname,omitempty" toml:"nickname,omitempty"`
	Description  string                   `json:"description,omitempty" yaml:"description,omitempty" toml:"description,omitempty"`
	Email        string                   `json:"email,omitempty" yaml:"email,omitempty" toml:"email,omitempty"`
	Location     string                   `json:"location,omitempty" yaml:"location,omitempty" toml:"location,omitempty"`
	Organization string                   `json:"organization,omitempty" yaml:"organization,omitempty" toml:"organization,omitempty"`
	Avatar       string                   `json:"avatar,omitempty" yaml:"avatar,omitempty" toml:"avatar,omitempty"`
	SNS          map[string]SocialAccount `json:"sns,omitempty" yaml:"sns,omitempty" toml:"sns,omitempty"`
	Extensions   Extensions               `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// SocialAccount is one entry of PersonalInfo.SNS, keyed by platform name.
// Platform repeats that key and is not serialized.
type SocialAccount struct {
	Platform   string     `json:"-" yaml:"-" toml:"-"`
	Account    string     `json:"account" yaml:"account" toml:"account"`
	Link       string     `json:"link" yaml:"link" toml:"link"`
	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// HeaderConfig controls the page header.
type HeaderConfig struct {
	Background Background `json:"background" yaml:"background" toml:"background"`
	ShowTitle  bool       `json:"showTitle" yaml:"showTitle" toml:"showTitle"`
	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// Background selects the header background. When URL is set UseGeo has no
// effect; see Mode.
type Background struct {
	URL        string     `json:"url,omitempty" yaml:"url,omitempty" toml:"url,omitempty"`
	UseGeo     bool       `json:"useGeo" yaml:"useGeo" toml:"useGeo"`
	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// NavItem is one entry of the top navigation bar. Order is display order.
type NavItem struct {
	Text       string     `json:"text" yaml:"text" toml:"text"`
	Link       string     `json:"link" yaml:"link" toml:"link"`
	Exact      bool       `json:"exact" yaml:"exact" toml:"exact"`
	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// CommentsConfig holds the comment widget credentials. All four fields are
// set, or the whole block is nil.
type CommentsConfig struct {
	Owner        string     `json:"owner" yaml:"owner" toml:"owner"`
	Repo         string     `json:"repo" yaml:"repo" toml:"repo"`
	ClientID     string     `json:"clientId" yaml:"clientId" toml:"clientId"`
	ClientSecret string     `json:"clientSecret" yaml:"clientSecret" toml:"clientSecret"`
	Extensions   Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// PaginationConfig controls post list pagination.
type PaginationConfig struct {
	PerPage    int        `json:"perPage" yaml:"perPage" toml:"perPage"`
	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// DefaultPagesConfig toggles the pages the theme adds on its own.
type DefaultPagesConfig struct {
	Home       bool       `json:"home" yaml:"home" toml:"home"`
	Posts      bool       `json:"posts" yaml:"posts" toml:"posts"`
	Extensions Extensions `json:"extensions,omitempty" yaml:"extensions,omitempty" toml:"extensions,omitempty"`
}

// Platforms lists the social platforms the theme ships icons for. Other
// platform keys are accepted as-is.
var Platforms = []string{
	"github", "facebook", "linkedin", "twitter", "weibo", "zhihu", "douban",
	"reddit", "medium", "instagram", "gitlab", "bitbucket", "docker", "csdn", "juejin",
}

// KnownPlatform reports whether name is one of Platforms.
func KnownPlatform(name string) bool {
	for _, p := range Platforms {
		if p == name {
			return true
		}
	}
	return false
}

// Known reports whether the theme has a built-in icon for the account's
// platform.
func (s SocialAccount) Known() bool {
	return KnownPlatform(s.Platform)
}
