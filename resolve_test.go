package themeconf

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// blogRaw mirrors a real theme options file with pagination.perPage unset.
func blogRaw() map[string]any {
	return map[string]any{
		"title":       "香饽饽",
		"description": "This is my blog",
		"locales": map[string]any{
			"/": map[string]any{"lang": "zh-CN"},
		},
		"theme": "meteorlxy",
		"themeConfig": map[string]any{
			"lang": "zh-CN",
			"personalInfo": map[string]any{
				"nickname":     "香饽饽",
				"description":  "哟～又在写 bug 啊",
				"email":        "863461783@qq.com",
				"location":     "中国|上海",
				"organization": "魔力猫盒",
				"avatar":       "/img/me.jpeg",
				"sns": map[string]any{
					"github": map[string]any{
						"account": "shenxiang11",
						"link":    "https://github.com/shenxiang11",
					},
				},
			},
			"header": map[string]any{
				"background": map[string]any{"useGeo": true},
				"showTitle":  true,
			},
			"lastUpdated": true,
			"nav": []any{
				map[string]any{"text": "首页", "link": "/", "exact": true},
				map[string]any{"text": "文章", "link": "/posts/", "exact": false},
			},
			"comments": map[string]any{
				"owner":        "shenxiang11",
				"repo":         "personal-site",
				"clientId":     "d2d56755dfc384e95f7e",
				"clientSecret": "64263cb6fe5648e8df7f9c3bb78fc1cb49c83914",
			},
			"pagination": map[string]any{},
			"defaultPages": map[string]any{
				"home":  true,
				"posts": true,
			},
		},
	}
}

func minimalRaw() map[string]any {
	return map[string]any{
		"title":       "Blog",
		"description": "",
		"locales":     map[string]any{"/": map[string]any{"lang": "en-US"}},
		"theme":       "meteorlxy",
	}
}

func themeConfigOf(raw map[string]any) map[string]any {
	tc, ok := raw["themeConfig"].(map[string]any)
	if !ok {
		tc = map[string]any{}
		raw["themeConfig"] = tc
	}
	return tc
}

func requireKind(t *testing.T, err error, kind Kind, path string) {
	t.Helper()
	require.Error(t, err)
	var cerr *ConfigError
	require.True(t, errors.As(err, &cerr), "expected *ConfigError, got %T: %v", err, err)
	assert.Equal(t, kind, cerr.Kind, "kind for %v", err)
	assert.Equal(t, path, cerr.Path)
}

func TestResolveBlogConfig(t *testing.T) {
	cfg, err := Resolve(blogRaw())
	require.NoError(t, err)

	assert.Equal(t, "香饽饽", cfg.Title)
	assert.Equal(t, "This is my blog", cfg.Description)
	assert.Equal(t, "meteorlxy", cfg.Theme)
	assert.Equal(t, map[string]Locale{"/": {Lang: "zh-CN"}}, cfg.Locales)

	tc := cfg.ThemeConfig
	assert.Equal(t, "zh-CN", tc.Lang)
	assert.True(t, tc.LastUpdated)
	assert.Equal(t, DefaultPerPage, tc.Pagination.PerPage)
	assert.Equal(t, DefaultPagesConfig{Home: true, Posts: true}, tc.DefaultPages)

	require.NotNil(t, tc.PersonalInfo)
	assert.Equal(t, "香饽饽", tc.PersonalInfo.Nickname)
	assert.Equal(t, "哟～又在写 bug 啊", tc.PersonalInfo.Description)
	assert.Equal(t, "863461783@qq.com", tc.PersonalInfo.Email)
	assert.Equal(t, "中国|上海", tc.PersonalInfo.Location)
	assert.Equal(t, "魔力猫盒", tc.PersonalInfo.Organization)
	assert.Equal(t, "/img/me.jpeg", tc.PersonalInfo.Avatar)
	assert.Equal(t, map[string]SocialAccount{
		"github": {Platform: "github", Account: "shenxiang11", Link: "https://github.com/shenxiang11"},
	}, tc.PersonalInfo.SNS)
	assert.True(t, tc.PersonalInfo.SNS["github"].Known())

	assert.Equal(t, HeaderConfig{Background: Background{UseGeo: true}, ShowTitle: true}, tc.Header)
	assert.Equal(t, []NavItem{
		{Text: "首页", Link: "/", Exact: true},
		{Text: "文章", Link: "/posts/", Exact: false},
	}, tc.Nav)
	assert.Equal(t, &CommentsConfig{
		Owner:        "shenxiang11",
		Repo:         "personal-site",
		ClientID:     "d2d56755dfc384e95f7e",
		ClientSecret: "64263cb6fe5648e8df7f9c3bb78fc1cb49c83914",
	}, tc.Comments)
	assert.Nil(t, cfg.Extensions)
}

func TestResolveIsIdempotent(t *testing.T) {
	raw := blogRaw()
	first, err := Resolve(raw)
	require.NoError(t, err)
	second, err := Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	_, err = Resolve(map[string]any{"title": "x"})
	_, err2 := Resolve(map[string]any{"title": "x"})
	assert.Equal(t, err, err2)
}

func TestResolveDefaults(t *testing.T) {
	cfg, err := Resolve(minimalRaw())
	require.NoError(t, err)

	tc := cfg.ThemeConfig
	assert.Nil(t, tc.PersonalInfo)
	assert.Nil(t, tc.Comments)
	assert.Equal(t, 10, tc.Pagination.PerPage)
	assert.True(t, tc.DefaultPages.Home)
	assert.True(t, tc.DefaultPages.Posts)
	assert.True(t, tc.Header.ShowTitle)
	assert.True(t, tc.Header.Background.UseGeo)
	assert.Empty(t, tc.Header.Background.URL)
	assert.True(t, tc.LastUpdated)
	assert.NotNil(t, tc.Nav)
	assert.Empty(t, tc.Nav)
}

func TestResolvePartialBlocksKeepDefaults(t *testing.T) {
	raw := minimalRaw()
	themeConfigOf(raw)["header"] = map[string]any{"showTitle": false}
	themeConfigOf(raw)["defaultPages"] = map[string]any{"posts": false}

	cfg, err := Resolve(raw)
	require.NoError(t, err)
	assert.False(t, cfg.ThemeConfig.Header.ShowTitle)
	assert.True(t, cfg.ThemeConfig.Header.Background.UseGeo)
	assert.True(t, cfg.ThemeConfig.DefaultPages.Home)
	assert.False(t, cfg.ThemeConfig.DefaultPages.Posts)
}

func TestResolveMissingTopLevelField(t *testing.T) {
	for _, key := range []string{"title", "description", "locales", "theme"} {
		t.Run(key, func(t *testing.T) {
			raw := minimalRaw()
			delete(raw, key)
			_, err := Resolve(raw)
			requireKind(t, err, KindMissingField, key)
			assert.ErrorIs(t, err, ErrMissingField)
		})
	}
}

func TestResolveReportsFirstMissingField(t *testing.T) {
	raw := minimalRaw()
	delete(raw, "theme")
	delete(raw, "description")
	_, err := Resolve(raw)
	requireKind(t, err, KindMissingField, "description")

	_, err = Resolve(nil)
	requireKind(t, err, KindMissingField, "title")
}

func TestResolveNullCountsAsMissing(t *testing.T) {
	raw := minimalRaw()
	raw["title"] = nil
	_, err := Resolve(raw)
	requireKind(t, err, KindMissingField, "title")
}

func TestResolveEmptyLocales(t *testing.T) {
	raw := minimalRaw()
	raw["locales"] = map[string]any{}
	_, err := Resolve(raw)
	requireKind(t, err, KindEmptyLocales, "locales")
	assert.ErrorIs(t, err, ErrEmptyLocales)
}

func TestResolveMissingThemeBeforeEmptyLocales(t *testing.T) {
	raw := minimalRaw()
	raw["locales"] = map[string]any{}
	delete(raw, "theme")
	_, err := Resolve(raw)
	requireKind(t, err, KindMissingField, "theme")
}

func TestResolveLocaleWithoutLang(t *testing.T) {
	raw := minimalRaw()
	raw["locales"] = map[string]any{
		"/":    map[string]any{"lang": "zh-CN"},
		"/en/": map[string]any{"title": "English"},
	}
	_, err := Resolve(raw)
	requireKind(t, err, KindMissingField, `locales["/en/"].lang`)
}

func TestResolveIncompleteComments(t *testing.T) {
	raw := minimalRaw()
	themeConfigOf(raw)["comments"] = map[string]any{"owner": "me", "repo": "blog"}

	_, err := Resolve(raw)
	requireKind(t, err, KindIncompleteComments, "themeConfig.comments.clientId")
	assert.ErrorIs(t, err, ErrIncompleteComments)
	assert.Contains(t, err.Error(), "clientId, clientSecret")
}

func TestResolveCommentsEmptyStringIsMissing(t *testing.T) {
	raw := minimalRaw()
	themeConfigOf(raw)["comments"] = map[string]any{
		"owner": "me", "repo": "blog", "clientId": "id", "clientSecret": "",
	}
	_, err := Resolve(raw)
	requireKind(t, err, KindIncompleteComments, "themeConfig.comments.clientSecret")
}

func TestResolveEmptyCommentsBlockDisablesComments(t *testing.T) {
	raw := minimalRaw()
	themeConfigOf(raw)["comments"] = map[string]any{}
	cfg, err := Resolve(raw)
	require.NoError(t, err)
	assert.Nil(t, cfg.ThemeConfig.Comments)
}

func TestResolveNavOrder(t *testing.T) {
	raw := minimalRaw()
	themeConfigOf(raw)["nav"] = []any{
		map[string]any{"text": "首页", "link": "/"},
		map[string]any{"text": "文章", "link": "/posts/"},
	}
	cfg, err := Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, []NavItem{
		{Text: "首页", Link: "/"},
		{Text: "文章", Link: "/posts/"},
	}, cfg.ThemeConfig.Nav)
}

func TestResolveNavItemMissingText(t *testing.T) {
	raw := minimalRaw()
	themeConfigOf(raw)["nav"] = []any{
		map[string]any{"text": "Home", "link": "/"},
		map[string]any{"link": "/about/"},
	}
	_, err := Resolve(raw)
	requireKind(t, err, KindMissingField, "themeConfig.nav[1].text")
}

func TestResolveUnknownPlatformPassesThrough(t *testing.T) {
	raw := minimalRaw()
	themeConfigOf(raw)["personalInfo"] = map[string]any{
		"sns": map[string]any{
			"foo": map[string]any{"account": "x", "link": "https://x.com"},
		},
	}
	cfg, err := Resolve(raw)
	require.NoError(t, err)
	require.NotNil(t, cfg.ThemeConfig.PersonalInfo)
	acct := cfg.ThemeConfig.PersonalInfo.SNS["foo"]
	assert.Equal(t, SocialAccount{Platform: "foo", Account: "x", Link: "https://x.com"}, acct)
	assert.False(t, acct.Known())
	assert.False(t, KnownPlatform("foo"))
	assert.True(t, KnownPlatform("juejin"))
}

func TestResolveSocialAccountMissingLink(t *testing.T) {
	raw := minimalRaw()
	themeConfigOf(raw)["personalInfo"] = map[string]any{
		"sns": map[string]any{
			"github": map[string]any{"account": "me"},
		},
	}
	_, err := Resolve(raw)
	requireKind(t, err, KindMissingField, "themeConfig.personalInfo.sns.github.link")
}

func TestResolveKeepsUnknownKeys(t *testing.T) {
	raw := blogRaw()
	raw["base"] = "/blog/"
	raw["head"] = []any{[]any{"link", map[string]any{"rel": "icon", "href": "/favicon.ico"}}}
	tc := themeConfigOf(raw)
	tc["search"] = map[string]any{"enabled": true}
	tc["nav"] = []any{map[string]any{"text": "Home", "link": "/", "icon": "home"}}

	cfg, err := Resolve(raw)
	require.NoError(t, err)
	assert.Equal(t, Extensions{
		"base": "/blog/",
		"head": []any{[]any{"link", map[string]any{"rel": "icon", "href": "/favicon.ico"}}},
	}, cfg.Extensions)
	assert.Equal(t, Extensions{"search": map[string]any{"enabled": true}}, cfg.ThemeConfig.Extensions)
	assert.Equal(t, Extensions{"icon": "home"}, cfg.ThemeConfig.Nav[0].Extensions)

	// The snapshot shares no memory with the raw tree.
	tc["search"].(map[string]any)["enabled"] = false
	assert.Equal(t, map[string]any{"enabled": true}, cfg.ThemeConfig.Extensions["search"])
}

func TestResolveInvalidPagination(t *testing.T) {
	for name, perPage := range map[string]any{
		"zero":     0,
		"negative": -3,
		"fraction": 2.5,
		"string":   "10",
		"bool":     true,
	} {
		t.Run(name, func(t *testing.T) {
			raw := minimalRaw()
			themeConfigOf(raw)["pagination"] = map[string]any{"perPage": perPage}
			_, err := Resolve(raw)
			requireKind(t, err, KindInvalidPagination, "themeConfig.pagination.perPage")
			assert.ErrorIs(t, err, ErrInvalidPagination)
		})
	}
}

func TestResolvePaginationNumericTypes(t *testing.T) {
	for name, perPage := range map[string]any{
		"int":         20,
		"int64":       int64(20),
		"uint":        uint(20),
		"float64":     20.0,
		"json number": json.Number("20"),
	} {
		t.Run(name, func(t *testing.T) {
			raw := minimalRaw()
			themeConfigOf(raw)["pagination"] = map[string]any{"perPage": perPage}
			cfg, err := Resolve(raw)
			require.NoError(t, err)
			assert.Equal(t, 20, cfg.ThemeConfig.Pagination.PerPage)
		})
	}
}

func TestResolveInvalidLinks(t *testing.T) {
	tests := []struct {
		name  string
		patch func(tc map[string]any)
		path  string
	}{
		{
			name: "relative nav link",
			patch: func(tc map[string]any) {
				tc["nav"] = []any{map[string]any{"text": "Posts", "link": "posts/"}}
			},
			path: "themeConfig.nav[0].link",
		},
		{
			name: "nav link with spaces",
			patch: func(tc map[string]any) {
				tc["nav"] = []any{
					map[string]any{"text": "Home", "link": "/"},
					map[string]any{"text": "About", "link": "/about me/"},
				}
			},
			path: "themeConfig.nav[1].link",
		},
		{
			name: "scheme without host",
			patch: func(tc map[string]any) {
				tc["personalInfo"] = map[string]any{
					"sns": map[string]any{"github": map[string]any{"account": "me", "link": "https://"}},
				}
			},
			path: "themeConfig.personalInfo.sns.github.link",
		},
		{
			name: "empty social link",
			patch: func(tc map[string]any) {
				tc["personalInfo"] = map[string]any{
					"sns": map[string]any{"csdn": map[string]any{"account": "", "link": ""}},
				}
			},
			path: "themeConfig.personalInfo.sns.csdn.link",
		},
		{
			name: "avatar with control character",
			patch: func(tc map[string]any) {
				tc["personalInfo"] = map[string]any{"avatar": "/img/\x7fme.jpeg"}
			},
			path: "themeConfig.personalInfo.avatar",
		},
		{
			name: "background url",
			patch: func(tc map[string]any) {
				tc["header"] = map[string]any{"background": map[string]any{"url": "http://bad host/bg.jpg"}}
			},
			path: "themeConfig.header.background.url",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := minimalRaw()
			tt.patch(themeConfigOf(raw))
			_, err := Resolve(raw)
			requireKind(t, err, KindInvalidLink, tt.path)
			assert.ErrorIs(t, err, ErrInvalidLink)
		})
	}
}

func TestResolveAcceptedLinks(t *testing.T) {
	raw := minimalRaw()
	tc := themeConfigOf(raw)
	tc["personalInfo"] = map[string]any{
		"avatar": "img/avatar.jpg",
		"sns": map[string]any{
			"github": map[string]any{"account": "me", "link": "https://github.com/me"},
			"mail":   map[string]any{"account": "me", "link": "mailto:me@example.com"},
			"cdn":    map[string]any{"account": "me", "link": "//cdn.example.com/me"},
		},
	}
	tc["nav"] = []any{
		map[string]any{"text": "Home", "link": "/"},
		map[string]any{"text": "GitHub", "link": "https://github.com/me"},
		map[string]any{"text": "Tags", "link": "/tags/?sort=name#top"},
	}
	_, err := Resolve(raw)
	require.NoError(t, err)
}

func TestResolveBackgroundURLKeepsUseGeo(t *testing.T) {
	raw := minimalRaw()
	themeConfigOf(raw)["header"] = map[string]any{
		"background": map[string]any{"url": "/assets/img/bg.jpg", "useGeo": true},
	}
	cfg, err := Resolve(raw)
	require.NoError(t, err)

	bg := cfg.ThemeConfig.Header.Background
	assert.Equal(t, "/assets/img/bg.jpg", bg.URL)
	assert.True(t, bg.UseGeo)
	assert.Equal(t, BackgroundImage, bg.Mode())
}

func TestResolveInvalidType(t *testing.T) {
	tests := []struct {
		name  string
		patch func(raw map[string]any)
		path  string
	}{
		{"numeric title", func(raw map[string]any) { raw["title"] = 42 }, "title"},
		{"locales list", func(raw map[string]any) { raw["locales"] = []any{"zh-CN"} }, "locales"},
		{"theme config string", func(raw map[string]any) { raw["themeConfig"] = "meteorlxy" }, "themeConfig"},
		{"nav mapping", func(raw map[string]any) {
			themeConfigOf(raw)["nav"] = map[string]any{"text": "Home", "link": "/"}
		}, "themeConfig.nav"},
		{"nav item string", func(raw map[string]any) { themeConfigOf(raw)["nav"] = []any{"/"} }, "themeConfig.nav[0]"},
		{"exact string", func(raw map[string]any) {
			themeConfigOf(raw)["nav"] = []any{map[string]any{"text": "Home", "link": "/", "exact": "yes"}}
		}, "themeConfig.nav[0].exact"},
		{"show title string", func(raw map[string]any) {
			themeConfigOf(raw)["header"] = map[string]any{"showTitle": "true"}
		}, "themeConfig.header.showTitle"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			raw := minimalRaw()
			tt.patch(raw)
			_, err := Resolve(raw)
			requireKind(t, err, KindInvalidType, tt.path)
			assert.ErrorIs(t, err, ErrInvalidType)
		})
	}
}

func TestConfigErrorMessage(t *testing.T) {
	err := &ConfigError{Kind: KindMissingField, Path: "themeConfig.comments.clientSecret"}
	assert.Equal(t, "themeconf: themeConfig.comments.clientSecret: missing field", err.Error())
	assert.Equal(t, "MissingField", KindMissingField.String())
	assert.Equal(t, "IncompleteCommentsConfig", KindIncompleteComments.String())
}
