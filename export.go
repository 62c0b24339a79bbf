package themeconf

// Tree converts c back into the raw option tree Resolve accepts, with every
// Extensions entry inlined next to the known keys it was found with. Empty
// optional strings and absent optional blocks are left out, so
// Resolve(c.Tree()) reproduces c.
func (c SiteConfig) Tree() map[string]any {
	locales := make(map[string]any, len(c.Locales))
	for key, loc := range c.Locales {
		locales[key] = withExtensions(loc.Extensions, map[string]any{"lang": loc.Lang})
	}
	return withExtensions(c.Extensions, map[string]any{
		"title":       c.Title,
		"description": c.Description,
		"locales":     locales,
		"theme":       c.Theme,
		"themeConfig": c.ThemeConfig.tree(),
	})
}

func (tc ThemeConfig) tree() map[string]any {
	m := map[string]any{
		"lastUpdated": tc.LastUpdated,
		"header":      tc.Header.tree(),
		"pagination":  withExtensions(tc.Pagination.Extensions, map[string]any{"perPage": tc.Pagination.PerPage}),
		"defaultPages": withExtensions(tc.DefaultPages.Extensions, map[string]any{
			"home":  tc.DefaultPages.Home,
			"posts": tc.DefaultPages.Posts,
		}),
	}
	putString(m, "lang", tc.Lang)
	if tc.PersonalInfo != nil {
		m["personalInfo"] = tc.PersonalInfo.tree()
	}
	if tc.Comments != nil {
		m["comments"] = withExtensions(tc.Comments.Extensions, map[string]any{
			"owner":        tc.Comments.Owner,
			"repo":         tc.Comments.Repo,
			"clientId":     tc.Comments.ClientID,
			"clientSecret": tc.Comments.ClientSecret,
		})
	}
	nav := make([]any, 0, len(tc.Nav))
	for _, item := range tc.Nav {
		nav = append(nav, withExtensions(item.Extensions, map[string]any{
			"text":  item.Text,
			"link":  item.Link,
			"exact": item.Exact,
		}))
	}
	m["nav"] = nav
	return withExtensions(tc.Extensions, m)
}

func (p *PersonalInfo) tree() map[string]any {
	m := make(map[string]any)
	putString(m, "nickname", p.Nickname)
	putString(m, "description", p.Description)
	putString(m, "email", p.Email)
	putString(m, "location", p.Location)
	putString(m, "organization", p.Organization)
	putString(m, "avatar", p.Avatar)
	if p.SNS != nil {
		sns := make(map[string]any, len(p.SNS))
		for platform, acct := range p.SNS {
			sns[platform] = withExtensions(acct.Extensions, map[string]any{
				"account": acct.Account,
				"link":    acct.Link,
			})
		}
		m["sns"] = sns
	}
	return withExtensions(p.Extensions, m)
}

func (h HeaderConfig) tree() map[string]any {
	bg := map[string]any{"useGeo": h.Background.UseGeo}
	putString(bg, "url", h.Background.URL)
	return withExtensions(h.Extensions, map[string]any{
		"background": withExtensions(h.Background.Extensions, bg),
		"showTitle":  h.ShowTitle,
	})
}

// withExtensions copies ext into known. Extensions only ever hold keys the
// resolver did not consume, so they never shadow a known key.
func withExtensions(ext Extensions, known map[string]any) map[string]any {
	for k, v := range ext {
		if _, ok := known[k]; ok {
			continue
		}
		known[k] = deepCopy(v)
	}
	return known
}

func putString(m map[string]any, key, s string) {
	if s != "" {
		m[key] = s
	}
}
