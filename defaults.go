package themeconf

// DefaultPerPage is the page size used when pagination.perPage is unset.
const DefaultPerPage = 10

func (h *HeaderConfig) setDefaults() {
	h.Background.UseGeo = true
	h.ShowTitle = true
}

func (p *PaginationConfig) setDefaults() {
	if p.PerPage == 0 {
		p.PerPage = DefaultPerPage
	}
}

func (d *DefaultPagesConfig) setDefaults() {
	d.Home = true
	d.Posts = true
}

// setDefaults fills every block that is always present in a resolved theme
// config. Explicit values read from the raw tree overwrite these afterwards.
func (t *ThemeConfig) setDefaults() {
	t.LastUpdated = true
	t.Nav = []NavItem{}
	t.Header.setDefaults()
	t.Pagination.setDefaults()
	t.DefaultPages.setDefaults()
}
