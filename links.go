package themeconf

import (
	"net/url"
	"strings"
	"unicode"
)

// validLink reports whether s is an absolute URI or a root-relative path.
// Used for navigation and social links.
func validLink(s string) bool {
	u, ok := parseReference(s)
	if !ok {
		return false
	}
	if u.Scheme != "" || u.Host != "" {
		return true
	}
	return strings.HasPrefix(u.Path, "/")
}

// validReference additionally accepts relative references such as
// img/me.jpeg. Used for asset fields like the avatar.
func validReference(s string) bool {
	_, ok := parseReference(s)
	return ok
}

func parseReference(s string) (*url.URL, bool) {
	if s == "" || strings.IndexFunc(s, unicode.IsSpace) >= 0 {
		return nil, false
	}
	u, err := url.Parse(s)
	if err != nil {
		return nil, false
	}
	if u.Scheme != "" && u.Host == "" && u.Opaque == "" {
		return nil, false
	}
	return u, true
}
