// Package scaffold provides the embedded sample configuration written by
// themeconf init.
package scaffold

import "embed"

// Templates contains the sample configuration files.
// Files use Go text/template syntax and have a .tmpl suffix.
//
//go:embed all:templates
var Templates embed.FS
