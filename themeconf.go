// Package themeconf resolves the options file of a blog theme into a
// validated, fully defaulted SiteConfig.
//
// Raw options arrive as an untyped tree (see Decode, LoadFile and LoadFiles
// for JSON, JSONC, YAML and TOML input). Resolve checks the required fields,
// applies the documented defaults, keeps unknown keys in Extensions and
// returns either the resolved value or a *ConfigError naming the offending
// field path. Resolve is pure: it performs no I/O and never logs.
//
// The resolved value is built once at startup and passed explicitly to
// whatever consumes it, for example the read-only hand-off Server.
package themeconf
