package themeconf

import (
	"errors"
	"fmt"
)

// Kind classifies a resolution failure.
type Kind int

const (
	KindMissingField Kind = iota + 1
	KindEmptyLocales
	KindIncompleteComments
	KindInvalidLink
	KindInvalidPagination
	KindInvalidType
)

// Sentinel errors, one per Kind. A *ConfigError unwraps to its Kind's
// sentinel, so callers can test with errors.Is.
var (
	ErrMissingField       = errors.New("missing field")
	ErrEmptyLocales       = errors.New("empty locales")
	ErrIncompleteComments = errors.New("incomplete comments config")
	ErrInvalidLink        = errors.New("invalid link")
	ErrInvalidPagination  = errors.New("invalid pagination")
	ErrInvalidType        = errors.New("invalid type")
)

func (k Kind) String() string {
	switch k {
	case KindMissingField:
		return "MissingField"
	case KindEmptyLocales:
		return "EmptyLocales"
	case KindIncompleteComments:
		return "IncompleteCommentsConfig"
	case KindInvalidLink:
		return "InvalidLink"
	case KindInvalidPagination:
		return "InvalidPagination"
	case KindInvalidType:
		return "InvalidType"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

func (k Kind) sentinel() error {
	switch k {
	case KindMissingField:
		return ErrMissingField
	case KindEmptyLocales:
		return ErrEmptyLocales
	case KindIncompleteComments:
		return ErrIncompleteComments
	case KindInvalidLink:
		return ErrInvalidLink
	case KindInvalidPagination:
		return ErrInvalidPagination
	case KindInvalidType:
		return ErrInvalidType
	default:
		return nil
	}
}

// ConfigError reports the first problem found in a raw configuration.
// Path names the offending field, e.g. themeConfig.comments.clientSecret.
type ConfigError struct {
	Kind   Kind
	Path   string
	Detail string
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("themeconf: %s: %v", e.Path, e.Kind.sentinel())
	if e.Detail != "" {
		msg += ": " + e.Detail
	}
	return msg
}

func (e *ConfigError) Unwrap() error {
	return e.Kind.sentinel()
}

func missingField(path string) error {
	return &ConfigError{Kind: KindMissingField, Path: path}
}

func invalidType(path, want string, got any) error {
	return &ConfigError{
		Kind:   KindInvalidType,
		Path:   path,
		Detail: fmt.Sprintf("expected %s, got %T", want, got),
	}
}

func invalidLink(path, link string) error {
	return &ConfigError{Kind: KindInvalidLink, Path: path, Detail: fmt.Sprintf("%q", link)}
}
