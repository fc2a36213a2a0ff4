package storybook

import (
	"errors"
	"fmt"
)

type Theme string

const (
	ThemeLight Theme = "light"
	ThemeDark  Theme = "dark"
)

var ErrInvalidTheme = errors.New("invalid theme")

// ParseTheme returns fallback for an empty string and rejects unknown themes.
func ParseTheme(s string, fallback Theme) (Theme, error) {
	switch Theme(s) {
	case "":
		return fallback, nil
	case ThemeLight, ThemeDark:
		return Theme(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidTheme, s)
}
