package ui

import (
	"errors"
	"fmt"
)

type ButtonVariant string
type ButtonSize string

const (
	ButtonVariantPrimary   ButtonVariant = "primary"
	ButtonVariantSecondary ButtonVariant = "secondary"
	ButtonVariantOutline   ButtonVariant = "outline"
	ButtonVariantGhost     ButtonVariant = "ghost"
	ButtonVariantDanger    ButtonVariant = "danger"

	ButtonSizeSm ButtonSize = "sm"
	ButtonSizeMd ButtonSize = "md"
	ButtonSizeLg ButtonSize = "lg"
)

var (
	ErrInvalidVariant = errors.New("invalid button variant")
	ErrInvalidSize    = errors.New("invalid button size")
)

// ButtonVariants lists all variants in display order.
func ButtonVariants() []ButtonVariant {
	return []ButtonVariant{
		ButtonVariantPrimary,
		ButtonVariantSecondary,
		ButtonVariantOutline,
		ButtonVariantGhost,
		ButtonVariantDanger,
	}
}

// ButtonSizes lists all sizes from small to large.
func ButtonSizes() []ButtonSize {
	return []ButtonSize{ButtonSizeSm, ButtonSizeMd, ButtonSizeLg}
}

// ParseVariant converts untyped input (query strings, config files) into a ButtonVariant.
// An empty string yields the default variant, anything else outside the closed set is rejected.
func ParseVariant(s string) (ButtonVariant, error) {
	v := ButtonVariant(s)
	if err := v.validate(); err != nil {
		return "", err
	}
	return v.orDefault(), nil
}

// ParseSize converts untyped input into a ButtonSize, see ParseVariant.
func ParseSize(s string) (ButtonSize, error) {
	sz := ButtonSize(s)
	if err := sz.validate(); err != nil {
		return "", err
	}
	return sz.orDefault(), nil
}

func (v ButtonVariant) orDefault() ButtonVariant {
	if v == "" {
		return ButtonVariantPrimary
	}
	return v
}

func (v ButtonVariant) validate() error {
	switch v {
	case "", ButtonVariantPrimary, ButtonVariantSecondary, ButtonVariantOutline, ButtonVariantGhost, ButtonVariantDanger:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidVariant, string(v))
}

func (s ButtonSize) orDefault() ButtonSize {
	if s == "" {
		return ButtonSizeMd
	}
	return s
}

func (s ButtonSize) validate() error {
	switch s {
	case "", ButtonSizeSm, ButtonSizeMd, ButtonSizeLg:
		return nil
	}
	return fmt.Errorf("%w: %q", ErrInvalidSize, string(s))
}
