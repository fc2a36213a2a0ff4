package ui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"maps"
	"strings"

	"github.com/a-h/templ"
)

var ErrAsChildContent = errors.New("asChild requires exactly one element as content")

type ButtonProps struct {
	Variant  ButtonVariant
	Size     ButtonSize
	Disabled bool
	Loading  bool
	// AsChild delegates the computed attributes onto the supplied *Element instead of rendering a button.
	AsChild bool
	// Class is appended after the computed classes.
	Class string
	// Attrs are passed through to the rendered element. Presented attributes take precedence.
	Attrs templ.Attributes
}

// RenderSpec is the result of presenting ButtonProps.
type RenderSpec struct {
	Classes            []string
	InteractionEnabled bool
	Spinner            bool
	Target             RenderTarget
}

// RenderTarget is either an ElementTarget or a SlotTarget.
type RenderTarget interface {
	Attributes() templ.Attributes
	isRenderTarget()
}

// ElementTarget renders an own element with the given tag.
type ElementTarget struct {
	Tag   string
	Attrs templ.Attributes
}

func (t ElementTarget) Attributes() templ.Attributes { return t.Attrs }
func (ElementTarget) isRenderTarget()                {}

// SlotTarget forwards the attributes onto a single caller supplied element.
type SlotTarget struct {
	Attrs templ.Attributes
}

func (t SlotTarget) Attributes() templ.Attributes { return t.Attrs }
func (SlotTarget) isRenderTarget()                {}

const (
	buttonBaseClasses  = "inline-flex items-center justify-center gap-2 whitespace-nowrap rounded-md font-medium transition-colors"
	buttonFocusClasses = "focus-visible:outline-none focus-visible:ring-2 focus-visible:ring-offset-2"
	// Disabled marker, only added while the button is not interactive.
	buttonDisabledClasses = "disabled:pointer-events-none disabled:opacity-50 cursor-not-allowed"
)

// Present resolves props into classes, attributes and the interaction flag.
// Unknown variants or sizes are rejected instead of falling back to a default.
func Present(props ButtonProps) (RenderSpec, error) {
	if err := props.Variant.validate(); err != nil {
		return RenderSpec{}, err
	}
	if err := props.Size.validate(); err != nil {
		return RenderSpec{}, err
	}

	variant := props.Variant.orDefault()
	size := props.Size.orDefault()
	interactive := !(props.Disabled || props.Loading)

	classes := buttonClasses(variant, size, interactive, props.Class)

	attrs := make(templ.Attributes, len(props.Attrs)+7)
	for k, v := range props.Attrs {
		if k == "class" || presentedKeys[k] {
			continue
		}
		attrs[k] = v
	}
	attrs["class"] = strings.Join(classes, " ")
	attrs["type"] = "button"
	if !interactive {
		attrs["disabled"] = true
		attrs["aria-disabled"] = "true"
	}
	if props.Loading {
		attrs["aria-busy"] = "true"
	}
	attrs["data-variant"] = string(variant)
	attrs["data-size"] = string(size)

	var target RenderTarget = ElementTarget{Tag: "button", Attrs: attrs}
	if props.AsChild {
		target = SlotTarget{Attrs: attrs}
	}

	return RenderSpec{
		Classes:            classes,
		InteractionEnabled: interactive,
		Spinner:            props.Loading,
		Target:             target,
	}, nil
}

// MustPresent is like Present but panics on invalid props.
func MustPresent(props ButtonProps) RenderSpec {
	spec, err := Present(props)
	if err != nil {
		panic(err)
	}
	return spec
}

func buttonClasses(variant ButtonVariant, size ButtonSize, interactive bool, class string) []string {
	var classes []string

	// Base classes
	classes = append(classes, buttonBaseClasses, buttonFocusClasses)

	// Variant classes
	classes = append(classes, variantClasses(variant))

	// Size classes
	classes = append(classes, sizeClasses(size))

	if !interactive {
		classes = append(classes, buttonDisabledClasses)
	}

	// Additional custom classes
	if class != "" {
		classes = append(classes, class)
	}

	return mergeClasses(classes...)
}

// variantClasses expects a validated, non-empty variant.
func variantClasses(v ButtonVariant) string {
	switch v {
	case ButtonVariantPrimary:
		return "bg-blue-600 text-white hover:bg-blue-700 focus-visible:ring-blue-500"
	case ButtonVariantSecondary:
		return "bg-gray-600 text-white hover:bg-gray-700 focus-visible:ring-gray-500"
	case ButtonVariantOutline:
		return "border-2 border-blue-600 bg-transparent text-blue-600 hover:bg-blue-50 focus-visible:ring-blue-500 dark:text-blue-400 dark:hover:bg-blue-950"
	case ButtonVariantGhost:
		return "bg-transparent text-gray-700 hover:bg-gray-100 focus-visible:ring-gray-500 dark:text-gray-200 dark:hover:bg-gray-800"
	case ButtonVariantDanger:
		return "bg-red-600 text-white hover:bg-red-700 focus-visible:ring-red-500"
	}
	panic(fmt.Sprintf("unhandled button variant %q", string(v)))
}

// sizeClasses expects a validated, non-empty size.
func sizeClasses(s ButtonSize) string {
	switch s {
	case ButtonSizeSm:
		return "h-8 px-3 text-sm"
	case ButtonSizeMd:
		return "h-10 px-4 text-base"
	case ButtonSizeLg:
		return "h-12 px-6 text-lg"
	}
	panic(fmt.Sprintf("unhandled button size %q", string(s)))
}

// Button renders a button for props with content as its children.
// With AsChild set, content must be an *Element which receives the computed attributes.
func Button(props ButtonProps, content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		spec, err := Present(props)
		if err != nil {
			return err
		}
		return spec.Component(content).Render(ctx, w)
	})
}

// Component renders the presented button around content.
func (s RenderSpec) Component(content templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		switch t := s.Target.(type) {
		case ElementTarget:
			if t.Tag != "button" {
				return fmt.Errorf("unsupported element target <%s>", t.Tag)
			}
			return nativeButton(orderedAttributes(t.Attrs), s.Spinner, content).Render(ctx, w)
		case SlotTarget:
			child, ok := content.(*Element)
			if !ok || child == nil {
				return ErrAsChildContent
			}
			if s.Spinner && voidElements[child.Tag] {
				return fmt.Errorf("%w: spinner cannot be placed into void element <%s>", ErrAsChildContent, child.Tag)
			}
			slotted := child.withSlotAttributes(t.Attrs)
			if s.Spinner {
				slotted.Children = append([]templ.Component{Spinner()}, slotted.Children...)
			}
			return slotted.Render(ctx, w)
		default:
			return fmt.Errorf("unknown render target %T", s.Target)
		}
	})
}

// Attributes returns a copy of the attributes of the render target.
func (s RenderSpec) Attributes() templ.Attributes {
	if s.Target == nil {
		return nil
	}
	return maps.Clone(s.Target.Attributes())
}
