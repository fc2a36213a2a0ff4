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

var (
	errEmptyTag     = errors.New("element without tag")
	errVoidChildren = errors.New("void element cannot have children")
)

var voidElements = map[string]bool{
	"area": true, "base": true, "br": true, "col": true, "embed": true, "hr": true, "img": true,
	"input": true, "link": true, "meta": true, "source": true, "track": true, "wbr": true,
}

// Element is a plain HTML element. It is the content type expected by a Button with AsChild.
type Element struct {
	Tag      string
	Attrs    templ.Attributes
	Children []templ.Component
}

// El is a shorthand for constructing an Element.
func El(tag string, attrs templ.Attributes, children ...templ.Component) *Element {
	return &Element{Tag: tag, Attrs: attrs, Children: children}
}

func (e *Element) Render(ctx context.Context, w io.Writer) error {
	if e.Tag == "" {
		return errEmptyTag
	}
	void := voidElements[e.Tag]
	if void && len(e.Children) > 0 {
		return fmt.Errorf("%w: <%s>", errVoidChildren, e.Tag)
	}
	tag := templ.EscapeString(e.Tag)
	if _, err := io.WriteString(w, "<"+tag); err != nil {
		return err
	}
	if err := templ.RenderAttributes(ctx, w, orderedAttributes(e.Attrs)); err != nil {
		return err
	}
	if _, err := io.WriteString(w, ">"); err != nil {
		return err
	}
	if void {
		return nil
	}
	for _, child := range e.Children {
		if child == nil {
			continue
		}
		if err := child.Render(ctx, w); err != nil {
			return err
		}
	}
	_, err := io.WriteString(w, "</"+tag+">")
	return err
}

// withSlotAttributes returns a copy of e carrying the slot attributes.
// Classes are merged, presented attributes override and other child attributes are kept.
func (e *Element) withSlotAttributes(slot templ.Attributes) *Element {
	attrs := maps.Clone(e.Attrs)
	if attrs == nil {
		attrs = make(templ.Attributes, len(slot))
	}
	for k, v := range slot {
		switch {
		case k == "class":
			attrs["class"] = strings.Join(mergeClasses(classAttr(slot), classAttr(e.Attrs)), " ")
		case presentedKeys[k]:
			attrs[k] = v
		default:
			if _, exists := attrs[k]; !exists {
				attrs[k] = v
			}
		}
	}
	return &Element{
		Tag:      e.Tag,
		Attrs:    attrs,
		Children: append([]templ.Component(nil), e.Children...),
	}
}

// Text renders escaped text.
func Text(s string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := io.WriteString(w, templ.EscapeString(s))
		return err
	})
}
