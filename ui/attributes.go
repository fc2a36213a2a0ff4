package ui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/a-h/templ"
	"github.com/samber/lo"
)

// attributeOrder fixes the position of well-known attributes so rendered markup is stable.
var attributeOrder = []string{"class", "type", "disabled", "aria-disabled", "aria-busy", "data-variant", "data-size"}

// presentedKeys are owned by Present and always win over caller or child attributes.
var presentedKeys = map[string]bool{
	"type":          true,
	"disabled":      true,
	"aria-disabled": true,
	"aria-busy":     true,
	"data-variant":  true,
	"data-size":     true,
}

func orderedKeys(attrs templ.Attributes) []string {
	keys := make([]string, 0, len(attrs))
	for _, k := range attributeOrder {
		if _, ok := attrs[k]; ok {
			keys = append(keys, k)
		}
	}
	rest := lo.Filter(lo.Keys(attrs), func(k string, _ int) bool {
		return !slices.Contains(attributeOrder, k)
	})
	slices.Sort(rest)
	return append(keys, rest...)
}

// orderedAttributes converts attrs for templ.RenderAttributes in a stable order.
// Values other than strings and bools are formatted, nil values are dropped.
func orderedAttributes(attrs templ.Attributes) templ.OrderedAttributes {
	ordered := make(templ.OrderedAttributes, 0, len(attrs))
	for _, k := range orderedKeys(attrs) {
		v := attrs[k]
		switch v.(type) {
		case nil:
			continue
		case string, bool:
		default:
			v = fmt.Sprint(v)
		}
		ordered = append(ordered, templ.KeyValue[string, any]{Key: k, Value: v})
	}
	return ordered
}

// mergeClasses joins class lists, dropping empty and repeated tokens while keeping first occurrence order.
func mergeClasses(lists ...string) []string {
	return lo.Uniq(strings.Fields(strings.Join(lists, " ")))
}

func classAttr(attrs templ.Attributes) string {
	if s, ok := attrs["class"].(string); ok {
		return s
	}
	return ""
}
