package views

import "strings"

type BadgeVariant string

const (
	BadgeVariantSecondary BadgeVariant = "secondary"
	BadgeVariantSuccess   BadgeVariant = "success"
	BadgeVariantOutline   BadgeVariant = "outline"
)

type BadgeProps struct {
	Variant BadgeVariant
	Class   string
}

func badgeClasses(props BadgeProps) string {
	var classes []string

	// Base classes
	classes = append(classes, "inline-flex items-center rounded-full border px-2.5 py-0.5 text-xs font-semibold transition-colors font-mono")

	// Variant classes
	switch props.Variant {
	case BadgeVariantSecondary:
		classes = append(classes, "border-transparent bg-gray-200 text-gray-900 dark:bg-gray-700 dark:text-gray-100")
	case BadgeVariantSuccess:
		classes = append(classes, "border-transparent bg-green-600 text-white")
	case BadgeVariantOutline:
		classes = append(classes, "border-gray-300 text-gray-700 dark:border-gray-600 dark:text-gray-300")
	default:
		classes = append(classes, "border-transparent bg-blue-600 text-white")
	}

	if props.Class != "" {
		classes = append(classes, props.Class)
	}

	return strings.Join(classes, " ")
}
