package storybook_test

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/networkteam/uikit/storybook"
	"github.com/networkteam/uikit/ui"
)

func TestParseArgs(t *testing.T) {
	defaults := storybook.Args{Variant: "primary", Size: "md"}

	args, err := storybook.ParseArgs(defaults, url.Values{})
	require.NoError(t, err)
	assert.Equal(t, defaults, args)

	args, err = storybook.ParseArgs(defaults, url.Values{
		"variant":  {"danger"},
		"size":     {"lg"},
		"disabled": {"true"},
		"loading":  {"1"},
		"asChild":  {"false"},
		"label":    {"Delete"},
		"theme":    {"dark"},
	})
	require.NoError(t, err)
	assert.Equal(t, storybook.Args{Variant: "danger", Size: "lg", Disabled: true, Loading: true, Label: "Delete"}, args)
}

func TestParseArgs_RejectsInvalid(t *testing.T) {
	tests := []struct {
		name  string
		query url.Values
	}{
		{"unknown variant", url.Values{"variant": {"link"}}},
		{"unknown size", url.Values{"size": {"icon"}}},
		{"malformed bool", url.Values{"disabled": {"yes please"}}},
		{"label too long", url.Values{"label": {"this label is definitely much longer than sixty-four characters in total"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := storybook.ParseArgs(storybook.Args{}, tt.query)
			assert.ErrorIs(t, err, storybook.ErrInvalidArgs)
		})
	}
}

func TestArgs_Props(t *testing.T) {
	props, err := storybook.Args{}.Props()
	require.NoError(t, err)
	assert.Equal(t, ui.ButtonProps{Variant: ui.ButtonVariantPrimary, Size: ui.ButtonSizeMd}, props)

	props, err = storybook.Args{Variant: "ghost", Size: "sm", Loading: true, AsChild: true}.Props()
	require.NoError(t, err)
	assert.Equal(t, ui.ButtonProps{Variant: ui.ButtonVariantGhost, Size: ui.ButtonSizeSm, Loading: true, AsChild: true}, props)

	_, err = storybook.Args{Variant: "pink"}.Props()
	assert.ErrorIs(t, err, ui.ErrInvalidVariant)
}

func TestArgs_QueryRoundTrip(t *testing.T) {
	args := storybook.Args{Variant: "outline", Disabled: true, Label: "Go & stop"}

	parsed, err := storybook.ParseArgs(storybook.Args{}, args.Query())
	require.NoError(t, err)
	assert.Equal(t, args, parsed)
	assert.Equal(t, map[string]string{"variant": "outline", "disabled": "true", "label": "Go & stop"}, args.Values())
}
