package storybook

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"

	"github.com/a-h/templ"

	"github.com/networkteam/uikit/internal/validation"
	"github.com/networkteam/uikit/storybook/views"
	"github.com/networkteam/uikit/ui"
)

var ErrInvalidArgs = errors.New("invalid story args")

// Args are the controllable inputs of a button story.
type Args struct {
	Variant  string `validate:"button_variant"`
	Size     string `validate:"button_size"`
	Disabled bool
	Loading  bool
	AsChild  bool
	Label    string `validate:"max=64"`
}

// ParseArgs overrides defaults with values present in query.
// Malformed values are rejected, they never fall back to defaults.
func ParseArgs(defaults Args, query url.Values) (Args, error) {
	args := defaults

	if query.Has("variant") {
		args.Variant = query.Get("variant")
	}
	if query.Has("size") {
		args.Size = query.Get("size")
	}
	if query.Has("label") {
		args.Label = query.Get("label")
	}

	for name, target := range map[string]*bool{
		"disabled": &args.Disabled,
		"loading":  &args.Loading,
		"asChild":  &args.AsChild,
	} {
		if !query.Has(name) {
			continue
		}
		v, err := strconv.ParseBool(query.Get(name))
		if err != nil {
			return Args{}, fmt.Errorf("%w: %s: %v", ErrInvalidArgs, name, err)
		}
		*target = v
	}

	if err := validation.Struct(args); err != nil {
		return Args{}, fmt.Errorf("%w: %v", ErrInvalidArgs, err)
	}

	return args, nil
}

// Props converts args into button props.
func (a Args) Props() (ui.ButtonProps, error) {
	variant, err := ui.ParseVariant(a.Variant)
	if err != nil {
		return ui.ButtonProps{}, err
	}
	size, err := ui.ParseSize(a.Size)
	if err != nil {
		return ui.ButtonProps{}, err
	}
	return ui.ButtonProps{
		Variant:  variant,
		Size:     size,
		Disabled: a.Disabled,
		Loading:  a.Loading,
		AsChild:  a.AsChild,
	}, nil
}

// Values returns the args as strings, omitting zero values.
func (a Args) Values() map[string]string {
	values := map[string]string{}
	if a.Variant != "" {
		values["variant"] = a.Variant
	}
	if a.Size != "" {
		values["size"] = a.Size
	}
	if a.Disabled {
		values["disabled"] = "true"
	}
	if a.Loading {
		values["loading"] = "true"
	}
	if a.AsChild {
		values["asChild"] = "true"
	}
	if a.Label != "" {
		values["label"] = a.Label
	}
	return values
}

func (a Args) Query() url.Values {
	q := url.Values{}
	for k, v := range a.Values() {
		q.Set(k, v)
	}
	return q
}

func (a Args) controls() *views.ControlsProps {
	props, err := a.Props()
	if err != nil {
		return nil
	}
	return &views.ControlsProps{
		Variant:  string(props.Variant),
		Size:     string(props.Size),
		Disabled: a.Disabled,
		Loading:  a.Loading,
		AsChild:  a.AsChild,
		Label:    a.Label,
	}
}

// actionButton renders a button whose activation is reported to the actions panel.
// Args that fail to convert surface as a render error.
func actionButton(args Args, content templ.Component) templ.Component {
	props, err := args.Props()
	if err != nil {
		return errorComponent(err)
	}
	props.Attrs = templ.Attributes{"data-action-args": args.Query().Encode()}
	return ui.Button(props, content)
}
