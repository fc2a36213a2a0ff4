package storybook

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"unicode"

	"github.com/a-h/templ"
	"github.com/samber/lo"

	"github.com/networkteam/uikit/storybook/views"
)

var (
	ErrStoryNotFound  = errors.New("story not found")
	ErrDuplicateStory = errors.New("duplicate story")
)

const (
	LayoutCentered = "centered"
	LayoutPadded   = "padded"
)

type Story struct {
	// Title groups stories in the sidebar, e.g. "Components/Button".
	Title       string
	Name        string
	Description string
	Layout      string
	// Args are the defaults of the story. Only stories with Controls accept args from the request.
	Args     Args
	Controls bool
	Render   func(args Args) templ.Component
	// Source is a Go usage snippet shown below the canvas.
	Source string
}

// ID derives a stable identifier from title and name, e.g. "components-button--default".
func (s Story) ID() string {
	return slug(s.Title) + "--" + slug(s.Name)
}

func (s Story) entry() views.StoryEntry {
	return views.StoryEntry{
		ID:          s.ID(),
		Title:       s.Title,
		Name:        s.Name,
		Description: s.Description,
	}
}

// Catalog is an ordered set of stories.
type Catalog struct {
	stories []Story
	byID    map[string]int
}

func NewCatalog() *Catalog {
	return &Catalog{byID: make(map[string]int)}
}

// Register adds stories in order. Stories without Render or with a taken ID are rejected.
func (c *Catalog) Register(stories ...Story) error {
	for _, s := range stories {
		if s.Render == nil {
			return fmt.Errorf("story %q has no render function", s.ID())
		}
		id := s.ID()
		if _, exists := c.byID[id]; exists {
			return fmt.Errorf("%w: %s", ErrDuplicateStory, id)
		}
		c.byID[id] = len(c.stories)
		c.stories = append(c.stories, s)
	}
	return nil
}

func (c *Catalog) MustRegister(stories ...Story) *Catalog {
	if err := c.Register(stories...); err != nil {
		panic(err)
	}
	return c
}

func (c *Catalog) Get(id string) (Story, error) {
	i, ok := c.byID[id]
	if !ok {
		return Story{}, fmt.Errorf("%w: %s", ErrStoryNotFound, id)
	}
	return c.stories[i], nil
}

func (c *Catalog) Stories() []Story {
	return append([]Story(nil), c.stories...)
}

// Titles returns the distinct titles in registration order.
func (c *Catalog) Titles() []string {
	return lo.Uniq(lo.Map(c.stories, func(s Story, _ int) string { return s.Title }))
}

func (c *Catalog) entries() []views.StoryEntry {
	return lo.Map(c.stories, func(s Story, _ int) views.StoryEntry { return s.entry() })
}

// DefaultCatalog contains the introduction and all button stories.
func DefaultCatalog() *Catalog {
	return NewCatalog().
		MustRegister(IntroductionStory()).
		MustRegister(ButtonStories()...)
}

// slug lowercases s and joins words with dashes, splitting camel case: "SmallVariants" becomes "small-variants".
func slug(s string) string {
	var b strings.Builder
	dash := false
	prevLower := false
	for _, r := range s {
		switch {
		case unicode.IsLetter(r) || unicode.IsDigit(r):
			if unicode.IsUpper(r) && prevLower && !dash {
				b.WriteByte('-')
			}
			b.WriteRune(unicode.ToLower(r))
			dash = false
			prevLower = unicode.IsLower(r) || unicode.IsDigit(r)
		case b.Len() > 0 && !dash:
			b.WriteByte('-')
			dash = true
			prevLower = false
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

func errorComponent(err error) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return err
	})
}
