package views

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/a-h/templ"
	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters/html"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
)

func formatDurationSince(t time.Time) string {
	if t.IsZero() {
		return "never"
	}
	d := time.Since(t)
	if d < 0 {
		return "in the future"
	}
	if d < time.Minute {
		return fmt.Sprintf("%d seconds ago", int(d.Seconds()))
	}
	if d < time.Hour {
		return fmt.Sprintf("%d minutes ago", int(d.Minutes()))
	}
	return t.Format(time.DateTime)
}

// highlightSource applies syntax highlighting to a story source snippet
func highlightSource(source string, language string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		lexer := lexers.Get(language)
		if lexer == nil {
			lexer = lexers.Fallback
		}

		formatter, style := chromaFormatterAndStyle(MustGetHandlerOptions(ctx).Theme)

		iterator, err := lexer.Tokenise(nil, source)
		if err != nil {
			return err
		}

		return formatter.Format(w, style, iterator)
	})
}

func chromaFormatterAndStyle(theme string) (*html.Formatter, *chroma.Style) {
	formatter := html.New(
		html.Standalone(false),
		html.WithClasses(true),
		html.TabWidth(4),
	)

	name := "github"
	if theme == "dark" {
		name = "monokai"
	}
	style := styles.Get(name)
	if style == nil {
		style = styles.Fallback
	}

	return formatter, style
}

func chromaStyles() templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, _ = io.WriteString(w, "<style>")
		formatter, style := chromaFormatterAndStyle(MustGetHandlerOptions(ctx).Theme)
		err := formatter.WriteCSS(w, style)

		_, _ = io.WriteString(w, ".chroma { white-space: pre-wrap; padding: 1rem; border-radius: 0.5rem; }\n")
		_, _ = io.WriteString(w, "</style>")
		return err
	})
}
