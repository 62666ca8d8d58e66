// Package cards provides card implementations for common mobiledoc cards.
package cards

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/util"

	"github.com/open-cli-collective/mobiledoc-cli/pkg/mobiledoc"
)

// mdParser is a pre-configured goldmark instance with GFM tables and strikethrough.
var mdParser = goldmark.New(
	goldmark.WithExtensions(extension.Table, extension.Strikethrough),
)

// Definition describes a card available to the renderer.
type Definition struct {
	Name        string
	Description string
	Card        mobiledoc.Card
}

// Registry maps card names to their definitions.
// Adding a new card = adding one entry here.
var Registry = map[string]Definition{
	"card-markdown": {
		Name:        "card-markdown",
		Description: "Renders payload.markdown as HTML",
		Card:        Markdown(),
	},
	"html": {
		Name:        "html",
		Description: "Emits payload.html verbatim",
		Card:        HTML(),
	},
	"code": {
		Name:        "code",
		Description: "Renders payload.code as an escaped <pre><code> block",
		Card:        Code(),
	},
	mobiledoc.ImageCardName: {
		Name:        mobiledoc.ImageCardName,
		Description: "Renders payload.src as an <img> (built in)",
		Card:        mobiledoc.ImageCard,
	},
}

// Lookup returns the Definition for a given name, normalizing to lowercase.
// Returns ok=false if the card is not registered.
func Lookup(name string) (Definition, bool) {
	def, ok := Registry[strings.ToLower(name)]
	return def, ok
}

// Names returns the registered card names in sorted order.
func Names() []string {
	names := make([]string, 0, len(Registry))
	for name := range Registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Select returns the cards with the given names. An empty list selects every
// registered card.
func Select(names []string) ([]mobiledoc.Card, error) {
	if len(names) == 0 {
		names = Names()
	}

	selected := make([]mobiledoc.Card, 0, len(names))
	for _, name := range names {
		def, ok := Lookup(strings.TrimSpace(name))
		if !ok {
			return nil, fmt.Errorf("unknown card %q (available: %s)", name, strings.Join(Names(), ", "))
		}
		selected = append(selected, def.Card)
	}
	return selected, nil
}

// Markdown returns the card-markdown card.
func Markdown() mobiledoc.Card {
	return mobiledoc.Card{
		Name: "card-markdown",
		Type: mobiledoc.CardTypeHTML,
		Render: func(ctx *mobiledoc.RenderContext) (any, error) {
			source := payloadString(ctx.Payload, "markdown")
			if source == "" {
				return nil, nil
			}

			var buf bytes.Buffer
			if err := mdParser.Convert([]byte(source), &buf); err != nil {
				return nil, fmt.Errorf("failed to convert markdown: %w", err)
			}
			return buf.String(), nil
		},
	}
}

// HTML returns the html card.
func HTML() mobiledoc.Card {
	return mobiledoc.Card{
		Name: "html",
		Type: mobiledoc.CardTypeHTML,
		Render: func(ctx *mobiledoc.RenderContext) (any, error) {
			return payloadString(ctx.Payload, "html"), nil
		},
	}
}

// Code returns the code card.
func Code() mobiledoc.Card {
	return mobiledoc.Card{
		Name: "code",
		Type: mobiledoc.CardTypeHTML,
		Render: func(ctx *mobiledoc.RenderContext) (any, error) {
			code := payloadString(ctx.Payload, "code")
			if code == "" {
				return nil, nil
			}

			var sb strings.Builder
			sb.WriteString("<pre><code")
			if lang := payloadString(ctx.Payload, "language"); lang != "" {
				sb.WriteString(` class="language-`)
				sb.Write(util.EscapeHTML([]byte(lang)))
				sb.WriteString(`"`)
			}
			sb.WriteString(">")
			sb.Write(util.EscapeHTML([]byte(code)))
			sb.WriteString("</code></pre>")
			return sb.String(), nil
		},
	}
}

// payloadString returns payload[key] if it is a string.
func payloadString(payload map[string]any, key string) string {
	s, _ := payload[key].(string)
	return s
}
