package mobiledoc

import (
	"fmt"
	"math"
	"reflect"
	"strconv"

	"go.uber.org/zap"
)

// CardTypeHTML is the only card type this renderer accepts.
const CardTypeHTML = "html"

// ImageCardName is the name of the built-in fallback image card.
const ImageCardName = "image"

// Env describes the environment a card renders in.
type Env struct {
	Name       string
	IsInEditor bool // always false when rendering to HTML
	// OnTeardown registers a callback run when the caller tears the render down.
	OnTeardown func(callback func())
}

// RenderContext is the argument passed to a card's render function.
type RenderContext struct {
	Env     Env
	Options any            // shared card options from the renderer
	Payload map[string]any // never nil
}

// CardRenderFunc renders a card. It returns a string of HTML, or nil (or an
// empty string) to render an empty card container. Any other non-empty value
// is rejected.
type CardRenderFunc func(ctx *RenderContext) (any, error)

// Card is a named card registration.
type Card struct {
	Name   string
	Type   string
	Render CardRenderFunc
}

// Validate checks that the card is an html card with a render function.
func (c Card) Validate() error {
	if c.Type != CardTypeHTML {
		return fmt.Errorf("%w: card %q must be of type %q, was %q", ErrInvalidCardDefinition, c.Name, CardTypeHTML, c.Type)
	}
	if c.Render == nil {
		return fmt.Errorf("%w: card %q must define `render`", ErrInvalidCardDefinition, c.Name)
	}
	return nil
}

// ImageCard renders payload.src as an <img>, or nothing when src is absent
// or empty. Numeric and boolean sources are written out as text.
var ImageCard = Card{
	Name: ImageCardName,
	Type: CardTypeHTML,
	Render: func(ctx *RenderContext) (any, error) {
		src, ok := scalarString(ctx.Payload["src"])
		if !ok {
			return nil, nil
		}
		img := CreateElement("img")
		img.SetAttribute("src", src)
		return img.String(), nil
	},
}

// defaultUnknownCardHandler fails the render for any unresolvable card.
func defaultUnknownCardHandler(ctx *RenderContext) (any, error) {
	return nil, fmt.Errorf("%w: card %q not found but no unknown card handler was registered", ErrCardNotFound, ctx.Env.Name)
}

// findCard resolves name against the registered cards, then the built-in
// image card, then the unknown card handler. The second return value names
// where the card came from.
func (r *Renderer) findCard(name string) (Card, string) {
	for _, card := range r.cards {
		if card.Name == name {
			return card, "registered"
		}
	}
	if name == ImageCard.Name {
		return ImageCard, "builtin"
	}
	return Card{
		Name:   name,
		Type:   CardTypeHTML,
		Render: r.unknownCardHandler,
	}, "unknown"
}

func (s *renderState) renderCardSection(section *CardSection) (*Element, error) {
	card, source := s.renderer.findCard(section.Name)
	s.logger.Debug("resolved card",
		zap.String("card", section.Name),
		zap.String("source", source))

	wrapper := CreateElement("div")
	rendered, err := card.Render(s.createCardArgument(card, section.Payload))
	if err != nil {
		if source == "unknown" {
			return nil, err
		}
		return nil, fmt.Errorf("card %q: %w", card.Name, err)
	}

	html, err := validateCardRender(rendered, card.Name)
	if err != nil {
		return nil, err
	}

	if html != "" {
		wrapper.AppendChild(CreateText(html))
	}
	return wrapper, nil
}

func (s *renderState) createCardArgument(card Card, payload map[string]any) *RenderContext {
	if payload == nil {
		payload = map[string]any{}
	}
	return &RenderContext{
		Env: Env{
			Name:       card.Name,
			IsInEditor: false,
			OnTeardown: s.registerTeardownCallback,
		},
		Options: s.renderer.cardOptions,
		Payload: payload,
	}
}

// validateCardRender returns the HTML string a card produced. Empty results
// yield "".
func validateCardRender(rendered any, cardName string) (string, error) {
	if isEmptyResult(rendered) {
		return "", nil
	}
	html, ok := rendered.(string)
	if !ok {
		return "", fmt.Errorf("%w: card %q must render %s, but result was %T",
			ErrInvalidCardRenderResult, cardName, CardTypeHTML, rendered)
	}
	return html, nil
}

// scalarString formats a non-empty string, number or bool. Empty values and
// other kinds report false.
func scalarString(v any) (string, bool) {
	if isEmptyResult(v) {
		return "", false
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32, reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, rv.Type().Bits()), true
	}
	return "", false
}

// isEmptyResult reports whether v is nil, NaN or the zero value of a scalar.
func isEmptyResult(v any) bool {
	if v == nil {
		return true
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Float32, reflect.Float64:
		return rv.IsZero() || math.IsNaN(rv.Float())
	case reflect.String, reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return rv.IsZero()
	case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Func, reflect.Chan:
		return rv.IsNil()
	}
	return false
}
