package mobiledoc

import (
	"fmt"

	"go.uber.org/zap"
)

// Options configures a Renderer.
type Options struct {
	// Cards are looked up by name before the built-in image card.
	Cards []Card
	// CardOptions is passed unchanged to every card as RenderContext.Options.
	CardOptions any
	// Atoms is accepted for forward compatibility and not used.
	Atoms []any
	// UnknownCardHandler renders cards that cannot be resolved. When nil,
	// unresolvable cards fail with ErrCardNotFound.
	UnknownCardHandler CardRenderFunc
	// Logger receives debug output. Defaults to a no-op logger.
	Logger *zap.Logger
}

// Renderer renders mobiledocs to HTML. It holds only validated, immutable
// configuration and is safe for concurrent use as long as the registered
// cards are.
type Renderer struct {
	cards              []Card
	cardOptions        any
	atoms              []any
	unknownCardHandler CardRenderFunc
	logger             *zap.Logger
}

// Result is the output of one render.
type Result struct {
	HTML string
	// Teardown runs every callback cards registered through Env.OnTeardown,
	// in registration order. It is never nil.
	Teardown func()
}

// New validates every card and returns a Renderer.
func New(opts Options) (*Renderer, error) {
	for _, card := range opts.Cards {
		if err := card.Validate(); err != nil {
			return nil, err
		}
	}

	handler := opts.UnknownCardHandler
	if handler == nil {
		handler = defaultUnknownCardHandler
	}

	return &Renderer{
		cards:              append([]Card(nil), opts.Cards...),
		cardOptions:        opts.CardOptions,
		atoms:              opts.Atoms,
		unknownCardHandler: handler,
		logger:             loggerOrNop(opts.Logger),
	}, nil
}

// renderState is the per-call state of a single Render.
type renderState struct {
	renderer          *Renderer
	markerTypes       []MarkerType
	teardownCallbacks []func()
	logger            *zap.Logger
}

func (s *renderState) registerTeardownCallback(callback func()) {
	s.teardownCallbacks = append(s.teardownCallbacks, callback)
}

func (s *renderState) teardown() {
	s.logger.Debug("tearing down render", zap.Int("callbacks", len(s.teardownCallbacks)))
	for _, callback := range s.teardownCallbacks {
		callback()
	}
}

// Render renders doc to HTML wrapped in a root <div>. Rendering stops at the
// first error and no partial output is returned.
func (r *Renderer) Render(doc *Document) (Result, error) {
	markerTypes, sections, err := Decode(doc)
	if err != nil {
		return Result{}, err
	}

	r.logger.Debug("rendering mobiledoc",
		zap.String("version", doc.Version),
		zap.Int("sections", len(sections)))

	state := &renderState{
		renderer:    r,
		markerTypes: markerTypes,
		logger:      r.logger,
	}

	root := CreateElement("div")
	for i, section := range sections {
		node, err := state.renderSection(section)
		if err != nil {
			return Result{}, fmt.Errorf("section %d: %w", i, err)
		}
		root.AppendChild(node)
	}

	return Result{
		HTML:     root.String(),
		Teardown: state.teardown,
	}, nil
}

// RenderJSON parses a JSON-encoded mobiledoc and renders it.
func (r *Renderer) RenderJSON(data []byte) (Result, error) {
	doc, err := Parse(data)
	if err != nil {
		return Result{}, err
	}
	return r.Render(doc)
}
