package mobiledoc

import "errors"

// Sentinel errors for rendering. Returned errors wrap one of these with the
// offending name or value, so callers should match with errors.Is.
var (
	ErrVersionMismatch         = errors.New("unexpected mobiledoc version")
	ErrUnsupportedSectionType  = errors.New("unsupported section type")
	ErrInvalidCardDefinition   = errors.New("invalid card definition")
	ErrCardNotFound            = errors.New("card not found")
	ErrInvalidCardRenderResult = errors.New("invalid card render result")

	// Input shape errors.
	ErrMalformedDocument = errors.New("malformed mobiledoc")
	ErrInvalidMarker     = errors.New("invalid marker")
)
