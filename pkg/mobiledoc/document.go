package mobiledoc

import "fmt"

// Version is the only mobiledoc format version this package renders.
const Version = "0.2.0"

// SectionType is the numeric tag identifying a section variant on the wire.
type SectionType int

const (
	SectionTypeMarkup SectionType = 1
	SectionTypeImage  SectionType = 2
	SectionTypeList   SectionType = 3
	SectionTypeCard   SectionType = 10
)

// String returns a readable name for the section type.
func (t SectionType) String() string {
	switch t {
	case SectionTypeMarkup:
		return "markup"
	case SectionTypeImage:
		return "image"
	case SectionTypeList:
		return "list"
	case SectionTypeCard:
		return "card"
	default:
		return fmt.Sprintf("%d", int(t))
	}
}

// Document is a decoded mobiledoc. It is never mutated by rendering.
type Document struct {
	Version     string
	MarkerTypes []MarkerType
	Sections    []Section
}

// MarkerType describes one inline markup element, e.g. <b> or <a href="...">.
type MarkerType struct {
	TagName    string
	Attributes []Attribute
}

// Marker is one run of text plus the inline elements opened before it and
// the number of elements closed after it.
type Marker struct {
	OpenTypes  []int // indices into the document's marker types
	CloseCount int   // elements popped after the text is appended
	Text       string
}

// Section is one block of a document. The variants are *MarkupSection,
// *ImageSection, *ListSection and *CardSection.
type Section interface {
	Type() SectionType
}

// MarkupSection is a paragraph-like block (p, h1, blockquote, ...).
type MarkupSection struct {
	TagName string
	Markers []Marker
}

// ImageSection is a standalone image.
type ImageSection struct {
	URL string
}

// ListSection is a ul/ol whose items each carry their own markers.
type ListSection struct {
	TagName string
	Items   [][]Marker
}

// CardSection is a block rendered by a named card.
type CardSection struct {
	Name    string
	Payload map[string]any
}

func (*MarkupSection) Type() SectionType { return SectionTypeMarkup }
func (*ImageSection) Type() SectionType  { return SectionTypeImage }
func (*ListSection) Type() SectionType   { return SectionTypeList }
func (*CardSection) Type() SectionType   { return SectionTypeCard }

// Decode validates the document version and returns its marker type table
// and section list.
func Decode(doc *Document) ([]MarkerType, []Section, error) {
	if doc == nil {
		return nil, nil, fmt.Errorf("%w: nil document", ErrMalformedDocument)
	}
	if doc.Version != Version {
		return nil, nil, fmt.Errorf("%w %q", ErrVersionMismatch, doc.Version)
	}
	return doc.MarkerTypes, doc.Sections, nil
}
