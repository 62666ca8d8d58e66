package mobiledoc

import "strings"

// voidTags are elements that never have a closing tag or children.
var voidTags = map[string]bool{
	"area":    true,
	"base":    true,
	"br":      true,
	"col":     true,
	"command": true,
	"embed":   true,
	"hr":      true,
	"img":     true,
	"input":   true,
	"keygen":  true,
	"link":    true,
	"meta":    true,
	"param":   true,
	"source":  true,
	"track":   true,
	"wbr":     true,
}

// Node is a serializable element or text node.
type Node interface {
	// String serializes the node and its descendants to HTML.
	String() string
	writeTo(sb *strings.Builder)
}

// Attribute is a single name/value pair on an element.
type Attribute struct {
	Name  string
	Value string
}

// Element is an HTML element node.
type Element struct {
	Tag        string // always lowercase
	Attributes []Attribute
	Children   []Node
}

// Text is a text node. Its value is emitted as-is apart from whitespace
// preservation; it is never HTML-escaped.
type Text struct {
	Value string
}

// CreateElement creates an element with the given tag, normalized to lowercase.
func CreateElement(tag string) *Element {
	return &Element{Tag: strings.ToLower(tag)}
}

// CreateText creates a text node.
func CreateText(value string) *Text {
	return &Text{Value: value}
}

// AppendChild appends child to the element's children.
func (e *Element) AppendChild(child Node) {
	e.Children = append(e.Children, child)
}

// SetAttribute appends an attribute. Repeated names are not deduplicated.
func (e *Element) SetAttribute(name, value string) {
	e.Attributes = append(e.Attributes, Attribute{Name: name, Value: value})
}

// IsVoid reports whether the element's tag is a void tag.
func (e *Element) IsVoid() bool {
	return voidTags[e.Tag]
}

// String serializes the element to HTML.
func (e *Element) String() string {
	var sb strings.Builder
	e.writeTo(&sb)
	return sb.String()
}

func (e *Element) writeTo(sb *strings.Builder) {
	sb.WriteString("<")
	sb.WriteString(e.Tag)
	for _, attr := range e.Attributes {
		sb.WriteString(" ")
		sb.WriteString(attr.Name)
		sb.WriteString(`="`)
		sb.WriteString(attr.Value)
		sb.WriteString(`"`)
	}
	sb.WriteString(">")

	// Void elements drop their children along with the closing tag
	if e.IsVoid() {
		return
	}

	for _, child := range e.Children {
		child.writeTo(sb)
	}
	sb.WriteString("</")
	sb.WriteString(e.Tag)
	sb.WriteString(">")
}

// String serializes the text node, preserving runs of spaces.
func (t *Text) String() string {
	return preserveWhitespace(t.Value)
}

func (t *Text) writeTo(sb *strings.Builder) {
	sb.WriteString(preserveWhitespace(t.Value))
}

// preserveWhitespace replaces each non-overlapping pair of spaces, scanning
// left to right, with a space followed by &nbsp;. "     " (5 spaces) becomes
// " &nbsp; &nbsp; ".
func preserveWhitespace(s string) string {
	return strings.ReplaceAll(s, "  ", " &nbsp;")
}
