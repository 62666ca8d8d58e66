package mobiledoc

import (
	"bytes"
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// wireHeader is decoded before anything else so that documents in another
// format version fail on their version, whatever their shape.
type wireHeader struct {
	Version string `json:"version"`
}

// wireDocument is the top-level JSON object. Sections holds the
// [markerTypes, sections] pair.
type wireDocument struct {
	Version  string            `json:"version"`
	Sections []json.RawMessage `json:"sections"`
}

// Parse decodes a JSON-encoded mobiledoc. The version is checked before the
// sections are, so a document of another version fails with ErrVersionMismatch.
func Parse(data []byte) (*Document, error) {
	var header wireHeader
	if err := json.Unmarshal(data, &header); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	if header.Version != Version {
		return nil, fmt.Errorf("%w %q", ErrVersionMismatch, header.Version)
	}

	var wire wireDocument
	if err := json.Unmarshal(data, &wire); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	if len(wire.Sections) != 2 {
		return nil, fmt.Errorf("%w: sections must be a [markerTypes, sections] pair, got %d elements",
			ErrMalformedDocument, len(wire.Sections))
	}

	markerTypes, err := parseMarkerTypes(wire.Sections[0])
	if err != nil {
		return nil, err
	}

	sections, err := parseSections(wire.Sections[1])
	if err != nil {
		return nil, err
	}

	return &Document{
		Version:     wire.Version,
		MarkerTypes: markerTypes,
		Sections:    sections,
	}, nil
}

// ParseYAML decodes a mobiledoc written as YAML with the same shape as the
// JSON wire format.
func ParseYAML(data []byte) (*Document, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}

	// Round-trip through JSON so both encodings share one parser
	jsonData, err := json.Marshal(raw)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedDocument, err)
	}
	return Parse(jsonData)
}

func parseMarkerTypes(data json.RawMessage) ([]MarkerType, error) {
	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: marker types: %v", ErrMalformedDocument, err)
	}

	markerTypes := make([]MarkerType, 0, len(raw))
	for i, item := range raw {
		var parts []json.RawMessage
		if err := json.Unmarshal(item, &parts); err != nil || len(parts) == 0 {
			return nil, fmt.Errorf("%w: marker type %d must be [tagName, attributes?]", ErrMalformedDocument, i)
		}

		var mt MarkerType
		if err := json.Unmarshal(parts[0], &mt.TagName); err != nil {
			return nil, fmt.Errorf("%w: marker type %d tag name: %v", ErrMalformedDocument, i, err)
		}

		if len(parts) > 1 && !isNull(parts[1]) {
			var flat []string
			if err := json.Unmarshal(parts[1], &flat); err != nil {
				return nil, fmt.Errorf("%w: marker type %d attributes: %v", ErrMalformedDocument, i, err)
			}
			if len(flat)%2 != 0 {
				return nil, fmt.Errorf("%w: marker type %d has an odd attribute list", ErrMalformedDocument, i)
			}
			for j := 0; j < len(flat); j += 2 {
				mt.Attributes = append(mt.Attributes, Attribute{Name: flat[j], Value: flat[j+1]})
			}
		}

		markerTypes = append(markerTypes, mt)
	}

	return markerTypes, nil
}

func parseSections(data json.RawMessage) ([]Section, error) {
	var raw [][]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: sections: %v", ErrMalformedDocument, err)
	}

	sections := make([]Section, 0, len(raw))
	for i, parts := range raw {
		section, err := parseSection(parts)
		if err != nil {
			return nil, fmt.Errorf("section %d: %w", i, err)
		}
		sections = append(sections, section)
	}

	return sections, nil
}

func parseSection(parts []json.RawMessage) (Section, error) {
	if len(parts) == 0 {
		return nil, fmt.Errorf("%w: empty section", ErrMalformedDocument)
	}

	var tag SectionType
	if err := json.Unmarshal(parts[0], &tag); err != nil {
		return nil, fmt.Errorf("%w: section type: %v", ErrMalformedDocument, err)
	}

	switch tag {
	case SectionTypeMarkup:
		s := &MarkupSection{}
		if err := unmarshalParts(parts, &s.TagName, &s.Markers); err != nil {
			return nil, err
		}
		return s, nil
	case SectionTypeImage:
		s := &ImageSection{}
		if err := unmarshalParts(parts, &s.URL); err != nil {
			return nil, err
		}
		return s, nil
	case SectionTypeList:
		s := &ListSection{}
		if err := unmarshalParts(parts, &s.TagName, &s.Items); err != nil {
			return nil, err
		}
		return s, nil
	case SectionTypeCard:
		s := &CardSection{}
		if len(parts) < 2 {
			return nil, fmt.Errorf("%w: card section missing name", ErrMalformedDocument)
		}
		if err := json.Unmarshal(parts[1], &s.Name); err != nil {
			return nil, fmt.Errorf("%w: card name: %v", ErrMalformedDocument, err)
		}
		if len(parts) > 2 && !isNull(parts[2]) {
			if err := json.Unmarshal(parts[2], &s.Payload); err != nil {
				return nil, fmt.Errorf("%w: card %q payload: %v", ErrMalformedDocument, s.Name, err)
			}
		}
		return s, nil
	default:
		return nil, fmt.Errorf("%w %d", ErrUnsupportedSectionType, int(tag))
	}
}

// unmarshalParts decodes parts[1:] into dst in order.
func unmarshalParts(parts []json.RawMessage, dst ...any) error {
	if len(parts) < len(dst)+1 {
		return fmt.Errorf("%w: section has %d elements, want %d", ErrMalformedDocument, len(parts), len(dst)+1)
	}
	for i, d := range dst {
		if err := json.Unmarshal(parts[i+1], d); err != nil {
			return fmt.Errorf("%w: %v", ErrMalformedDocument, err)
		}
	}
	return nil
}

func isNull(data json.RawMessage) bool {
	return bytes.Equal(bytes.TrimSpace(data), []byte("null"))
}

// UnmarshalJSON decodes a [openTypes, closeCount, text] triple.
func (m *Marker) UnmarshalJSON(data []byte) error {
	var parts []json.RawMessage
	if err := json.Unmarshal(data, &parts); err != nil {
		return err
	}
	if len(parts) != 3 {
		return fmt.Errorf("marker must be [openTypes, closeCount, text], got %d elements", len(parts))
	}
	if err := json.Unmarshal(parts[0], &m.OpenTypes); err != nil {
		return fmt.Errorf("marker open types: %w", err)
	}
	if err := json.Unmarshal(parts[1], &m.CloseCount); err != nil {
		return fmt.Errorf("marker close count: %w", err)
	}
	if err := json.Unmarshal(parts[2], &m.Text); err != nil {
		return fmt.Errorf("marker text: %w", err)
	}
	return nil
}
