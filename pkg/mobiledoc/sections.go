package mobiledoc

import "fmt"

func (s *renderState) renderSection(section Section) (Node, error) {
	switch sec := section.(type) {
	case *MarkupSection:
		return s.renderMarkupSection(sec)
	case *ImageSection:
		return s.renderImageSection(sec), nil
	case *ListSection:
		return s.renderListSection(sec)
	case *CardSection:
		return s.renderCardSection(sec)
	case nil:
		return nil, fmt.Errorf("%w: nil section", ErrMalformedDocument)
	default:
		return nil, fmt.Errorf("%w %s", ErrUnsupportedSectionType, section.Type())
	}
}

func (s *renderState) renderMarkupSection(section *MarkupSection) (*Element, error) {
	element := CreateElement(section.TagName)
	if err := renderMarkersOnElement(element, s.markerTypes, section.Markers); err != nil {
		return nil, err
	}
	return element, nil
}

func (s *renderState) renderImageSection(section *ImageSection) *Element {
	element := CreateElement("img")
	element.SetAttribute("src", section.URL)
	return element
}

func (s *renderState) renderListSection(section *ListSection) (*Element, error) {
	element := CreateElement(section.TagName)
	for i, markers := range section.Items {
		item := CreateElement("li")
		if err := renderMarkersOnElement(item, s.markerTypes, markers); err != nil {
			return nil, fmt.Errorf("list item %d: %w", i, err)
		}
		element.AppendChild(item)
	}
	return element, nil
}
