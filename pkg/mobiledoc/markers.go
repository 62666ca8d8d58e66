package mobiledoc

import "fmt"

// createElementFromMarkerType builds the element a marker type describes.
func createElementFromMarkerType(mt MarkerType) *Element {
	element := CreateElement(mt.TagName)
	for _, attr := range mt.Attributes {
		element.SetAttribute(attr.Name, attr.Value)
	}
	return element
}

// renderMarkersOnElement appends the markers' text runs to root, opening and
// closing inline elements with a stack. The stack starts with only root, and
// root itself is never popped.
func renderMarkersOnElement(root *Element, markerTypes []MarkerType, markers []Marker) error {
	elements := []*Element{root}
	current := root

	for i, marker := range markers {
		for _, idx := range marker.OpenTypes {
			if idx < 0 || idx >= len(markerTypes) {
				return fmt.Errorf("%w: marker %d opens type %d, document has %d marker types",
					ErrInvalidMarker, i, idx, len(markerTypes))
			}
			opened := createElementFromMarkerType(markerTypes[idx])
			current.AppendChild(opened)
			elements = append(elements, opened)
			current = opened
		}

		current.AppendChild(CreateText(marker.Text))

		if marker.CloseCount < 0 || marker.CloseCount > len(elements)-1 {
			return fmt.Errorf("%w: marker %d closes %d elements but %d are open",
				ErrInvalidMarker, i, marker.CloseCount, len(elements)-1)
		}
		elements = elements[:len(elements)-marker.CloseCount]
		current = elements[len(elements)-1]
	}

	return nil
}
