package mobiledoc

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse_AllSectionTypes(t *testing.T) {
	doc, err := Parse([]byte(`{
		"version": "0.2.0",
		"sections": [
			[["B"], ["A", ["href", "https://example.com", "target", "_blank"]], ["I", null]],
			[
				[1, "H2", [[[0], 1, "title"]]],
				[2, "https://example.com/cat.gif"],
				[3, "ul", [[[[], 0, "one"]], [[[2], 1, "two"]]]],
				[10, "image", {"src": "dog.gif"}]
			]
		]
	}`))
	require.NoError(t, err)

	assert.Equal(t, "0.2.0", doc.Version)
	assert.Equal(t, []MarkerType{
		{TagName: "B"},
		{TagName: "A", Attributes: []Attribute{{"href", "https://example.com"}, {"target", "_blank"}}},
		{TagName: "I"},
	}, doc.MarkerTypes)

	require.Len(t, doc.Sections, 4)
	assert.Equal(t, &MarkupSection{
		TagName: "H2",
		Markers: []Marker{{OpenTypes: []int{0}, CloseCount: 1, Text: "title"}},
	}, doc.Sections[0])
	assert.Equal(t, &ImageSection{URL: "https://example.com/cat.gif"}, doc.Sections[1])
	assert.Equal(t, &ListSection{
		TagName: "ul",
		Items: [][]Marker{
			{{OpenTypes: []int{}, CloseCount: 0, Text: "one"}},
			{{OpenTypes: []int{2}, CloseCount: 1, Text: "two"}},
		},
	}, doc.Sections[2])
	assert.Equal(t, &CardSection{Name: "image", Payload: map[string]any{"src": "dog.gif"}}, doc.Sections[3])
}

func TestParse_SectionTypes(t *testing.T) {
	doc, err := Parse([]byte(`{"version": "0.2.0", "sections": [[], [
		[1, "p", []], [2, "u"], [3, "ol", []], [10, "c"]
	]]}`))
	require.NoError(t, err)

	var types []SectionType
	for _, s := range doc.Sections {
		types = append(types, s.Type())
	}
	assert.Equal(t, []SectionType{SectionTypeMarkup, SectionTypeImage, SectionTypeList, SectionTypeCard}, types)
	assert.Nil(t, doc.Sections[3].(*CardSection).Payload)
}

func TestParse_ChecksVersionBeforeShape(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		version string
	}{
		{"well formed", `{"version": "0.1.0", "sections": [[], []]}`, "0.1.0"},
		{"0.3.0 layout", `{"version": "0.3.0", "atoms": [], "cards": [], "markups": [], "sections": [[1, "p", [[0, [], 0, "hi"]]]]}`, "0.3.0"},
		{"unknown section tag", `{"version": "0.1.0", "sections": [[], [[4, "x"]]]}`, "0.1.0"},
		{"short marker", `{"version": "0.2.1", "sections": [[], [[1, "p", [[[], 0]]]]]}`, "0.2.1"},
		{"sections not a list", `{"version": "1.0", "sections": {}}`, "1.0"},
		{"missing version", `{"sections": [[], []]}`, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrVersionMismatch), "got %v", err)
			assert.False(t, errors.Is(err, ErrMalformedDocument))
			assert.Contains(t, err.Error(), `"`+tt.version+`"`)
		})
	}
}

func TestParse_VersionNotAString(t *testing.T) {
	_, err := Parse([]byte(`{"version": 2, "sections": [[], []]}`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedDocument))
}

func TestDecode_ChecksVersion(t *testing.T) {
	_, _, err := Decode(&Document{Version: "0.1.0"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionMismatch))
	assert.Contains(t, err.Error(), `"0.1.0"`)
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
		errMsg  string
	}{
		{"invalid json", `{`, ErrMalformedDocument, ""},
		{"missing sections", `{"version": "0.2.0"}`, ErrMalformedDocument, "pair"},
		{"single element sections", `{"version": "0.2.0", "sections": [[]]}`, ErrMalformedDocument, "pair"},
		{"marker type not array", `{"version": "0.2.0", "sections": [["B"], []]}`, ErrMalformedDocument, "marker type 0"},
		{"odd attributes", `{"version": "0.2.0", "sections": [[["A", ["href"]]], []]}`, ErrMalformedDocument, "odd"},
		{"empty section", `{"version": "0.2.0", "sections": [[], [[]]]}`, ErrMalformedDocument, "empty section"},
		{"unknown type", `{"version": "0.2.0", "sections": [[], [[4, "x"]]]}`, ErrUnsupportedSectionType, "4"},
		{"short markup", `{"version": "0.2.0", "sections": [[], [[1, "p"]]]}`, ErrMalformedDocument, "elements"},
		{"bad marker", `{"version": "0.2.0", "sections": [[], [[1, "p", [[[], 0]]]]]}`, ErrMalformedDocument, "marker"},
		{"card without name", `{"version": "0.2.0", "sections": [[], [[10]]]}`, ErrMalformedDocument, "name"},
		{"card payload not object", `{"version": "0.2.0", "sections": [[], [[10, "c", [1]]]]}`, ErrMalformedDocument, "payload"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.input))
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
			assert.Contains(t, err.Error(), tt.errMsg)
		})
	}
}

func TestParseYAML(t *testing.T) {
	doc, err := ParseYAML([]byte(`
version: "0.2.0"
sections:
  - - [B]
  - - [1, p, [[[0], 1, hello]]]
    - [10, image, {src: cat.gif}]
`))
	require.NoError(t, err)

	r := newTestRenderer(t, Options{})
	res, err := r.Render(doc)
	require.NoError(t, err)
	assert.Equal(t, `<div><p><b>hello</b></p><div><img src="cat.gif"></div></div>`, res.HTML)
}

func TestParseYAML_ChecksVersion(t *testing.T) {
	_, err := ParseYAML([]byte(`
version: "0.3.0"
markups: []
sections:
  - [1, p, [[0, [], 0, hi]]]
`))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrVersionMismatch))
	assert.Contains(t, err.Error(), `"0.3.0"`)
}

func TestParseYAML_Invalid(t *testing.T) {
	_, err := ParseYAML([]byte("version: [unterminated"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrMalformedDocument))
}

func TestDecode(t *testing.T) {
	doc := &Document{
		Version:     Version,
		MarkerTypes: []MarkerType{{TagName: "b"}},
		Sections:    []Section{&ImageSection{URL: "x"}},
	}
	markerTypes, sections, err := Decode(doc)
	require.NoError(t, err)
	assert.Equal(t, doc.MarkerTypes, markerTypes)
	assert.Equal(t, doc.Sections, sections)

	_, _, err = Decode(nil)
	assert.True(t, errors.Is(err, ErrMalformedDocument))
}

func TestSectionType_String(t *testing.T) {
	assert.Equal(t, "markup", SectionTypeMarkup.String())
	assert.Equal(t, "card", SectionTypeCard.String())
	assert.Equal(t, "99", SectionType(99).String())
}
