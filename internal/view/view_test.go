package view

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFormat(t *testing.T) {
	tests := []struct {
		name    string
		format  string
		wantErr bool
	}{
		{"empty (default)", "", false},
		{"table", "table", false},
		{"json", "json", false},
		{"plain", "plain", false},
		{"invalid", "invalid", true},
		{"html is a document format", "html", true},
		{"TABLE uppercase", "TABLE", true}, // case-sensitive
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateFormat(tt.format)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "invalid output format")
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestValidFormats(t *testing.T) {
	formats := ValidFormats()
	assert.Equal(t, []string{"table", "json", "plain"}, formats)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name   string
		input  string
		maxLen int
		want   string
	}{
		{"short string", "hello", 10, "hello"},
		{"exact length", "hello", 5, "hello"},
		{"truncate with ellipsis", "hello world", 8, "hello..."},
		{"very short max", "hello", 3, "hel"},
		{"empty string", "", 10, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Truncate(tt.input, tt.maxLen))
		})
	}
}

func TestRenderer_RenderTable_Table(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"NAME", "TYPE"}, [][]string{
		{"image", "html"},
		{"code", "html"},
	})

	output := buf.String()
	assert.Contains(t, output, "NAME")
	assert.Contains(t, output, "TYPE")
	assert.Contains(t, output, "image")
	assert.Contains(t, output, "code")
}

func TestRenderer_RenderTable_DefaultsToTable(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer("", true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"NAME"}, [][]string{{"image"}})

	assert.Equal(t, "NAME\nimage\n", buf.String())
}

func TestRenderer_RenderTable_JSON(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"NAME", "TYPE"}, [][]string{
		{"image", "html"},
		{"code"}, // Missing TYPE
	})

	var result []map[string]string
	require.NoError(t, json.Unmarshal(buf.Bytes(), &result))
	require.Len(t, result, 2)
	assert.Equal(t, "image", result[0]["name"])
	assert.Equal(t, "html", result[0]["type"])
	_, exists := result[1]["type"]
	assert.False(t, exists)
}

func TestRenderer_RenderTable_Plain(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatPlain, true)
	r.SetWriter(&buf)

	r.RenderTable([]string{"NAME", "TYPE"}, [][]string{
		{"image", "html"},
		{"code", "html"},
	})

	// Plain format should use tabs and not include headers
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{"image\thtml", "code\thtml"}, lines)
}

func TestRenderer_RenderKeyValue(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.RenderKeyValue("Version", "0.2.0")
	assert.Equal(t, "Version: 0.2.0\n", buf.String())

	buf.Reset()
	r = NewRenderer(FormatJSON, true)
	r.SetWriter(&buf)
	r.RenderKeyValue("version", "0.2.0")
	assert.Equal(t, `{"version": "0.2.0"}`, strings.TrimSpace(buf.String()))
}

func TestRenderer_SuccessAndError(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(FormatTable, true)
	r.SetWriter(&buf)

	r.Success("Document is valid")
	r.Error("Card not found")

	output := buf.String()
	assert.Contains(t, output, "✓ Document is valid")
	assert.Contains(t, output, "✗ Card not found")
}

const sampleHTML = `<div><h2>Title</h2><p>Some <b>bold</b> &nbsp;text</p><img src="cat.gif"><ul><li>one</li><li>two</li></ul><div><pre><code>x</code></pre></div></div>`

func TestRenderer_RenderDocument(t *testing.T) {
	doc := RenderedDocument{HTML: sampleHTML, Version: "0.2.0", Sections: 5}

	t.Run("html", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&buf)

		require.NoError(t, r.RenderDocument(doc, DocumentHTML))
		assert.Equal(t, sampleHTML+"\n", buf.String())
	})

	t.Run("markdown", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&buf)

		require.NoError(t, r.RenderDocument(doc, DocumentMarkdown))
		output := buf.String()
		assert.Contains(t, output, "## Title")
		assert.Contains(t, output, "**bold**")
		assert.Contains(t, output, "![](cat.gif)")
		assert.Contains(t, output, "- one")
	})

	t.Run("text", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&buf)

		require.NoError(t, r.RenderDocument(doc, DocumentText))
		assert.Equal(t, "Title\nSome bold  text\nonetwo\nx\n", buf.String())
	})

	t.Run("json", func(t *testing.T) {
		var buf bytes.Buffer
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&buf)

		require.NoError(t, r.RenderDocument(doc, DocumentJSON))
		var got RenderedDocument
		require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
		assert.Equal(t, doc, got)
	})

	t.Run("invalid", func(t *testing.T) {
		r := NewRenderer(FormatTable, true)
		r.SetWriter(&bytes.Buffer{})

		err := r.RenderDocument(doc, "pdf")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid document format")
	})
}

func TestToText_EmptyDocument(t *testing.T) {
	text, err := ToText("<div></div>")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestValidateDocumentFormat(t *testing.T) {
	for _, f := range ValidDocumentFormats() {
		assert.NoError(t, ValidateDocumentFormat(f))
	}
	assert.Error(t, ValidateDocumentFormat(""))
	assert.Error(t, ValidateDocumentFormat("table"))
}
