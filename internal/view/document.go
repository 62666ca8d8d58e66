package view

import (
	"fmt"
	"strings"

	htmltomarkdown "github.com/JohannesKaufmann/html-to-markdown/v2"
	"github.com/PuerkitoBio/goquery"
)

// DocumentFormat is an output format for rendered documents.
type DocumentFormat string

const (
	DocumentHTML     DocumentFormat = "html"
	DocumentMarkdown DocumentFormat = "markdown"
	DocumentText     DocumentFormat = "text"
	DocumentJSON     DocumentFormat = "json"
)

// ValidDocumentFormats returns the accepted --format values.
func ValidDocumentFormats() []string {
	return []string{string(DocumentHTML), string(DocumentMarkdown), string(DocumentText), string(DocumentJSON)}
}

// ValidateDocumentFormat checks a --format value.
func ValidateDocumentFormat(format string) error {
	for _, f := range ValidDocumentFormats() {
		if format == f {
			return nil
		}
	}
	return fmt.Errorf("invalid document format %q (valid: %s)", format, strings.Join(ValidDocumentFormats(), ", "))
}

// RenderedDocument is a rendered mobiledoc plus the facts worth reporting.
type RenderedDocument struct {
	HTML     string `json:"html"`
	Version  string `json:"version"`
	Sections int    `json:"sections"`
}

// RenderDocument writes a rendered document in the given format.
func (r *Renderer) RenderDocument(doc RenderedDocument, format DocumentFormat) error {
	switch format {
	case DocumentHTML, "":
		fmt.Fprintln(r.writer, doc.HTML)
		return nil
	case DocumentMarkdown:
		markdown, err := ToMarkdown(doc.HTML)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.writer, markdown)
		return nil
	case DocumentText:
		text, err := ToText(doc.HTML)
		if err != nil {
			return err
		}
		fmt.Fprintln(r.writer, text)
		return nil
	case DocumentJSON:
		return r.RenderJSON(doc)
	default:
		return ValidateDocumentFormat(string(format))
	}
}

// ToMarkdown converts rendered HTML to markdown.
func ToMarkdown(html string) (string, error) {
	markdown, err := htmltomarkdown.ConvertString(html)
	if err != nil {
		return "", fmt.Errorf("failed to convert to markdown: %w", err)
	}
	return strings.TrimSpace(markdown), nil
}

// ToText extracts the text of each top-level section, one per line.
// Sections without text (images, empty cards) are skipped.
func ToText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	var lines []string
	doc.Find("body > div").First().Children().Each(func(_ int, s *goquery.Selection) {
		text := strings.TrimSpace(strings.ReplaceAll(s.Text(), "\u00a0", " "))
		if text != "" {
			lines = append(lines, text)
		}
	})
	return strings.Join(lines, "\n"), nil
}
