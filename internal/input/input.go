// Package input reads mobiledoc documents from files or stdin.
package input

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/open-cli-collective/mobiledoc-cli/pkg/mobiledoc"
)

// Stdin is the path that selects standard input.
const Stdin = "-"

// ReadDocument reads and parses a mobiledoc from path, or from stdin when
// path is empty or "-". Files ending in .yml or .yaml are parsed as YAML,
// everything else as JSON.
func ReadDocument(path string, stdin io.Reader) (*mobiledoc.Document, error) {
	var (
		data []byte
		err  error
	)

	if path == "" || path == Stdin {
		data, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
	} else {
		data, err = os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read document: %w", err)
		}
	}

	if len(strings.TrimSpace(string(data))) == 0 {
		return nil, fmt.Errorf("document is empty")
	}

	parse := mobiledoc.Parse
	if IsYAML(path) {
		parse = mobiledoc.ParseYAML
	}

	doc, err := parse(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}
	return doc, nil
}

// IsYAML reports whether path has a YAML extension.
func IsYAML(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	default:
		return false
	}
}
