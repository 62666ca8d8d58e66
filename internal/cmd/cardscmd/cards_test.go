package cardscmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunList_Table(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runList(&listOptions{noColor: true, stdout: &out}))

	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	require.Len(t, lines, 5)
	assert.Contains(t, lines[0], "NAME")
	assert.Contains(t, lines[1], "card-markdown")
	assert.Contains(t, lines[4], "image")
}

func TestRunList_JSON(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runList(&listOptions{output: "json", noColor: true, stdout: &out}))

	var result []map[string]string
	require.NoError(t, json.Unmarshal(out.Bytes(), &result))
	require.Len(t, result, 4)
	assert.Equal(t, "card-markdown", result[0]["name"])
	assert.Equal(t, "html", result[0]["type"])
	assert.NotEmpty(t, result[0]["description"])
}

func TestRunList_InvalidFormat(t *testing.T) {
	err := runList(&listOptions{output: "yaml", stdout: &bytes.Buffer{}})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid output format")
}

func TestNewCmdCards(t *testing.T) {
	cmd := NewCmdCards()
	assert.Equal(t, "cards", cmd.Use)
	require.Len(t, cmd.Commands(), 1)
	assert.Equal(t, "list", cmd.Commands()[0].Use)
}
