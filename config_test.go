package sexprdot

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/xiam/sexprdot/parser"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "sexprdot.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()
	assert.Equal(t, parser.DefaultMaxDepth, cfg.Parse.MaxDepth)
	assert.False(t, cfg.Parse.AllowUnterminatedStrings)
	assert.False(t, cfg.Parse.AllowCRLF)
	assert.False(t, cfg.Parse.RejectControlCharacters)
	assert.Equal(t, "cluster", cfg.Render.ClusterPrefix)
	assert.Equal(t, "n", cfg.Render.VertexPrefix)
	assert.Equal(t, "\t", cfg.Render.Indent)
}

func TestLoadConfig(t *testing.T) {
	path := writeConfig(t, `
parse:
  allow_unterminated_strings: true
  allow_crlf: true
  max_depth: 16
render:
  name: ast
  undirected: true
  vertex_prefix: v
  indent: "  "
  attributes:
    rankdir: LR
`)

	cfg, err := LoadConfig(path)
	require.NoError(t, err)

	assert.True(t, cfg.Parse.AllowUnterminatedStrings)
	assert.True(t, cfg.Parse.AllowCRLF)
	assert.False(t, cfg.Parse.RejectControlCharacters)
	assert.Equal(t, 16, cfg.Parse.MaxDepth)
	assert.Equal(t, "ast", cfg.Render.Name)
	assert.True(t, cfg.Render.Undirected)
	assert.Equal(t, "v", cfg.Render.VertexPrefix)
	assert.Equal(t, "  ", cfg.Render.Indent)
	assert.Equal(t, map[string]string{"rankdir": "LR"}, cfg.Render.Attributes)

	// Untouched keys keep their defaults.
	assert.Equal(t, "cluster", cfg.Render.ClusterPrefix)

	out, err := Convert([]byte(`(a b)`), *cfg)
	require.NoError(t, err)
	assert.Equal(t, "graph \"ast\" {\n"+
		"  rankdir=\"LR\";\n"+
		"  subgraph cluster0 {\n"+
		"    v0 [label=\"a\"];\n"+
		"    v1 [label=\"b\"];\n"+
		"    v0 -- v1;\n"+
		"  }\n"+
		"}\n", out)
}

func TestLoadConfigErrors(t *testing.T) {
	testCases := []struct {
		Name    string
		Content string
		Err     error
	}{
		{
			Name:    "unknown key",
			Content: "render:\n  colour: red\n",
		},
		{
			Name:    "malformed",
			Content: "parse: [\n",
		},
		{
			Name:    "bad attribute name",
			Content: "render:\n  attributes:\n    \"bad key\": x\n",
			Err:     ErrConfigValidation,
		},
		{
			Name:    "bad vertex prefix",
			Content: "render:\n  vertex_prefix: \"1x\"\n",
			Err:     ErrConfigValidation,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.Name, func(t *testing.T) {
			cfg, err := LoadConfig(writeConfig(t, tc.Content))
			assert.Nil(t, cfg)
			require.Error(t, err)
			if tc.Err != nil {
				assert.True(t, errors.Is(err, tc.Err))
			}
		})
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrFileNotExist))
}
