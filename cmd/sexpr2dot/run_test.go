package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func runCLI(args ...string) (int, string, string) {
	var stdout, stderr bytes.Buffer
	code := run(args, &stdout, &stderr)
	return code, stdout.String(), stderr.String()
}

func TestRunRendersFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.sexpr", "(add 1 2)\n")

	code, stdout, stderr := runCLI(path)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stderr)
	assert.Equal(t, "digraph {\n"+
		"\tsubgraph cluster0 {\n"+
		"\t\tn0 [label=\"add\"];\n"+
		"\t\tn1 [label=\"1\"];\n"+
		"\t\tn0 -> n1;\n"+
		"\t\tn2 [label=\"2\"];\n"+
		"\t\tn0 -> n2;\n"+
		"\t}\n"+
		"}\n", stdout)
}

func TestRunUsage(t *testing.T) {
	testCases := [][]string{
		{},
		{"a.sexpr", "b.sexpr"},
		{"--no-such-flag", "a.sexpr"},
	}

	for _, args := range testCases {
		code, stdout, stderr := runCLI(args...)
		assert.Equal(t, exitUsage, code, "args: %v", args)
		assert.Empty(t, stdout)
		assert.Contains(t, stderr, "usage: sexpr2dot")
	}
}

func TestRunHelp(t *testing.T) {
	code, stdout, _ := runCLI("--help")
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "sexpr2dot")
}

func TestRunMissingFile(t *testing.T) {
	code, stdout, stderr := runCLI(filepath.Join(t.TempDir(), "missing.sexpr"))
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "error:")
	assert.Contains(t, stderr, "does not exist")
}

func TestRunSyntaxError(t *testing.T) {
	path := writeFile(t, t.TempDir(), "bad.sexpr", "(a)\n(add 1 2\n")

	code, stdout, stderr := runCLI(path)
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, path+":3:1: expected `)`, got EOF")
}

func TestRunOutputFile(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.sexpr", "(a b)")
	out := filepath.Join(dir, "out.dot")

	code, stdout, _ := runCLI("-o", out, path)
	assert.Equal(t, exitOK, code)
	assert.Empty(t, stdout)

	data, err := os.ReadFile(out)
	require.NoError(t, err)
	assert.Contains(t, string(data), "n0 -> n1;")
}

func TestRunOutputFileNotWrittenOnError(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.sexpr", "(a b")
	out := filepath.Join(dir, "out.dot")

	code, _, _ := runCLI("-o", out, path)
	assert.Equal(t, exitError, code)

	_, err := os.Stat(out)
	assert.True(t, os.IsNotExist(err))
}

func TestRunConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.sexpr", "(a b)")
	cfg := writeFile(t, dir, "cfg.yaml", "render:\n  undirected: true\n  vertex_prefix: v\n")

	code, stdout, stderr := runCLI("--config", cfg, path)
	assert.Equal(t, exitOK, code, stderr)
	assert.Contains(t, stdout, "graph {\n")
	assert.Contains(t, stdout, "v0 -- v1;")
}

func TestRunBadConfig(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "in.sexpr", "(a b)")
	cfg := writeFile(t, dir, "cfg.yaml", "render:\n  bogus: 1\n")

	code, stdout, stderr := runCLI("-c", cfg, path)
	assert.Equal(t, exitError, code)
	assert.Empty(t, stdout)
	assert.Contains(t, stderr, "config")
}

func TestRunParseFlags(t *testing.T) {
	dir := t.TempDir()

	{
		path := writeFile(t, dir, "open.sexpr", `(say "hi)`)

		code, _, stderr := runCLI(path)
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr, "unterminated string")

		code, _, stderr = runCLI("--allow-unterminated-strings", path)
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr, "expected `)`")
	}

	{
		path := writeFile(t, dir, "deep.sexpr", "(a (b (c)))")

		code, _, stderr := runCLI("--max-depth", "2", path)
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr, "nesting too deep")

		code, _, _ = runCLI("--max-depth", "3", path)
		assert.Equal(t, exitOK, code)
	}
}

func TestRunLexerFlags(t *testing.T) {
	dir := t.TempDir()

	{
		path := writeFile(t, dir, "crlf.sexpr", "(a\r\n b)\r\n")

		code, _, stderr := runCLI(path)
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr, "expected `(`")

		code, stdout, stderr := runCLI("--allow-crlf", path)
		assert.Equal(t, exitOK, code, stderr)
		assert.Contains(t, stdout, "n1 [label=\"b\"];")
	}

	{
		path := writeFile(t, dir, "ctl.sexpr", "(a \x01)")

		code, _, _ := runCLI(path)
		assert.Equal(t, exitOK, code)

		code, _, stderr := runCLI("--reject-control-characters", path)
		assert.Equal(t, exitError, code)
		assert.Contains(t, stderr, path+":1:4: unexpected character")
	}
}

func TestRunTokens(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.sexpr", `(a "b c")`)

	code, stdout, _ := runCLI("--tokens", path)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stdout, "POSITION")
	assert.Contains(t, stdout, "open_paren")
	assert.Contains(t, stdout, `"b c"`)
	assert.Contains(t, stdout, "EOF")
}

func TestRunAST(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.sexpr", `(a (b) ())`)

	code, stdout, _ := runCLI("--ast", path)
	assert.Equal(t, exitOK, code)
	assert.Equal(t, ""+
		"#2 (list): \"a\"\n"+
		"    #0 (list): \"b\"\n"+
		"    #1 (empty)\n", stdout)
}

func TestRunVerbose(t *testing.T) {
	path := writeFile(t, t.TempDir(), "in.sexpr", `(a)`)

	code, _, stderr := runCLI("-v", path)
	assert.Equal(t, exitOK, code)
	assert.Contains(t, stderr, "sexpr2dot: read 3 bytes")
}
