package cli

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeDoc creates a Markdown file in an isolated temp dir and returns its path.
func writeDoc(t *testing.T, content string) string {
	t.Helper()

	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	path := filepath.Join(t.TempDir(), "doc.md")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := NewRootCommand(BuildInfo{Version: "test", Commit: "none", Date: "unknown"})
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

func TestMapCommand_OffsetJSON(t *testing.T) {
	path := writeDoc(t, "# Header\n- List item")

	out, err := execute(t, "map", path, "--offset", "2", "--format", "json", "--color", "never")
	require.NoError(t, err)

	var report struct {
		From      string `json:"from"`
		Offset    int    `json:"offset"`
		Converted int    `json:"converted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))

	assert.Equal(t, "raw", report.From)
	assert.Equal(t, 2, report.Offset)
	assert.Equal(t, 0, report.Converted)
}

func TestMapCommand_RenderedDirection(t *testing.T) {
	path := writeDoc(t, "# Header\n- List item")

	out, err := execute(t, "map", path, "--offset", "0", "--from", "rendered", "--format", "json", "--color", "never")
	require.NoError(t, err)

	var report struct {
		Converted int `json:"converted"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, 2, report.Converted)
}

func TestMapCommand_FullDumpJSON(t *testing.T) {
	path := writeDoc(t, "# Header\n- List item")

	out, err := execute(t, "map", path, "--format", "json", "--color", "never")
	require.NoError(t, err)

	var dump struct {
		RawLength      int   `json:"raw_length"`
		RenderedLength int   `json:"rendered_length"`
		RawToRendered  []int `json:"raw_to_rendered"`
		RenderedToRaw  []int `json:"rendered_to_raw"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &dump))

	assert.Equal(t, 20, dump.RawLength)
	assert.Equal(t, 16, dump.RenderedLength)
	assert.Len(t, dump.RawToRendered, 21)
	assert.Len(t, dump.RenderedToRaw, 17)
}

func TestMapCommand_BadDirection(t *testing.T) {
	path := writeDoc(t, "# Header")

	_, err := execute(t, "map", path, "--offset", "0", "--from", "sideways")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidUsage, ExitCodeFromError(err))
}

func TestMapCommand_MissingFile(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())

	_, err := execute(t, "map", filepath.Join(t.TempDir(), "absent.md"))
	require.Error(t, err)
}

func TestRenderCommand_Plain(t *testing.T) {
	path := writeDoc(t, "# Header\n- List item")

	out, err := execute(t, "render", path, "--plain")
	require.NoError(t, err)
	assert.Equal(t, "Header\nList item\n", out)
}

func TestRenderCommand_OutputFile(t *testing.T) {
	path := writeDoc(t, "# Title\n\nBody text")
	dest := filepath.Join(t.TempDir(), "out.txt")

	_, err := execute(t, "render", path, "--plain", "-o", dest)
	require.NoError(t, err)

	got, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "Title\nBody text\n", string(got))
}

func TestSwitchCommand_Toggles(t *testing.T) {
	path := writeDoc(t, "# Header\n- List item")

	out, err := execute(t, "switch", path, "--cursor", "11", "--count", "2", "--color", "never")
	require.NoError(t, err)

	assert.Contains(t, out, "rendered")
	// Two toggles end back in raw mode with the content cursor intact.
	assert.Contains(t, out, "mode raw  cursor 11")
}

func TestSwitchCommand_BadCount(t *testing.T) {
	path := writeDoc(t, "# Header")

	_, err := execute(t, "switch", path, "--count", "0")
	require.Error(t, err)
	assert.Equal(t, ExitInvalidUsage, ExitCodeFromError(err))
}

func TestInitCommand_CreatesConfig(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	dest := filepath.Join(t.TempDir(), ".markmode.yaml")

	_, err := execute(t, "init", "-o", dest)
	require.NoError(t, err)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(content), "# markmode configuration")
	assert.Contains(t, string(content), "default_mode: raw")
}

func TestInitCommand_ExistingWithoutForce(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	dest := filepath.Join(t.TempDir(), ".markmode.yaml")
	require.NoError(t, os.WriteFile(dest, []byte("default_mode: rendered\n"), 0o644))

	// Stdin is not a terminal under go test, so no prompt is possible.
	_, err := execute(t, "init", "-o", dest)
	require.Error(t, err)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Equal(t, "default_mode: rendered\n", string(content))
}

func TestInitCommand_Force(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("HOME", t.TempDir())
	dest := filepath.Join(t.TempDir(), ".markmode.yaml")
	require.NoError(t, os.WriteFile(dest, []byte("stale"), 0o644))

	_, err := execute(t, "init", "-o", dest, "--force")
	require.NoError(t, err)

	content, err := os.ReadFile(dest)
	require.NoError(t, err)
	assert.Contains(t, string(content), "default_mode: raw")
}
