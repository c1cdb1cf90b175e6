package memory

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
}

func TestDiscoverOrder(t *testing.T) {
	home := t.TempDir()
	project := filepath.Join(home, "src", "project")
	cwd := filepath.Join(project, "internal")

	writeFile(t, filepath.Join(home, ".gemini", "GEMINI.md"), "global")
	writeFile(t, filepath.Join(project, "GEMINI.md"), "project")
	writeFile(t, filepath.Join(cwd, "GEMINI.md"), "cwd")
	writeFile(t, filepath.Join(cwd, "pkg", "GEMINI.md"), "sub")
	require.NoError(t, os.MkdirAll(cwd, 0o755))

	l := NewLoader("GEMINI.md", WithHomeDir(home), WithCwd(cwd))
	paths, err := l.Discover()
	require.NoError(t, err)

	want := []string{
		filepath.Join(home, ".gemini", "GEMINI.md"),
		filepath.Join(project, "GEMINI.md"),
		filepath.Join(cwd, "GEMINI.md"),
		filepath.Join(cwd, "pkg", "GEMINI.md"),
	}
	assert.Equal(t, want, paths)
}

func TestDiscoverSkipsJunkDirs(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, "node_modules", "dep", "GEMINI.md"), "ignored")
	writeFile(t, filepath.Join(cwd, ".git", "GEMINI.md"), "ignored")
	writeFile(t, filepath.Join(cwd, "pkg", "GEMINI.md"), "kept")

	l := NewLoader("GEMINI.md", WithHomeDir(t.TempDir()), WithCwd(cwd))
	paths, err := l.Discover()
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(cwd, "pkg", "GEMINI.md")}, paths)
}

func TestDiscoverCustomFileName(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, "GEMINI.md"), "wrong name")
	writeFile(t, filepath.Join(cwd, "AGENTS.md"), "right name")

	l := NewLoader("AGENTS.md", WithHomeDir(t.TempDir()), WithCwd(cwd))
	paths, err := l.Discover()
	require.NoError(t, err)

	assert.Equal(t, []string{filepath.Join(cwd, "AGENTS.md")}, paths)
}

func TestLoadFormatsMarkers(t *testing.T) {
	cwd := t.TempDir()
	writeFile(t, filepath.Join(cwd, "GEMINI.md"), "Always use tabs.\n")
	writeFile(t, filepath.Join(cwd, "pkg", "GEMINI.md"), "Package notes.")

	l := NewLoader("GEMINI.md", WithHomeDir(t.TempDir()), WithCwd(cwd))
	combined, count, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, count)
	assert.Contains(t, combined, "--- Context from: GEMINI.md ---\nAlways use tabs.\n--- End of Context from: GEMINI.md ---")
	assert.Contains(t, combined, "--- Context from: "+filepath.Join("pkg", "GEMINI.md")+" ---")
	assert.True(t, strings.Index(combined, "Always use tabs.") < strings.Index(combined, "Package notes."),
		"ancestor content must precede descendant content")
}

func TestLoadEmpty(t *testing.T) {
	l := NewLoader("GEMINI.md", WithHomeDir(t.TempDir()), WithCwd(t.TempDir()))
	combined, count, err := l.Load(context.Background())
	require.NoError(t, err)

	assert.Zero(t, count)
	assert.Empty(t, combined)
}
