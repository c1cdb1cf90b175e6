package detect

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSandbox(t *testing.T) {
	tests := []struct {
		value string
		want  SandboxKind
	}{
		{"", SandboxNone},
		{"sandbox-exec", SandboxSeatbelt},
		{"gemini-cli-sandbox", SandboxContainer},
		{"docker", SandboxContainer},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Sandbox(tt.value), "value %q", tt.value)
	}
}

func TestIsGitRepo(t *testing.T) {
	root := t.TempDir()
	repo := filepath.Join(root, "repo")
	nested := filepath.Join(repo, "a", "b")
	require.NoError(t, os.MkdirAll(filepath.Join(repo, ".git"), 0o755))
	require.NoError(t, os.MkdirAll(nested, 0o755))

	assert.True(t, IsGitRepo(repo))
	assert.True(t, IsGitRepo(nested), "nested dirs inherit the repo root")
	assert.False(t, IsGitRepo(root))
}

func TestIsGitRepoWorktreeFile(t *testing.T) {
	// Linked worktrees keep .git as a plain file pointing at the real gitdir.
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git"), []byte("gitdir: /elsewhere\n"), 0o644))

	assert.True(t, IsGitRepo(dir))
}

func TestSnapshot(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0o755))

	env := map[string]string{"SANDBOX": "sandbox-exec"}
	facts := Snapshot(dir, func(k string) string { return env[k] })

	assert.Equal(t, SandboxSeatbelt, facts.Sandbox)
	assert.True(t, facts.IsGitRepo)

	facts = Snapshot(t.TempDir(), func(string) string { return "" })
	assert.Equal(t, SandboxNone, facts.Sandbox)
	assert.False(t, facts.IsGitRepo)
}
