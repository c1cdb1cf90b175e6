// Package detect probes the runtime environment the CLI is started in.
//
// The probes run once at process entry; their results are captured in a Facts
// snapshot that is passed into the prompt resolver. The resolver never
// re-queries the environment itself.
package detect

import (
	"os"
	"path/filepath"
)

// SandboxKind identifies the execution sandbox the process runs inside.
type SandboxKind string

const (
	// SandboxNone means no sandbox is active.
	SandboxNone SandboxKind = "none"
	// SandboxSeatbelt means the process runs under macOS Seatbelt (sandbox-exec).
	SandboxSeatbelt SandboxKind = "seatbelt"
	// SandboxContainer means a generic container-based sandbox is active.
	SandboxContainer SandboxKind = "container"
)

// sandboxEnvVar is set by the sandbox launcher wrapping the CLI process.
const sandboxEnvVar = "SANDBOX"

// Facts is an immutable snapshot of the environment, taken once per invocation.
type Facts struct {
	Sandbox   SandboxKind
	IsGitRepo bool
}

// Snapshot probes the environment and returns the facts for cwd. getenv is
// injected so tests do not depend on ambient process state; pass os.Getenv
// in production.
func Snapshot(cwd string, getenv func(string) string) Facts {
	return Facts{
		Sandbox:   Sandbox(getenv(sandboxEnvVar)),
		IsGitRepo: IsGitRepo(cwd),
	}
}

// Sandbox maps the sandbox launcher variable to a SandboxKind.
// "sandbox-exec" is the macOS Seatbelt wrapper; any other non-empty value
// names a container image.
func Sandbox(value string) SandboxKind {
	switch value {
	case "":
		return SandboxNone
	case "sandbox-exec":
		return SandboxSeatbelt
	default:
		return SandboxContainer
	}
}

// IsGitRepo reports whether dir is inside a git working tree. It walks up
// from dir looking for a .git entry. Worktrees and submodules keep .git as a
// file rather than a directory, so any entry type counts.
func IsGitRepo(dir string) bool {
	dir, err := filepath.Abs(dir)
	if err != nil {
		return false
	}
	for {
		if _, err := os.Stat(filepath.Join(dir, ".git")); err == nil {
			return true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return false
		}
		dir = parent
	}
}
