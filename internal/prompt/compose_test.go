package prompt

import (
	"strings"
	"testing"

	"github.com/dacian3/gemini-cli/internal/detect"
	"github.com/dacian3/gemini-cli/internal/tools"
)

func TestComposeDefaultBare(t *testing.T) {
	out := ComposeDefault(detect.Facts{})

	if strings.Contains(out, "macOS Seatbelt") {
		t.Error("unexpected seatbelt fragment outside a sandbox")
	}
	if strings.Contains(out, "sandbox container") {
		t.Error("unexpected container fragment outside a sandbox")
	}
	if strings.Contains(out, "# Git Repository") {
		t.Error("unexpected git fragment outside a repository")
	}
}

func TestComposeDefaultSeatbelt(t *testing.T) {
	out := ComposeDefault(detect.Facts{Sandbox: detect.SandboxSeatbelt})

	if !strings.Contains(out, "# macOS Seatbelt") {
		t.Error("expected seatbelt fragment")
	}
	if strings.Contains(out, "sandbox container") {
		t.Error("seatbelt and container fragments are mutually exclusive")
	}
}

func TestComposeDefaultContainer(t *testing.T) {
	out := ComposeDefault(detect.Facts{Sandbox: detect.SandboxContainer})

	if !strings.Contains(out, "sandbox container") {
		t.Error("expected container fragment")
	}
	if strings.Contains(out, "macOS Seatbelt") {
		t.Error("seatbelt and container fragments are mutually exclusive")
	}
}

func TestComposeDefaultGitRepo(t *testing.T) {
	out := ComposeDefault(detect.Facts{IsGitRepo: true})

	if !strings.Contains(out, "# Git Repository") {
		t.Error("expected git fragment inside a repository")
	}
}

func TestComposeDefaultOrder(t *testing.T) {
	out := ComposeDefault(detect.Facts{Sandbox: detect.SandboxSeatbelt, IsGitRepo: true})

	core := strings.Index(out, "# Core Mandates")
	sandbox := strings.Index(out, "# macOS Seatbelt")
	git := strings.Index(out, "# Git Repository")
	trailer := strings.Index(out, "# Final Reminder")

	if core != 0 {
		t.Errorf("expected core body first, found at %d", core)
	}
	if !(core < sandbox && sandbox < git && git < trailer) {
		t.Errorf("fragment order wrong: core=%d sandbox=%d git=%d trailer=%d", core, sandbox, git, trailer)
	}
}

func TestComposeDefaultToolNames(t *testing.T) {
	out := ComposeDefault(detect.Facts{})

	for _, name := range []string{tools.Shell, tools.ReadFile, tools.Edit, tools.Memory} {
		if !strings.Contains(out, "'"+name+"'") {
			t.Errorf("expected tool name %q in composed prompt", name)
		}
	}
	if strings.Contains(out, "{{") {
		t.Error("unsubstituted placeholder left in composed prompt")
	}
}

func TestRender(t *testing.T) {
	got := Render("use '{{a}}' then '{{b}}', never '{{a}}' twice in a row", map[string]string{
		"a": "alpha",
		"b": "beta",
	})
	want := "use 'alpha' then 'beta', never 'alpha' twice in a row"
	if got != want {
		t.Errorf("expected %q, got %q", want, got)
	}
}

func TestRenderLeavesUnknownPlaceholders(t *testing.T) {
	got := Render("keep {{unknown}}", map[string]string{"a": "alpha"})
	if got != "keep {{unknown}}" {
		t.Errorf("expected unknown placeholders untouched, got %q", got)
	}
}
