package prompt

import (
	"fmt"
	"strings"

	"github.com/dacian3/gemini-cli/internal/detect"
	"github.com/dacian3/gemini-cli/internal/tools"
	"github.com/dacian3/gemini-cli/templates"
)

// Prompt sources, loaded from the embedded templates once at startup. Tool
// name placeholders in the trailer are substituted here; composition itself
// performs no further templating.
var (
	corePrompt        = mustPrompt("core.md")
	trailerPrompt     = Render(mustPrompt("trailer.md"), tools.Placeholders())
	seatbeltFragment  = mustPrompt("sandbox_seatbelt.md")
	containerFragment = mustPrompt("sandbox_container.md")
	gitRepoPrompt     = mustPrompt("git_repo.md")
)

// fragmentFunc selects a fragment for an environment snapshot. It returns
// the empty string when the fragment does not apply.
type fragmentFunc func(detect.Facts) string

// fragments are evaluated in fixed order between the core body and the
// trailer. Changing this order changes the composed prompt byte-for-byte.
var fragments = []fragmentFunc{
	sandboxFragment,
	gitRepoFragment,
}

// ComposeDefault builds the default system prompt for an environment
// snapshot. It is pure: identical facts always yield identical output.
func ComposeDefault(facts detect.Facts) string {
	parts := []string{corePrompt}
	for _, fragment := range fragments {
		if text := fragment(facts); text != "" {
			parts = append(parts, text)
		}
	}
	parts = append(parts, trailerPrompt)
	return strings.Join(parts, "\n\n")
}

// sandboxFragment covers all three sandbox kinds: no fragment outside a
// sandbox, the Seatbelt note under sandbox-exec, the container note otherwise.
func sandboxFragment(facts detect.Facts) string {
	switch facts.Sandbox {
	case detect.SandboxSeatbelt:
		return seatbeltFragment
	case detect.SandboxContainer:
		return containerFragment
	default:
		return ""
	}
}

func gitRepoFragment(facts detect.Facts) string {
	if facts.IsGitRepo {
		return gitRepoPrompt
	}
	return ""
}

// Render substitutes {{name}} placeholders in content.
func Render(content string, vars map[string]string) string {
	for key, value := range vars {
		content = strings.ReplaceAll(content, "{{"+key+"}}", value)
	}
	return content
}

func mustPrompt(name string) string {
	data, err := templates.Prompts.ReadFile("prompts/" + name)
	if err != nil {
		panic(fmt.Sprintf("embedded prompt %s: %v", name, err))
	}
	return strings.TrimRight(string(data), "\n")
}
