// Package tools defines the canonical tool names referenced by the system
// prompt. The prompt engine treats these as opaque strings; actual tool
// dispatch lives with the model client, not here.
package tools

// Canonical tool display names.
const (
	ReadFile     = "read_file"
	WriteFile    = "write_file"
	Edit         = "replace"
	Shell        = "run_shell_command"
	Grep         = "search_file_content"
	Glob         = "glob"
	ReadManyFile = "read_many_files"
	WebFetch     = "web_fetch"
	WebSearch    = "google_web_search"
	Memory       = "save_memory"
)

// Placeholders maps template placeholders to tool names. The prompt package
// substitutes these once at startup; templates never name tools directly so
// a rename stays a one-line change here.
func Placeholders() map[string]string {
	return map[string]string{
		"tool_read_file":  ReadFile,
		"tool_write_file": WriteFile,
		"tool_edit":       Edit,
		"tool_shell":      Shell,
		"tool_grep":       Grep,
		"tool_glob":       Glob,
		"tool_read_many":  ReadManyFile,
		"tool_web_fetch":  WebFetch,
		"tool_web_search": WebSearch,
		"tool_memory":     Memory,
	}
}

// Names returns every canonical tool name in a stable order.
func Names() []string {
	return []string{
		ReadFile,
		WriteFile,
		Edit,
		Shell,
		Grep,
		Glob,
		ReadManyFile,
		WebFetch,
		WebSearch,
		Memory,
	}
}
