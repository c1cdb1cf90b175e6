// Package templates provides the embedded system prompt sources.
package templates

import "embed"

// Prompts contains the core system prompt, its conditional environment
// fragments, and the chat compression prompt.
//
//go:embed prompts/*.md
var Prompts embed.FS
