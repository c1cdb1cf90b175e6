// Package config loads CLI settings from files and the environment.
//
// Load order (later sources override earlier):
//  1. Built-in defaults
//  2. User settings (~/.gemini/config.yaml) - optional
//  3. Project settings (.gemini/config.yaml) - optional
//  4. Environment variables (GEMINI_*)
//
// The resulting Settings struct is constructed once at process entry and
// passed down; nothing below the CLI layer reads the environment directly.
package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	clierrors "github.com/dacian3/gemini-cli/internal/errors"
)

const (
	// ConfigDir is the hidden settings directory, relative to home (user
	// scope) or the working directory (project scope).
	ConfigDir = ".gemini"
	// ConfigFileName is the settings file name inside ConfigDir.
	ConfigFileName = "config.yaml"
	// DefaultContextFileName is the memory context file discovered by the
	// memory loader.
	DefaultContextFileName = "GEMINI.md"
)

// Environment variable names.
const (
	EnvSystemMd      = "GEMINI_SYSTEM_MD"
	EnvWriteSystemMd = "GEMINI_WRITE_SYSTEM_MD"
	EnvContextFile   = "GEMINI_CONTEXT_FILE"
	EnvDebug         = "GEMINI_DEBUG"
)

// Settings holds the resolved CLI configuration.
type Settings struct {
	// SystemPrompt is the system prompt override switch: unset/"0"/"false"
	// off, "1"/"true" on at the default location, anything else a path.
	SystemPrompt string `yaml:"system_prompt"`
	// WriteSystemPrompt is the write-back switch, same value grammar.
	WriteSystemPrompt string `yaml:"write_system_prompt"`
	// ContextFileName is the file name the memory loader discovers.
	ContextFileName string `yaml:"context_file_name"`
	Debug           bool   `yaml:"debug"`
}

// Default returns the built-in defaults.
func Default() *Settings {
	return &Settings{
		ContextFileName: DefaultContextFileName,
	}
}

// Load resolves settings for the current process.
func Load() (*Settings, error) {
	home, _ := os.UserHomeDir()
	cwd, _ := os.Getwd()
	return LoadFrom(home, cwd, os.Getenv)
}

// LoadFrom resolves settings against explicit directories and environment
// lookup, so tests can run hermetically.
func LoadFrom(homeDir, projectDir string, getenv func(string) string) (*Settings, error) {
	s := Default()

	if homeDir != "" {
		userPath := filepath.Join(homeDir, ConfigDir, ConfigFileName)
		if err := mergeFromFile(s, userPath); err != nil {
			// A broken user-level file should not take every project down.
			slog.Warn("ignoring unreadable user settings", "path", userPath, "error", err)
		}
	}

	if projectDir != "" {
		projectPath := filepath.Join(projectDir, ConfigDir, ConfigFileName)
		if err := mergeFromFile(s, projectPath); err != nil {
			return nil, clierrors.ErrConfigInvalid(projectPath).WithCause(err)
		}
	}

	applyEnv(s, getenv)
	return s, nil
}

// mergeFromFile merges settings from path. A missing file is not an error;
// an unparseable one is.
func mergeFromFile(s *Settings, path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	// Unmarshal into a raw map first so only keys present in the file
	// override earlier sources.
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return err
	}
	var fileCfg Settings
	if err := yaml.Unmarshal(data, &fileCfg); err != nil {
		return err
	}

	if _, ok := raw["system_prompt"]; ok {
		s.SystemPrompt = fileCfg.SystemPrompt
	}
	if _, ok := raw["write_system_prompt"]; ok {
		s.WriteSystemPrompt = fileCfg.WriteSystemPrompt
	}
	if _, ok := raw["context_file_name"]; ok {
		s.ContextFileName = fileCfg.ContextFileName
	}
	if _, ok := raw["debug"]; ok {
		s.Debug = fileCfg.Debug
	}
	return nil
}

// applyEnv applies GEMINI_* overrides. Set-but-empty variables are treated
// as unset, matching the switch grammar.
func applyEnv(s *Settings, getenv func(string) string) {
	if v := getenv(EnvSystemMd); v != "" {
		s.SystemPrompt = v
	}
	if v := getenv(EnvWriteSystemMd); v != "" {
		s.WriteSystemPrompt = v
	}
	if v := getenv(EnvContextFile); v != "" {
		s.ContextFileName = v
	}
	if v := getenv(EnvDebug); v != "" {
		s.Debug = parseBool(v)
	}
}

func parseBool(value string) bool {
	switch strings.ToLower(value) {
	case "1", "true", "yes", "on":
		return true
	default:
		return false
	}
}
