// Package prompt resolves and composes the system prompt sent to the model.
//
// Resolution runs once per process startup: the two configuration switches
// (override and write-back) are parsed with identical rules, the base
// template is either read verbatim from the override file or composed from
// the embedded template plus environment fragments, and hierarchical user
// memory is appended last. The resolver never reads ambient environment
// state; callers construct a Config and a detect.Facts snapshot up front.
package prompt

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/dacian3/gemini-cli/internal/detect"
	clierrors "github.com/dacian3/gemini-cli/internal/errors"
	"github.com/dacian3/gemini-cli/internal/util"
)

const (
	configDirName    = ".gemini"
	systemPromptFile = "system.md"
	memorySeparator  = "\n\n---\n\n"
)

// Config carries the raw values of the two engine switches, captured once at
// process entry (from GEMINI_SYSTEM_MD and GEMINI_WRITE_SYSTEM_MD or the
// settings files).
type Config struct {
	// Override enables replacing the built-in prompt with a file on disk.
	Override string
	// WriteBack enables persisting the composed default prompt to disk.
	WriteBack string
}

// Switch is a parsed configuration switch: off, on at the default location,
// or on at a custom path.
type Switch struct {
	Enabled bool
	Path    string
}

// Resolver resolves the system prompt for one invocation.
type Resolver struct {
	homeDir string
	cwd     string
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithHomeDir overrides the home directory used for the default prompt
// location and ~ expansion.
func WithHomeDir(dir string) Option {
	return func(r *Resolver) {
		r.homeDir = dir
	}
}

// WithCwd overrides the directory relative paths resolve against.
func WithCwd(dir string) Option {
	return func(r *Resolver) {
		r.cwd = dir
	}
}

// NewResolver creates a Resolver with the given options.
func NewResolver(opts ...Option) *Resolver {
	r := &Resolver{}
	if home, err := os.UserHomeDir(); err == nil {
		r.homeDir = home
	}
	if cwd, err := os.Getwd(); err == nil {
		r.cwd = cwd
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve produces the final system prompt. When the override switch is on,
// the base template is the verbatim contents of the override file and a
// missing file is fatal. When the write-back switch is on, the composed
// default (never the override contents) is persisted to the resolved path.
// User memory, when non-blank, is appended to either base.
func (r *Resolver) Resolve(cfg Config, facts detect.Facts, userMemory string) (string, error) {
	override := r.ParseSwitch(cfg.Override)

	var base string
	if override.Enabled {
		data, err := os.ReadFile(override.Path)
		if err != nil {
			if os.IsNotExist(err) {
				return "", clierrors.ErrSystemMdNotFound(override.Path).WithCause(err)
			}
			return "", fmt.Errorf("read system prompt override: %w", err)
		}
		base = string(data)
	} else {
		base = ComposeDefault(facts)
	}

	if writeBack := r.ParseSwitch(cfg.WriteBack); writeBack.Enabled {
		// Write-back persists the in-memory default regardless of whether an
		// override was loaded, so the written file always reflects what this
		// build of the CLI would compose for the current environment.
		content := base
		if override.Enabled {
			content = ComposeDefault(facts)
		}
		if err := util.AtomicWriteFile(writeBack.Path, []byte(content), 0o644); err != nil {
			return "", clierrors.ErrPromptWriteFailed(writeBack.Path).WithCause(err)
		}
	}

	return appendMemory(base, userMemory), nil
}

// ParseSwitch interprets a switch value: unset or "0"/"false" (any case) is
// off; "1"/"true" (any case) is on at the default location
// <home>/.gemini/system.md; anything else is on at that value as a path.
func (r *Resolver) ParseSwitch(value string) Switch {
	if value == "" {
		return Switch{}
	}
	switch strings.ToLower(value) {
	case "0", "false":
		return Switch{}
	case "1", "true":
		return Switch{Enabled: true, Path: r.DefaultPath()}
	}
	return Switch{Enabled: true, Path: r.resolvePath(value)}
}

// DefaultPath returns the default on-disk location of the system prompt.
func (r *Resolver) DefaultPath() string {
	return filepath.Join(r.homeDir, configDirName, systemPromptFile)
}

// resolvePath expands a leading ~ against the home directory and makes the
// result absolute relative to the resolver's cwd.
func (r *Resolver) resolvePath(path string) string {
	if path == "~" {
		path = r.homeDir
	} else if strings.HasPrefix(path, "~/") {
		path = filepath.Join(r.homeDir, path[2:])
	}
	if !filepath.IsAbs(path) {
		path = filepath.Join(r.cwd, path)
	}
	return filepath.Clean(path)
}

// appendMemory appends trimmed user memory after a horizontal rule. Blank
// memory leaves the base untouched.
func appendMemory(base, memory string) string {
	memory = strings.TrimSpace(memory)
	if memory == "" {
		return base
	}
	return base + memorySeparator + memory
}
