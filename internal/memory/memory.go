// Package memory discovers and loads hierarchical context files (GEMINI.md
// by default). The combined content becomes the userMemory suffix the prompt
// resolver appends to the system prompt.
//
// Discovery order: the global file under ~/.gemini/, then ancestor
// directories from the outermost down to the working directory, then
// subdirectories of the working directory. Order is deterministic so the
// composed prompt stays byte-stable for an unchanged tree.
package memory

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"golang.org/x/sync/errgroup"

	"github.com/dacian3/gemini-cli/internal/util"
)

// configDir mirrors the CLI settings directory; the global context file
// lives beside config.yaml.
const configDir = ".gemini"

// skipDirs are never descended into during downward discovery.
var skipDirs = map[string]bool{
	".git":         true,
	".gemini":      true,
	"node_modules": true,
	"vendor":       true,
	"dist":         true,
	"build":        true,
}

// File is one discovered context file.
type File struct {
	Path    string // absolute path
	Content string
}

// Loader discovers context files for one invocation.
type Loader struct {
	fileName string
	homeDir  string
	cwd      string
}

// Option configures a Loader.
type Option func(*Loader)

// WithHomeDir overrides the home directory used for the global context file
// and the upward-walk boundary.
func WithHomeDir(dir string) Option {
	return func(l *Loader) {
		l.homeDir = dir
	}
}

// WithCwd overrides the directory discovery is anchored at.
func WithCwd(dir string) Option {
	return func(l *Loader) {
		l.cwd = dir
	}
}

// NewLoader creates a Loader for the given context file name.
func NewLoader(fileName string, opts ...Option) *Loader {
	l := &Loader{fileName: fileName}
	if home, err := os.UserHomeDir(); err == nil {
		l.homeDir = home
	}
	if cwd, err := os.Getwd(); err == nil {
		l.cwd = cwd
	}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Discover returns the paths of all context files in load order.
func (l *Loader) Discover() ([]string, error) {
	var paths []string
	seen := map[string]bool{}
	add := func(p string) {
		if !seen[p] {
			seen[p] = true
			paths = append(paths, p)
		}
	}

	global := filepath.Join(l.homeDir, configDir, l.fileName)
	if util.FileExists(global) {
		add(global)
	}

	for _, dir := range l.ancestors() {
		p := filepath.Join(dir, l.fileName)
		if util.FileExists(p) {
			add(p)
		}
	}

	below, err := l.descendants()
	if err != nil {
		return nil, err
	}
	for _, p := range below {
		add(p)
	}

	return paths, nil
}

// Load reads every discovered file and returns the concatenated memory
// string plus the number of files it was built from. Unreadable files are
// skipped with a warning rather than failing the whole prompt.
func (l *Loader) Load(ctx context.Context) (string, int, error) {
	paths, err := l.Discover()
	if err != nil {
		return "", 0, err
	}
	files, err := l.readAll(ctx, paths)
	if err != nil {
		return "", 0, err
	}

	var parts []string
	for _, f := range files {
		display := l.displayPath(f.Path)
		parts = append(parts, fmt.Sprintf("--- Context from: %s ---\n%s\n--- End of Context from: %s ---", display, strings.TrimSpace(f.Content), display))
	}
	return strings.Join(parts, "\n\n"), len(files), nil
}

// readAll reads paths concurrently, preserving discovery order.
func (l *Loader) readAll(ctx context.Context, paths []string) ([]File, error) {
	results := make([]*File, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(8)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			data, err := os.ReadFile(path)
			if err != nil {
				slog.Warn("skipping unreadable context file", "path", path, "error", err)
				return nil
			}
			results[i] = &File{Path: path, Content: string(data)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	var files []File
	for _, f := range results {
		if f != nil {
			files = append(files, *f)
		}
	}
	return files, nil
}

// ancestors returns the directories from the outermost boundary down to and
// including cwd. The walk stops at the home directory or the filesystem
// root, whichever comes first.
func (l *Loader) ancestors() []string {
	var chain []string
	dir := l.cwd
	for {
		chain = append(chain, dir)
		if dir == l.homeDir {
			break
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}
	// Outermost first.
	for i, j := 0, len(chain)-1; i < j; i, j = i+1, j-1 {
		chain[i], chain[j] = chain[j], chain[i]
	}
	return chain
}

// descendants globs for context files strictly below cwd, pruning skipDirs.
func (l *Loader) descendants() ([]string, error) {
	matches, err := doublestar.Glob(os.DirFS(l.cwd), "**/"+l.fileName)
	if err != nil {
		return nil, fmt.Errorf("scan context files under %s: %w", l.cwd, err)
	}

	var paths []string
	for _, m := range matches {
		if m == l.fileName {
			continue // cwd's own file is covered by the ancestor walk
		}
		if skippedDir(m) {
			continue
		}
		paths = append(paths, filepath.Join(l.cwd, m))
	}
	sort.Strings(paths)
	return paths, nil
}

// displayPath renders a discovered path relative to cwd when possible.
func (l *Loader) displayPath(path string) string {
	rel, err := filepath.Rel(l.cwd, path)
	if err != nil || strings.HasPrefix(rel, "..") {
		return path
	}
	return rel
}

func skippedDir(relPath string) bool {
	for _, part := range strings.Split(filepath.ToSlash(relPath), "/") {
		if skipDirs[part] {
			return true
		}
	}
	return false
}
