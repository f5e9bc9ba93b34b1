package fs

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sokinpui/pegpatch/internal/ui"
	"github.com/sokinpui/pegpatch/model"
)

const DevNull = model.DevNull

// PathResolver finds absolute paths for files named in a patch.
type PathResolver struct {
	lookupDirs []string
}

// NewPathResolver creates a new PathResolver.
func NewPathResolver(lookupDirs []string) (*PathResolver, error) {
	if len(lookupDirs) == 0 {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("could not get current working directory: %w", err)
		}
		return &PathResolver{lookupDirs: []string{wd}}, nil
	}

	absDirs := make([]string, 0, len(lookupDirs))
	for _, dir := range lookupDirs {
		abs, err := filepath.Abs(dir)
		if err != nil {
			ui.Warning("Invalid lookup directory '%s', ignoring: %v", dir, err)
			continue
		}
		absDirs = append(absDirs, abs)
	}
	if len(absDirs) == 0 {
		return nil, fmt.Errorf("no usable lookup directory")
	}
	return &PathResolver{lookupDirs: absDirs}, nil
}

// candidates lists the relative paths a patch path may refer to: the path
// itself, then the path with its first component ("a/", "b/") stripped.
func candidates(patchPath string) []string {
	p := filepath.FromSlash(patchPath)
	out := []string{p}
	if _, rest, ok := strings.Cut(patchPath, "/"); ok && rest != "" && !filepath.IsAbs(p) {
		out = append(out, filepath.FromSlash(rest))
	}
	return out
}

// Resolve finds an absolute path, assuming a new file in the first lookup
// directory if it doesn't exist. New files drop a git "a/" or "b/" prefix.
func (r *PathResolver) Resolve(patchPath string) string {
	if existing := r.ResolveExisting(patchPath); existing != "" {
		return existing
	}
	p := filepath.FromSlash(patchPath)
	if filepath.IsAbs(p) {
		return p
	}
	if rest, ok := strings.CutPrefix(patchPath, "a/"); ok {
		p = filepath.FromSlash(rest)
	} else if rest, ok := strings.CutPrefix(patchPath, "b/"); ok {
		p = filepath.FromSlash(rest)
	}
	return filepath.Join(r.lookupDirs[0], p)
}

// ResolveExisting finds an absolute path only if the file exists.
func (r *PathResolver) ResolveExisting(patchPath string) string {
	for _, rel := range candidates(patchPath) {
		if filepath.IsAbs(rel) {
			if _, err := os.Stat(rel); err == nil {
				return rel
			}
			continue
		}
		for _, dir := range r.lookupDirs {
			absPath := filepath.Join(dir, rel)
			if _, err := os.Stat(absPath); err == nil {
				return absPath
			}
		}
	}
	return ""
}

// ReadLines reads a file as lines. The second result reports whether the
// file ended with a newline.
func ReadLines(path string) ([]string, bool, error) {
	if path == DevNull {
		return nil, false, nil
	}
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, false, err
	}
	text := string(content)
	if text == "" {
		return nil, false, nil
	}
	trailing := strings.HasSuffix(text, "\n")
	return strings.Split(strings.TrimSuffix(text, "\n"), "\n"), trailing, nil
}

// WriteLines writes lines to path, creating missing parent directories.
func WriteLines(path string, lines []string, trailing bool) error {
	if err := CreateDirs(filepath.Dir(path)); err != nil {
		return err
	}
	content := strings.Join(lines, "\n")
	if trailing && len(lines) > 0 {
		content += "\n"
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

// CreateDirs creates the given directories if they are missing.
func CreateDirs(dirs ...string) error {
	for _, dir := range dirs {
		if dir == "." || dir == "/" {
			continue
		}
		if _, err := os.Stat(dir); err == nil {
			continue
		}
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("error creating directory '%s': %w", dir, err)
		}
		ui.Success("  -> Created: %s", dir)
	}
	return nil
}
