// Package adapter contains filesystem and persistence adapters for the
// bannerfmt CLI.
package adapter

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	m "github.com/mouse-blink/bannerfmt/internal/model"
)

const pyFileExt = ".py"

// SourceFSAdapter abstracts the filesystem operations the workflow
// relies on when scanning user projects. It hides direct `os` access so
// the workflow logic can be tested without touching the disk.
type SourceFSAdapter interface {
	// Get collects Python source files for the provided roots. A root
	// may be a single file, a directory, or a directory with the `/...`
	// suffix for recursive scanning.
	Get(roots []m.Path) ([]m.Path, error)

	// ReadFile loads a file from disk and returns its contents.
	ReadFile(path m.Path) ([]byte, error)

	// WriteFile writes content to a file with the given permissions.
	WriteFile(path m.Path, content []byte, perm os.FileMode) error

	// FileInfo returns metadata for a path so callers can check
	// existence or preserve permissions.
	FileInfo(path m.Path) (os.FileInfo, error)
}

// LocalSourceFSAdapter is the concrete SourceFSAdapter backed by the
// local filesystem.
type LocalSourceFSAdapter struct{}

// NewLocalSourceFSAdapter constructs a LocalSourceFSAdapter ready to be
// wired into the workflow.
func NewLocalSourceFSAdapter() *LocalSourceFSAdapter {
	return &LocalSourceFSAdapter{}
}

// Get collects Python source files for the provided roots, deduplicated
// by absolute path.
func (a *LocalSourceFSAdapter) Get(roots []m.Path) ([]m.Path, error) {
	seen := make(map[string]struct{})

	var files []m.Path

	for _, root := range roots {
		rootStr, recursive := parseRootPath(string(root))
		if rootStr == "" {
			rootStr = "."
		}

		info, err := a.FileInfo(m.Path(rootStr))
		if err != nil {
			return nil, fmt.Errorf("root path error: %w", err)
		}

		if !info.IsDir() {
			if err := appendSourceFile(seen, &files, rootStr); err != nil {
				return nil, err
			}

			continue
		}

		err = filepath.Walk(rootStr, func(path string, info os.FileInfo, err error) error {
			if err != nil {
				return err
			}

			if info.IsDir() {
				if path == rootStr {
					return nil
				}

				if !recursive || skipDir(filepath.Base(path)) {
					return filepath.SkipDir
				}

				return nil
			}

			return appendSourceFile(seen, &files, path)
		})
		if err != nil {
			return nil, err
		}
	}

	return files, nil
}

// ReadFile loads file contents from disk.
func (a *LocalSourceFSAdapter) ReadFile(path m.Path) ([]byte, error) {
	return os.ReadFile(string(path))
}

// WriteFile writes content to a file with the given permissions.
func (a *LocalSourceFSAdapter) WriteFile(path m.Path, content []byte, perm os.FileMode) error {
	return os.WriteFile(string(path), content, perm)
}

// FileInfo returns os.FileInfo metadata for the given path.
func (a *LocalSourceFSAdapter) FileInfo(path m.Path) (os.FileInfo, error) {
	return os.Stat(string(path))
}

// parseRootPath extracts the root path and recursive flag from a path string.
func parseRootPath(rootStr string) (path string, recursive bool) {
	if len(rootStr) >= 4 && rootStr[len(rootStr)-4:] == "/..." {
		return rootStr[:len(rootStr)-4], true
	}

	return rootStr, false
}

func appendSourceFile(seen map[string]struct{}, files *[]m.Path, path string) error {
	if filepath.Ext(path) != pyFileExt {
		return nil
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	if _, exists := seen[abs]; exists {
		return nil
	}

	seen[abs] = struct{}{}
	*files = append(*files, m.Path(abs))

	return nil
}

// skipDir filters directories that never hold project sources.
func skipDir(name string) bool {
	if name == "__pycache__" || name == "node_modules" || name == "venv" {
		return true
	}

	return strings.HasPrefix(name, ".") && name != "." && name != ".."
}
