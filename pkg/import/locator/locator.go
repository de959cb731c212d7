// Package locator finds the ticket export among a short list of candidate
// directories.
package locator

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
)

// NotFoundError reports every path that was tried.
type NotFoundError struct {
	Candidates []string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("input file not found, tried: %s", strings.Join(e.Candidates, ", "))
}

// DefaultSearchDirs returns the directories searched when none are
// configured, in priority order: the user's Downloads folder, the project
// data folder next to the program, and the program's own directory.
func DefaultSearchDirs() []string {
	var dirs []string

	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, "Downloads"))
	}

	programDir := "."
	if exe, err := os.Executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		programDir = filepath.Dir(exe)
	}

	dirs = append(dirs,
		filepath.Join(programDir, "..", "public", "data"),
		programDir,
	)

	return dirs
}

// Candidates joins name onto each directory, keeping order.
func Candidates(name string, dirs []string) []string {
	paths := make([]string, len(dirs))
	for i, dir := range dirs {
		paths[i] = filepath.Join(dir, name)
	}
	return paths
}

// Locate returns the first candidate that exists as a regular file.
// When none does, it returns a *NotFoundError listing all of them.
func Locate(candidates []string) (string, error) {
	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				slog.Debug("candidate not accessible", "path", path, "error", err)
			}
			continue
		}
		if info.IsDir() {
			continue
		}
		return path, nil
	}

	tried := make([]string, len(candidates))
	copy(tried, candidates)
	return "", &NotFoundError{Candidates: tried}
}
