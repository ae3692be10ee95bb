package extractor

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"

	"github.com/yargevad/filepathx"
)

// matchFiles expands the include globs under root, removes anything the
// exclude globs match and returns the regular files left, relative to root
// with forward slashes.
func matchFiles(root string, include, exclude []string) ([]string, error) {
	excluded := make(map[string]bool)
	for _, pattern := range exclude {
		matches, err := expand(root, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			excluded[m] = true
		}
	}

	seen := make(map[string]bool)
	var files []string
	for _, pattern := range include {
		matches, err := expand(root, pattern)
		if err != nil {
			return nil, err
		}
		for _, m := range matches {
			if seen[m] || excluded[m] {
				continue
			}
			seen[m] = true

			info, err := os.Stat(m)
			if err != nil {
				return nil, err
			}
			if !info.Mode().IsRegular() {
				continue
			}

			rel, err := filepath.Rel(root, m)
			if err != nil {
				return nil, err
			}
			files = append(files, filepath.ToSlash(rel))
		}
	}

	slices.Sort(files)
	return files, nil
}

func expand(root, pattern string) ([]string, error) {
	matches, err := filepathx.Glob(filepath.Join(root, filepath.FromSlash(pattern)))
	if err != nil {
		return nil, fmt.Errorf("bad glob %q: %w", pattern, err)
	}
	for i, m := range matches {
		matches[i] = filepath.Clean(m)
	}
	return matches, nil
}
