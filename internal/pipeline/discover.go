package pipeline

import (
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// Supported sample extensions (lowercase, with leading dot). Everything else
// is silently ignored during discovery.
var audioExtensions = map[string]bool{
	".wav": true,
	".mp3": true,
}

// Discover walks sourceDir depth-first, collects files with audio extensions,
// and returns the paths sorted lexicographically for deterministic processing
// order. An unreadable directory is reported through errFn and its subtree is
// skipped; discovery continues with the remaining entries.
func Discover(sourceDir string, errFn func(path string, err error)) []string {
	var files []string
	_ = filepath.WalkDir(sourceDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			if errFn != nil {
				errFn(path, err)
			}
			return nil
		}
		if d.IsDir() {
			return nil
		}
		ext := strings.ToLower(filepath.Ext(path))
		if audioExtensions[ext] {
			files = append(files, path)
		}
		return nil
	})
	sort.Strings(files)
	return files
}
