// Package scanner locates fuzzing run logs under a results directory.
package scanner

import (
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"
)

// ExcludeFunc reports whether a discovered log path should be skipped.
type ExcludeFunc func(path string) bool

// ExcludeSubstrings returns a predicate that excludes any path containing
// one of the given substrings. Matching is case-sensitive against the
// path as written.
func ExcludeSubstrings(subs ...string) ExcludeFunc {
	return func(path string) bool {
		for _, sub := range subs {
			if sub != "" && strings.Contains(path, sub) {
				return true
			}
		}
		return false
	}
}

// FindLogs walks root recursively and returns every file named exactly
// logName, skipping paths the exclude predicate rejects. A nil predicate
// excludes nothing. Results are sorted for deterministic ordering.
func FindLogs(root, logName string, exclude ExcludeFunc) ([]string, error) {
	var logs []string

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || d.Name() != logName {
			return nil
		}
		if exclude != nil && exclude(path) {
			return nil
		}
		logs = append(logs, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scanning %s: %w", root, err)
	}

	sort.Strings(logs)
	return logs, nil
}

// RunName derives a run's display name from its log path: the name of
// the directory containing the log file.
func RunName(path string) string {
	return filepath.Base(filepath.Dir(path))
}
