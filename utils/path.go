// Package utils provides small filesystem helpers shared by the secjudge
// CLI front-end.
package utils

import (
	"os"
	"path/filepath"
	"strings"
)

// FindExecutable resolves name to a filesystem path: if name contains a
// path separator it is used verbatim; otherwise $PATH is searched segment
// by segment for the first existing entry. If nothing on $PATH matches,
// the bare name is returned unchanged, letting the launcher fail later with
// a clearer error than a path-resolution failure would give.
//
// Ported from original_source/src/utils.rs's find_path.
func FindExecutable(name string) string {
	if strings.Contains(name, string(filepath.Separator)) {
		return name
	}

	path, ok := os.LookupEnv("PATH")
	if !ok {
		return name
	}

	for _, dir := range strings.Split(path, ":") {
		candidate := filepath.Join(dir, name)
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return name
}
