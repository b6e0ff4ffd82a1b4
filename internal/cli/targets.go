package cli

import (
	"os"
	"path/filepath"
	"slices"
)

// ExpandTargets turns file names and glob patterns into a list of regular
// files. An existing file is used as given; anything else is matched as a
// pattern. A target that matches nothing is an error.
func ExpandTargets(targets []string) ([]string, error) {
	var files []string
	add := func(name string) {
		if abs, err := filepath.Abs(name); err == nil {
			name = abs
		}
		if !slices.Contains(files, name) {
			files = append(files, name)
		}
	}

	for _, target := range targets {
		if fi, err := os.Stat(target); err == nil && fi.Mode().IsRegular() {
			add(target)
			continue
		}
		matches, err := filepath.Glob(target)
		if err != nil {
			return nil, exitError(ExitInvalidInput, "'%s' fileName/searchPattern: %v", target, err)
		}
		found := false
		for _, m := range matches {
			if fi, err := os.Stat(m); err == nil && fi.Mode().IsRegular() {
				add(m)
				found = true
			}
		}
		if !found {
			return nil, exitError(ExitInvalidInput, "'%s' fileName/searchPattern: file(s) NOT found", target)
		}
	}
	return files, nil
}
