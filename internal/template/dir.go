package template

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/ttcli/tt/internal/defs"
)

// IsEffectivelyEmpty reports whether path holds nothing but, at most, a
// single .git entry (matched case-insensitively). The directory must exist;
// callers treat a missing path as empty without calling this.
func IsEffectivelyEmpty(path string) (bool, error) {
	entries, err := os.ReadDir(path)
	if err != nil {
		return false, fsErr("read dir", path, err)
	}

	count := 0
	for _, entry := range entries {
		if !strings.EqualFold(entry.Name(), defs.GitDir) {
			return false, nil
		}
		count++
		if count > 1 {
			return false, nil
		}
	}
	return true, nil
}

// ClearDir removes every direct child of path, leaving path itself in place.
// It stops at the first child it cannot remove; earlier removals stay done.
func ClearDir(path string) error {
	entries, err := os.ReadDir(path)
	if err != nil {
		return fsErr("read dir", path, err)
	}

	for _, entry := range entries {
		child := filepath.Join(path, entry.Name())
		if entry.IsDir() {
			err = os.RemoveAll(child)
		} else {
			err = os.Remove(child)
		}
		if err != nil {
			return fsErr("remove", child, err)
		}
	}
	return nil
}
