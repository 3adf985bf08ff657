package template

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/tidwall/gjson"
	"github.com/tidwall/sjson"

	"github.com/ttcli/tt/internal/defs"
)

// SetPackageName writes name into the "name" field of dir/package.json.
// It reports false without error when dir has no package.json.
// Key order and formatting of the rest of the manifest are preserved.
func SetPackageName(dir, name string) (bool, error) {
	manifestPath := filepath.Join(dir, defs.PackageJSON)

	info, err := os.Stat(manifestPath)
	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}
	if err != nil {
		return false, fsErr("stat", manifestPath, err)
	}

	data, err := os.ReadFile(manifestPath)
	if err != nil {
		return false, fsErr("read", manifestPath, err)
	}
	if !gjson.ValidBytes(data) || !gjson.ParseBytes(data).IsObject() {
		return false, fsErr("parse", manifestPath, ErrInvalidManifest)
	}
	if gjson.GetBytes(data, "name").String() == name {
		return true, nil
	}

	updated, err := sjson.SetBytes(data, "name", name)
	if err != nil {
		return false, fsErr("update", manifestPath, fmt.Errorf("%w: %v", ErrInvalidManifest, err))
	}
	if err := os.WriteFile(manifestPath, updated, info.Mode().Perm()); err != nil {
		return false, fsErr("write", manifestPath, err)
	}
	return true, nil
}
