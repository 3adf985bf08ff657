// Package template locates bundled project templates and materializes them
// on disk: emptiness checks, clearing a target, copying a template tree and
// stamping the copied package manifest.
package template

import (
	"errors"
	"fmt"
)

// Sentinel errors for the template package.
var (
	// ErrFilesystem is matched by every *FSError.
	ErrFilesystem = errors.New("filesystem error")

	// ErrUnsupportedSelection indicates a selection outside the known languages or frameworks.
	ErrUnsupportedSelection = errors.New("unsupported template selection")

	// ErrInvalidManifest indicates the copied package.json is not a JSON object.
	ErrInvalidManifest = errors.New("invalid package manifest")
)

// FSError records a failed filesystem operation and the path it failed on.
type FSError struct {
	Op   string
	Path string
	Err  error
}

func (e *FSError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Op, e.Path, e.Err)
}

func (e *FSError) Unwrap() error { return e.Err }

// Is makes every FSError match ErrFilesystem.
func (e *FSError) Is(target error) bool {
	return target == ErrFilesystem
}

func fsErr(op, path string, err error) error {
	return &FSError{Op: op, Path: path, Err: err}
}
