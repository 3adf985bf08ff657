package project

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/ttcli/tt/internal/defs"
	"github.com/ttcli/tt/internal/template"
	"github.com/ttcli/tt/pkg/models"
)

// FindUp walks from start through each parent directory and returns the
// first one for which match reports true. The second result is false when
// the filesystem root is passed without a match. FindUp itself never touches
// the filesystem; match decides what a hit looks like.
func FindUp(start string, match func(dir string) bool) (string, bool) {
	dir := filepath.Clean(start)
	for {
		if match(dir) {
			return dir, true
		}
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", false
		}
		dir = parent
	}
}

// hasPackageJSON reports whether dir contains a package.json entry.
func hasPackageJSON(dir string) bool {
	_, err := os.Stat(filepath.Join(dir, defs.PackageJSON))
	return err == nil
}

// @MX:ANCHOR: [AUTO] Every template path is resolved against the directory found here.
// @MX:REASON: [AUTO] The bundled template-* directories live next to the package.json marker.
// FindInstallationRoot locates the directory holding the bundled templates:
// the nearest ancestor of the executable at exe that contains a package.json.
// Symlinks in exe are resolved first so a linked binary (e.g. from a bin
// directory) still finds its real installation.
func FindInstallationRoot(exe string) (string, error) {
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}
	abs, err := filepath.Abs(exe)
	if err != nil {
		return "", fmt.Errorf("resolve executable path: %w", err)
	}

	root, ok := FindUp(filepath.Dir(abs), hasPackageJSON)
	if !ok {
		return "", fmt.Errorf("%w (searched from %s)", ErrInstallationRootNotFound, filepath.Dir(abs))
	}
	return root, nil
}

// TemplateResolver maps a selection to the template directory to copy.
type TemplateResolver interface {
	Resolve(sel models.TemplateSelection) (string, error)
}

// Locator resolves template directories against the installation root.
// The root is discovered on first use and cached.
type Locator struct {
	executable func() (string, error)

	once sync.Once
	root string
	err  error
}

// NewLocator creates a Locator anchored at the running executable.
func NewLocator() *Locator {
	return &Locator{executable: os.Executable}
}

// NewLocatorAt creates a Locator anchored at the given executable path.
func NewLocatorAt(exe string) *Locator {
	return &Locator{executable: func() (string, error) { return exe, nil }}
}

// Root returns the installation root, discovering it on first call.
func (l *Locator) Root() (string, error) {
	l.once.Do(func() {
		exe, err := l.executable()
		if err != nil {
			l.err = fmt.Errorf("%w: locate executable: %v", ErrInstallationRootNotFound, err)
			return
		}
		l.root, l.err = FindInstallationRoot(exe)
	})
	return l.root, l.err
}

// Resolve returns <root>/template-<framework>[-ts] for sel. The path is not
// checked for existence; a missing template surfaces when it is copied.
func (l *Locator) Resolve(sel models.TemplateSelection) (string, error) {
	name, err := template.TemplateDirName(sel)
	if err != nil {
		return "", err
	}
	root, err := l.Root()
	if err != nil {
		return "", err
	}
	return filepath.Join(root, name), nil
}
