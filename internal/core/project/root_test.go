package project

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/ttcli/tt/internal/template"
	"github.com/ttcli/tt/pkg/models"
)

func TestFindUp(t *testing.T) {
	t.Parallel()

	base := filepath.Join(string(filepath.Separator), "opt", "tt")
	start := filepath.Join(base, "node_modules", ".bin")

	t.Run("match_in_ancestor", func(t *testing.T) {
		t.Parallel()
		var visited []string
		got, ok := FindUp(start, func(dir string) bool {
			visited = append(visited, dir)
			return dir == base
		})
		if !ok || got != base {
			t.Fatalf("FindUp() = (%q, %v), want (%q, true)", got, ok, base)
		}
		want := []string{start, filepath.Join(base, "node_modules"), base}
		if len(visited) != len(want) {
			t.Fatalf("visited %v, want %v", visited, want)
		}
		for i := range want {
			if visited[i] != want[i] {
				t.Errorf("visited[%d] = %q, want %q", i, visited[i], want[i])
			}
		}
	})

	t.Run("match_at_start", func(t *testing.T) {
		t.Parallel()
		got, ok := FindUp(start, func(string) bool { return true })
		if !ok || got != start {
			t.Errorf("FindUp() = (%q, %v), want (%q, true)", got, ok, start)
		}
	})

	t.Run("no_match_reaches_root", func(t *testing.T) {
		t.Parallel()
		calls := 0
		got, ok := FindUp(start, func(string) bool {
			calls++
			return false
		})
		if ok || got != "" {
			t.Errorf("FindUp() = (%q, %v), want (\"\", false)", got, ok)
		}
		// start, node_modules, tt, opt, and the root itself
		if calls != 5 {
			t.Errorf("predicate called %d times, want 5", calls)
		}
	})
}

// setupInstallation creates <root>/package.json and <root>/bin/tt.
func setupInstallation(t *testing.T) (root, exe string) {
	t.Helper()
	root = t.TempDir()
	if err := os.WriteFile(filepath.Join(root, "package.json"), []byte(`{"name":"tt"}`), 0o644); err != nil {
		t.Fatalf("write package.json: %v", err)
	}
	if err := os.MkdirAll(filepath.Join(root, "bin"), 0o755); err != nil {
		t.Fatalf("mkdir bin: %v", err)
	}
	exe = filepath.Join(root, "bin", "tt")
	if err := os.WriteFile(exe, []byte("#!/bin/sh\n"), 0o755); err != nil {
		t.Fatalf("write exe: %v", err)
	}
	// EvalSymlinks on macOS temp dirs resolves /var to /private/var.
	if resolved, err := filepath.EvalSymlinks(root); err == nil {
		root = resolved
	}
	return root, exe
}

func TestFindInstallationRoot(t *testing.T) {
	root, exe := setupInstallation(t)

	got, err := FindInstallationRoot(exe)
	if err != nil {
		t.Fatalf("FindInstallationRoot error: %v", err)
	}
	if got != root {
		t.Errorf("FindInstallationRoot() = %q, want %q", got, root)
	}
}

func TestFindInstallationRoot_ThroughSymlink(t *testing.T) {
	root, exe := setupInstallation(t)

	binDir := t.TempDir()
	link := filepath.Join(binDir, "tt")
	if err := os.Symlink(exe, link); err != nil {
		t.Skipf("symlinks unsupported: %v", err)
	}

	got, err := FindInstallationRoot(link)
	if err != nil {
		t.Fatalf("FindInstallationRoot error: %v", err)
	}
	if got != root {
		t.Errorf("FindInstallationRoot() = %q, want %q", got, root)
	}
}

func TestFindInstallationRoot_NotFound(t *testing.T) {
	dir := t.TempDir()
	exe := filepath.Join(dir, "tt")
	if err := os.WriteFile(exe, nil, 0o755); err != nil {
		t.Fatalf("write exe: %v", err)
	}

	_, err := FindInstallationRoot(exe)
	if err == nil {
		// A package.json above the temp dir would make this test meaningless.
		t.Skip("package.json found above temp dir")
	}
	if !errors.Is(err, ErrInstallationRootNotFound) {
		t.Errorf("expected ErrInstallationRootNotFound, got: %v", err)
	}
}

func TestLocator_Resolve(t *testing.T) {
	root, exe := setupInstallation(t)
	loc := NewLocatorAt(exe)

	tests := []struct {
		sel  models.TemplateSelection
		want string
	}{
		{models.TemplateSelection{Language: models.LangTypeScript, Framework: models.FrameworkVue}, "template-vue-ts"},
		{models.TemplateSelection{Language: models.LangJavaScript, Framework: models.FrameworkReact}, "template-react"},
	}
	for _, tt := range tests {
		got, err := loc.Resolve(tt.sel)
		if err != nil {
			t.Fatalf("Resolve(%v) error: %v", tt.sel, err)
		}
		if want := filepath.Join(root, tt.want); got != want {
			t.Errorf("Resolve(%v) = %q, want %q", tt.sel, got, want)
		}
	}
}

func TestLocator_ResolveUnsupported(t *testing.T) {
	_, exe := setupInstallation(t)
	loc := NewLocatorAt(exe)

	_, err := loc.Resolve(models.TemplateSelection{Language: "Elm", Framework: models.FrameworkVue})
	if !errors.Is(err, template.ErrUnsupportedSelection) {
		t.Errorf("expected ErrUnsupportedSelection, got: %v", err)
	}
}

func TestLocator_ExecutableError(t *testing.T) {
	loc := &Locator{executable: func() (string, error) { return "", errors.New("no exe") }}

	_, err := loc.Root()
	if !errors.Is(err, ErrInstallationRootNotFound) {
		t.Fatalf("expected ErrInstallationRootNotFound, got: %v", err)
	}
	// Cached: a second call returns the same failure.
	if _, err2 := loc.Root(); err2 == nil || err2.Error() != err.Error() {
		t.Errorf("second Root() = %v, want cached %v", err2, err)
	}
}
