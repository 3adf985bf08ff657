// Package cli provides the Cobra command and dependency injection wiring
// for tt. This file defines the Dependencies struct (Composition Root)
// that wires the prompt, template and progress components together.
package cli

import (
	"io"
	"log/slog"

	"github.com/ttcli/tt/internal/cli/wizard"
	"github.com/ttcli/tt/internal/core/project"
	"github.com/ttcli/tt/internal/ui"
)

// Dependencies holds the services used by the root command.
// This is the Composition Root: the only place where concrete types
// are instantiated and wired together.
type Dependencies struct {
	Prompter  project.Prompter
	Templates project.TemplateResolver
	Progress  *ui.Progress
	Logger    *slog.Logger
}

// deps is the global dependencies instance, initialized by InitDependencies.
var deps *Dependencies

// @MX:ANCHOR: InitDependencies is the Composition Root that wires the prompt and template components
// @MX:REASON: called from Execute; tests replace the result through SetDeps
// InitDependencies creates and wires all dependencies.
// It should be called once during application startup.
func InitDependencies() {
	// CLI output is the prompts and next steps; structured logs stay silent.
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	hm := ui.NewHeadlessManager()
	theme := ui.NewTheme()

	deps = &Dependencies{
		// Without a terminal on stdin, fall back to line-based prompts.
		Prompter:  wizard.NewPrompter(wizard.WithAccessible(hm.IsHeadless())),
		Templates: project.NewLocator(),
		Progress:  ui.NewProgress(theme, hm),
		Logger:    logger,
	}
}

// SetDeps replaces the global dependencies (used for testing).
func SetDeps(d *Dependencies) {
	deps = d
}
