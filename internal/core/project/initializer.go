package project

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ttcli/tt/internal/defs"
	"github.com/ttcli/tt/internal/template"
	"github.com/ttcli/tt/pkg/models"
)

// Prompter asks the user questions. Implementations return an error
// matching ErrInputCanceled when the user aborts a prompt.
type Prompter interface {
	// Input asks for free text. Empty answers are refused by the widget.
	Input(title, placeholder string) (string, error)

	// Confirm asks a yes/no question.
	Confirm(title string) (bool, error)

	// Select asks for one of options and returns its index.
	Select(title string, options []string, defaultIndex int) (int, error)
}

// InitOptions configures a single run of the initializer.
type InitOptions struct {
	Target    string // DIRECTORY argument, used when HasTarget is set.
	HasTarget bool   // If false, the target is prompted for.
	WorkDir   string // Base for relative targets. Defaults to os.Getwd().
}

// InitResult summarizes a completed run.
type InitResult struct {
	Target         string                   // Target as given by the user.
	Dir            string                   // Target resolved against the working directory.
	ProjectName    string                   // Normalized, validated package name.
	Selection      models.TemplateSelection // Chosen language and framework.
	Source         string                   // Template directory that was copied.
	PackageManager models.PackageManager    // Manager named in the next steps.
	Cleared        bool                     // Whether existing files were removed.
	ManifestName   bool                     // Whether package.json received the project name.
}

// Activity is a running progress indicator.
type Activity interface {
	SetTitle(title string)
	Stop()
}

type noActivity struct{}

func (noActivity) SetTitle(string) {}
func (noActivity) Stop() {}

// Prompt titles.
const (
	promptTarget         = "Project name:"
	promptTargetHint     = "my-project"
	promptLanguage       = "Select language:"
	promptFramework      = "Select framework:"
	promptPackageManager = "Select package manager:"
)

// Initializer drives the prompt sequence and materializes the template.
type Initializer struct {
	prompter  Prompter
	templates TemplateResolver
	out       io.Writer
	logger    *slog.Logger

	spinner   func(title string) Activity
	highlight func(string) string
}

// NewInitializer creates an Initializer. A nil logger discards output.
func NewInitializer(prompter Prompter, templates TemplateResolver, out io.Writer, logger *slog.Logger) *Initializer {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	if out == nil {
		out = io.Discard
	}
	return &Initializer{
		prompter:  prompter,
		templates: templates,
		out:       out,
		logger:    logger.With("module", "project"),
		spinner:   func(string) Activity { return noActivity{} },
		highlight: func(s string) string { return s },
	}
}

// SetSpinner installs the activity indicator shown while the template is
// copied and its manifest stamped.
func (i *Initializer) SetSpinner(start func(title string) Activity) {
	if start != nil {
		i.spinner = start
	}
}

// SetHighlight installs the style applied to the printed next-step commands.
func (i *Initializer) SetHighlight(style func(string) string) {
	if style != nil {
		i.highlight = style
	}
}

// @MX:ANCHOR: [AUTO] Run is the whole scaffolding flow; every failure aborts it.
// @MX:REASON: [AUTO] Nothing is rolled back, so a late failure can leave the target partially populated.
// Run executes the scaffolding flow: acquire the target, guard a non-empty
// target, validate the name, select and copy the template, then print the
// next steps. Any error ends the run immediately.
func (i *Initializer) Run(ctx context.Context, opts InitOptions) (*InitResult, error) {
	workDir := opts.WorkDir
	if workDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("get working directory: %w", err)
		}
		workDir = wd
	}

	// Step 1: Acquire target
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	target, err := i.acquireTarget(opts)
	if err != nil {
		return nil, err
	}
	result := &InitResult{Target: target, Dir: resolveDir(workDir, target)}
	i.logger.Debug("target acquired", "target", target, "dir", result.Dir)

	// Step 2: Guard a non-empty target
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	cleared, err := i.checkOverwrite(target, result.Dir)
	if err != nil {
		return nil, err
	}
	result.Cleared = cleared

	// Step 3: Validate the package name
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	name := NormalizePackageName(ProjectNameFor(target, workDir))
	if !IsValidPackageName(name) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidProjectName, name)
	}
	result.ProjectName = name

	// Step 4: Select template
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	sel, err := i.selectTemplate()
	if err != nil {
		return nil, err
	}
	result.Selection = sel
	source, err := i.templates.Resolve(sel)
	if err != nil {
		return nil, err
	}
	result.Source = source
	i.logger.Debug("template resolved", "selection", sel.String(), "source", source)

	// Step 5: Materialize project
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	activity := i.spinner(fmt.Sprintf("Scaffolding project in %s...", result.Dir))
	if err := template.CopyTree(source, result.Dir); err != nil {
		activity.Stop()
		return nil, fmt.Errorf("copy template: %w", err)
	}
	activity.SetTitle(fmt.Sprintf("Naming package %s...", name))
	stamped, err := template.SetPackageName(result.Dir, name)
	activity.Stop()
	switch {
	case errors.Is(err, template.ErrInvalidManifest):
		// The copy is complete; a manifest we cannot parse is left as shipped.
		i.logger.Warn("package.json left unchanged", "dir", result.Dir, "error", err)
	case err != nil:
		return nil, fmt.Errorf("set package name: %w", err)
	}
	result.ManifestName = stamped

	// Step 6: Select package manager
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	pm, err := selectOne(i.prompter, promptPackageManager, models.PackageManagers())
	if err != nil {
		return nil, err
	}
	result.PackageManager = pm

	// Step 7: Report next steps
	i.printNextSteps(target, pm)

	return result, nil
}

func (i *Initializer) acquireTarget(opts InitOptions) (string, error) {
	target := opts.Target
	if !opts.HasTarget {
		answer, err := i.prompter.Input(promptTarget, promptTargetHint)
		if err != nil {
			return "", err
		}
		target = answer
	}
	target = strings.TrimSpace(target)
	// An empty target would otherwise resolve to the working directory.
	if target == "" {
		return "", fmt.Errorf("%w: %q", ErrInvalidProjectName, target)
	}
	return target, nil
}

// checkOverwrite asks before clearing an existing, non-empty target.
// It reports whether the target was cleared.
func (i *Initializer) checkOverwrite(target, dir string) (bool, error) {
	if _, err := os.Stat(dir); errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	empty, err := template.IsEffectivelyEmpty(dir)
	if err != nil {
		return false, err
	}
	if empty {
		return false, nil
	}

	ok, err := i.prompter.Confirm(OverwritePrompt(target))
	if err != nil {
		return false, err
	}
	if !ok {
		return false, ErrOverwriteDeclined
	}

	i.logger.Debug("clearing target", "dir", dir)
	if err := template.ClearDir(dir); err != nil {
		return false, fmt.Errorf("clear target: %w", err)
	}
	return true, nil
}

func (i *Initializer) selectTemplate() (models.TemplateSelection, error) {
	lang, err := selectOne(i.prompter, promptLanguage, models.Languages())
	if err != nil {
		return models.TemplateSelection{}, err
	}
	fw, err := selectOne(i.prompter, promptFramework, models.Frameworks())
	if err != nil {
		return models.TemplateSelection{}, err
	}
	return models.TemplateSelection{Language: lang, Framework: fw}, nil
}

func (i *Initializer) printNextSteps(target string, pm models.PackageManager) {
	_, _ = fmt.Fprintln(i.out)
	for _, line := range NextSteps(target, pm) {
		if line == "" {
			_, _ = fmt.Fprintln(i.out)
			continue
		}
		_, _ = fmt.Fprintf(i.out, "  %s\n", i.highlight(line))
	}
}

// menuItem is a closed enum offered in a select prompt.
type menuItem interface {
	~string
	IsValid() bool
}

// selectOne prompts for one of items, defaulting to the first.
func selectOne[T menuItem](p Prompter, title string, items []T) (T, error) {
	var zero T
	labels := make([]string, len(items))
	for n, item := range items {
		labels[n] = string(item)
	}
	idx, err := p.Select(title, labels, 0)
	if err != nil {
		return zero, err
	}
	if idx < 0 || idx >= len(items) || !items[idx].IsValid() {
		return zero, fmt.Errorf("%w: %s index %d", template.ErrUnsupportedSelection, strings.TrimSuffix(title, ":"), idx)
	}
	return items[idx], nil
}

func isCurrentDir(target string) bool {
	return filepath.Clean(target) == defs.CurrentDir
}

func resolveDir(workDir, target string) string {
	if filepath.IsAbs(target) {
		return filepath.Clean(target)
	}
	return filepath.Join(workDir, target)
}

// ProjectNameFor returns the raw project name for target: the base name of
// workDir for the current-directory sentinel, else the target's last
// path element.
func ProjectNameFor(target, workDir string) string {
	if isCurrentDir(target) {
		return filepath.Base(workDir)
	}
	return filepath.Base(target)
}

// OverwritePrompt returns the confirmation shown for a non-empty target.
func OverwritePrompt(target string) string {
	if isCurrentDir(target) {
		return "Current directory is not empty. Remove existing files and continue?"
	}
	return fmt.Sprintf("Target directory %s is not empty. Remove existing files and continue?", target)
}

// NextSteps returns the guidance lines printed after a successful run: the
// change-directory hint (empty for the current directory), then the install
// and dev commands. None of them are executed.
func NextSteps(target string, pm models.PackageManager) []string {
	cd := ""
	if !isCurrentDir(target) {
		cd = "cd " + target
	}
	return []string{cd, pm.InstallCommand(), pm.DevCommand()}
}
