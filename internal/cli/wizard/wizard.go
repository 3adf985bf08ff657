package wizard

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/huh"
)

// Prompter asks questions with huh. Each question runs as its own
// huh.Form so answers are final once a prompt closes.
type Prompter struct {
	theme      *huh.Theme
	accessible bool
	input      io.Reader
	output     io.Writer
	lines      *lineReader
}

// NewPrompter creates a Prompter with the tt theme.
func NewPrompter(opts ...Option) *Prompter {
	p := &Prompter{theme: newTTWizardTheme()}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Input asks for free text and refuses blank answers.
func (p *Prompter) Input(title, placeholder string) (string, error) {
	var value string
	field := huh.NewInput().
		Title(title).
		Placeholder(placeholder).
		Value(&value).
		Validate(requireValue)

	if err := p.run(field); err != nil {
		return "", err
	}
	if strings.TrimSpace(value) == "" {
		return "", ErrCancelled
	}
	return value, nil
}

// Confirm asks a yes/no question. The default answer is no.
func (p *Prompter) Confirm(title string) (bool, error) {
	var ok bool
	field := huh.NewConfirm().
		Title(title).
		Affirmative("Yes").
		Negative("No").
		Value(&ok)

	if err := p.run(field); err != nil {
		return false, err
	}
	return ok, nil
}

// Select asks for one of options and returns the chosen index.
// defaultIndex is highlighted initially.
func (p *Prompter) Select(title string, options []string, defaultIndex int) (int, error) {
	if len(options) == 0 {
		return 0, ErrNoOptions
	}
	if defaultIndex < 0 || defaultIndex >= len(options) {
		defaultIndex = 0
	}

	selected := defaultIndex
	field := huh.NewSelect[int]().
		Title(title).
		Options(buildOptions(options)...).
		Value(&selected)

	if err := p.run(field); err != nil {
		return 0, err
	}
	return selected, nil
}

func (p *Prompter) run(field huh.Field) error {
	form := huh.NewForm(huh.NewGroup(field)).
		WithTheme(p.theme).
		WithAccessible(p.accessible).
		WithShowHelp(false)
	if p.output != nil {
		form = form.WithOutput(p.output)
	}

	if !p.accessible {
		if p.input != nil {
			form = form.WithInput(p.input)
		}
		return mapRunError(form.Run())
	}

	lines := p.lineInput()
	lines.begin()
	if err := mapRunError(form.WithInput(lines).Run()); err != nil {
		return err
	}
	// Accessible prompts fall back to their default at end of input.
	if lines.exhausted() {
		return ErrCancelled
	}
	return nil
}

// lineInput returns the shared line reader over the configured input,
// os.Stdin by default.
func (p *Prompter) lineInput() *lineReader {
	if p.lines == nil {
		var r io.Reader = os.Stdin
		if p.input != nil {
			r = p.input
		}
		p.lines = newLineReader(r)
	}
	return p.lines
}

// buildOptions turns labels into options valued by their index.
func buildOptions(labels []string) []huh.Option[int] {
	opts := make([]huh.Option[int], len(labels))
	for i, label := range labels {
		opts[i] = huh.NewOption(label, i)
	}
	return opts
}

// mapRunError translates huh's abort into ErrCancelled.
func mapRunError(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrCancelled
	}
	return fmt.Errorf("prompt: %w", err)
}

func requireValue(val string) error {
	if strings.TrimSpace(val) == "" {
		return errRequired
	}
	return nil
}
