// Package wizard provides the huh-based prompts used by tt: free-text
// input, yes/no confirmation and single-choice menus, one form per question.
package wizard

import (
	"errors"
	"io"

	"github.com/ttcli/tt/internal/core/project"
)

// Error definitions for the wizard package.
var (
	// ErrCancelled is returned when the user aborts a prompt (Ctrl+C / Esc).
	ErrCancelled = project.ErrInputCanceled

	// ErrNoOptions is returned when a select prompt is given no options.
	ErrNoOptions = errors.New("no options provided")

	// errRequired is shown by an input prompt when the answer is blank.
	errRequired = errors.New("a value is required")
)

// Option configures a Prompter.
type Option func(*Prompter)

// WithAccessible switches to line-based prompts that read plain answers
// from the input, for screen readers and non-terminal stdin.
func WithAccessible(accessible bool) Option {
	return func(p *Prompter) { p.accessible = accessible }
}

// WithIO overrides the reader and writer the forms use.
// Defaults are os.Stdin and the huh default output.
func WithIO(r io.Reader, w io.Writer) Option {
	return func(p *Prompter) {
		p.input = r
		p.output = w
	}
}
