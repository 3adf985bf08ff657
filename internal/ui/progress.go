package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// Spinner shows that a long operation is running.
type Spinner interface {
	SetTitle(title string)
	Stop()
}

// Progress creates spinners matching the current terminal.
type Progress struct {
	theme    *Theme
	headless *HeadlessManager
	writer   io.Writer
}

// NewProgress creates a Progress backed by the given theme and headless manager.
// Output goes to os.Stdout.
func NewProgress(theme *Theme, hm *HeadlessManager) *Progress {
	return &Progress{theme: theme, headless: hm, writer: os.Stdout}
}

// newProgressTo creates a Progress with a custom writer (for testing).
func newProgressTo(theme *Theme, hm *HeadlessManager, w io.Writer) *Progress {
	return &Progress{theme: theme, headless: hm, writer: w}
}

// Spinner starts an indeterminate spinner. Without a terminal, or with
// color disabled, every title is printed as a plain line instead.
func (p *Progress) Spinner(title string) Spinner {
	if p.headless.IsHeadless() || p.theme.NoColor {
		return newLineSpinner(title, p.writer)
	}
	return startTeaSpinner(p.theme, title, p.writer)
}

// titleMsg replaces the spinner title.
type titleMsg string

// stopMsg clears the spinner line and ends the program.
type stopMsg struct{}

type spinnerModel struct {
	spin     spinner.Model
	title    string
	quitting bool
}

func newSpinnerModel(theme *Theme, title string) spinnerModel {
	spin := spinner.New(spinner.WithSpinner(spinner.Dot))
	spin.Style = lipgloss.NewStyle().Foreground(lipgloss.Color(theme.Colors.Primary))
	return spinnerModel{spin: spin, title: title}
}

func (m spinnerModel) Init() tea.Cmd { return m.spin.Tick }

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case titleMsg:
		m.title = string(msg)
		return m, nil
	case stopMsg:
		m.quitting = true
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.spin, cmd = m.spin.Update(msg)
	return m, cmd
}

func (m spinnerModel) View() string {
	if m.quitting {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spin.View(), m.title)
}

// teaSpinner animates a spinnerModel in its own tea.Program.
type teaSpinner struct {
	program *tea.Program
	done    chan struct{}
	stop    sync.Once
}

// @MX:WARN: the program goroutine runs until Stop; every started spinner must be stopped.
// @MX:REASON: Stop waits for the program to exit so the cleared line precedes later output.
func startTeaSpinner(theme *Theme, title string, w io.Writer) *teaSpinner {
	// No input: stdin stays with the prompts that follow.
	program := tea.NewProgram(newSpinnerModel(theme, title), tea.WithInput(nil), tea.WithOutput(w))
	return runTeaSpinner(program)
}

func runTeaSpinner(program *tea.Program) *teaSpinner {
	s := &teaSpinner{program: program, done: make(chan struct{})}
	go func() {
		defer close(s.done)
		_, _ = program.Run()
	}()
	return s
}

func (s *teaSpinner) SetTitle(title string) {
	s.program.Send(titleMsg(title))
}

func (s *teaSpinner) Stop() {
	s.stop.Do(func() {
		s.program.Send(stopMsg{})
		<-s.done
	})
}

// lineSpinner prints each title on its own line.
type lineSpinner struct {
	writer io.Writer
}

func newLineSpinner(title string, w io.Writer) *lineSpinner {
	s := &lineSpinner{writer: w}
	s.SetTitle(title)
	return s
}

func (s *lineSpinner) SetTitle(title string) {
	_, _ = fmt.Fprintln(s.writer, title)
}

func (s *lineSpinner) Stop() {}
