// Package progress shows a spinner on the terminal while a long task runs.
package progress

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/framecast/framecast/style"
)

// ErrInterrupted is returned when the user aborts with ctrl+c.
var ErrInterrupted = errors.New("interrupted")

type result struct {
	value string
	err   error
}

type model struct {
	spinner spinner.Model
	title   string
	task    func() (string, error)
	cancel  context.CancelFunc
	done    bool
	result  result
}

func newModel(title string, cancel context.CancelFunc, task func() (string, error)) model {
	s := spinner.New()
	s.Spinner = spinner.Dot
	s.Style = style.New().Foreground(style.AccentColor)

	return model{spinner: s, title: title, task: task, cancel: cancel}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, func() tea.Msg {
		value, err := m.task()
		return result{value: value, err: err}
	})
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case result:
		m.done = true
		m.result = msg
		return m, tea.Quit
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.cancel()
			m.done = true
			m.result = result{err: ErrInterrupted}
			return m, tea.Quit
		}
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m model) View() string {
	if m.done {
		return ""
	}
	return fmt.Sprintf("%s %s\n", m.spinner.View(), style.Faint(m.title))
}

// Run executes task while rendering a spinner titled title on stderr.
// Pressing ctrl+c cancels the context passed to task and returns ErrInterrupted.
func Run(ctx context.Context, title string, task func(ctx context.Context) (string, error)) (string, error) {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	program := tea.NewProgram(
		newModel(title, cancel, func() (string, error) { return task(ctx) }),
		tea.WithOutput(os.Stderr),
	)

	final, err := program.Run()
	if err != nil {
		return "", err
	}

	m := final.(model)
	return m.result.value, m.result.err
}
