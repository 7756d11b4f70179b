package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// busyTask describes a call that keeps the page busy: what to show while it
// runs and the line left behind when it succeeds. An empty Done leaves no line.
type busyTask struct {
	Working string
	Done    string
}

func loadNominationsTask() busyTask {
	return busyTask{Working: "Loading nominations...", Done: "Nominations loaded"}
}

func submitVoteTask(id domain.NominationID) busyTask {
	return busyTask{Working: fmt.Sprintf("Submitting your vote for #%d...", id)}
}

func sendApplicationTask(category string) busyTask {
	return busyTask{Working: fmt.Sprintf("Sending your application for %q...", category)}
}

type busyDoneMsg struct {
	err error
}

type busySpinnerModel struct {
	spinner spinner.Model
	task    busyTask
	work    tea.Cmd
	started time.Time
	elapsed time.Duration
	err     error
	done    bool

	doneStyle lipgloss.Style
}

func newBusySpinnerModel(task busyTask, work tea.Cmd, started time.Time) busySpinnerModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Dot),
		spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("196"))),
	)

	return busySpinnerModel{
		spinner:   s,
		task:      task,
		work:      work,
		started:   started,
		doneStyle: lipgloss.NewStyle().Foreground(lipgloss.Color("42")),
	}
}

func (m busySpinnerModel) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.work)
}

func (m busySpinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case busyDoneMsg:
		m.done = true
		m.err = msg.err
		m.elapsed = time.Since(m.started)
		return m, tea.Quit
	default:
		return m, nil
	}
}

func (m busySpinnerModel) View() string {
	if !m.done {
		return fmt.Sprintf("%s %s", m.spinner.View(), m.task.Working)
	}
	// Failures are reported by the caller.
	if m.err != nil || m.task.Done == "" {
		return ""
	}
	return m.doneStyle.Render(fmt.Sprintf("%s in %s", m.task.Done, m.elapsed.Round(10*time.Millisecond))) + "\n"
}

// runBusySpinner shows the task on output while work runs.
func runBusySpinner(ctx context.Context, output io.Writer, task busyTask, work func(context.Context) error) error {
	workCmd := func() tea.Msg {
		return busyDoneMsg{err: work(ctx)}
	}

	p := tea.NewProgram(
		newBusySpinnerModel(task, workCmd, time.Now()),
		tea.WithInput(nil),
		tea.WithOutput(output),
		tea.WithContext(ctx),
	)

	finalModel, err := p.Run()
	if err != nil {
		if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
			return ctx.Err()
		}
		return err
	}

	result, ok := finalModel.(busySpinnerModel)
	if !ok {
		return fmt.Errorf("unexpected final spinner model type %T", finalModel)
	}

	return result.err
}
