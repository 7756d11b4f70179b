// Package page is the interactive terminal rendition of the voting page.
package page

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/bnema/awards-vote-cli/internal/adapters/render/leaderboard"
	"github.com/bnema/awards-vote-cli/internal/application"
	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/bnema/awards-vote-cli/internal/ports"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// LoginFlow is a started provider login waiting for its callback.
type LoginFlow interface {
	Wait(ctx context.Context) (domain.Session, error)
	Close() error
}

// StartLoginFunc starts the callback listener and returns the provider URL.
type StartLoginFunc func() (string, LoginFlow, error)

type Options struct {
	Page       *application.Page
	Toasts     *Toasts
	Navigator  ports.Navigator
	StartLogin StartLoginFunc
}

type loadedMsg struct{}

type voteDoneMsg struct {
	result application.VoteResult
	err    error
}

type loginStartedMsg struct {
	url  string
	flow LoginFlow
	err  error
}

type loginDoneMsg struct {
	err error
}

type logoutDoneMsg struct {
	err error
}

type Model struct {
	ctx        context.Context
	page       *application.Page
	toasts     *Toasts
	navigator  ports.Navigator
	startLogin StartLoginFunc

	spinner  spinner.Model
	styles   styles
	snapshot application.Snapshot
	cursor   int
	busy     string
	toast    *Toast
	loginURL string
	flow     LoginFlow
}

func NewModel(ctx context.Context, opts Options) Model {
	toasts := opts.Toasts
	if toasts == nil {
		toasts = &Toasts{}
	}

	return Model{
		ctx:        ctx,
		page:       opts.Page,
		toasts:     toasts,
		navigator:  opts.Navigator,
		startLogin: opts.StartLogin,
		spinner: spinner.New(
			spinner.WithSpinner(spinner.Dot),
			spinner.WithStyle(lipgloss.NewStyle().Foreground(lipgloss.Color("69"))),
		),
		styles: newStyles(),
		busy:   "Loading nominations...",
	}
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.initCmd())
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case loadedMsg:
		m.busy = ""
		m.refresh()
		return m, nil
	case voteDoneMsg:
		m.busy = ""
		if errors.Is(msg.err, domain.ErrAuthRequired) {
			m.showToast(Toast{Level: ToastWarn, Message: "Sign in to vote. Opening the login page..."})
			return m.beginLogin()
		}
		if msg.err != nil {
			m.showToast(Toast{Level: ToastError, Message: msg.err.Error()})
		}
		m.refresh()
		return m, nil
	case loginStartedMsg:
		if msg.err != nil {
			m.busy = ""
			m.showToast(Toast{Level: ToastError, Message: msg.err.Error()})
			m.refresh()
			return m, nil
		}
		m.loginURL = msg.url
		m.flow = msg.flow
		m.busy = "Waiting for the login to complete in your browser..."
		return m, m.waitLoginCmd(msg.flow)
	case loginDoneMsg:
		m.busy = ""
		m.loginURL = ""
		m.flow = nil
		if msg.err != nil {
			m.showToast(Toast{Level: ToastError, Message: msg.err.Error()})
		} else {
			m.showToast(Toast{Level: ToastSuccess, Message: "Signed in. Press enter to vote."})
		}
		m.refresh()
		return m, nil
	case logoutDoneMsg:
		m.busy = ""
		if msg.err != nil {
			m.showToast(Toast{Level: ToastError, Message: msg.err.Error()})
		}
		m.refresh()
		return m, nil
	default:
		return m, nil
	}
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		if m.flow != nil {
			_ = m.flow.Close()
		}
		return m, tea.Quit
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
		return m, nil
	case "down", "j":
		if m.cursor < len(m.snapshot.Shares)-1 {
			m.cursor++
		}
		return m, nil
	}

	if m.busy != "" {
		return m, nil
	}

	switch msg.String() {
	case "enter", " ":
		id, ok := m.selected()
		if !ok {
			return m, nil
		}
		m.busy = "Submitting your vote..."
		return m, m.voteCmd(id)
	case "r":
		m.busy = "Loading nominations..."
		return m, m.reloadCmd()
	case "l":
		if m.snapshot.Session != nil {
			m.busy = "Signing out..."
			return m, m.logoutCmd()
		}
		return m.beginLogin()
	default:
		return m, nil
	}
}

func (m Model) beginLogin() (tea.Model, tea.Cmd) {
	if m.startLogin == nil {
		m.showToast(Toast{Level: ToastError, Message: "Login is not available."})
		return m, nil
	}
	if err := m.page.BeginLogin(); err != nil {
		m.showToast(Toast{Level: ToastError, Message: err.Error()})
		return m, nil
	}
	m.busy = "Opening the login page..."
	return m, m.startLoginCmd()
}

func (m *Model) refresh() {
	m.snapshot = m.page.Snapshot()
	if m.cursor >= len(m.snapshot.Shares) {
		m.cursor = max(len(m.snapshot.Shares)-1, 0)
	}
	for _, toast := range m.toasts.Drain() {
		m.showToast(toast)
	}
}

func (m *Model) showToast(toast Toast) {
	m.toast = &toast
}

func (m Model) selected() (domain.NominationID, bool) {
	ranked := domain.Ranked(m.snapshot.Shares)
	if m.cursor < 0 || m.cursor >= len(ranked) {
		return 0, false
	}
	return ranked[m.cursor].Nomination.ID, true
}

func (m Model) initCmd() tea.Cmd {
	return func() tea.Msg {
		m.page.Init(m.ctx)
		return loadedMsg{}
	}
}

func (m Model) reloadCmd() tea.Cmd {
	return func() tea.Msg {
		m.page.LoadNominations(m.ctx)
		return loadedMsg{}
	}
}

func (m Model) voteCmd(id domain.NominationID) tea.Cmd {
	return func() tea.Msg {
		result, err := m.page.Vote(m.ctx, id)
		return voteDoneMsg{result: result, err: err}
	}
}

func (m Model) logoutCmd() tea.Cmd {
	return func() tea.Msg {
		return logoutDoneMsg{err: m.page.Logout(m.ctx)}
	}
}

func (m Model) startLoginCmd() tea.Cmd {
	return func() tea.Msg {
		url, flow, err := m.startLogin()
		if err != nil {
			m.page.CancelLogin()
			return loginStartedMsg{err: fmt.Errorf("start login: %w", err)}
		}
		if m.navigator != nil {
			if err := m.navigator.Open(url); err != nil {
				_ = flow.Close()
				m.page.CancelLogin()
				return loginStartedMsg{err: fmt.Errorf("open login page: %w", err)}
			}
		}
		return loginStartedMsg{url: url, flow: flow}
	}
}

func (m Model) waitLoginCmd(flow LoginFlow) tea.Cmd {
	return func() tea.Msg {
		session, err := flow.Wait(m.ctx)
		if err == nil {
			err = m.page.CompleteLogin(m.ctx, session)
		}
		if err != nil {
			m.page.CancelLogin()
		}
		return loginDoneMsg{err: err}
	}
}

func (m Model) View() string {
	id, _ := m.selected()
	parts := []string{leaderboard.View(m.snapshot, leaderboard.RenderOptions{Cursor: id})}

	if m.busy != "" {
		parts = append(parts, m.styles.section.Render(fmt.Sprintf("%s %s", m.spinner.View(), m.busy)))
	}
	if m.loginURL != "" {
		parts = append(parts, m.styles.hint.Render("If the browser did not open, visit:\n"+m.loginURL))
	}
	if m.toast != nil {
		parts = append(parts, m.styles.section.Render(m.styles.toast(m.toast.Level).Render(m.toast.Message)))
	}
	parts = append(parts, m.styles.section.Render(m.styles.help.Render(m.helpLine())))

	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}

func (m Model) helpLine() string {
	keys := []string{"↑/↓ select", "enter vote", "r reload"}
	if m.snapshot.Session != nil {
		keys = append(keys, "l log out")
	} else {
		keys = append(keys, "l log in")
	}
	keys = append(keys, "q quit")
	return strings.Join(keys, " · ")
}

// Run drives the interactive page until the user quits.
func Run(ctx context.Context, opts Options, teaOpts ...tea.ProgramOption) error {
	teaOpts = append([]tea.ProgramOption{tea.WithContext(ctx)}, teaOpts...)
	_, err := tea.NewProgram(NewModel(ctx, opts), teaOpts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
		return nil
	}
	return err
}
