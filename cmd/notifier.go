package cmd

import (
	"fmt"
	"io"

	"github.com/bnema/awards-vote-cli/internal/ports"
	"github.com/charmbracelet/lipgloss"
)

// terminalNotifier prints page notifications as single styled lines.
type terminalNotifier struct {
	out     io.Writer
	success lipgloss.Style
	warn    lipgloss.Style
	failure lipgloss.Style
}

var _ ports.Notifier = (*terminalNotifier)(nil)

func newTerminalNotifier(out io.Writer) *terminalNotifier {
	return &terminalNotifier{
		out:     out,
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		warn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

func (n *terminalNotifier) Success(message string) { n.print(n.success, message) }
func (n *terminalNotifier) Warn(message string)    { n.print(n.warn, message) }
func (n *terminalNotifier) Error(message string)   { n.print(n.failure, message) }

func (n *terminalNotifier) print(style lipgloss.Style, message string) {
	_, _ = fmt.Fprintln(n.out, style.Render(message))
}
