package page

import "github.com/charmbracelet/lipgloss"

type styles struct {
	section lipgloss.Style
	hint    lipgloss.Style
	help    lipgloss.Style
	success lipgloss.Style
	warn    lipgloss.Style
	failure lipgloss.Style
}

func newStyles() styles {
	return styles{
		section: lipgloss.NewStyle().MarginTop(1),
		hint:    lipgloss.NewStyle().Faint(true).MarginTop(1),
		help:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		success: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42")),
		warn:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("220")),
		failure: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
	}
}

func (s styles) toast(level ToastLevel) lipgloss.Style {
	switch level {
	case ToastSuccess:
		return s.success
	case ToastWarn:
		return s.warn
	default:
		return s.failure
	}
}
