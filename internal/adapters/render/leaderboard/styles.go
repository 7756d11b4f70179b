package leaderboard

import "github.com/charmbracelet/lipgloss"

type styles struct {
	badge       lipgloss.Style
	hero        lipgloss.Style
	tagline     lipgloss.Style
	stat        lipgloss.Style
	statLabel   lipgloss.Style
	section     lipgloss.Style
	heading     lipgloss.Style
	rank        lipgloss.Style
	title       lipgloss.Style
	selected    lipgloss.Style
	description lipgloss.Style
	votes       lipgloss.Style
	empty       lipgloss.Style
	session     lipgloss.Style
	anonymous   lipgloss.Style
	barBracket  lipgloss.Style
	barEmpty    lipgloss.Style
}

func newStyles() styles {
	return styles{
		badge:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		hero:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("196")),
		tagline:     lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		stat:        lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		statLabel:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		section:     lipgloss.NewStyle().MarginTop(1),
		heading:     lipgloss.NewStyle().Bold(true),
		rank:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		title:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("252")),
		selected:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")),
		description: lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		votes:       lipgloss.NewStyle().Foreground(lipgloss.Color("250")),
		empty:       lipgloss.NewStyle().Faint(true),
		session:     lipgloss.NewStyle().Foreground(lipgloss.Color("39")),
		anonymous:   lipgloss.NewStyle().Faint(true),
		barBracket:  lipgloss.NewStyle().Foreground(lipgloss.Color("244")),
		barEmpty:    lipgloss.NewStyle().Foreground(lipgloss.Color("238")),
	}
}

// accent maps a nomination color name to a terminal color.
func accent(color string) lipgloss.Color {
	switch color {
	case "red", "primary":
		return lipgloss.Color("196")
	case "orange":
		return lipgloss.Color("208")
	case "yellow", "gold":
		return lipgloss.Color("220")
	case "green":
		return lipgloss.Color("42")
	case "blue":
		return lipgloss.Color("39")
	case "purple", "violet":
		return lipgloss.Color("135")
	case "pink":
		return lipgloss.Color("205")
	default:
		return lipgloss.Color("159")
	}
}
