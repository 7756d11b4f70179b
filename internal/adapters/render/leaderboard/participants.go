package leaderboard

import (
	"fmt"
	"strings"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// Participants renders the participants section. The list is expected to be
// ranked already; the first places get a TOP badge.
func Participants(participants []domain.Participant) string {
	s := newStyles()

	lines := []string{
		s.heading.Render("Participants"),
		s.tagline.Render(fmt.Sprintf("Top %d nominees by votes", len(participants))),
	}
	if len(participants) == 0 {
		lines[1] = s.empty.Render("No participants yet.")
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	for i, participant := range participants {
		lines = append(lines, renderParticipant(i, participant, s))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderParticipant(i int, participant domain.Participant, s styles) string {
	avatar := strings.TrimSpace(participant.Avatar)
	if avatar == "" {
		avatar = "*"
	}

	badge := "      "
	if place := domain.Podium(i); place > 0 {
		badge = s.badge.Render(fmt.Sprintf("TOP %d", place)) + " "
	}

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		badge,
		avatar,
		" ",
		s.title.Render(participant.DisplayName()),
		" ",
		s.description.Render(participant.Category),
		"  ",
		s.votes.Render(voteCount(participant.Votes)),
	)
}
