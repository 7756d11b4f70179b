package leaderboard

import (
	"fmt"
	"math"
	"strings"

	"github.com/bnema/awards-vote-cli/internal/application"
	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

const (
	defaultBarWidth = 24
	eventName       = "SLIU Awards 2025"
	tagline         = "The award for those who change the industry. Vote for the best and become part of history."
)

type RenderOptions struct {
	// BarWidth is the width of the share bar. Zero means the default.
	BarWidth int
	// Cursor highlights the nomination with this id. Zero highlights nothing.
	Cursor domain.NominationID
	// HideHero renders the leaderboard without the banner.
	HideHero bool
}

// View renders the page without running a bubbletea program. It is used by
// the interactive page, which already owns one.
func View(snapshot application.Snapshot, opts RenderOptions) string {
	return renderView(snapshot, opts, newStyles())
}

func renderView(snapshot application.Snapshot, opts RenderOptions, s styles) string {
	lines := make([]string, 0, 8)
	if !opts.HideHero {
		lines = append(lines, renderHero(snapshot, s))
	}

	lines = append(lines, s.section.Render(sessionLine(snapshot, s)))
	lines = append(lines, s.section.Render(s.heading.Render("Leaderboard")))

	ranked := domain.Ranked(snapshot.Shares)
	if len(ranked) == 0 {
		lines = append(lines, s.empty.Render("No nominations yet."))
		return lipgloss.JoinVertical(lipgloss.Left, lines...)
	}

	width := opts.BarWidth
	if width <= 0 {
		width = defaultBarWidth
	}
	for i, share := range ranked {
		lines = append(lines, renderNomination(i+1, share, width, opts.Cursor, s))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func renderHero(snapshot application.Snapshot, s styles) string {
	stats := lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.stat.Render(fmt.Sprintf("%d", len(snapshot.Nominations))),
		" ",
		s.statLabel.Render("nominations"),
		"   ",
		s.stat.Render(fmt.Sprintf("%d", snapshot.TotalVotes)),
		" ",
		s.statLabel.Render("votes"),
	)

	return lipgloss.JoinVertical(
		lipgloss.Left,
		s.badge.Render("Award of the year"),
		s.hero.Render(eventName),
		s.tagline.Render(tagline),
		stats,
	)
}

func sessionLine(snapshot application.Snapshot, s styles) string {
	if snapshot.Session == nil {
		return s.anonymous.Render("Not signed in. Voting opens the login page.")
	}
	return s.session.Render(fmt.Sprintf("Signed in as %s (id %d)", snapshot.Session.DisplayName(), snapshot.Session.ID))
}

func renderNomination(rank int, share domain.Share, width int, cursor domain.NominationID, s styles) string {
	nomination := share.Nomination

	marker := "  "
	titleStyle := s.title
	if cursor != 0 && nomination.ID == cursor {
		marker = "> "
		titleStyle = s.selected
	}

	title := nomination.DisplayTitle()
	if icon := strings.TrimSpace(nomination.Icon); icon != "" {
		title = fmt.Sprintf("%s [%s]", title, icon)
	}

	header := lipgloss.JoinHorizontal(
		lipgloss.Top,
		marker,
		s.rank.Render(fmt.Sprintf("%d.", rank)),
		" ",
		titleStyle.Render(title),
		" ",
		s.rank.Render(fmt.Sprintf("#%d", nomination.ID)),
	)

	bar := lipgloss.JoinHorizontal(
		lipgloss.Top,
		"     ",
		renderShareBar(share.Percent, width, accent(nomination.Color), s),
		" ",
		s.votes.Render(fmt.Sprintf("%3d%%  %s", share.Percent, voteCount(nomination.Votes))),
	)

	parts := []string{header}
	if description := strings.TrimSpace(nomination.Description); description != "" {
		parts = append(parts, "     "+s.description.Render(description))
	}
	parts = append(parts, bar)

	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func renderShareBar(percent int, width int, color lipgloss.Color, s styles) string {
	if width <= 0 {
		return ""
	}

	filled := int(math.Round(float64(width) * float64(clampPercent(percent)) / 100))
	empty := width - filled

	return lipgloss.JoinHorizontal(
		lipgloss.Top,
		s.barBracket.Render("["),
		lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("=", filled)),
		s.barEmpty.Render(strings.Repeat("-", empty)),
		s.barBracket.Render("]"),
	)
}

func clampPercent(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}

func voteCount(votes int64) string {
	if votes == 1 {
		return "1 vote"
	}
	return fmt.Sprintf("%d votes", votes)
}
