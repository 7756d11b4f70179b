package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/bnema/awards-vote-cli/internal/adapters/render/leaderboard"
	"github.com/bnema/awards-vote-cli/internal/application"
	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/spf13/cobra"
)

type boardOutput struct {
	Voter       *voterOutput       `json:"voter,omitempty"`
	TotalVotes  int64              `json:"total_votes"`
	Nominations []nominationOutput `json:"nominations"`
}

type nominationOutput struct {
	ID          int64  `json:"id"`
	Slug        string `json:"slug,omitempty"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
	Color       string `json:"color,omitempty"`
	Votes       int64  `json:"votes"`
	Percent     int    `json:"percent"`
}

type voterOutput struct {
	ID     int64  `json:"id"`
	Name   string `json:"name"`
	Avatar string `json:"avatar,omitempty"`
}

func newBoardOutput(snapshot application.Snapshot) boardOutput {
	out := boardOutput{
		TotalVotes:  snapshot.TotalVotes,
		Nominations: make([]nominationOutput, 0, len(snapshot.Shares)),
	}
	if snapshot.Session != nil {
		voter := newVoterOutput(*snapshot.Session)
		out.Voter = &voter
	}
	for _, share := range domain.Ranked(snapshot.Shares) {
		n := share.Nomination
		out.Nominations = append(out.Nominations, nominationOutput{
			ID:          int64(n.ID),
			Slug:        n.Slug,
			Title:       n.DisplayTitle(),
			Description: n.Description,
			Icon:        n.Icon,
			Color:       n.Color,
			Votes:       n.Votes,
			Percent:     share.Percent,
		})
	}
	return out
}

func newVoterOutput(session domain.Session) voterOutput {
	return voterOutput{ID: int64(session.ID), Name: session.DisplayName(), Avatar: session.Avatar}
}

func writeJSON(cmd *cobra.Command, v any) error {
	enc := json.NewEncoder(cmd.OutOrStdout())
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeBoardOutput(cmd *cobra.Command, app *app, snapshot application.Snapshot, opts leaderboard.RenderOptions, asJSON bool) error {
	if asJSON {
		return writeJSON(cmd, newBoardOutput(snapshot))
	}

	rendered, err := app.boardRenderer(snapshot, opts)
	if err != nil {
		return fmt.Errorf("render leaderboard: %w", err)
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
	return err
}
