package cmd

import (
	"fmt"

	"github.com/bnema/awards-vote-cli/internal/adapters/render/leaderboard"
	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/spf13/cobra"
)

type participantOutput struct {
	ID         int64  `json:"id"`
	Name       string `json:"name"`
	Category   string `json:"category"`
	Avatar     string `json:"avatar,omitempty"`
	Votes      int64  `json:"votes"`
	Nomination string `json:"nomination"`
	Top        int    `json:"top,omitempty"`
}

func newParticipantsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "participants",
		Short: "Show the participants ranked by votes",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			participants, err := app.newContest(nil).Participants(cmd.Context())
			if err != nil {
				return err
			}

			if asJSON {
				return writeJSON(cmd, newParticipantsOutput(participants))
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), leaderboard.Participants(participants))
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the participants as JSON")

	return cmd
}

func newParticipantsOutput(participants []domain.Participant) []participantOutput {
	out := make([]participantOutput, 0, len(participants))
	for i, p := range participants {
		out = append(out, participantOutput{
			ID:         p.ID,
			Name:       p.DisplayName(),
			Category:   p.Category,
			Avatar:     p.Avatar,
			Votes:      p.Votes,
			Nomination: p.Nomination,
			Top:        domain.Podium(i),
		})
	}
	return out
}
