package cmd

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/bnema/awards-vote-cli/internal/adapters/render/leaderboard"
	"github.com/bnema/awards-vote-cli/internal/application"
	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/spf13/cobra"
)

var errVoteNotCounted = errors.New("vote not counted")

func newVoteCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "vote <nomination-id>",
		Short: "Vote for a nomination, signing in first when needed",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseNominationID(args[0])
			if err != nil {
				return err
			}

			notifier := newTerminalNotifier(cmd.OutOrStdout())
			page := app.newPage(notifier)
			page.RestoreSession(cmd.Context())

			var result application.VoteResult
			err = runBusySpinner(cmd.Context(), cmd.ErrOrStderr(), submitVoteTask(id), func(ctx context.Context) error {
				var voteErr error
				result, voteErr = page.Vote(ctx, id)
				return voteErr
			})
			if errors.Is(err, domain.ErrAuthRequired) {
				notifier.Warn("Sign in to vote.")
				if err := runLogin(cmd, app, page); err != nil {
					return err
				}
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "Run `awards vote %d` again to cast your vote.\n", id)
				return err
			}
			if err != nil {
				return err
			}

			switch result.Outcome {
			case application.VoteAccepted:
				snapshot := page.Snapshot()
				if nomination, ok := domain.FindNomination(snapshot.Nominations, id); ok {
					if _, err := fmt.Fprintf(cmd.OutOrStdout(), "Voted for %s.\n", nomination.DisplayTitle()); err != nil {
						return err
					}
				}
				return writeBoardOutput(cmd, app, snapshot, leaderboard.RenderOptions{Cursor: id, HideHero: true}, false)
			case application.VoteDuplicate:
				return nil
			default:
				return fmt.Errorf("%w: %s", errVoteNotCounted, result.Outcome)
			}
		},
	}
}

func parseNominationID(raw string) (domain.NominationID, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid nomination id %q: must be a positive integer", raw)
	}
	return domain.NominationID(id), nil
}
