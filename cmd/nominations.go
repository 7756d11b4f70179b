package cmd

import (
	"context"

	"github.com/bnema/awards-vote-cli/internal/adapters/render/leaderboard"
	"github.com/spf13/cobra"
)

func newNominationsCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:     "nominations",
		Aliases: []string{"leaderboard", "ls"},
		Short:   "Show the nominations ranked by votes",
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := app.newPage(newTerminalNotifier(cmd.ErrOrStderr()))

			load := func(ctx context.Context) error {
				page.Init(ctx)
				return nil
			}
			if asJSON {
				_ = load(cmd.Context())
			} else if err := runBusySpinner(cmd.Context(), cmd.ErrOrStderr(), loadNominationsTask(), load); err != nil {
				return err
			}

			return writeBoardOutput(cmd, app, page.Snapshot(), leaderboard.RenderOptions{}, asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the leaderboard as JSON")

	return cmd
}
