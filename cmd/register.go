package cmd

import (
	"context"
	"fmt"

	"github.com/bnema/awards-vote-cli/internal/domain"
	"github.com/spf13/cobra"
)

func newRegisterCmd(app *app) *cobra.Command {
	var reg domain.Registration

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Apply to take part in the awards",
		Example: `  awards register --name "Anna Svetlova" --email anna@example.com \
    --category music --portfolio https://anna.example.com --about "Songwriter"`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			contest := app.newContest(newTerminalNotifier(cmd.OutOrStdout()))

			var nomination domain.Nomination
			err := runBusySpinner(cmd.Context(), cmd.ErrOrStderr(), sendApplicationTask(reg.Category), func(ctx context.Context) error {
				var registerErr error
				nomination, registerErr = contest.Register(ctx, reg)
				return registerErr
			})
			if err != nil {
				return err
			}

			_, err = fmt.Fprintf(cmd.OutOrStdout(), "Applied for %s as %s <%s>.\n", nomination.DisplayTitle(), reg.Name, reg.Email)
			return err
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&reg.Name, "name", "", "Your full name")
	flags.StringVar(&reg.Email, "email", "", "Contact email")
	flags.StringVar(&reg.Category, "category", "", "Nomination id, slug or title")
	flags.StringVar(&reg.Portfolio, "portfolio", "", "Link to your portfolio (http or https)")
	flags.StringVar(&reg.About, "about", "", "A few words about your achievements")

	return cmd
}
