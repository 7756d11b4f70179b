package cmd

import (
	"fmt"

	authadapter "github.com/bnema/awards-vote-cli/internal/adapters/auth"
	"github.com/bnema/awards-vote-cli/internal/application"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Sign in through the provider login page in your browser",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := app.newPage(newTerminalNotifier(cmd.OutOrStdout()))
			page.RestoreSession(cmd.Context())
			return runLogin(cmd, app, page)
		},
	}
}

func runLogin(cmd *cobra.Command, app *app, page *application.Page) error {
	if err := page.BeginLogin(); err != nil {
		return err
	}

	attempt, err := authadapter.StartLogin(app.loginConfig())
	if err != nil {
		page.CancelLogin()
		return fmt.Errorf("start login: %w", err)
	}
	defer func() { _ = attempt.Close() }()

	if err := app.newNavigator(cmd.OutOrStdout()).Open(attempt.URL); err != nil {
		page.CancelLogin()
		return fmt.Errorf("open login page: %w", err)
	}

	session, err := attempt.Wait(cmd.Context())
	if err != nil {
		page.CancelLogin()
		return err
	}

	if err := page.CompleteLogin(cmd.Context(), session); err != nil {
		page.CancelLogin()
		return err
	}

	_, err = fmt.Fprintf(cmd.OutOrStdout(), "Signed in as %s (id %d)\n", session.DisplayName(), session.ID)
	return err
}
