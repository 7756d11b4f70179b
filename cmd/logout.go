package cmd

import "github.com/spf13/cobra"

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Forget the remembered session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := app.newPage(newTerminalNotifier(cmd.OutOrStdout()))
			page.RestoreSession(cmd.Context())
			return page.Logout(cmd.Context())
		},
	}
}
