package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newWhoamiCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "whoami",
		Short: "Show the signed-in voter",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			page := app.newPage(nil)
			page.RestoreSession(cmd.Context())

			session, ok := page.Session()
			if asJSON {
				if !ok {
					return writeJSON(cmd, map[string]any{"voter": nil})
				}
				return writeJSON(cmd, map[string]any{"voter": newVoterOutput(session)})
			}

			if !ok {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), "Not signed in. Run `awards login` to sign in.")
				return err
			}

			_, err := fmt.Fprintf(cmd.OutOrStdout(), "%s (id %d)\n", session.DisplayName(), session.ID)
			if err == nil && session.Avatar != "" {
				_, err = fmt.Fprintf(cmd.OutOrStdout(), "avatar: %s\n", session.Avatar)
			}
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Print the voter as JSON")

	return cmd
}
