package cmd

import (
	"io"

	authadapter "github.com/bnema/awards-vote-cli/internal/adapters/auth"
	pageadapter "github.com/bnema/awards-vote-cli/internal/adapters/render/page"
	"github.com/spf13/cobra"
)

func newPageCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "page",
		Short: "Open the interactive voting page",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			toasts := &pageadapter.Toasts{}

			return pageadapter.Run(cmd.Context(), pageadapter.Options{
				Page:      app.newPage(toasts),
				Toasts:    toasts,
				Navigator: app.newNavigator(io.Discard),
				StartLogin: func() (string, pageadapter.LoginFlow, error) {
					attempt, err := authadapter.StartLogin(app.loginConfig())
					if err != nil {
						return "", nil, err
					}
					return attempt.URL, attempt, nil
				},
			})
		},
	}
}
