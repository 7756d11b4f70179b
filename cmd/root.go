package cmd

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	return newRootCmd().ExecuteContext(ctx)
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "awards",
		Short:         "Awards voting client: browse nominations and cast your vote",
		Long:          "awards shows the nominations of the annual awards ranked by votes and lets you vote for your favourites after signing in with your provider account in the browser.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	rootCmd.AddCommand(newVersionCmd())

	app, err := wireApp()
	if err != nil {
		// Without a working config only version and help run. Everything
		// else reports why the app could not start.
		rootCmd.Args = cobra.ArbitraryArgs
		rootCmd.FParseErrWhitelist.UnknownFlags = true
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return err
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newNominationsCmd(app),
		newParticipantsCmd(app),
		newVoteCmd(app),
		newRegisterCmd(app),
		newLoginCmd(app),
		newLogoutCmd(app),
		newWhoamiCmd(app),
		newPageCmd(app),
	)

	return rootCmd
}
