package cmd

import "github.com/spf13/cobra"

func Execute() error {
	return newRootCmd().Execute()
}

func newRootCmd() *cobra.Command {
	app, err := wireApp()
	return newRootCmdWith(app, err)
}

func newRootCmdWith(app *app, wireErr error) *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "claude-kbd",
		Short:         "Bridge Claude Code sessions to keyboard LEDs",
		Long:          "claude-kbd watches the Claude Code hook event log, gives every session its own keyboard LED, and routes key presses under blinking LEDs back to the session's terminal tab.",
		SilenceUsage:  true,
		SilenceErrors: false,
	}

	if wireErr != nil {
		rootCmd.RunE = func(_ *cobra.Command, _ []string) error {
			return wireErr
		}
		return rootCmd
	}

	rootCmd.AddCommand(
		newVersionCmd(),
		newRunCmd(app),
		newWatchCmd(app),
		newConfigCmd(app),
	)

	return rootCmd
}
