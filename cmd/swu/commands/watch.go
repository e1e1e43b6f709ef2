package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/swu/internal/app"
)

func (c *CLI) newWatchCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "watch [url]",
		Short: "Follow the update status of a device",
		Long: "Connects to the status socket of the update console at url and shows\n" +
			"the update status, progress and server messages. When the device\n" +
			"restarts, swu waits for the server to come back and reconnects.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			exitOnDone, _ := cmd.Flags().GetBool("exit-on-done")

			return c.app.Watch(cmd.Context(), app.WatchOptions{
				URL:        urlArg(args),
				ConfigPath: configPath,
				OutputMode: outputMode(cmd),
				ExitOnDone: exitOnDone,
			})
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().Bool("exit-on-done", false, "Exit when the server reports DONE; exit code 1 if the update failed")
	return cmd
}
