package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/swu/internal/app"
)

func (c *CLI) newRestartCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "restart [url]",
		Short: "Restart a device and wait until its update server is back",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			configPath, _ := cmd.Flags().GetString("config")
			noWait, _ := cmd.Flags().GetBool("no-wait")

			return c.app.Restart(cmd.Context(), app.RestartOptions{
				URL:        urlArg(args),
				ConfigPath: configPath,
				OutputMode: outputMode(cmd),
				NoWait:     noWait,
			})
		},
	}
	addOutputFlags(cmd)
	cmd.Flags().Bool("no-wait", false, "Only send the restart request")
	return cmd
}
