// Package commands implements the CLI commands for swu.
package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/swu/internal/app"
	"go.trai.ch/swu/internal/build"
	"go.trai.ch/swu/internal/core/ports"
)

// CLI represents the command line interface for swu.
type CLI struct {
	app     Application
	logger  ports.Logger
	rootCmd *cobra.Command
}

// Application represents the application logic interface.
type Application interface {
	Watch(ctx context.Context, opts app.WatchOptions) error
	Restart(ctx context.Context, opts app.RestartOptions) error
}

// New creates a new CLI instance. log may be nil.
func New(a Application, log ports.Logger) *CLI {
	rootCmd := &cobra.Command{
		Use:           "swu",
		Short:         "Follow and control a firmware update server from the terminal",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	rootCmd.PersistentFlags().StringP("config", "c", "", "Path to the config file (default: ./swu.yaml, then the user config dir)")
	rootCmd.PersistentFlags().Bool("log-json", false, "Write diagnostics as JSON")

	c := &CLI{
		app:     a,
		logger:  log,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRun = func(cmd *cobra.Command, _ []string) {
		if jsonLogs, _ := cmd.Flags().GetBool("log-json"); jsonLogs && c.logger != nil {
			c.logger.SetJSON(true)
		}
	}

	rootCmd.AddCommand(c.newWatchCmd())
	rootCmd.AddCommand(c.newRestartCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context.
func (c *CLI) Execute(ctx context.Context) error {
	c.rootCmd.SetContext(ctx)
	return c.rootCmd.Execute()
}

// SetArgs sets the arguments for the root command. Used for testing.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(args)
}

// SetOutput sets the output and error streams for the root command. Used for testing.
func (c *CLI) SetOutput(out, err io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(err)
}

// outputMode reads --output, with --ci forcing linear output.
func outputMode(cmd *cobra.Command) string {
	mode, _ := cmd.Flags().GetString("output")
	if ci, _ := cmd.Flags().GetBool("ci"); ci {
		return "linear"
	}
	return mode
}

func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().StringP("output", "o", "", "Output mode: auto, tui, or linear (default from config, else auto)")
	cmd.Flags().Bool("ci", false, "Use linear output mode (shorthand for --output=linear)")
}

func urlArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
