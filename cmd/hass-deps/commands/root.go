// Package commands implements the CLI commands for hass-deps.
package commands

import (
	"context"
	"io"

	"github.com/spf13/cobra"
	"go.trai.ch/hassdeps/internal/app"
	"go.trai.ch/hassdeps/internal/build"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/core/ports"
)

// CLI represents the command line interface for hass-deps.
type CLI struct {
	app     *app.App
	logger  ports.Logger
	rootCmd *cobra.Command
}

// jsonLogger is implemented by loggers that can switch to JSON output.
type jsonLogger interface {
	SetJSON(enable bool)
}

// New creates a new CLI instance over the given components.
func New(c *app.Components) *CLI {
	rootCmd := &cobra.Command{
		Use:           "hass-deps",
		Short:         "Install Home Assistant custom integrations and Lovelace resources",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	configDir := c.Settings.ConfigDir
	if configDir == "" {
		configDir = domain.DefaultConfigDir
	}
	rootCmd.PersistentFlags().StringP("config-dir", "c", configDir, "Home Assistant configuration directory")
	rootCmd.PersistentFlags().Bool("log-json", false, "Emit logs as JSON")

	cli := &CLI{
		app:     c.App,
		logger:  c.Logger,
		rootCmd: rootCmd,
	}

	rootCmd.PersistentPreRunE = func(cmd *cobra.Command, _ []string) error {
		asJSON, err := cmd.Flags().GetBool("log-json")
		if err != nil {
			return err
		}
		if l, ok := cli.logger.(jsonLogger); ok && asJSON {
			l.SetJSON(true)
		}
		return nil
	}

	rootCmd.AddCommand(cli.newInitCmd())
	rootCmd.AddCommand(cli.newAddCmd())
	rootCmd.AddCommand(cli.newInstallCmd())
	rootCmd.AddCommand(cli.newUpgradeCmd())
	rootCmd.AddCommand(cli.newStatusCmd())
	rootCmd.AddCommand(cli.newVersionCmd())

	return cli
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

// SetOutput redirects command output. Used for testing.
func (c *CLI) SetOutput(w io.Writer) {
	c.rootCmd.SetOut(w)
	c.rootCmd.SetErr(w)
}

func configDir(cmd *cobra.Command) string {
	dir, _ := cmd.Flags().GetString("config-dir")
	return dir
}
