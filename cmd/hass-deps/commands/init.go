package commands

import "github.com/spf13/cobra"

func (c *CLI) newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Create an empty hass-deps.yaml in the configuration directory",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return c.app.Init(cmd.Context(), configDir(cmd))
		},
	}
}
