package commands

import "github.com/spf13/cobra"

func (c *CLI) newUpgradeCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "upgrade [source...]",
		Short: "Reinstall dependencies at their latest version and update the lock",
		Args:  cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.app.Upgrade(cmd.Context(), configDir(cmd), args)
		},
	}
}
