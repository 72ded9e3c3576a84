package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hassdeps/internal/app"
)

func (c *CLI) newInstallCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "install",
		Short: "Install every declared dependency at its locked version",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			force, _ := cmd.Flags().GetBool("force")
			keepGoing, _ := cmd.Flags().GetBool("keep-going")
			return c.app.Install(cmd.Context(), configDir(cmd), app.InstallOptions{
				Force:     force,
				KeepGoing: keepGoing,
			})
		},
	}
	cmd.Flags().BoolP("force", "f", false, "Reinstall even when the installed version matches the lock")
	cmd.Flags().BoolP("keep-going", "k", false, "Continue past failing dependencies")
	return cmd
}
