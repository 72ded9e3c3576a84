package commands

import (
	"github.com/spf13/cobra"
	"go.trai.ch/hassdeps/internal/app"
	"go.trai.ch/hassdeps/internal/core/domain"
)

func (c *CLI) newAddCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "add <source>",
		Short: "Install a new dependency and record it",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dep := domain.NewDependency(args[0])
			dep.RootIsCustomComponents, _ = cmd.Flags().GetBool("root-is-custom-components")
			// Only an explicitly passed flag sets the list, so "not set" stays nil.
			if cmd.Flags().Changed("include") {
				dep.Include, _ = cmd.Flags().GetStringArray("include")
			}
			if cmd.Flags().Changed("asset") {
				dep.Assets, _ = cmd.Flags().GetStringArray("asset")
			}

			save, _ := cmd.Flags().GetBool("save")
			if noSave, _ := cmd.Flags().GetBool("no-save"); noSave {
				save = false
			}

			_, err := c.app.Add(cmd.Context(), configDir(cmd), dep, app.AddOptions{Save: save})
			return err
		},
	}
	cmd.Flags().Bool("save", true, "Record the dependency in hass-deps.yaml and hass-deps.lock")
	cmd.Flags().Bool("no-save", false, "Install without recording the dependency")
	cmd.Flags().StringArray("include", nil, "Only install the named components")
	cmd.Flags().StringArray("asset", nil, "Checkout-relative path of a Lovelace artifact to install")
	cmd.Flags().Bool("root-is-custom-components", false, "Treat the repository root as the integration directory")
	return cmd
}
