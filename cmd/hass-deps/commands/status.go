package commands

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.trai.ch/hassdeps/internal/core/domain"
	"go.trai.ch/hassdeps/internal/ui/output"
	"go.trai.ch/hassdeps/internal/ui/style"
)

func (c *CLI) newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Compare installed dependencies with the lock file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			statuses, err := c.app.Status(cmd.Context(), configDir(cmd))
			if err != nil {
				return err
			}
			return printStatus(cmd.OutOrStdout(), statuses)
		},
	}
}

func printStatus(w io.Writer, statuses []domain.DependencyStatus) error {
	out := output.New(w)
	for _, s := range statuses {
		line := output.Paint(out, string(s.State), stateColor(s.State)) + " " + s.Name
		if s.State != domain.StateUnlocked {
			line += " " + s.Type.String() + "@" + s.Version
		}
		if _, err := fmt.Fprintln(out, line); err != nil {
			return err
		}
	}
	return nil
}

func stateColor(state domain.InstallState) lipgloss.Color {
	switch state {
	case domain.StateInstalled:
		return style.Green
	case domain.StateDrifted:
		return style.Yellow
	case domain.StateMissing:
		return style.Red
	default:
		return style.Slate
	}
}
