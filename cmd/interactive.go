package cmd

import (
	"github.com/grycap/awsome-cli/pkg/tui"
	"github.com/spf13/cobra"
)

func makeInteractiveCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "interactive",
		Short:   "Launch the interactive resource browser",
		Aliases: []string{"ui"},
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			prof, err := resolveProfile(cmd)
			if err != nil {
				return err
			}

			return tui.Run(cmd.Context(), prof)
		},
	}

	cmd.Flags().StringP("profile", "p", "", "set the profile")

	return cmd
}
