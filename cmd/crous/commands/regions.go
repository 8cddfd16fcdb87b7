package commands

import (
	"github.com/spf13/cobra"
)

func regionsCmd(a *app) *cobra.Command {
	var id int

	cmd := &cobra.Command{
		Use:   "regions",
		Short: "List regions, or show one with --id",
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("id") {
				region, err := a.client.Regions.FindByID(cmd.Context(), id)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), region)
			}
			regions, err := a.client.Regions.List(cmd.Context())
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), regions)
		},
	}
	cmd.Flags().IntVar(&id, "id", 0, "region id")
	return cmd
}
