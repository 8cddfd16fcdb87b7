package commands

import (
	"github.com/spf13/cobra"

	"github.com/kbukum/crousapi/crous"
)

func restaurantsCmd(a *app) *cobra.Command {
	var regionID, id int

	cmd := &cobra.Command{
		Use:   "restaurants",
		Short: "List the restaurants of a region, or show one with --id",
		RunE: func(cmd *cobra.Command, args []string) error {
			region := crous.RegionID(regionID)
			if cmd.Flags().Changed("id") {
				restaurant, err := a.client.Restaurants.FindByID(cmd.Context(), region, id)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), restaurant)
			}
			restaurants, err := a.client.Restaurants.List(cmd.Context(), region)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), restaurants)
		},
	}
	cmd.Flags().IntVar(&regionID, "region", 0, "region id")
	cmd.Flags().IntVar(&id, "id", 0, "restaurant id")
	_ = cmd.MarkFlagRequired("region")
	return cmd
}
