package commands

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/kbukum/crousapi/crous"
)

func menusCmd(a *app) *cobra.Command {
	var (
		regionID     int
		restaurantID int
		date         string
		today        bool
	)

	cmd := &cobra.Command{
		Use:   "menus",
		Short: "List the menus of a restaurant, or pick one day",
		RunE: func(cmd *cobra.Command, args []string) error {
			region := crous.RegionID(regionID)
			restaurant := crous.RestaurantID(restaurantID)

			switch {
			case today:
				menu, err := a.client.Menus.FindByTime(cmd.Context(), region, restaurant, time.Now())
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), menu)
			case cmd.Flags().Changed("date"):
				menu, err := a.client.Menus.FindByDate(cmd.Context(), region, restaurant, date)
				if err != nil {
					return err
				}
				return writeJSON(cmd.OutOrStdout(), menu)
			}

			menus, err := a.client.Menus.List(cmd.Context(), region, restaurant)
			if err != nil {
				return err
			}
			return writeJSON(cmd.OutOrStdout(), menus)
		},
	}
	cmd.Flags().IntVar(&regionID, "region", 0, "region id")
	cmd.Flags().IntVar(&restaurantID, "restaurant", 0, "restaurant id")
	cmd.Flags().StringVar(&date, "date", "", "menu day (YYYY-MM-DD)")
	cmd.Flags().BoolVar(&today, "today", false, "menu of the current UTC day")
	_ = cmd.MarkFlagRequired("region")
	_ = cmd.MarkFlagRequired("restaurant")
	cmd.MarkFlagsMutuallyExclusive("date", "today")
	return cmd
}
