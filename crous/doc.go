// Package crous is a typed client for the CROUS restaurant menu service.
//
// A Client exposes three resolvers that share one lookup protocol: a single
// GET of a resource collection, strict HTTP 200 check, schema-checked JSON
// decode, then either the mapped collection or a first-match linear scan.
//
//	client, err := crous.New(crous.Config{})
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	region, err := client.Regions.FindByID(ctx, 7)
//	restaurants, err := client.Restaurants.List(ctx, region)
//	menu, err := client.Menus.FindByDate(ctx, region, crous.RestaurantID(12), "2024-03-05")
//
// Parent references are accepted either as a raw identifier (RegionID,
// RestaurantID) or as a previously resolved record (Region, Restaurant).
//
// Every failure is an *errors.AppError from github.com/kbukum/crousapi/errors
// carrying one of FETCH_FAILED, NOT_FOUND, INVALID_INPUT or
// MALFORMED_RESPONSE. Nothing is cached or retried.
package crous
