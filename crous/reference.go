package crous

import "github.com/kbukum/crousapi/errors"

// RegionRef identifies a region either by raw id or by a resolved Region.
type RegionRef interface {
	regionID() int
}

// RegionID is a raw region identifier.
type RegionID int

func (id RegionID) regionID() int { return int(id) }

func (r Region) regionID() int { return r.id }

// RestaurantRef identifies a restaurant either by raw id or by a resolved Restaurant.
type RestaurantRef interface {
	restaurantID() int
}

// RestaurantID is a raw restaurant identifier.
type RestaurantID int

func (id RestaurantID) restaurantID() int { return int(id) }

func (r Restaurant) restaurantID() int { return r.id }

// resolveRegion returns the id behind ref. Pointers to the reference types
// satisfy RegionRef through their value methods, so a nil pointer is rejected
// like a nil interface.
func resolveRegion(ref RegionRef) (int, error) {
	missing := ref == nil
	switch r := ref.(type) {
	case *Region:
		missing = r == nil
	case *RegionID:
		missing = r == nil
	}
	if missing {
		return 0, errors.InvalidInput("region", "Region reference is required")
	}
	return ref.regionID(), nil
}

func resolveRestaurant(ref RestaurantRef) (int, error) {
	missing := ref == nil
	switch r := ref.(type) {
	case *Restaurant:
		missing = r == nil
	case *RestaurantID:
		missing = r == nil
	}
	if missing {
		return 0, errors.InvalidInput("restaurant", "Restaurant reference is required")
	}
	return ref.restaurantID(), nil
}
