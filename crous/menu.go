package crous

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"time"

	"github.com/kbukum/crousapi/errors"
	"github.com/kbukum/crousapi/httpclient"
)

// Menu is the menu of one restaurant for one day.
type Menu struct {
	id           int
	restaurantID int
	date         string
	meals        []Meal
}

// ID returns the menu identifier.
func (m Menu) ID() int { return m.id }

// RestaurantID returns the id of the restaurant serving the menu.
func (m Menu) RestaurantID() int { return m.restaurantID }

// Date returns the menu day exactly as sent by the server.
func (m Menu) Date() string { return m.date }

// Meals returns the meals in server order.
func (m Menu) Meals() []Meal { return slices.Clone(m.meals) }

// Day parses Date as a UTC calendar day.
func (m Menu) Day() (time.Time, error) {
	return time.ParseInLocation(DateLayout, m.date, time.UTC)
}

// MarshalJSON encodes the menu with the server's field names.
func (m Menu) MarshalJSON() ([]byte, error) {
	meals := make([]wireMeal, len(m.meals))
	for i, meal := range m.meals {
		meals[i] = meal.wire()
	}
	return json.Marshal(wireMenu{ID: &m.id, RestaurantID: &m.restaurantID, Date: &m.date, Meal: meals})
}

// Meal is a service of the day (lunch, dinner) grouping food categories.
type Meal struct {
	name       string
	categories []FoodCategory
}

func (m Meal) Name() string { return m.name }

// FoodCategories returns the categories in server order.
func (m Meal) FoodCategories() []FoodCategory { return slices.Clone(m.categories) }

func (m Meal) MarshalJSON() ([]byte, error) { return json.Marshal(m.wire()) }

func (m Meal) wire() wireMeal {
	categories := make([]wireFoodCategory, len(m.categories))
	for i, c := range m.categories {
		categories[i] = c.wire()
	}
	return wireMeal{Name: m.name, FoodCategory: categories}
}

// FoodCategory groups dishes of a meal (starters, mains).
type FoodCategory struct {
	name   string
	dishes []Dish
}

func (c FoodCategory) Name() string { return c.name }

// Dishes returns the dishes in server order.
func (c FoodCategory) Dishes() []Dish { return slices.Clone(c.dishes) }

func (c FoodCategory) MarshalJSON() ([]byte, error) { return json.Marshal(c.wire()) }

func (c FoodCategory) wire() wireFoodCategory {
	dishes := make([]wireDish, len(c.dishes))
	for i, d := range c.dishes {
		dishes[i] = wireDish{Name: d.name}
	}
	return wireFoodCategory{Name: c.name, Dishes: dishes}
}

// Dish is a single dish.
type Dish struct {
	name string
}

func (d Dish) Name() string { return d.name }

func (d Dish) MarshalJSON() ([]byte, error) { return json.Marshal(wireDish{Name: d.name}) }

type wireMenu struct {
	ID           *int       `json:"id" validate:"required"`
	RestaurantID *int       `json:"restaurant_id" validate:"required"`
	Date         *string    `json:"date" validate:"required"`
	Meal         []wireMeal `json:"meal" validate:"required"`
}

// Nested content is passed through without validation.
type wireMeal struct {
	Name         string             `json:"name"`
	FoodCategory []wireFoodCategory `json:"foodcategory"`
}

type wireFoodCategory struct {
	Name   string     `json:"name"`
	Dishes []wireDish `json:"dishes"`
}

type wireDish struct {
	Name string `json:"name"`
}

func (w wireMenu) record() Menu {
	meals := make([]Meal, len(w.Meal))
	for i, wm := range w.Meal {
		categories := make([]FoodCategory, len(wm.FoodCategory))
		for j, wc := range wm.FoodCategory {
			dishes := make([]Dish, len(wc.Dishes))
			for k, wd := range wc.Dishes {
				dishes[k] = Dish{name: wd.Name}
			}
			categories[j] = FoodCategory{name: wc.Name, dishes: dishes}
		}
		meals[i] = Meal{name: wm.Name, categories: categories}
	}
	return Menu{id: *w.ID, restaurantID: *w.RestaurantID, date: *w.Date, meals: meals}
}

// MenuService resolves the daily menus of a restaurant.
type MenuService struct {
	transport *httpclient.Adapter
}

// List returns every menu of restaurant in region, in server order.
func (s *MenuService) List(ctx context.Context, region RegionRef, restaurant RestaurantRef) ([]Menu, error) {
	regionID, err := resolveRegion(region)
	if err != nil {
		return nil, err
	}
	restaurantID, err := resolveRestaurant(restaurant)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/regions/%d/restaurants/%d/menus", regionID, restaurantID)
	return fetchCollection(ctx, s.transport, resourceMenus, path, wireMenu.record)
}

// FindByDate returns the first menu whose date equals date byte for byte.
// date is validated before any request is made.
func (s *MenuService) FindByDate(ctx context.Context, region RegionRef, restaurant RestaurantRef, date string) (Menu, error) {
	if err := ValidateMenuDate(date); err != nil {
		return Menu{}, err
	}
	menus, err := s.List(ctx, region, restaurant)
	if err != nil {
		return Menu{}, err
	}
	menu, ok := findFirst(menus, func(m Menu) bool { return m.date == date })
	if !ok {
		return Menu{}, errors.NotFound(resourceMenus, date, fmt.Sprintf("Menu for date %s not found", date))
	}
	return menu, nil
}

// FindByTime looks up the menu of the UTC calendar day of t.
func (s *MenuService) FindByTime(ctx context.Context, region RegionRef, restaurant RestaurantRef, t time.Time) (Menu, error) {
	return s.FindByDate(ctx, region, restaurant, MenuDate(t))
}
