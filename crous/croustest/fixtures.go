package croustest

import "encoding/json"

// Region is a region fixture in wire format.
type Region struct {
	ID   int    `json:"id"`
	Code string `json:"code"`
	Name string `json:"name"`
}

// Restaurant is a restaurant fixture in wire format.
type Restaurant struct {
	AlbumURL         string  `json:"album_url"`
	Closing          string  `json:"closing"`
	Contact          string  `json:"contact"`
	CrousAndGoURL    string  `json:"crous_and_go_url"`
	ID               int     `json:"id"`
	ImageURL         string  `json:"image_url"`
	Infos            string  `json:"infos"`
	LastSyncAt       string  `json:"lastSyncAt"`
	LastUpdate       string  `json:"lastUpdate"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	Opening          string  `json:"opening"`
	OriginalImageURL string  `json:"originalImageUrl"`
	RegionID         int     `json:"regionId"`
	SharingShortURL  string  `json:"sharing_short_url"`
	SharingURL       string  `json:"sharing_url"`
	ShortDesc        string  `json:"short_desc"`
	Synchronized1    bool    `json:"synchronized1"`
	ThumbnailURL     string  `json:"thumbnail_url"`
	Title            string  `json:"title"`
	Type             string  `json:"type"`
	VirtualVisitURL  string  `json:"virtual_visit_url"`
	XMLID            string  `json:"xmlid"`
	Zone             string  `json:"zone"`
}

// Menu is a menu fixture in wire format. A nil Meal is served as [].
type Menu struct {
	ID           int    `json:"id"`
	RestaurantID int    `json:"restaurant_id"`
	Date         string `json:"date"`
	Meal         []Meal `json:"meal"`
}

// MarshalJSON serves a nil Meal as an empty array.
func (m Menu) MarshalJSON() ([]byte, error) {
	type plain Menu
	if m.Meal == nil {
		m.Meal = []Meal{}
	}
	return json.Marshal(plain(m))
}

// Meal is a meal fixture in wire format.
type Meal struct {
	Name         string         `json:"name"`
	FoodCategory []FoodCategory `json:"foodcategory"`
}

// FoodCategory is a food category fixture in wire format.
type FoodCategory struct {
	Name   string `json:"name"`
	Dishes []Dish `json:"dishes"`
}

// Dish is a dish fixture in wire format.
type Dish struct {
	Name string `json:"name"`
}
