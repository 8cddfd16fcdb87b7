package crous

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kbukum/crousapi/errors"
	"github.com/kbukum/crousapi/httpclient"
)

// Restaurant is a catering point belonging to one region. Timestamps are
// kept as the server's strings.
type Restaurant struct {
	albumURL         string
	closing          string
	contact          string
	crousAndGoURL    string
	id               int
	imageURL         string
	infos            string
	lastSyncAt       string
	lastUpdate       string
	lat              float64
	lon              float64
	opening          string
	originalImageURL string
	regionID         int
	sharingShortURL  string
	sharingURL       string
	shortDesc        string
	synchronized1    bool
	thumbnailURL     string
	title            string
	kind             string
	virtualVisitURL  string
	xmlID            string
	zone             string
}

func (r Restaurant) AlbumURL() string { return r.albumURL }
func (r Restaurant) Closing() string { return r.closing }
func (r Restaurant) Contact() string { return r.contact }
func (r Restaurant) CrousAndGoURL() string { return r.crousAndGoURL }
func (r Restaurant) ID() int { return r.id }
func (r Restaurant) ImageURL() string { return r.imageURL }
func (r Restaurant) Infos() string { return r.infos }
func (r Restaurant) LastSyncAt() string { return r.lastSyncAt }
func (r Restaurant) LastUpdate() string { return r.lastUpdate }
func (r Restaurant) Lat() float64 { return r.lat }
func (r Restaurant) Lon() float64 { return r.lon }
func (r Restaurant) Opening() string { return r.opening }
func (r Restaurant) OriginalImageURL() string { return r.originalImageURL }
func (r Restaurant) SharingShortURL() string { return r.sharingShortURL }
func (r Restaurant) SharingURL() string { return r.sharingURL }
func (r Restaurant) ShortDesc() string { return r.shortDesc }
func (r Restaurant) Synchronized1() bool { return r.synchronized1 }
func (r Restaurant) ThumbnailURL() string { return r.thumbnailURL }
func (r Restaurant) Title() string { return r.title }
func (r Restaurant) Type() string { return r.kind }
func (r Restaurant) VirtualVisitURL() string { return r.virtualVisitURL }
func (r Restaurant) XMLID() string { return r.xmlID }
func (r Restaurant) Zone() string { return r.zone }

// RegionID returns the id of the region the restaurant was fetched from.
func (r Restaurant) RegionID() int { return r.regionID }

// MarshalJSON encodes the restaurant with the server's field names.
func (r Restaurant) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRestaurant{
		AlbumURL:         r.albumURL,
		Closing:          r.closing,
		Contact:          r.contact,
		CrousAndGoURL:    r.crousAndGoURL,
		ID:               &r.id,
		ImageURL:         r.imageURL,
		Infos:            r.infos,
		LastSyncAt:       r.lastSyncAt,
		LastUpdate:       r.lastUpdate,
		Lat:              r.lat,
		Lon:              r.lon,
		Opening:          r.opening,
		OriginalImageURL: r.originalImageURL,
		RegionID:         &r.regionID,
		SharingShortURL:  r.sharingShortURL,
		SharingURL:       r.sharingURL,
		ShortDesc:        r.shortDesc,
		Synchronized1:    r.synchronized1,
		ThumbnailURL:     r.thumbnailURL,
		Title:            &r.title,
		Type:             r.kind,
		VirtualVisitURL:  r.virtualVisitURL,
		XMLID:            r.xmlID,
		Zone:             r.zone,
	})
}

// wireRestaurant mixes snake_case and camelCase keys exactly as served.
type wireRestaurant struct {
	AlbumURL         string  `json:"album_url"`
	Closing          string  `json:"closing"`
	Contact          string  `json:"contact"`
	CrousAndGoURL    string  `json:"crous_and_go_url"`
	ID               *int    `json:"id" validate:"required"`
	ImageURL         string  `json:"image_url"`
	Infos            string  `json:"infos"`
	LastSyncAt       string  `json:"lastSyncAt"`
	LastUpdate       string  `json:"lastUpdate"`
	Lat              float64 `json:"lat"`
	Lon              float64 `json:"lon"`
	Opening          string  `json:"opening"`
	OriginalImageURL string  `json:"originalImageUrl"`
	RegionID         *int    `json:"regionId" validate:"required"`
	SharingShortURL  string  `json:"sharing_short_url"`
	SharingURL       string  `json:"sharing_url"`
	ShortDesc        string  `json:"short_desc"`
	Synchronized1    bool    `json:"synchronized1"`
	ThumbnailURL     string  `json:"thumbnail_url"`
	Title            *string `json:"title" validate:"required"`
	Type             string  `json:"type"`
	VirtualVisitURL  string  `json:"virtual_visit_url"`
	XMLID            string  `json:"xmlid"`
	Zone             string  `json:"zone"`
}

func (w wireRestaurant) record() Restaurant {
	return Restaurant{
		albumURL:         w.AlbumURL,
		closing:          w.Closing,
		contact:          w.Contact,
		crousAndGoURL:    w.CrousAndGoURL,
		id:               *w.ID,
		imageURL:         w.ImageURL,
		infos:            w.Infos,
		lastSyncAt:       w.LastSyncAt,
		lastUpdate:       w.LastUpdate,
		lat:              w.Lat,
		lon:              w.Lon,
		opening:          w.Opening,
		originalImageURL: w.OriginalImageURL,
		regionID:         *w.RegionID,
		sharingShortURL:  w.SharingShortURL,
		sharingURL:       w.SharingURL,
		shortDesc:        w.ShortDesc,
		synchronized1:    w.Synchronized1,
		thumbnailURL:     w.ThumbnailURL,
		title:            *w.Title,
		kind:             w.Type,
		virtualVisitURL:  w.VirtualVisitURL,
		xmlID:            w.XMLID,
		zone:             w.Zone,
	}
}

// RestaurantService resolves restaurants within a region.
type RestaurantService struct {
	transport *httpclient.Adapter
}

// List returns every restaurant of region in server order.
func (s *RestaurantService) List(ctx context.Context, region RegionRef) ([]Restaurant, error) {
	regionID, err := resolveRegion(region)
	if err != nil {
		return nil, err
	}
	path := fmt.Sprintf("/regions/%d/restaurants", regionID)
	return fetchCollection(ctx, s.transport, resourceRestaurants, path, wireRestaurant.record)
}

// FindByID returns the first restaurant of region whose id equals id.
func (s *RestaurantService) FindByID(ctx context.Context, region RegionRef, id int) (Restaurant, error) {
	restaurants, err := s.List(ctx, region)
	if err != nil {
		return Restaurant{}, err
	}
	restaurant, ok := findFirst(restaurants, func(r Restaurant) bool { return r.id == id })
	if !ok {
		return Restaurant{}, errors.NotFound(resourceRestaurants, id, fmt.Sprintf("Restaurant with id %d not found", id))
	}
	return restaurant, nil
}
