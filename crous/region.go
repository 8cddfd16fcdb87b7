package crous

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/kbukum/crousapi/errors"
	"github.com/kbukum/crousapi/httpclient"
)

// Region is an administrative region of the CROUS network.
type Region struct {
	id   int
	code string
	name string
}

// ID returns the region identifier.
func (r Region) ID() int { return r.id }

// Code returns the short region code.
func (r Region) Code() string { return r.code }

// Name returns the display name.
func (r Region) Name() string { return r.name }

// MarshalJSON encodes the region with the server's field names.
func (r Region) MarshalJSON() ([]byte, error) {
	return json.Marshal(wireRegion{ID: &r.id, Code: &r.code, Name: &r.name})
}

type wireRegion struct {
	ID   *int    `json:"id" validate:"required"`
	Code *string `json:"code" validate:"required"`
	Name *string `json:"name" validate:"required"`
}

func (w wireRegion) record() Region {
	return Region{id: *w.ID, code: *w.Code, name: *w.Name}
}

// RegionService resolves regions.
type RegionService struct {
	transport *httpclient.Adapter
}

// List returns every region in server order.
func (s *RegionService) List(ctx context.Context) ([]Region, error) {
	return fetchCollection(ctx, s.transport, resourceRegions, "/regions", wireRegion.record)
}

// FindByID returns the first region whose id equals id.
func (s *RegionService) FindByID(ctx context.Context, id int) (Region, error) {
	regions, err := s.List(ctx)
	if err != nil {
		return Region{}, err
	}
	region, ok := findFirst(regions, func(r Region) bool { return r.id == id })
	if !ok {
		return Region{}, errors.NotFound(resourceRegions, id, fmt.Sprintf("Region with id %d not found", id))
	}
	return region, nil
}
