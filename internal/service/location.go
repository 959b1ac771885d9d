package service

import (
	"context"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
)

// LocationRepository defines the interface for location storage
type LocationRepository interface {
	Create(ctx context.Context, loc *model.Location) error
	List(ctx context.Context, filter database.Filter, limit int) ([]model.Location, error)
}

// locationFilters enumerates the query parameters accepted when listing
// sacred locations.
var locationFilters = map[string]bool{
	"region":      true,
	"nature_type": true,
}

// LocationService handles sacred location catalog logic
type LocationService struct {
	locationRepo LocationRepository
}

// LocationServiceConfig holds configuration for the location service
type LocationServiceConfig struct {
	LocationRepo LocationRepository
}

// NewLocationService creates a new location service
func NewLocationService(cfg LocationServiceConfig) *LocationService {
	return &LocationService{
		locationRepo: cfg.LocationRepo,
	}
}

// CreateLocation persists a new sacred location
func (s *LocationService) CreateLocation(ctx context.Context, req *model.CreateLocationRequest) (*model.Location, error) {
	loc := &model.Location{
		Title:       req.Title,
		Region:      req.Region,
		NatureType:  req.NatureType,
		Description: req.Description,
		ImageURL:    req.ImageURL,
	}

	if err := s.locationRepo.Create(ctx, loc); err != nil {
		return nil, err
	}
	return loc, nil
}

// ListLocations retrieves locations matching the given query parameters
func (s *LocationService) ListLocations(ctx context.Context, params map[string]string) ([]model.Location, error) {
	filter, err := buildEqualityFilter(params, locationFilters, "locations")
	if err != nil {
		return nil, err
	}
	return s.locationRepo.List(ctx, filter, 0)
}
