package service

import (
	"context"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
)

// RetreatRepository defines the interface for retreat storage
type RetreatRepository interface {
	Create(ctx context.Context, retreat *model.Retreat) error
	List(ctx context.Context, filter database.Filter, limit int) ([]model.Retreat, error)
}

// retreatFilters enumerates the query parameters accepted when listing
// retreats.
var retreatFilters = map[string]bool{
	"nature_type": true,
	"host_name":   true,
}

// RetreatService handles retreat catalog logic
type RetreatService struct {
	retreatRepo RetreatRepository
}

// RetreatServiceConfig holds configuration for the retreat service
type RetreatServiceConfig struct {
	RetreatRepo RetreatRepository
}

// NewRetreatService creates a new retreat service
func NewRetreatService(cfg RetreatServiceConfig) *RetreatService {
	return &RetreatService{
		retreatRepo: cfg.RetreatRepo,
	}
}

// CreateRetreat persists a new retreat offering.
// The request has already passed field validation, so the required pointers
// are non-nil here.
func (s *RetreatService) CreateRetreat(ctx context.Context, req *model.CreateRetreatRequest) (*model.Retreat, error) {
	retreat := &model.Retreat{
		Title:         req.Title,
		Description:   req.Description,
		HostName:      req.HostName,
		LocationTitle: req.LocationTitle,
		NatureType:    req.NatureType,
		Focus:         req.Focus,
		DurationDays:  *req.DurationDays,
		PriceUSD:      *req.PriceUSD,
		StartDate:     req.StartDate,
		ImageURL:      req.ImageURL,
	}
	if retreat.Focus == nil {
		retreat.Focus = []string{}
	}

	if err := s.retreatRepo.Create(ctx, retreat); err != nil {
		return nil, err
	}
	return retreat, nil
}

// ListRetreats retrieves retreats matching the given query parameters
func (s *RetreatService) ListRetreats(ctx context.Context, params map[string]string) ([]model.Retreat, error) {
	filter, err := buildEqualityFilter(params, retreatFilters, "retreats")
	if err != nil {
		return nil, err
	}
	return s.retreatRepo.List(ctx, filter, 0)
}
