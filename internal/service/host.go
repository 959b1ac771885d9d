package service

import (
	"context"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
)

// HostRepository defines the interface for host storage
type HostRepository interface {
	Create(ctx context.Context, host *model.Host) error
	List(ctx context.Context, filter database.Filter, limit int) ([]model.Host, error)
}

// hostFilters enumerates the query parameters accepted when listing hosts.
// Hosts expose no filterable fields; any query parameter is rejected.
var hostFilters = map[string]bool{}

// HostService handles retreat host catalog logic
type HostService struct {
	hostRepo HostRepository
}

// HostServiceConfig holds configuration for the host service
type HostServiceConfig struct {
	HostRepo HostRepository
}

// NewHostService creates a new host service
func NewHostService(cfg HostServiceConfig) *HostService {
	return &HostService{
		hostRepo: cfg.HostRepo,
	}
}

// CreateHost persists a new host profile
func (s *HostService) CreateHost(ctx context.Context, req *model.CreateHostRequest) (*model.Host, error) {
	host := &model.Host{
		Name:        req.Name,
		Bio:         req.Bio,
		Specialties: req.Specialties,
		Website:     req.Website,
		Location:    req.Location,
	}
	if host.Specialties == nil {
		host.Specialties = []string{}
	}

	if err := s.hostRepo.Create(ctx, host); err != nil {
		return nil, err
	}
	return host, nil
}

// ListHosts retrieves hosts matching the given query parameters
func (s *HostService) ListHosts(ctx context.Context, params map[string]string) ([]model.Host, error) {
	filter, err := buildEqualityFilter(params, hostFilters, "hosts")
	if err != nil {
		return nil, err
	}
	return s.hostRepo.List(ctx, filter, 0)
}
