package repository

import (
	"context"
	"time"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
)

// HostRepository handles host document access
type HostRepository struct {
	store database.Store
}

// NewHostRepository creates a new host repository
func NewHostRepository(store database.Store) *HostRepository {
	return &HostRepository{store: store}
}

// Create persists a new host and fills in its generated fields
func (r *HostRepository) Create(ctx context.Context, host *model.Host) error {
	host.CreatedOn = time.Now().UTC()
	if host.Specialties == nil {
		host.Specialties = []string{}
	}

	id, err := r.store.CreateDocument(ctx, model.CollectionHost, hostDocument(host))
	if err != nil {
		return err
	}

	host.ID = id
	return nil
}

// List retrieves hosts matching the filter
func (r *HostRepository) List(ctx context.Context, filter database.Filter, limit int) ([]model.Host, error) {
	docs, err := r.store.GetDocuments(ctx, model.CollectionHost, filter, limit)
	if err != nil {
		return nil, err
	}

	hosts := make([]model.Host, 0, len(docs))
	for _, doc := range docs {
		hosts = append(hosts, parseHostDocument(doc))
	}
	return hosts, nil
}

func hostDocument(host *model.Host) database.Document {
	return database.Document{
		"name":        host.Name,
		"bio":         host.Bio,
		"specialties": host.Specialties,
		"website":     host.Website,
		"location":    host.Location,
		"created_on":  host.CreatedOn,
	}
}

func parseHostDocument(doc database.Document) model.Host {
	host := model.Host{
		ID:          getString(doc, "id"),
		Name:        getString(doc, "name"),
		Bio:         getStringPtr(doc, "bio"),
		Specialties: getStringSlice(doc, "specialties"),
		Website:     getStringPtr(doc, "website"),
		Location:    getStringPtr(doc, "location"),
	}
	if t := getTime(doc, "created_on"); t != nil {
		host.CreatedOn = *t
	}
	return host
}
