package repository

import (
	"context"
	"time"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
)

// LocationRepository handles sacred location document access
type LocationRepository struct {
	store database.Store
}

// NewLocationRepository creates a new location repository
func NewLocationRepository(store database.Store) *LocationRepository {
	return &LocationRepository{store: store}
}

// Create persists a new location and fills in its generated fields
func (r *LocationRepository) Create(ctx context.Context, loc *model.Location) error {
	loc.CreatedOn = time.Now().UTC()

	id, err := r.store.CreateDocument(ctx, model.CollectionLocation, locationDocument(loc))
	if err != nil {
		return err
	}

	loc.ID = id
	return nil
}

// List retrieves locations matching the filter
func (r *LocationRepository) List(ctx context.Context, filter database.Filter, limit int) ([]model.Location, error) {
	docs, err := r.store.GetDocuments(ctx, model.CollectionLocation, filter, limit)
	if err != nil {
		return nil, err
	}

	locations := make([]model.Location, 0, len(docs))
	for _, doc := range docs {
		locations = append(locations, parseLocationDocument(doc))
	}
	return locations, nil
}

func locationDocument(loc *model.Location) database.Document {
	return database.Document{
		"title":       loc.Title,
		"region":      loc.Region,
		"nature_type": loc.NatureType,
		"description": loc.Description,
		"image_url":   loc.ImageURL,
		"created_on":  loc.CreatedOn,
	}
}

func parseLocationDocument(doc database.Document) model.Location {
	loc := model.Location{
		ID:          getString(doc, "id"),
		Title:       getString(doc, "title"),
		Region:      getString(doc, "region"),
		NatureType:  getString(doc, "nature_type"),
		Description: getStringPtr(doc, "description"),
		ImageURL:    getStringPtr(doc, "image_url"),
	}
	if t := getTime(doc, "created_on"); t != nil {
		loc.CreatedOn = *t
	}
	return loc
}
