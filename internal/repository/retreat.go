package repository

import (
	"context"
	"time"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
)

// RetreatRepository handles retreat document access
type RetreatRepository struct {
	store database.Store
}

// NewRetreatRepository creates a new retreat repository
func NewRetreatRepository(store database.Store) *RetreatRepository {
	return &RetreatRepository{store: store}
}

// Create persists a new retreat and fills in its generated fields
func (r *RetreatRepository) Create(ctx context.Context, retreat *model.Retreat) error {
	retreat.CreatedOn = time.Now().UTC()
	if retreat.Focus == nil {
		retreat.Focus = []string{}
	}

	id, err := r.store.CreateDocument(ctx, model.CollectionRetreat, retreatDocument(retreat))
	if err != nil {
		return err
	}

	retreat.ID = id
	return nil
}

// List retrieves retreats matching the filter
func (r *RetreatRepository) List(ctx context.Context, filter database.Filter, limit int) ([]model.Retreat, error) {
	docs, err := r.store.GetDocuments(ctx, model.CollectionRetreat, filter, limit)
	if err != nil {
		return nil, err
	}

	retreats := make([]model.Retreat, 0, len(docs))
	for _, doc := range docs {
		retreats = append(retreats, parseRetreatDocument(doc))
	}
	return retreats, nil
}

func retreatDocument(retreat *model.Retreat) database.Document {
	return database.Document{
		"title":          retreat.Title,
		"description":    retreat.Description,
		"host_name":      retreat.HostName,
		"location_title": retreat.LocationTitle,
		"nature_type":    retreat.NatureType,
		"focus":          retreat.Focus,
		"duration_days":  retreat.DurationDays,
		"price_usd":      retreat.PriceUSD,
		"start_date":     retreat.StartDate,
		"image_url":      retreat.ImageURL,
		"created_on":     retreat.CreatedOn,
	}
}

func parseRetreatDocument(doc database.Document) model.Retreat {
	retreat := model.Retreat{
		ID:            getString(doc, "id"),
		Title:         getString(doc, "title"),
		Description:   getStringPtr(doc, "description"),
		HostName:      getString(doc, "host_name"),
		LocationTitle: getString(doc, "location_title"),
		NatureType:    getString(doc, "nature_type"),
		Focus:         getStringSlice(doc, "focus"),
		DurationDays:  getInt(doc, "duration_days"),
		PriceUSD:      getFloat(doc, "price_usd"),
		StartDate:     getStringPtr(doc, "start_date"),
		ImageURL:      getStringPtr(doc, "image_url"),
	}
	if t := getTime(doc, "created_on"); t != nil {
		retreat.CreatedOn = *t
	}
	return retreat
}
