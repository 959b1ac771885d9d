package model

import (
	"fmt"
	"time"
)

// CollectionRetreat is the document collection for retreats.
const CollectionRetreat = "retreat"

// Retreat duration bounds (days)
const (
	MinRetreatDuration = 1
	MaxRetreatDuration = 60
)

// Retreat represents a bookable retreat offering
type Retreat struct {
	ID            string    `json:"id"`
	Title         string    `json:"title"`
	Description   *string   `json:"description,omitempty"`
	HostName      string    `json:"host_name"`       // symbolic reference, not checked
	LocationTitle string    `json:"location_title"`  // symbolic reference, not checked
	NatureType    string    `json:"nature_type"`
	Focus         []string  `json:"focus"` // meditation, detox, silence, ...
	DurationDays  int       `json:"duration_days"`
	PriceUSD      float64   `json:"price_usd"`
	StartDate     *string   `json:"start_date,omitempty"` // ISO date string
	ImageURL      *string   `json:"image_url,omitempty"`
	CreatedOn     time.Time `json:"created_on"`
}

// CreateRetreatRequest represents a request to publish a retreat
type CreateRetreatRequest struct {
	Title         string   `json:"title"`
	Description   *string  `json:"description,omitempty"`
	HostName      string   `json:"host_name"`
	LocationTitle string   `json:"location_title"`
	NatureType    string   `json:"nature_type"`
	Focus         []string `json:"focus,omitempty"`
	DurationDays  *int     `json:"duration_days"`
	PriceUSD      *float64 `json:"price_usd"`
	StartDate     *string  `json:"start_date,omitempty"`
	ImageURL      *string  `json:"image_url,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateRetreatRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	}
	if r.HostName == "" {
		errors = append(errors, FieldError{Field: "host_name", Message: "host_name is required"})
	}
	if r.LocationTitle == "" {
		errors = append(errors, FieldError{Field: "location_title", Message: "location_title is required"})
	}
	if r.NatureType == "" {
		errors = append(errors, FieldError{Field: "nature_type", Message: "nature_type is required"})
	}
	if r.DurationDays == nil {
		errors = append(errors, FieldError{Field: "duration_days", Message: "duration_days is required"})
	} else if *r.DurationDays < MinRetreatDuration || *r.DurationDays > MaxRetreatDuration {
		errors = append(errors, FieldError{
			Field:   "duration_days",
			Message: fmt.Sprintf("duration_days must be between %d and %d", MinRetreatDuration, MaxRetreatDuration),
		})
	}
	if r.PriceUSD == nil {
		errors = append(errors, FieldError{Field: "price_usd", Message: "price_usd is required"})
	} else if *r.PriceUSD < 0 {
		errors = append(errors, FieldError{Field: "price_usd", Message: "price_usd must be zero or greater"})
	}

	return errors
}
