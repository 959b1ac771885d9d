package model

import "time"

// CollectionLocation is the document collection for locations.
const CollectionLocation = "location"

// NatureType constants. Conventional vocabulary only; any string is accepted.
const (
	NatureDesert   = "desert"
	NatureForest   = "forest"
	NatureMountain = "mountain"
	NatureOcean    = "ocean"
	NatureJungle   = "jungle"
	NatureMixed    = "mixed"
)

// Location represents a sanctuary or place where retreats happen
type Location struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Region      string    `json:"region"` // country or region
	NatureType  string    `json:"nature_type"`
	Description *string   `json:"description,omitempty"`
	ImageURL    *string   `json:"image_url,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
}

// CreateLocationRequest represents a request to register a location
type CreateLocationRequest struct {
	Title       string  `json:"title"`
	Region      string  `json:"region"`
	NatureType  string  `json:"nature_type"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"image_url,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateLocationRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Title == "" {
		errors = append(errors, FieldError{Field: "title", Message: "title is required"})
	}
	if r.Region == "" {
		errors = append(errors, FieldError{Field: "region", Message: "region is required"})
	}
	if r.NatureType == "" {
		errors = append(errors, FieldError{Field: "nature_type", Message: "nature_type is required"})
	}

	return errors
}
