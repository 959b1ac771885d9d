package model

import "time"

// CollectionHost is the document collection for hosts.
const CollectionHost = "host"

// Host represents a retreat host or facilitator
type Host struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Bio         *string   `json:"bio,omitempty"`
	Specialties []string  `json:"specialties"` // meditation, breathwork, yoga, sound, ...
	Website     *string   `json:"website,omitempty"`
	Location    *string   `json:"location,omitempty"` // primary base location
	CreatedOn   time.Time `json:"created_on"`
}

// CreateHostRequest represents a request to register a host
type CreateHostRequest struct {
	Name        string   `json:"name"`
	Bio         *string  `json:"bio,omitempty"`
	Specialties []string `json:"specialties,omitempty"`
	Website     *string  `json:"website,omitempty"`
	Location    *string  `json:"location,omitempty"`
}

// Validate checks if the create request is valid
func (r *CreateHostRequest) Validate() []FieldError {
	var errors []FieldError

	if r.Name == "" {
		errors = append(errors, FieldError{Field: "name", Message: "name is required"})
	}

	return errors
}
