// Package model defines domain entities and data structures for the Sanctuary API.
//
// The model package contains all struct definitions for domain objects, request
// types, and error definitions. Models are used across all layers of the
// application.
//
// # Domain Entities
//
// Core domain entities include:
//
//   - Host: Retreat host or facilitator
//   - Location: Sanctuary or place where retreats happen
//   - Retreat: Bookable retreat offering
//   - Message: Community board message
//   - Preference: Quiz/recommendation input (never persisted)
//
// Each persisted entity lives in its own document collection, named by the
// lowercase singular of the entity (CollectionHost = "host", ...). Entities
// reference each other symbolically (host_name, location_title); referential
// integrity is deliberately not checked.
//
// # JSON Serialization
//
// All models use json struct tags for API serialization:
//
//	type Message struct {
//	    ID      string  `json:"id"`
//	    Author  string  `json:"author"`
//	    Content string  `json:"content"`
//	    Topic   *string `json:"topic,omitempty"`
//	}
//
// # Validation
//
// Create-request types carry Validate() []FieldError returning every field
// problem at once. Range bounds are package constants:
//
//	const (
//	    MinRetreatDuration = 1
//	    MaxRetreatDuration = 60
//	)
//
// Vocabulary constants (nature types, message topics, energies) document
// conventions only; no validator enforces them.
//
// # Error Types
//
// RFC 9457 Problem Details errors are defined in errors.go:
//
//	type ProblemDetails struct {
//	    Type    string    `json:"type"`
//	    Title   string    `json:"title"`
//	    Status  int       `json:"status"`
//	    Detail  string    `json:"detail"`
//	}
package model
