// Package database provides the document-store abstraction layer for the
// Sanctuary API.
//
// This package defines the Store interface that abstracts SurrealDB
// operations, allowing for clean separation between domain logic and data
// access. The store is constructed once at startup and injected into
// repositories; there is no package-level connection state.
//
// # Interface Design
//
// The Store interface works on whole documents keyed by collection name:
//   - CreateDocument: insert one document, returning its plain string id
//   - GetDocuments: conjunction-filtered listing with a result cap
//   - ListCollections: collection names, for diagnostics
//
// # Degraded Mode
//
// A store that was never connected (no connection string configured, or the
// dial failed) is still a valid object: every operation returns
// ErrUnavailable and nothing panics. The HTTP layer maps this to 503 so the
// process keeps serving even with no database behind it.
//
// # Error Handling
//
// Standard errors are defined for common failure cases:
//   - ErrUnavailable: no live connection to the store
//   - ErrWrite: insert or serialization failure
//   - ErrRead: query or decoding failure
//   - ErrInvalidFilter: filter uses an unsafe field name or unknown operator
//
// Use errors.Is() to check error types:
//
//	if errors.Is(err, database.ErrUnavailable) {
//	    // Degrade gracefully
//	}
//
// # Usage Example
//
//	store := database.NewSurrealStore(cfg)
//	if err := store.Connect(ctx); err != nil {
//	    slog.Warn("store offline", "error", err)
//	}
//	defer store.Close()
//
//	id, err := store.CreateDocument(ctx, "retreat", doc)
package database

import (
	"context"
	"errors"
)

// DefaultLimit caps result sets when the caller does not supply a positive limit.
const DefaultLimit = 100

// Standard errors for document-store operations.
// Use errors.Is() to check these error types in calling code.
var (
	// ErrUnavailable indicates there is no live connection to the store.
	ErrUnavailable = errors.New("document store unavailable")

	// ErrWrite indicates a document insert or serialization failure.
	ErrWrite = errors.New("document write failed")

	// ErrRead indicates a query execution or decoding failure.
	ErrRead = errors.New("document read failed")

	// ErrInvalidFilter indicates a filter referencing an unsafe field name or
	// an unknown comparison operator.
	ErrInvalidFilter = errors.New("invalid document filter")
)

// Document is a schemaless record as stored. The store rewrites the
// store-internal identifier into a plain string "id" field on the way out.
type Document map[string]interface{}

// Store defines the interface for document-store operations
type Store interface {
	// Connection management
	Connect(ctx context.Context) error
	Close() error
	Ping(ctx context.Context) error

	// CreateDocument inserts one document into the named collection and
	// returns the new record id as a plain string.
	CreateDocument(ctx context.Context, collection string, data map[string]interface{}) (string, error)

	// GetDocuments returns documents matching every filter condition,
	// capped at limit (DefaultLimit when limit <= 0).
	GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)

	// ListCollections returns up to limit existing collection names, sorted.
	ListCollections(ctx context.Context, limit int) ([]string, error)
}

// Config holds document-store configuration
type Config struct {
	// URL is the full endpoint connection string (e.g. ws://localhost:8000/rpc).
	// Empty means the store is unconfigured and stays in degraded mode.
	URL       string
	Namespace string
	Database  string
	User      string
	Password  string
}
