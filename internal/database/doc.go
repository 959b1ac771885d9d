// Package database provides document-store connectivity for the Sanctuary API.
//
// The database package abstracts SurrealDB operations behind a generic
// document contract and provides a consistent interface for data access
// across the application.
//
// # Store Interface
//
// The Store interface defines core operations:
//
//	type Store interface {
//	    Connect(ctx context.Context) error
//	    Close() error
//	    Ping(ctx context.Context) error
//	    CreateDocument(ctx context.Context, collection string, data map[string]interface{}) (string, error)
//	    GetDocuments(ctx context.Context, collection string, filter Filter, limit int) ([]Document, error)
//	    ListCollections(ctx context.Context, limit int) ([]string, error)
//	}
//
// # Connection Management
//
// Connect to SurrealDB:
//
//	store := database.NewSurrealStore(database.Config{
//	    URL:       "ws://localhost:8000/rpc",
//	    Namespace: "sanctuary",
//	    Database:  "sanctuary",
//	    User:      "root",
//	    Password:  "secret",
//	})
//	err := store.Connect(ctx)
//
// An empty URL or a failed dial leaves the store in degraded mode: the
// object stays usable and every operation returns ErrUnavailable.
//
// # Error Types
//
// Standard error types for data operations:
//
//   - ErrUnavailable: No live connection to the store
//   - ErrWrite: Document insert failed
//   - ErrRead: Document query failed
//   - ErrInvalidFilter: Filter uses an unsafe field or unknown operator
//
// # Filters
//
// Filters are ordered conjunctions built from two operators:
//
//	f := database.Filter{}.
//	    Equals("nature_type", "forest").
//	    AtMost("price_usd", 1500.0)
//
// Field names are validated against a safe identifier pattern and rendered
// into the query text; values always travel as bound parameters.
package database
