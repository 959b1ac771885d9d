// Package repository implements the data access layer for the Sanctuary API.
//
// The repository package translates between model structs and the schemaless
// documents held by the store. Each repository struct handles the operations
// for a specific collection.
//
// # Repository Pattern
//
// All repositories follow a consistent pattern:
//
//   - Constructor function (NewXxxRepository) accepts a database.Store
//   - Create stamps created_on, persists the document, and fills in the
//     generated record ID
//   - List applies a database.Filter and maps documents back to models
//   - Document field access goes through the typed helpers in helpers.go
//
// # Store Abstraction
//
// Repositories accept a database.Store interface, allowing:
//
//   - A degraded store (never connected) to flow through untouched; its
//     ErrUnavailable surfaces unchanged for the HTTP boundary to map
//   - Easy testing with fake implementations
//
// # Document Mapping
//
// SurrealDB returns CBOR-decoded maps whose value types vary by column
// (integers may arrive as int64 or uint64, datetimes as CustomDateTime).
// The getXxx helpers normalize all of those into plain Go values. Optional
// model fields are pointers; absent document keys parse to nil. List-valued
// fields always parse to a non-nil slice so they marshal as [] rather
// than null.
//
// # Example Usage
//
//	repo := NewRetreatRepository(store)
//	filter := database.Filter{}.Equals("nature_type", "forest")
//	retreats, err := repo.List(ctx, filter, 0)
//	if err != nil {
//	    if errors.Is(err, database.ErrUnavailable) {
//	        // Store is in degraded mode
//	    }
//	    return err
//	}
package repository
