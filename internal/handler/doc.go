// Package handler provides HTTP request handlers for the Sanctuary API.
//
// The handler package contains all HTTP endpoint implementations organized by
// domain. Each handler struct encapsulates the service it serves: the four
// catalog handlers (hosts, locations, retreats, messages), the recommendation
// handler, and the health handler for liveness and diagnostics.
//
// # Handler Pattern
//
// All handlers follow a consistent pattern:
//
//   - Constructor function (NewXxxHandler) accepts its service dependency
//   - Methods handle specific HTTP endpoints
//   - Request bodies are decoded strictly (unknown JSON fields rejected)
//   - Field validation happens here, before the service is invoked
//   - Service and store errors go through MapServiceError exactly once
//
// # Response Format
//
// Handlers use standardized response functions:
//
//   - WriteJSON: raw JSON response; list endpoints write bare arrays
//   - WriteCreated: 201 with {"id": ..., "status": "created"}
//   - WriteError: RFC 9457 Problem Details error response
//
// # Error Mapping
//
// MapServiceError is the single translation point from internal errors to
// HTTP: unknown filter fields become 400, an unavailable store becomes 503,
// read/write failures become 500 with truncated detail text. The diagnostics
// endpoint bypasses all of this and always answers 200.
//
// # Example Usage
//
//	handler := NewRetreatHandler(retreatService)
//	mux.HandleFunc("POST /api/retreats", handler.CreateRetreat)
//	mux.HandleFunc("GET /api/retreats", handler.ListRetreats)
package handler
