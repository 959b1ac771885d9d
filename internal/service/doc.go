// Package service implements the business logic layer for the Sanctuary API.
//
// The service package contains the catalog logic for hosts, locations,
// retreats, and community messages, plus the recommendation engine that
// matches retreats to seeker preferences. Services are the primary
// abstraction between HTTP handlers and data access.
//
// # Service Pattern
//
// All services follow a consistent pattern:
//
//   - Constructor function (NewXxxService) accepts a config struct with repository dependencies
//   - Methods implement business operations; request field validation has
//     already happened at the handler boundary
//   - Errors are returned as sentinel errors or wrapped errors for context
//   - Context is passed through for cancellation
//
// # Repository Interfaces
//
// Services define their own repository interfaces, allowing:
//
//   - Easy mocking for unit tests
//   - Decoupling from specific database implementations
//   - Clear contracts for data access requirements
//
// # List Filtering
//
// Each collection enumerates the query parameters it accepts. A parameter
// outside that set is rejected with ErrUnknownFilter rather than silently
// ignored, so a misspelled filter cannot return the whole collection:
//
//	var locationFilters = map[string]bool{
//	    "region":      true,
//	    "nature_type": true,
//	}
//
// # Example Usage
//
//	service := NewRecommendationService(RecommendationServiceConfig{
//	    RetreatRepo: retreatRepository,
//	})
//	rec, err := service.Recommend(ctx, &model.Preference{
//	    Energy:          "calm",
//	    PreferredNature: "forest",
//	})
package service
