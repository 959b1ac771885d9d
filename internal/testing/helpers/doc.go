// Package helpers provides test utility functions for the Sanctuary API.
//
// The helpers package contains common test utilities for building requests,
// asserting on responses, and pointer creation.
//
// # Request Building
//
// Construct JSON requests fluently:
//
//	req := helpers.NewRequest(t, http.MethodPost, "/api/hosts").
//	    WithBody(model.CreateHostRequest{Name: "River Dawn"}).
//	    Build()
//
// # Assertion Helpers
//
// Common response assertions:
//
//	helpers.AssertStatus(t, rr, http.StatusCreated)
//	helpers.AssertProblemDetails(t, rr, 422, model.ErrCodeValidation)
//	helpers.AssertValidationError(t, rr, "title")
//
// # Pointer Helpers
//
// Create pointers to literal values:
//
//	bio := helpers.StringPtr("test")
//	days := helpers.IntPtr(7)
//	price := helpers.FloatPtr(450)
package helpers
