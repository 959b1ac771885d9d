package handler

import (
	"errors"

	"github.com/sanctuaryofnature/api/internal/database"
	"github.com/sanctuaryofnature/api/internal/model"
	"github.com/sanctuaryofnature/api/internal/service"
)

// maxErrorDetail bounds how much raw store error text is echoed in a
// response detail.
const maxErrorDetail = 200

// MapServiceError converts a service or store error to a ProblemDetails
// response. This is the single place where storage and domain failures become
// HTTP status codes, ensuring consistent responses across the API.
func MapServiceError(err error) *model.ProblemDetails {
	if err == nil {
		return nil
	}

	// A ProblemDetails constructed closer to the failure passes through.
	var problem *model.ProblemDetails
	if errors.As(err, &problem) {
		return problem
	}

	switch {
	// ===== Filter Errors → 400 =====
	case errors.Is(err, service.ErrUnknownFilter):
		return model.NewBadRequestError(err.Error())

	// ===== Store Errors → 503 / 500 =====
	case errors.Is(err, database.ErrUnavailable):
		return model.NewStorageUnavailableError()
	case errors.Is(err, database.ErrWrite),
		errors.Is(err, database.ErrRead):
		return model.NewStorageError(truncateDetail(err.Error(), maxErrorDetail))

	// An invalid filter reaching the store is a programming error, not
	// client input; the registry should have rejected it upstream.
	case errors.Is(err, database.ErrInvalidFilter):
		return model.NewInternalError("")

	// ===== Default → 500 =====
	default:
		return model.NewInternalError("")
	}
}

// truncateDetail caps diagnostic text so storage internals cannot flood a
// response body.
func truncateDetail(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
