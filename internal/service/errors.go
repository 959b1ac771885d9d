package service

import "errors"

// Centralized service layer errors.
// All errors returned by service methods are defined here for consistency
// and to make error handling in handlers predictable.

// ===== Catalog Errors =====
var (
	// ErrUnknownFilter is returned when a list request carries a query
	// parameter that is not in the collection's filterable set. Callers wrap
	// it with the offending field name.
	ErrUnknownFilter = errors.New("unknown filter field")
)
