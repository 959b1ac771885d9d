package service

import (
	"fmt"
	"sort"

	"github.com/sanctuaryofnature/api/internal/database"
)

// buildEqualityFilter turns list query parameters into a store filter.
// Every key must be in the collection's allowed set; unknown keys are
// rejected rather than ignored so a typo like natur_type cannot silently
// return the whole collection. Keys with empty values are treated as absent.
// Keys are processed in sorted order to keep generated queries stable.
func buildEqualityFilter(params map[string]string, allowed map[string]bool, collection string) (database.Filter, error) {
	keys := make([]string, 0, len(params))
	for key := range params {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	filter := database.Filter{}
	for _, key := range keys {
		if !allowed[key] {
			return nil, fmt.Errorf("%w: %q is not filterable on %s", ErrUnknownFilter, key, collection)
		}
		if params[key] == "" {
			continue
		}
		filter = filter.Equals(key, params[key])
	}
	return filter, nil
}
