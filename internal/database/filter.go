package database

import (
	"fmt"
	"regexp"
	"strings"
)

// Op is a filter comparison operator.
type Op string

const (
	// OpEquals requires exact equality on the field.
	OpEquals Op = "="
	// OpAtMost requires the field to be less than or equal to the value.
	OpAtMost Op = "<="
)

// Condition constrains a single field.
type Condition struct {
	Field string
	Op    Op
	Value interface{}
}

// Filter is an ordered conjunction of conditions. An empty filter matches
// every document.
type Filter []Condition

// Equals appends an equality condition.
func (f Filter) Equals(field string, value interface{}) Filter {
	return append(f, Condition{Field: field, Op: OpEquals, Value: value})
}

// AtMost appends a less-than-or-equal condition.
func (f Filter) AtMost(field string, value interface{}) Filter {
	return append(f, Condition{Field: field, Op: OpAtMost, Value: value})
}

// identPattern matches safe SurrealQL identifiers. Field and collection names
// are rendered into query text, so anything else is rejected outright; values
// always travel as bound parameters.
var identPattern = regexp.MustCompile(`^[a-z][a-z0-9_]*$`)

// renderWhere builds the WHERE clause for a filter, binding each value as
// $f0, $f1, ... in vars. Returns the empty string for an empty filter.
func renderWhere(filter Filter, vars map[string]interface{}) (string, error) {
	if len(filter) == 0 {
		return "", nil
	}

	clauses := make([]string, 0, len(filter))
	for i, cond := range filter {
		if !identPattern.MatchString(cond.Field) {
			return "", fmt.Errorf("%w: unsafe field name %q", ErrInvalidFilter, cond.Field)
		}
		switch cond.Op {
		case OpEquals, OpAtMost:
		default:
			return "", fmt.Errorf("%w: unknown operator %q", ErrInvalidFilter, cond.Op)
		}

		param := fmt.Sprintf("f%d", i)
		clauses = append(clauses, fmt.Sprintf("%s %s $%s", cond.Field, cond.Op, param))
		vars[param] = cond.Value
	}

	return strings.Join(clauses, " AND "), nil
}
