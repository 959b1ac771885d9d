package database

import (
	"errors"
	"testing"
)

// ============================================================================
// Filter Builder Tests
// ============================================================================

func TestFilter_Equals_AppendsCondition(t *testing.T) {
	t.Parallel()

	f := Filter{}.Equals("nature_type", "forest")

	if len(f) != 1 {
		t.Fatalf("expected 1 condition, got %d", len(f))
	}
	if f[0].Field != "nature_type" || f[0].Op != OpEquals || f[0].Value != "forest" {
		t.Errorf("unexpected condition: %+v", f[0])
	}
}

func TestFilter_Chaining_PreservesOrder(t *testing.T) {
	t.Parallel()

	f := Filter{}.
		Equals("nature_type", "ocean").
		AtMost("duration_days", 10).
		AtMost("price_usd", 500.0)

	if len(f) != 3 {
		t.Fatalf("expected 3 conditions, got %d", len(f))
	}
	if f[1].Op != OpAtMost || f[1].Field != "duration_days" {
		t.Errorf("expected duration_days at-most second, got %+v", f[1])
	}
}

// ============================================================================
// renderWhere Tests
// ============================================================================

func TestRenderWhere_EmptyFilter_ReturnsEmptyClause(t *testing.T) {
	t.Parallel()

	vars := map[string]interface{}{}
	where, err := renderWhere(Filter{}, vars)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if where != "" {
		t.Errorf("expected empty clause, got %q", where)
	}
	if len(vars) != 0 {
		t.Errorf("expected no bound vars, got %v", vars)
	}
}

func TestRenderWhere_SingleEquality(t *testing.T) {
	t.Parallel()

	vars := map[string]interface{}{}
	where, err := renderWhere(Filter{}.Equals("topic", "rideshare"), vars)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if where != "topic = $f0" {
		t.Errorf("expected 'topic = $f0', got %q", where)
	}
	if vars["f0"] != "rideshare" {
		t.Errorf("expected f0 bound to 'rideshare', got %v", vars["f0"])
	}
}

func TestRenderWhere_Conjunction_BindsEveryValue(t *testing.T) {
	t.Parallel()

	vars := map[string]interface{}{}
	f := Filter{}.
		Equals("nature_type", "desert").
		AtMost("duration_days", 7).
		AtMost("price_usd", 0.0)

	where, err := renderWhere(f, vars)

	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	expected := "nature_type = $f0 AND duration_days <= $f1 AND price_usd <= $f2"
	if where != expected {
		t.Errorf("expected %q, got %q", expected, where)
	}
	if vars["f1"] != 7 {
		t.Errorf("expected f1 bound to 7, got %v", vars["f1"])
	}
	if vars["f2"] != 0.0 {
		t.Errorf("expected f2 bound to 0.0, got %v", vars["f2"])
	}
}

func TestRenderWhere_UnsafeFieldName_Rejected(t *testing.T) {
	t.Parallel()

	unsafe := []string{
		"nature_type; DROP TABLE retreat",
		"price-usd",
		"Price",
		"1field",
		"",
	}

	for _, field := range unsafe {
		vars := map[string]interface{}{}
		_, err := renderWhere(Filter{}.Equals(field, "x"), vars)
		if !errors.Is(err, ErrInvalidFilter) {
			t.Errorf("expected ErrInvalidFilter for field %q, got %v", field, err)
		}
	}
}

func TestRenderWhere_UnknownOperator_Rejected(t *testing.T) {
	t.Parallel()

	vars := map[string]interface{}{}
	f := Filter{{Field: "price_usd", Op: Op(">"), Value: 10}}

	_, err := renderWhere(f, vars)
	if !errors.Is(err, ErrInvalidFilter) {
		t.Errorf("expected ErrInvalidFilter for unknown operator, got %v", err)
	}
}
