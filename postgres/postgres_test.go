package postgres

import (
	"errors"
	"reflect"
	"testing"

	"github.com/zoobzio/condql/internal/render"
	"github.com/zoobzio/condql/internal/types"
)

func TestNew(t *testing.T) {
	r := New()
	if r == nil {
		t.Fatal("New() returned nil")
	}
}

func TestRender_Placeholders(t *testing.T) {
	r := New()
	expr := types.Composite{Logic: types.AND, Children: []types.Expr{
		types.Simple{Column: "age", Operator: types.GE, Value: 18},
		types.In{Column: "status", Operator: types.IN, Values: []any{"active", "pending"}},
		types.Null{Column: "deleted_at", Operator: types.IsNull},
	}}

	result, err := r.Render(expr)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	expected := "age >= $1 AND (status IN ($2, $3) AND deleted_at IS NULL)"
	if result.SQL != expected {
		t.Errorf("SQL = %q, want %q", result.SQL, expected)
	}
	if !reflect.DeepEqual(result.Args, []any{18, "active", "pending"}) {
		t.Errorf("Args = %v", result.Args)
	}
}

func TestRender_RawIsNotBound(t *testing.T) {
	r := New()
	result, err := r.Render(types.Between{
		Subject:  types.Raw("CURRENT_TIMESTAMP"),
		Operator: types.BETWEEN,
		Lower:    types.Raw("starts_at"),
		Upper:    types.Raw("ends_at"),
	})
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	if result.SQL != "CURRENT_TIMESTAMP BETWEEN starts_at AND ends_at" {
		t.Errorf("SQL = %q", result.SQL)
	}
	if len(result.Args) != 0 {
		t.Errorf("Args = %v, want none", result.Args)
	}
}

func TestRender_ParameterLimit(t *testing.T) {
	r := New()

	values := make([]any, 65535+1)
	for i := range values {
		values[i] = i
	}

	_, err := r.Render(types.In{Column: "id", Operator: types.IN, Values: values})
	var ufErr render.UnsupportedFeatureError
	if !errors.As(err, &ufErr) {
		t.Fatalf("expected UnsupportedFeatureError, got %v", err)
	}
	if ufErr.Dialect != "postgres" {
		t.Errorf("Dialect = %q, want %q", ufErr.Dialect, "postgres")
	}

	if _, err := r.Render(types.In{Column: "id", Operator: types.IN, Values: values[:65535]}); err != nil {
		t.Errorf("Render() at the limit error = %v", err)
	}
}

func TestRender_Nil(t *testing.T) {
	r := New()
	if _, err := r.Render(nil); err == nil {
		t.Fatal("expected error for nil expression")
	}
}
