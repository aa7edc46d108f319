package render

import (
	"reflect"
	"testing"

	"github.com/zoobzio/condql/internal/types"
)

func eq(col string, v any) types.Simple {
	return types.Simple{Column: col, Operator: types.EQ, Value: v}
}

func and(children ...types.Expr) types.Composite {
	return types.Composite{Logic: types.AND, Children: children}
}

func or(children ...types.Expr) types.Composite {
	return types.Composite{Logic: types.OR, Children: children}
}

func TestInline_Variants(t *testing.T) {
	tests := []struct {
		name     string
		expr     types.Expr
		expected string
	}{
		{
			name:     "simple",
			expr:     types.Simple{Column: "age", Operator: types.GT, Value: 18},
			expected: "age > 18",
		},
		{
			name:     "simple string",
			expr:     eq("name", "John"),
			expected: "name = 'John'",
		},
		{
			name:     "simple raw value",
			expr:     types.Simple{Column: "created_at", Operator: types.LT, Value: types.Raw("NOW()")},
			expected: "created_at < NOW()",
		},
		{
			name:     "null",
			expr:     types.Null{Column: "deleted_at", Operator: types.IsNull},
			expected: "deleted_at IS NULL",
		},
		{
			name:     "not null",
			expr:     types.Null{Column: "deleted_at", Operator: types.IsNotNull},
			expected: "deleted_at IS NOT NULL",
		},
		{
			name:     "in",
			expr:     types.In{Column: "status", Operator: types.IN, Values: []any{"active", "pending"}},
			expected: "status IN ('active', 'pending')",
		},
		{
			name:     "not in",
			expr:     types.In{Column: "id", Operator: types.NotIn, Values: []any{1, 2, 3}},
			expected: "id NOT IN (1, 2, 3)",
		},
		{
			name:     "like",
			expr:     types.Like{Column: "name", Operator: types.LIKE, Pattern: "%jo%"},
			expected: "name LIKE '%jo%'",
		},
		{
			name:     "or not like",
			expr:     types.Like{Column: "name", Operator: types.OrNotLike, Pattern: "a%"},
			expected: "name OR NOT LIKE 'a%'",
		},
		{
			name:     "between",
			expr:     types.Between{Subject: "age", Operator: types.BETWEEN, Lower: 18, Upper: 65},
			expected: "age BETWEEN 18 AND 65",
		},
		{
			name: "between columns",
			expr: types.Between{
				Subject:  types.Raw("NOW()"),
				Operator: types.NotBetween,
				Lower:    types.Raw("starts_at"),
				Upper:    types.Raw("ends_at"),
			},
			expected: "NOW() NOT BETWEEN starts_at AND ends_at",
		},
		{
			name:     "between strings",
			expr:     types.Between{Subject: "created_at", Operator: types.BETWEEN, Lower: "2024-01-01", Upper: "2024-12-31"},
			expected: "created_at BETWEEN '2024-01-01' AND '2024-12-31'",
		},
		{
			name:     "join",
			expr:     types.Join{Kind: types.LeftJoin, Table: "orders", Left: "users.id", Right: "orders.user_id"},
			expected: "LEFT JOIN orders ON users.id = orders.user_id",
		},
		{
			name:     "not",
			expr:     types.Not{Inner: eq("a", 1)},
			expected: "NOT (a = 1)",
		},
		{
			name:     "nested expression value",
			expr:     types.Simple{Column: "flag", Operator: types.EQ, Value: types.Not{Inner: eq("a", 1)}},
			expected: "flag = NOT (a = 1)",
		},
		{
			name:     "pointer variant",
			expr:     &types.Simple{Column: "age", Operator: types.GE, Value: 21},
			expected: "age >= 21",
		},
		{
			name:     "nil",
			expr:     nil,
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inline(tt.expr); got != tt.expected {
				t.Errorf("Inline() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestInline_Composite(t *testing.T) {
	a, b, c, d := eq("a", 1), eq("b", 2), eq("c", 3), eq("d", 4)

	tests := []struct {
		name     string
		expr     types.Expr
		expected string
	}{
		{"single child", and(a), "a = 1"},
		{"two children flat", and(a, b), "a = 1 AND b = 2"},
		{"three children", and(a, b, c), "a = 1 AND (b = 2 AND c = 3)"},
		{"four children", or(a, b, c, d), "a = 1 OR (b = 2 OR c = 3 OR d = 4)"},
		{"composite tail", and(a, or(b, c)), "a = 1 AND (b = 2 OR c = 3)"},
		{"composite inside longer tail", and(a, b, or(c, d)), "a = 1 AND (b = 2 AND c = 3 OR d = 4)"},
		{"composite head", and(or(a, b), c), "a = 1 OR b = 2 AND c = 3"},
		{"single-child composite tail", and(a, and(b)), "a = 1 AND (b = 2)"},
		{"not in tail", and(a, types.Not{Inner: b}), "a = 1 AND NOT (b = 2)"},
		{"empty", types.Composite{Logic: types.AND}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Inline(tt.expr); got != tt.expected {
				t.Errorf("Inline() = %q, want %q", got, tt.expected)
			}
		})
	}
}

func TestBind(t *testing.T) {
	expr := and(
		types.Simple{Column: "age", Operator: types.GT, Value: 18},
		types.In{Column: "status", Operator: types.IN, Values: []any{"active", nil, "pending"}},
		types.Simple{Column: "created_at", Operator: types.LT, Value: types.Raw("NOW()")},
	)

	tests := []struct {
		name        string
		placeholder Placeholder
		expected    string
	}{
		{"default", nil, "age > ? AND (status IN (?, NULL, ?) AND created_at < NOW())"},
		{"question", Question, "age > ? AND (status IN (?, NULL, ?) AND created_at < NOW())"},
		{"dollar", Dollar, "age > $1 AND (status IN ($2, NULL, $3) AND created_at < NOW())"},
		{"at", AtP, "age > @p1 AND (status IN (@p2, NULL, @p3) AND created_at < NOW())"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args := Bind(expr, tt.placeholder)
			if sql != tt.expected {
				t.Errorf("SQL = %q, want %q", sql, tt.expected)
			}
			want := []any{18, "active", "pending"}
			if !reflect.DeepEqual(args, want) {
				t.Errorf("Args = %v, want %v", args, want)
			}
		})
	}

	t.Run("no values", func(t *testing.T) {
		sql, args := Bind(types.Null{Column: "a", Operator: types.IsNull}, Question)
		if sql != "a IS NULL" {
			t.Errorf("SQL = %q", sql)
		}
		if args == nil || len(args) != 0 {
			t.Errorf("Args = %#v, want empty non-nil slice", args)
		}
	})

	t.Run("between subject is not bound", func(t *testing.T) {
		sql, args := Bind(types.Between{Subject: "age", Operator: types.BETWEEN, Lower: 18, Upper: 65}, Dollar)
		if sql != "age BETWEEN $1 AND $2" {
			t.Errorf("SQL = %q", sql)
		}
		if !reflect.DeepEqual(args, []any{18, 65}) {
			t.Errorf("Args = %v", args)
		}
	})
}
