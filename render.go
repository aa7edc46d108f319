package condql

import (
	"github.com/zoobzio/condql/internal/render"
	"github.com/zoobzio/condql/internal/types"
)

// QueryResult contains rendered SQL and its bind arguments in placeholder order.
type QueryResult = types.QueryResult

// UnsupportedFeatureError indicates a feature not supported by a dialect.
type UnsupportedFeatureError = render.UnsupportedFeatureError

// Renderer binds an expression for a specific database.
// The postgres, sqlite, mssql and mariadb packages implement it.
type Renderer interface {
	Render(e Expr) (*QueryResult, error)
}

// Render converts an expression to SQL with values embedded as literals.
// A nil expression renders as the empty string.
func Render(e Expr) string {
	return render.Inline(e)
}

// Clause prefixes a rendered expression with a clause keyword such as WHERE or HAVING.
func Clause(keyword string, e Expr) string {
	return keyword + " " + Render(e)
}

// Bind converts an expression to SQL with `?` placeholders.
// Raw fragments and nested expressions are rendered in place, never bound.
func Bind(e Expr) *QueryResult {
	sql, args := render.Bind(e, render.Question)
	return &QueryResult{SQL: sql, Args: args}
}

// FormatValue converts a scalar into its inline SQL literal text.
func FormatValue(v any) string {
	return render.FormatValue(v)
}
