// Package postgres provides the PostgreSQL parameter binder for condql.
package postgres

import (
	"github.com/zoobzio/condql/internal/render"
	"github.com/zoobzio/condql/internal/types"
)

// maxParams is the PostgreSQL limit on bind parameters per statement.
const maxParams = 65535

// Renderer implements the PostgreSQL dialect renderer.
type Renderer struct {
	dialect render.Dialect
}

// New creates a new PostgreSQL renderer.
func New() *Renderer {
	return &Renderer{dialect: render.Dialect{
		Name:        "postgres",
		Placeholder: render.Dollar,
		MaxParams:   maxParams,
	}}
}

// Render converts an expression to PostgreSQL SQL with $n placeholders.
func (r *Renderer) Render(e types.Expr) (*types.QueryResult, error) {
	return r.dialect.Render(e)
}
