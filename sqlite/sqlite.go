// Package sqlite provides the SQLite parameter binder for condql.
package sqlite

import (
	"github.com/zoobzio/condql/internal/render"
	"github.com/zoobzio/condql/internal/types"
)

// maxParams is the SQLite limit on bind parameters per statement.
const maxParams = 32766

// Renderer implements the SQLite dialect renderer.
type Renderer struct {
	dialect render.Dialect
}

// New creates a new SQLite renderer.
func New() *Renderer {
	return &Renderer{dialect: render.Dialect{
		Name:        "sqlite",
		Placeholder: render.Question,
		MaxParams:   maxParams,
	}}
}

// Render converts an expression to SQLite SQL with ? placeholders.
func (r *Renderer) Render(e types.Expr) (*types.QueryResult, error) {
	return r.dialect.Render(e)
}
