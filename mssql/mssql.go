// Package mssql provides the SQL Server parameter binder for condql.
package mssql

import (
	"github.com/zoobzio/condql/internal/render"
	"github.com/zoobzio/condql/internal/types"
)

// maxParams is the SQL Server limit on bind parameters per statement.
const maxParams = 2100

// Renderer implements the SQL Server dialect renderer.
type Renderer struct {
	dialect render.Dialect
}

// New creates a new SQL Server renderer.
func New() *Renderer {
	return &Renderer{dialect: render.Dialect{
		Name:        "mssql",
		Placeholder: render.AtP,
		MaxParams:   maxParams,
	}}
}

// Render converts an expression to SQL Server SQL with @pN placeholders.
func (r *Renderer) Render(e types.Expr) (*types.QueryResult, error) {
	return r.dialect.Render(e)
}
