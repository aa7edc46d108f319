// Package mariadb provides the MariaDB parameter binder for condql.
package mariadb

import (
	"github.com/zoobzio/condql/internal/render"
	"github.com/zoobzio/condql/internal/types"
)

// maxParams is the MariaDB limit on bind parameters per statement.
const maxParams = 65535

// Renderer implements the MariaDB dialect renderer.
type Renderer struct {
	dialect render.Dialect
}

// New creates a new MariaDB renderer.
func New() *Renderer {
	return &Renderer{dialect: render.Dialect{
		Name:        "mariadb",
		Placeholder: render.Question,
		MaxParams:   maxParams,
	}}
}

// Render converts an expression to MariaDB SQL with ? placeholders.
func (r *Renderer) Render(e types.Expr) (*types.QueryResult, error) {
	return r.dialect.Render(e)
}
