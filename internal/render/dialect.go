package render

import "github.com/zoobzio/condql/internal/types"

// Dialect describes how a database binds parameters.
type Dialect struct {
	Placeholder Placeholder
	Name        string
	// MaxParams is the most bind arguments a single statement may carry. Zero means no limit.
	MaxParams int
}

// Render binds an expression using the dialect's placeholder style.
func (d Dialect) Render(e types.Expr) (*types.QueryResult, error) {
	if e == nil || types.Deref(e) == nil {
		return nil, types.NewInvalidConditionError("nothing to render")
	}

	sql, args := Bind(e, d.Placeholder)
	if d.MaxParams > 0 && len(args) > d.MaxParams {
		return nil, NewParamLimitError(d.Name, len(args), d.MaxParams)
	}

	return &types.QueryResult{SQL: sql, Args: args}, nil
}
