// Package render turns expression trees into SQL text.
package render

import (
	"fmt"
	"strings"

	"github.com/zoobzio/condql/internal/types"
)

// Placeholder returns the bind token for the n-th argument (1-based).
type Placeholder func(n int) string

// Question is the `?` placeholder used by MySQL, MariaDB and SQLite.
func Question(int) string { return "?" }

// Dollar is the `$n` placeholder used by PostgreSQL.
func Dollar(n int) string { return fmt.Sprintf("$%d", n) }

// AtP is the `@pn` placeholder used by SQL Server.
func AtP(n int) string { return fmt.Sprintf("@p%d", n) }

// renderContext carries the binding mode and collected arguments for one render call.
type renderContext struct {
	placeholder Placeholder
	args        []any
}

// Inline renders an expression with values embedded as literals.
func Inline(e types.Expr) string {
	ctx := &renderContext{}
	return ctx.expr(e)
}

// Bind renders an expression with values replaced by placeholders.
// Args are returned in textual order.
func Bind(e types.Expr, placeholder Placeholder) (string, []any) {
	if placeholder == nil {
		placeholder = Question
	}
	ctx := &renderContext{placeholder: placeholder, args: []any{}}
	sql := ctx.expr(e)
	return sql, ctx.args
}

// value renders a value operand, binding it when the context is parameterized.
func (ctx *renderContext) value(v any) string {
	switch val := v.(type) {
	case types.Raw:
		return string(val)
	case types.Expr:
		return ctx.expr(val)
	case nil:
		return "NULL"
	}
	if ctx.placeholder == nil {
		return FormatValue(v)
	}
	ctx.args = append(ctx.args, v)
	return ctx.placeholder(len(ctx.args))
}

// subject renders a column-like operand: strings are identifiers, not literals.
func (ctx *renderContext) subject(v any) string {
	switch val := v.(type) {
	case string:
		return val
	case types.Raw:
		return string(val)
	case types.Expr:
		return ctx.expr(val)
	}
	return ctx.value(v)
}

func (ctx *renderContext) expr(e types.Expr) string {
	switch c := types.Deref(e).(type) {
	case nil:
		return ""
	case types.Simple:
		return fmt.Sprintf("%s %s %s", c.Column, c.Operator, ctx.value(c.Value))
	case types.Null:
		return fmt.Sprintf("%s %s", c.Column, c.Operator)
	case types.In:
		values := make([]string, 0, len(c.Values))
		for _, v := range c.Values {
			values = append(values, ctx.value(v))
		}
		return fmt.Sprintf("%s %s (%s)", c.Column, c.Operator, strings.Join(values, ", "))
	case types.Like:
		return fmt.Sprintf("%s %s %s", c.Column, c.Operator, ctx.value(c.Pattern))
	case types.Between:
		return fmt.Sprintf("%s %s %s AND %s",
			ctx.subject(c.Subject), c.Operator, ctx.value(c.Lower), ctx.value(c.Upper))
	case types.Join:
		return fmt.Sprintf("%s %s ON %s = %s", c.Kind, c.Table, c.Left, c.Right)
	case types.Not:
		return "NOT (" + ctx.expr(c.Inner) + ")"
	case types.Composite:
		return ctx.composite(c)
	default:
		// Unreachable: Expr is sealed.
		return ""
	}
}

// composite renders the head child on its own and the tail after the operator.
// A single non-composite tail child stays flat; anything else is parenthesized.
// A composite in the tail contributes its children joined by its own operator.
func (ctx *renderContext) composite(c types.Composite) string {
	if len(c.Children) == 0 {
		return ""
	}

	first := ctx.expr(c.Children[0])
	if len(c.Children) == 1 {
		return first
	}

	tail := c.Children[1:]
	parts := make([]string, 0, len(tail))
	for _, child := range tail {
		if sub, ok := types.Deref(child).(types.Composite); ok {
			parts = append(parts, ctx.flatten(sub))
			continue
		}
		parts = append(parts, ctx.expr(child))
	}

	op := " " + string(c.Logic) + " "
	joined := strings.Join(parts, op)

	if len(tail) == 1 {
		if _, ok := types.Deref(tail[0]).(types.Composite); !ok {
			return first + op + joined
		}
	}
	return first + op + "(" + joined + ")"
}

// flatten joins a composite's children with its operator, no outer grouping.
func (ctx *renderContext) flatten(c types.Composite) string {
	parts := make([]string, 0, len(c.Children))
	for _, child := range c.Children {
		parts = append(parts, ctx.expr(child))
	}
	return strings.Join(parts, " "+string(c.Logic)+" ")
}
