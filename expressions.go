package condql

import "github.com/zoobzio/condql/internal/types"

// Helper functions for building expressions directly, without a literal.
// Each TryX returns the factory error; X panics on it.

// TryC creates a comparison (or any operator the factory accepts) on a column.
func TryC(col any, op string, value any) (Expr, error) {
	return Create(op, col, value)
}

// C creates a comparison on a column.
func C(col any, op string, value any) Expr {
	return must(TryC(col, op, value))
}

// Eq creates an equality, redirecting a nil value to IS NULL.
func Eq(col any, value any) Expr {
	return must(Create(string(types.EQ), col, value))
}

// TryIn creates an IN condition.
func TryIn(col any, values any) (Expr, error) {
	return Create(string(types.IN), col, values)
}

// In creates an IN condition.
func In(col any, values any) Expr {
	return must(TryIn(col, values))
}

// TryLike creates a LIKE condition.
func TryLike(col any, pattern any) (Expr, error) {
	return Create(string(types.LIKE), col, pattern)
}

// Like creates a LIKE condition.
func Like(col any, pattern any) Expr {
	return must(TryLike(col, pattern))
}

// TryBetween creates a BETWEEN condition.
func TryBetween(subject, lower, upper any) (Expr, error) {
	return Create(string(types.BETWEEN), subject, lower, upper)
}

// Between creates a BETWEEN condition.
func Between(subject, lower, upper any) Expr {
	return must(TryBetween(subject, lower, upper))
}

// Null creates an IS NULL condition.
func Null(col string) Expr {
	return types.Null{Column: col, Operator: types.IsNull}
}

// NotNull creates an IS NOT NULL condition.
func NotNull(col string) Expr {
	return types.Null{Column: col, Operator: types.IsNotNull}
}

// TryAnd creates an AND composite, returning an error if invalid.
func TryAnd(exprs ...Expr) (Expr, error) {
	return Create(string(types.AND), anys(exprs)...)
}

// And creates an AND composite.
func And(exprs ...Expr) Expr {
	return must(TryAnd(exprs...))
}

// TryOr creates an OR composite, returning an error if invalid.
func TryOr(exprs ...Expr) (Expr, error) {
	return Create(string(types.OR), anys(exprs)...)
}

// Or creates an OR composite.
func Or(exprs ...Expr) Expr {
	return must(TryOr(exprs...))
}

// TryNot negates an expression, returning an error if invalid.
func TryNot(e Expr) (Expr, error) {
	return Create(string(types.NOT), e)
}

// Not negates an expression.
func Not(e Expr) Expr {
	return must(TryNot(e))
}

// TryJoin creates a join-on clause, returning an error if invalid.
func TryJoin(kind JoinType, table, left, right string) (Expr, error) {
	return CreateJoin(string(kind), table, left, right)
}

// Join creates a join-on clause.
func Join(kind JoinType, table, left, right string) Expr {
	return must(TryJoin(kind, table, left, right))
}

func anys(exprs []Expr) []any {
	out := make([]any, len(exprs))
	for i, e := range exprs {
		out[i] = e
	}
	return out
}

func must(e Expr, err error) Expr {
	if err != nil {
		panic(err)
	}
	return e
}
