// Package condql turns loosely-typed condition literals into SQL boolean expressions.
//
// A condition literal is one of four shapes: a bare string, a key/value map,
// a positional list, or an already built expression. The package normalizes
// any of them into a closed expression tree and renders it to a SQL fragment.
//
// # Basic Usage
//
//	expr, err := condql.Parse(condql.L("age", ">", 18))
//	if err != nil {
//		return err
//	}
//	condql.Render(expr) // age > 18
//
// Hash form is an implicit AND of equalities:
//
//	expr, _ := condql.Parse(condql.M("name", "John", "status", "active"))
//	condql.Render(expr) // name = 'John' AND status = 'active'
//
// Operator-first and column-operator-value lists are both accepted:
//
//	condql.L("IN", "status", condql.L("active", "pending"))
//	condql.L("status", "IN", condql.L("active", "pending"))
//	condql.L("BETWEEN", "age", 18, 65)
//	condql.L("AND", condql.L("a", "=", 1), condql.L("b", "=", 2))
//
// # Decoding
//
// Literals arriving as YAML or JSON are decoded with FromYAML and FromJSON,
// which keep the key order of hash-form conditions. FromValue converts
// plain Go values.
//
// # Empty Values
//
// Filter prunes operands that are nil, blank strings or empty collections
// before parsing, so optional search inputs can be passed straight through:
//
//	expr, err := condql.Build(condql.M("name", "John", "age", nil))
//	condql.Render(expr) // name = 'John'
//
// # Output Format
//
// Render embeds values as literals. String values are quoted but never
// escaped, so Render must not be used with untrusted input. Bind and the
// dialect packages (postgres, sqlite, mssql, mariadb) produce placeholders
// and an ordered argument list instead.
package condql

import "github.com/zoobzio/condql/internal/types"

// Expr is a renderable SQL boolean sub-expression.
type Expr = types.Expr

// Expression variants.
type (
	SimpleExpr  = types.Simple
	NullExpr    = types.Null
	InExpr      = types.In
	LikeExpr    = types.Like
	BetweenExpr = types.Between
	JoinExpr    = types.Join
	NotExpr     = types.Not
	Composite   = types.Composite
)

// Raw is a fragment emitted verbatim wherever a value is expected.
type Raw = types.Raw

// Operator represents a canonical condition operator.
type Operator = types.Operator

// Re-export operator constants for public API.
const (
	AND = types.AND
	OR  = types.OR
	NOT = types.NOT

	BETWEEN    = types.BETWEEN
	NotBetween = types.NotBetween

	IN    = types.IN
	NotIn = types.NotIn

	LIKE      = types.LIKE
	NotLike   = types.NotLike
	OrLike    = types.OrLike
	OrNotLike = types.OrNotLike

	IS        = types.IS
	IsNot     = types.IsNot
	IsNull    = types.IsNull
	IsNotNull = types.IsNotNull

	EQ       = types.EQ
	EqEq     = types.EqEq
	EqStrict = types.EqStrict
	NE       = types.NE
	NEAnsi   = types.NEAnsi
	NeStrict = types.NeStrict
	GT       = types.GT
	LT       = types.LT
	GE       = types.GE
	LE       = types.LE
)

// JoinType represents the kind of SQL join.
type JoinType = types.JoinType

// Re-export join constants for public API.
const (
	PlainJoin      = types.PlainJoin
	InnerJoin      = types.InnerJoin
	LeftJoin       = types.LeftJoin
	RightJoin      = types.RightJoin
	FullJoin       = types.FullJoin
	LeftOuterJoin  = types.LeftOuterJoin
	RightOuterJoin = types.RightOuterJoin
	FullOuterJoin  = types.FullOuterJoin
	CrossJoin      = types.CrossJoin
)

// Condition is a decoded condition literal.
type Condition = types.Condition

// Condition literal variants.
type (
	Scalar = types.Scalar
	Map    = types.Map
	Entry  = types.Entry
	List   = types.List
	Node   = types.Node
)

// Error types.
type (
	InvalidConditionError    = types.InvalidConditionError
	ArityError               = types.ArityError
	UnsupportedOperatorError = types.UnsupportedOperatorError
	UnsupportedValueError    = types.UnsupportedValueError
)

// ErrEmptyCondition is returned by Build when a literal filters to nothing.
var ErrEmptyCondition = types.ErrEmptyCondition

// IsOperator reports whether s (case-insensitive) is in the operator vocabulary.
func IsOperator(s string) bool {
	return types.Canonical(s).IsSupported()
}

// SupportedOperators returns the operator vocabulary.
func SupportedOperators() []Operator {
	return types.SupportedOperators()
}
