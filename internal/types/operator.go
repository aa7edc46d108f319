package types

import "strings"

// Operator represents a canonical (upper-cased) condition operator.
type Operator string

const (
	// Logical operators.
	AND Operator = "AND"
	OR  Operator = "OR"
	NOT Operator = "NOT"

	// Range operators.
	BETWEEN    Operator = "BETWEEN"
	NotBetween Operator = "NOT BETWEEN"

	// Set membership operators.
	IN    Operator = "IN"
	NotIn Operator = "NOT IN"

	// Pattern operators.
	LIKE      Operator = "LIKE"
	NotLike   Operator = "NOT LIKE"
	OrLike    Operator = "OR LIKE"
	OrNotLike Operator = "OR NOT LIKE"

	// NULL tests.
	IS        Operator = "IS"
	IsNot     Operator = "IS NOT"
	IsNull    Operator = "IS NULL"
	IsNotNull Operator = "IS NOT NULL"

	// Basic comparison operators.
	EQ       Operator = "="
	EqEq     Operator = "=="
	EqStrict Operator = "==="
	NE       Operator = "!="
	NEAnsi   Operator = "<>"
	NeStrict Operator = "!=="
	GT       Operator = ">"
	LT       Operator = "<"
	GE       Operator = ">="
	LE       Operator = "<="
)

// supportedOperators is the fixed operator vocabulary. Read-only after init.
var supportedOperators = map[Operator]struct{}{
	AND: {}, OR: {}, NOT: {},
	BETWEEN: {}, NotBetween: {},
	IN: {}, NotIn: {},
	LIKE: {}, NotLike: {}, OrLike: {}, OrNotLike: {},
	IS: {}, IsNot: {}, IsNull: {}, IsNotNull: {},
	EQ: {}, EqEq: {}, EqStrict: {}, NE: {}, NEAnsi: {}, NeStrict: {},
	GT: {}, LT: {}, GE: {}, LE: {},
}

// Canonical trims, upper-cases and collapses inner whitespace of an operator token.
func Canonical(op string) Operator {
	return Operator(collapse(op))
}

// IsSupported reports whether op belongs to the operator vocabulary.
func (op Operator) IsSupported() bool {
	_, ok := supportedOperators[op]
	return ok
}

// IsLogic reports whether op combines sub-conditions (AND, OR).
func (op Operator) IsLogic() bool {
	return op == AND || op == OR
}

// IsNullTest reports whether op is one of the IS family.
func (op Operator) IsNullTest() bool {
	switch op {
	case IS, IsNot, IsNull, IsNotNull:
		return true
	}
	return false
}

// SupportedOperators returns the vocabulary in declaration order.
func SupportedOperators() []Operator {
	return []Operator{
		AND, OR, NOT,
		BETWEEN, NotBetween,
		IN, NotIn,
		LIKE, NotLike, OrLike, OrNotLike,
		IS, IsNot, IsNull, IsNotNull,
		EQ, EqEq, EqStrict, NE, NEAnsi, NeStrict,
		GT, LT, GE, LE,
	}
}

// JoinType represents the kind of SQL join.
type JoinType string

const (
	PlainJoin      JoinType = "JOIN"
	InnerJoin      JoinType = "INNER JOIN"
	LeftJoin       JoinType = "LEFT JOIN"
	RightJoin      JoinType = "RIGHT JOIN"
	FullJoin       JoinType = "FULL JOIN"
	LeftOuterJoin  JoinType = "LEFT OUTER JOIN"
	RightOuterJoin JoinType = "RIGHT OUTER JOIN"
	FullOuterJoin  JoinType = "FULL OUTER JOIN"
	CrossJoin      JoinType = "CROSS JOIN"
)

var supportedJoins = map[JoinType]struct{}{
	PlainJoin: {}, InnerJoin: {}, LeftJoin: {}, RightJoin: {}, FullJoin: {},
	LeftOuterJoin: {}, RightOuterJoin: {}, FullOuterJoin: {}, CrossJoin: {},
}

// CanonicalJoin trims, upper-cases and collapses inner whitespace of a join kind.
func CanonicalJoin(kind string) JoinType {
	return JoinType(collapse(kind))
}

func collapse(s string) string {
	return strings.Join(strings.Fields(strings.ToUpper(s)), " ")
}

// IsSupported reports whether the join kind is known.
func (j JoinType) IsSupported() bool {
	_, ok := supportedJoins[j]
	return ok
}
