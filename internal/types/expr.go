package types

// Expr is a renderable SQL boolean sub-expression.
// The marker method is unexported so the set of variants is closed:
// Simple, Null, In, Like, Between, Join, Not and Composite.
type Expr interface {
	isExpr()
}

// Raw is emitted verbatim wherever a value is expected (column references,
// SQL functions). It is never quoted and never bound as a parameter.
type Raw string

// String returns the raw SQL text.
func (r Raw) String() string {
	return string(r)
}

// Simple is a binary comparison: column op value.
type Simple struct {
	Value    any
	Column   string
	Operator Operator
}

// Null is an IS NULL / IS NOT NULL test.
type Null struct {
	Column   string
	Operator Operator
}

// In is a set-membership test.
type In struct {
	Column   string
	Operator Operator
	Values   []any
}

// Like is a pattern match.
type Like struct {
	Pattern  any
	Column   string
	Operator Operator
}

// Between is a range test. Subject, Lower and Upper may be columns,
// Raw fragments, nested expressions or literal values.
type Between struct {
	Subject  any
	Lower    any
	Upper    any
	Operator Operator
}

// Join is a join-on clause: KIND table ON left = right.
type Join struct {
	Kind  JoinType
	Table string
	Left  string
	Right string
}

// Not negates a single expression.
type Not struct {
	Inner Expr
}

// Composite combines one or more expressions with AND or OR.
type Composite struct {
	Logic    Operator
	Children []Expr
}

func (Simple) isExpr()    {}
func (Null) isExpr()      {}
func (In) isExpr()        {}
func (Like) isExpr()      {}
func (Between) isExpr()   {}
func (Join) isExpr()      {}
func (Not) isExpr()       {}
func (Composite) isExpr() {}

// Deref unwraps pointers to expression variants. A nil pointer yields nil.
func Deref(e Expr) Expr {
	switch p := e.(type) {
	case *Simple:
		return derefOrNil(p)
	case *Null:
		return derefOrNil(p)
	case *In:
		return derefOrNil(p)
	case *Like:
		return derefOrNil(p)
	case *Between:
		return derefOrNil(p)
	case *Join:
		return derefOrNil(p)
	case *Not:
		return derefOrNil(p)
	case *Composite:
		return derefOrNil(p)
	}
	return e
}

func derefOrNil[T Expr](p *T) Expr {
	if p == nil {
		return nil
	}
	return *p
}
