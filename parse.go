package condql

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/zoobzio/condql/internal/types"
)

// DefaultMaxDepth bounds literal nesting for parsing and decoding.
const DefaultMaxDepth = 64

// Parser resolves condition literals into expressions. It holds no state
// between calls and is safe for concurrent use.
type Parser struct {
	maxDepth int
}

// Option configures a Parser.
type Option func(*Parser)

// WithMaxDepth bounds how deeply a literal may nest. Values below 1 are ignored.
func WithMaxDepth(depth int) Option {
	return func(p *Parser) {
		if depth > 0 {
			p.maxDepth = depth
		}
	}
}

// NewParser creates a parser.
func NewParser(opts ...Option) *Parser {
	p := &Parser{maxDepth: DefaultMaxDepth}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// DefaultParser backs the package-level Parse and Build.
var DefaultParser = NewParser()

// Parse resolves a condition literal with the default parser.
func Parse(c Condition) (Expr, error) {
	return DefaultParser.Parse(c)
}

// Build filters empty operands out of a literal and parses what remains.
// A literal that filters to nothing returns ErrEmptyCondition.
func Build(c Condition) (Expr, error) {
	return DefaultParser.Build(c)
}

// ParseJoin resolves a join literal [kind, table, left, right] or a pre-built join.
func ParseJoin(c Condition) (Expr, error) {
	switch cond := c.(type) {
	case types.Node:
		if cond.Expr == nil {
			return nil, types.NewInvalidConditionError("join node has no expression")
		}
		return cond.Expr, nil
	case types.List:
		if len(cond) != 4 {
			return nil, types.ArityError{Operator: "JOIN", Want: "[kind, table, left, right]", Got: len(cond)}
		}
		kind, ok := stringAt(cond, 0)
		if !ok {
			return nil, types.NewInvalidConditionError("join kind must be a string")
		}
		operands := make([]any, 0, 3)
		for _, item := range cond[1:] {
			s, ok := item.(types.Scalar)
			if !ok {
				return nil, types.NewInvalidConditionError("join operands must be scalars, got %T", item)
			}
			operands = append(operands, s.Value)
		}
		return CreateJoin(kind, operands...)
	default:
		return nil, types.NewInvalidConditionError("join must be a list or expression, got %T", c)
	}
}

// Parse resolves a condition literal into an expression.
func (p *Parser) Parse(c Condition) (Expr, error) {
	return p.parse(c, 0)
}

// Build filters empty operands out of a literal and parses what remains.
func (p *Parser) Build(c Condition) (Expr, error) {
	filtered := Filter(c)
	if IsEmpty(filtered) {
		return nil, types.ErrEmptyCondition
	}
	return p.parse(filtered, 0)
}

func (p *Parser) parse(c Condition, depth int) (Expr, error) {
	if depth > p.maxDepth {
		return nil, types.NewInvalidConditionError("nesting exceeds maximum depth %d", p.maxDepth)
	}

	switch cond := c.(type) {
	case nil:
		return nil, types.NewInvalidConditionError("condition is null")
	case types.Node:
		if cond.Expr == nil {
			return nil, types.NewInvalidConditionError("node has no expression")
		}
		return cond.Expr, nil
	case types.Scalar:
		s, ok := cond.AsString()
		if !ok {
			return nil, types.NewInvalidConditionError("expected a string, list, map or expression, got %T", cond.Value)
		}
		// Bare column names compare against 1.
		trace("resolved bare column", log.Fields{"column": s})
		return Create(string(types.EQ), s, 1)
	case types.Map:
		if len(cond) == 0 {
			return nil, types.NewInvalidConditionError("hash condition is empty")
		}
		return p.parseHash(cond, depth)
	case types.List:
		if len(cond) == 0 {
			return nil, types.NewInvalidConditionError("positional condition is empty")
		}
		if op, ok := leadingOperator(cond); ok {
			if op.IsLogic() {
				return p.parseComposite(op, cond[1:], depth)
			}
			if op == types.NOT && len(cond) == 2 {
				return p.parseNot(cond[1], depth)
			}
		}
		return p.parseSingle(cond, depth)
	default:
		return nil, types.NewInvalidConditionError("unsupported condition type %T", c)
	}
}

// parseHash turns each entry into an equality joined by AND. An entry whose
// value is a list becomes an IN test instead: {status: [a, b]} is status IN ('a', 'b').
func (p *Parser) parseHash(m types.Map, depth int) (Expr, error) {
	children := make([]any, 0, len(m))
	for _, entry := range m {
		value, err := p.operand(entry.Value, depth+1)
		if err != nil {
			return nil, fmt.Errorf("hash key '%s': %w", entry.Key, err)
		}

		op := types.EQ
		if _, isList := entry.Value.(types.List); isList || isSequence(value) {
			op = types.IN
		}

		child, err := Create(string(op), entry.Key, value)
		if err != nil {
			return nil, err
		}
		children = append(children, child)
	}

	trace("resolved hash condition", log.Fields{"entries": len(children)})
	if len(children) == 1 {
		return children[0].(Expr), nil
	}
	return Create(string(types.AND), children...)
}

// parseComposite parses every operand of an AND/OR literal.
// A single surviving operand is returned without a wrapper.
func (p *Parser) parseComposite(op types.Operator, items []types.Condition, depth int) (Expr, error) {
	survivors := make([]any, 0, len(items))
	for _, item := range items {
		sub, err := p.parse(item, depth+1)
		if err != nil {
			return nil, err
		}
		if sub != nil {
			survivors = append(survivors, sub)
		}
	}

	trace("resolved composite condition", log.Fields{"operator": op, "operands": len(survivors)})
	switch len(survivors) {
	case 0:
		return nil, types.NewInvalidConditionError("no conditions inside '%s'", op)
	case 1:
		return survivors[0].(Expr), nil
	default:
		return Create(string(op), survivors...)
	}
}

func (p *Parser) parseNot(item types.Condition, depth int) (Expr, error) {
	inner, err := p.parse(item, depth+1)
	if err != nil {
		return nil, err
	}
	return Create(string(types.NOT), inner)
}

// parseSingle resolves [column, value], [OP, a, b], [column, op, value] and [OP, operands...].
func (p *Parser) parseSingle(list types.List, depth int) (Expr, error) {
	operands, err := p.operands(list, depth)
	if err != nil {
		return nil, err
	}

	switch n := len(list); {
	case n == 2:
		trace("resolved column/value pair", log.Fields{"column": operands[0]})
		return Create(string(types.EQ), operands[0], operands[1])

	case n == 3:
		if first, ok := stringAt(list, 0); ok && types.Canonical(first).IsSupported() {
			trace("resolved operator-first condition", log.Fields{"operator": first})
			return Create(first, operands[1], operands[2])
		}
		op, ok := stringAt(list, 1)
		if !ok {
			return nil, types.NewInvalidConditionError("operator in [column, operator, value] must be a string, got %T", operands[1])
		}
		trace("resolved column-operator-value condition", log.Fields{"operator": op})
		return Create(op, operands[0], operands[2])

	case n > 3:
		op, ok := stringAt(list, 0)
		if !ok {
			return nil, types.NewInvalidConditionError("leading operator must be a string, got %T", operands[0])
		}
		trace("resolved operator-first condition", log.Fields{"operator": op, "operands": n - 1})
		return Create(op, operands[1:]...)

	default:
		return nil, types.NewInvalidConditionError("positional condition has %d element(s), need at least 2", n)
	}
}

// operands converts every list element to a factory operand.
func (p *Parser) operands(list types.List, depth int) ([]any, error) {
	out := make([]any, len(list))
	for i, item := range list {
		v, err := p.operand(item, depth+1)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return out, nil
}

// operand converts a literal element into a value the factory accepts.
func (p *Parser) operand(c types.Condition, depth int) (any, error) {
	if depth > p.maxDepth {
		return nil, types.NewInvalidConditionError("nesting exceeds maximum depth %d", p.maxDepth)
	}

	switch cond := c.(type) {
	case nil:
		return nil, nil
	case types.Scalar:
		return cond.Value, nil
	case types.Node:
		return cond.Expr, nil
	case types.List:
		values := make([]any, len(cond))
		for i, item := range cond {
			v, err := p.operand(item, depth+1)
			if err != nil {
				return nil, err
			}
			values[i] = v
		}
		return values, nil
	case types.Map:
		return nil, types.NewInvalidConditionError("hash condition cannot be used as an operand")
	default:
		return nil, types.NewInvalidConditionError("unsupported operand type %T", c)
	}
}

// leadingOperator returns the canonical first element when it is a string.
func leadingOperator(list types.List) (types.Operator, bool) {
	s, ok := stringAt(list, 0)
	if !ok {
		return "", false
	}
	return types.Canonical(s), true
}

// stringAt returns the i-th element when it is a string scalar.
func stringAt(list types.List, i int) (string, bool) {
	if i >= len(list) {
		return "", false
	}
	s, ok := list[i].(types.Scalar)
	if !ok {
		return "", false
	}
	return s.AsString()
}
