package condql

import (
	"fmt"

	"github.com/zoobzio/condql/internal/types"
)

// Create validates an operator and its operands and builds the matching expression.
// The operator is case-insensitive. Operands are columns, values, value lists
// or, for AND/OR/NOT, already built expressions.
func Create(operator string, operands ...any) (Expr, error) {
	op := types.Canonical(operator)
	if !op.IsSupported() {
		return nil, types.UnsupportedOperatorError{Operator: string(op)}
	}

	switch op {
	case types.AND, types.OR:
		return createComposite(op, operands)
	case types.NOT:
		return createNot(operands)
	case types.BETWEEN, types.NotBetween:
		return createBetween(op, operands)
	case types.IN, types.NotIn:
		return createIn(op, operands)
	case types.LIKE, types.NotLike, types.OrLike, types.OrNotLike:
		return createLike(op, operands)
	case types.IS, types.IsNot, types.IsNull, types.IsNotNull:
		return createNull(op, operands)
	default:
		return createSimple(op, operands)
	}
}

// CreateJoin builds a join-on clause from [table, leftColumn, rightColumn].
func CreateJoin(kind string, operands ...any) (Expr, error) {
	jt := types.CanonicalJoin(kind)
	if !jt.IsSupported() {
		return nil, types.UnsupportedOperatorError{Operator: string(jt)}
	}
	if len(operands) != 3 {
		return nil, types.ArityError{Operator: string(jt), Want: "3 operands: [table, left, right]", Got: len(operands)}
	}

	parts := make([]string, 3)
	for i, operand := range operands {
		s, err := column(string(jt), operand)
		if err != nil {
			return nil, err
		}
		parts[i] = s
	}

	return types.Join{Kind: jt, Table: parts[0], Left: parts[1], Right: parts[2]}, nil
}

func createComposite(op types.Operator, operands []any) (Expr, error) {
	if len(operands) == 0 {
		return nil, types.ArityError{Operator: string(op), Want: "at least one sub-condition", Got: 0}
	}

	children := make([]Expr, 0, len(operands))
	for i, operand := range operands {
		e, ok := operand.(types.Expr)
		if !ok || types.Deref(e) == nil {
			return nil, types.NewInvalidConditionError("operand %d of '%s' must be a built expression, got %T", i, op, operand)
		}
		children = append(children, e)
	}

	return types.Composite{Logic: op, Children: children}, nil
}

func createNot(operands []any) (Expr, error) {
	if len(operands) != 1 {
		return nil, types.ArityError{Operator: string(types.NOT), Want: "exactly one sub-condition", Got: len(operands)}
	}
	inner, ok := operands[0].(types.Expr)
	if !ok || types.Deref(inner) == nil {
		return nil, types.ArityError{Operator: string(types.NOT), Want: "one built expression as operand", Got: len(operands)}
	}
	return types.Not{Inner: inner}, nil
}

func createBetween(op types.Operator, operands []any) (Expr, error) {
	if len(operands) != 3 {
		return nil, types.ArityError{Operator: string(op), Want: "3 operands: [column, lower, upper]", Got: len(operands)}
	}
	if operands[0] == nil {
		return nil, types.NewInvalidConditionError("'%s' subject must not be null", op)
	}
	return types.Between{
		Subject:  operands[0],
		Operator: op,
		Lower:    operands[1],
		Upper:    operands[2],
	}, nil
}

func createIn(op types.Operator, operands []any) (Expr, error) {
	if len(operands) != 2 {
		return nil, types.ArityError{Operator: string(op), Want: "2 operands: [column, values]", Got: len(operands)}
	}
	col, err := column(string(op), operands[0])
	if err != nil {
		return nil, err
	}
	values := toValues(operands[1])
	if len(values) == 0 {
		return nil, types.UnsupportedValueError{Operator: string(op), Value: operands[1], Hint: "value list is empty"}
	}
	return types.In{Column: col, Operator: op, Values: values}, nil
}

func createLike(op types.Operator, operands []any) (Expr, error) {
	if len(operands) != 2 {
		return nil, types.ArityError{Operator: string(op), Want: "2 operands: [column, pattern]", Got: len(operands)}
	}
	col, err := column(string(op), operands[0])
	if err != nil {
		return nil, err
	}
	return types.Like{Column: col, Operator: op, Pattern: operands[1]}, nil
}

func createNull(op types.Operator, operands []any) (Expr, error) {
	if len(operands) < 1 {
		return nil, types.ArityError{Operator: string(op), Want: "at least 1 operand: [column]", Got: 0}
	}
	col, err := column(string(op), operands[0])
	if err != nil {
		return nil, err
	}

	// Bare IS / IS NOT only support a NULL right-hand side for now.
	if op == types.IS || op == types.IsNot {
		if len(operands) < 2 || operands[1] != nil {
			var value any
			if len(operands) >= 2 {
				value = operands[1]
			}
			return nil, types.UnsupportedValueError{Operator: string(op), Value: value, Hint: "only NULL is supported as the second operand"}
		}
		op += " NULL"
	}

	return types.Null{Column: col, Operator: op}, nil
}

func createSimple(op types.Operator, operands []any) (Expr, error) {
	if len(operands) != 2 {
		return nil, types.ArityError{Operator: string(op), Want: "2 operands: [column, value]", Got: len(operands)}
	}

	if operands[1] == nil {
		switch op {
		case types.EQ, types.EqEq, types.EqStrict:
			return createNull(types.IsNull, operands[:1])
		case types.NE, types.NeStrict, types.NEAnsi:
			return createNull(types.IsNotNull, operands[:1])
		default:
			return nil, types.UnsupportedValueError{Operator: string(op), Value: nil, Hint: "operator cannot be used with NULL"}
		}
	}

	col, err := column(string(op), operands[0])
	if err != nil {
		return nil, err
	}

	switch op {
	case types.EqEq, types.EqStrict:
		op = types.EQ
	case types.NE, types.NeStrict:
		op = types.NEAnsi
	}

	return types.Simple{Column: col, Operator: op, Value: operands[1]}, nil
}

// column converts a column operand to its SQL text.
func column(op string, v any) (string, error) {
	switch c := v.(type) {
	case nil:
		return "", types.NewInvalidConditionError("operator '%s' requires a column, got null", op)
	case string:
		return c, nil
	case types.Raw:
		return string(c), nil
	case fmt.Stringer:
		return c.String(), nil
	case types.Expr:
		return "", types.NewInvalidConditionError("operator '%s' requires a column, got expression %T", op, c)
	default:
		return fmt.Sprint(c), nil
	}
}
