package condql

import (
	"reflect"
	"strings"

	"github.com/zoobzio/condql/internal/types"
)

// Filter removes operands with empty values from a condition literal.
// Hash entries with empty values are dropped, composite operands that filter
// to nothing are dropped, and a single-operator condition whose value is
// empty collapses to an empty List. Equality against nil is rewritten to
// IS NULL / IS NOT NULL. A column-first null test such as [col, "IS", nil]
// keeps its nil operand rather than being dropped. Scalars and Nodes pass
// through unchanged.
//
// Filter is idempotent.
func Filter(c Condition) Condition {
	switch cond := c.(type) {
	case types.Map:
		out := make(types.Map, 0, len(cond))
		for _, entry := range cond {
			if IsEmpty(entry.Value) {
				continue
			}
			out = append(out, entry)
		}
		return out
	case types.List:
		return filterList(cond)
	default:
		return c
	}
}

func filterList(list types.List) types.List {
	if len(list) == 0 {
		return list
	}

	op, _ := leadingOperator(list)
	switch op {
	case types.AND, types.OR, types.NOT:
		out := types.List{list[0]}
		for _, operand := range list[1:] {
			sub := Filter(operand)
			if IsEmpty(sub) {
				continue
			}
			out = append(out, sub)
		}
		if len(out) == 1 {
			return types.List{}
		}
		return out

	case types.BETWEEN, types.NotBetween:
		if len(list) >= 4 && (IsEmpty(list[2]) || IsEmpty(list[3])) {
			return types.List{}
		}
		return list

	case types.EQ, types.EqEq, types.NE:
		if len(list) >= 3 && isNull(list[2]) {
			rewrite := types.IsNull
			if op == types.NE {
				rewrite = types.IsNotNull
			}
			return types.List{types.Scalar{Value: string(rewrite)}, list[1], types.Scalar{}}
		}
		return list

	case types.IS, types.IsNot, types.IsNull, types.IsNotNull:
		return list

	default:
		if len(list) >= 3 && IsEmpty(list[2]) {
			// [column, "IS", nil] keeps its nil.
			if second, ok := stringAt(list, 1); ok && types.Canonical(second).IsNullTest() {
				return list
			}
			return types.List{}
		}
		return list
	}
}

// IsEmpty reports whether a condition literal carries no value: nil, a blank
// string, or an empty List, Map or slice.
func IsEmpty(c Condition) bool {
	switch cond := c.(type) {
	case nil:
		return true
	case types.Scalar:
		return emptyValue(cond.Value)
	case types.List:
		return len(cond) == 0
	case types.Map:
		return len(cond) == 0
	case types.Node:
		return cond.Expr == nil
	default:
		return false
	}
}

func emptyValue(v any) bool {
	switch val := v.(type) {
	case nil:
		return true
	case string:
		return strings.TrimSpace(val) == ""
	}
	if isSequence(v) {
		return reflect.ValueOf(v).Len() == 0
	}
	return false
}

func isNull(c Condition) bool {
	switch cond := c.(type) {
	case nil:
		return true
	case types.Scalar:
		return cond.Value == nil
	}
	return false
}
