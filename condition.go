package condql

import (
	"fmt"
	"reflect"

	"github.com/zoobzio/condql/internal/types"
)

// L creates a positional condition literal.
// Items that are already conditions are kept, expressions become Nodes,
// everything else becomes a Scalar.
func L(items ...any) List {
	list := make(List, 0, len(items))
	for _, item := range items {
		list = append(list, lit(item))
	}
	return list
}

// M creates a hash-form condition literal from alternating keys and values.
// It panics on an odd argument count or a non-string key.
func M(pairs ...any) Map {
	if len(pairs)%2 != 0 {
		panic(fmt.Errorf("M requires key/value pairs, got %d arguments", len(pairs)))
	}
	m := make(Map, 0, len(pairs)/2)
	for i := 0; i < len(pairs); i += 2 {
		key, ok := pairs[i].(string)
		if !ok {
			panic(fmt.Errorf("M key %d must be a string, got %T", i/2, pairs[i]))
		}
		m = append(m, Entry{Key: key, Value: lit(pairs[i+1])})
	}
	return m
}

// S creates a scalar condition literal.
func S(v any) Scalar {
	return Scalar{Value: v}
}

// N wraps an expression as a condition literal.
func N(e Expr) Node {
	return Node{Expr: e}
}

func lit(v any) Condition {
	switch val := v.(type) {
	case types.Condition:
		return val
	case types.Expr:
		return types.Node{Expr: val}
	}
	return types.Scalar{Value: v}
}

// isSequence reports whether v is a slice or array of values ([]byte excluded).
func isSequence(v any) bool {
	if v == nil {
		return false
	}
	if _, ok := v.([]byte); ok {
		return false
	}
	kind := reflect.TypeOf(v).Kind()
	return kind == reflect.Slice || kind == reflect.Array
}

// toValues normalizes any slice or array into []any. Scalars become a single element.
func toValues(v any) []any {
	if !isSequence(v) {
		return []any{v}
	}
	rv := reflect.ValueOf(v)
	values := make([]any, rv.Len())
	for i := range values {
		values[i] = rv.Index(i).Interface()
	}
	return values
}
