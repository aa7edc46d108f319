package types

// Condition is a decoded condition literal.
// Variants: Scalar, Map, List and Node.
type Condition interface {
	isCondition()
}

// Scalar is a single value: string, number, bool, nil or Raw.
type Scalar struct {
	Value any
}

// Entry is one key/value pair of a hash-form condition.
type Entry struct {
	Value Condition
	Key   string
}

// Map is a hash-form condition. Entry order is significant.
type Map []Entry

// List is a positional condition: operator-first or column-operator-value.
type List []Condition

// Node wraps an already built expression.
type Node struct {
	Expr Expr
}

func (Scalar) isCondition() {}
func (Map) isCondition()    {}
func (List) isCondition()   {}
func (Node) isCondition()   {}

// AsString returns the scalar as a string and whether it was one.
func (s Scalar) AsString() (string, bool) {
	str, ok := s.Value.(string)
	return str, ok
}

// Keys returns the map keys in entry order.
func (m Map) Keys() []string {
	keys := make([]string, 0, len(m))
	for _, e := range m {
		keys = append(keys, e.Key)
	}
	return keys
}
