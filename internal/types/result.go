package types

// QueryResult contains rendered SQL and its bind arguments in placeholder order.
type QueryResult struct {
	SQL  string
	Args []any
}
