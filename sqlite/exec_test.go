package sqlite_test

import (
	"database/sql"
	"testing"

	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"github.com/zoobzio/condql"
	"github.com/zoobzio/condql/sqlite"
)

func openUsers(t *testing.T) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	_, err = db.Exec(`CREATE TABLE users (
		id INTEGER PRIMARY KEY,
		name TEXT NOT NULL,
		age INTEGER,
		status TEXT,
		active INTEGER,
		deleted_at TEXT
	)`)
	require.NoError(t, err)

	_, err = db.Exec(`INSERT INTO users (id, name, age, status, active, deleted_at) VALUES
		(1, 'Alice', 30, 'active', 1, NULL),
		(2, 'Bob', 17, 'pending', 1, NULL),
		(3, 'Carol', 45, 'banned', 0, '2024-01-01'),
		(4, 'Dave', 65, 'active', 1, NULL),
		(5, 'John', NULL, 'active', 0, NULL)`)
	require.NoError(t, err)

	return db
}

func ids(t *testing.T, db *sql.DB, where string, args ...any) []int {
	t.Helper()

	rows, err := db.Query("SELECT id FROM users WHERE "+where+" ORDER BY id", args...)
	require.NoError(t, err, where)
	defer rows.Close()

	var out []int
	for rows.Next() {
		var id int
		require.NoError(t, rows.Scan(&id))
		out = append(out, id)
	}
	require.NoError(t, rows.Err())
	return out
}

func TestExecute(t *testing.T) {
	db := openUsers(t)

	tests := []struct {
		name    string
		literal condql.Condition
		want    []int
	}{
		{
			name:    "comparison",
			literal: condql.L("age", ">", 40),
			want:    []int{3, 4},
		},
		{
			name:    "hash form",
			literal: condql.M("status", "active", "active", 1),
			want:    []int{1, 4},
		},
		{
			name:    "hash list becomes IN",
			literal: condql.M("status", condql.L("pending", "banned")),
			want:    []int{2, 3},
		},
		{
			name:    "between",
			literal: condql.L("BETWEEN", "age", 18, 64),
			want:    []int{1, 3},
		},
		{
			name:    "null redirect",
			literal: condql.L("=", "deleted_at", nil),
			want:    []int{1, 2, 4, 5},
		},
		{
			name:    "like",
			literal: condql.L("name", "LIKE", "%o%"),
			want:    []int{2, 3, 5},
		},
		{
			name: "nested composite",
			literal: condql.L("OR",
				condql.L("age", "<", 18),
				condql.L("AND", condql.L("status", "=", "active"), condql.L("age", ">=", 65)),
			),
			want: []int{2, 4},
		},
		{
			name:    "not",
			literal: condql.L("NOT", condql.L("status", "=", "active")),
			want:    []int{2, 3},
		},
		{
			name:    "empty values filtered",
			literal: condql.M("name", "John", "age", nil, "status", ""),
			want:    []int{5},
		},
	}

	r := sqlite.New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := condql.Build(tt.literal)
			require.NoError(t, err)

			bound, err := r.Render(expr)
			require.NoError(t, err)
			require.Equal(t, tt.want, ids(t, db, bound.SQL, bound.Args...), bound.SQL)

			// Inline rendering selects the same rows.
			require.Equal(t, tt.want, ids(t, db, condql.Render(expr)), condql.Render(expr))
		})
	}
}
