package condql

import (
	"errors"
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// Direction represents sort direction in ORDER BY.
type Direction string

// Sort directions.
const (
	ASC  Direction = "ASC"
	DESC Direction = "DESC"
)

// Builder assembles a SELECT statement around rendered condition fragments.
// Clauses are joined as text; WHERE fragments keep the order they were added in.
type Builder struct {
	parser        *Parser
	err           error
	validate      func(Expr) error
	validateTable func(string) error
	limit         *int
	table         string
	columns       []string
	joins         []string
	wheres        []string
	groupBy       []string
	orderBy       []string
	offset        int
	distinct      bool
}

// Select creates a new query builder. No columns selects *.
func Select(columns ...string) *Builder {
	return &Builder{
		parser:  DefaultParser,
		columns: columns,
	}
}

// GetError returns the first error recorded by the builder.
func (b *Builder) GetError() error {
	return b.err
}

// WithParser sets the parser used for WHERE conditions.
func (b *Builder) WithParser(p *Parser) *Builder {
	if p != nil {
		b.parser = p
	}
	return b
}

// From sets the table to select from.
func (b *Builder) From(table string) *Builder {
	if b.err != nil {
		return b
	}
	if strings.TrimSpace(table) == "" {
		b.err = fmt.Errorf("From() requires a table name")
		return b
	}
	if b.validateTable != nil {
		if err := b.validateTable(table); err != nil {
			b.err = err
			return b
		}
	}
	b.table = table
	return b
}

// Distinct adds DISTINCT to the SELECT clause.
func (b *Builder) Distinct() *Builder {
	b.distinct = true
	return b
}

// Where adds a condition. It is joined with AND when conditions already exist.
// Empty values are filtered out first; a condition that filters to nothing is skipped.
func (b *Builder) Where(c Condition) *Builder {
	return b.addWhere(AND, c)
}

// AndWhere adds a condition joined with AND.
func (b *Builder) AndWhere(c Condition) *Builder {
	return b.addWhere(AND, c)
}

// OrWhere adds a condition joined with OR.
func (b *Builder) OrWhere(c Condition) *Builder {
	return b.addWhere(OR, c)
}

var comparePrefix = regexp.MustCompile(`^(<>|>=|>|<=|<|=)`)

// AndFilterCompare adds [op, column, value] where op is read from the front
// of value (for example ">=18") or defaults to defaultOp. A blank value adds nothing.
func (b *Builder) AndFilterCompare(column, value, defaultOp string) *Builder {
	op := defaultOp
	if m := comparePrefix.FindString(value); m != "" {
		op = m
		value = value[len(m):]
	}
	if strings.TrimSpace(value) == "" {
		return b
	}
	return b.addWhere(AND, L(op, column, value))
}

func (b *Builder) addWhere(logic Operator, c Condition) *Builder {
	if b.err != nil {
		return b
	}

	expr, err := b.parser.Build(c)
	if errors.Is(err, ErrEmptyCondition) {
		return b
	}
	if err != nil {
		b.err = fmt.Errorf("where: %w", err)
		return b
	}
	if err := b.check(expr); err != nil {
		b.err = fmt.Errorf("where: %w", err)
		return b
	}

	fragment := Render(expr)
	if len(b.wheres) > 0 {
		fragment = string(logic) + " " + fragment
	}
	b.wheres = append(b.wheres, fragment)
	return b
}

func (b *Builder) check(e Expr) error {
	if b.validate == nil {
		return nil
	}
	return b.validate(e)
}

// Join adds a join of the given kind on left = right.
func (b *Builder) Join(kind JoinType, table, left, right string) *Builder {
	if b.err != nil {
		return b
	}
	expr, err := TryJoin(kind, table, left, right)
	if err != nil {
		b.err = fmt.Errorf("join: %w", err)
		return b
	}
	if err := b.check(expr); err != nil {
		b.err = fmt.Errorf("join: %w", err)
		return b
	}
	b.joins = append(b.joins, Render(expr))
	return b
}

// InnerJoin adds an INNER JOIN.
func (b *Builder) InnerJoin(table, left, right string) *Builder {
	return b.Join(InnerJoin, table, left, right)
}

// LeftJoin adds a LEFT JOIN.
func (b *Builder) LeftJoin(table, left, right string) *Builder {
	return b.Join(LeftJoin, table, left, right)
}

// RightJoin adds a RIGHT JOIN.
func (b *Builder) RightJoin(table, left, right string) *Builder {
	return b.Join(RightJoin, table, left, right)
}

// FullOuterJoin adds a FULL OUTER JOIN.
func (b *Builder) FullOuterJoin(table, left, right string) *Builder {
	return b.Join(FullOuterJoin, table, left, right)
}

// GroupBy adds GROUP BY columns.
func (b *Builder) GroupBy(columns ...string) *Builder {
	for _, col := range columns {
		if col = strings.TrimSpace(col); col != "" {
			b.groupBy = append(b.groupBy, col)
		}
	}
	return b
}

// OrderBy adds an ORDER BY column.
func (b *Builder) OrderBy(column string, direction Direction) *Builder {
	if b.err != nil {
		return b
	}
	dir := Direction(strings.ToUpper(string(direction)))
	if dir != ASC && dir != DESC {
		b.err = fmt.Errorf("invalid sort direction: %s", direction)
		return b
	}
	b.orderBy = append(b.orderBy, column+" "+string(dir))
	return b
}

// Limit sets the LIMIT.
func (b *Builder) Limit(limit int) *Builder {
	if b.err != nil {
		return b
	}
	if limit < 0 {
		b.err = fmt.Errorf("limit must not be negative, got %d", limit)
		return b
	}
	b.limit = &limit
	return b
}

// Offset sets the OFFSET. Zero is omitted from the output.
func (b *Builder) Offset(offset int) *Builder {
	if b.err != nil {
		return b
	}
	if offset < 0 {
		b.err = fmt.Errorf("offset must not be negative, got %d", offset)
		return b
	}
	b.offset = offset
	return b
}

// Build returns the assembled SQL.
func (b *Builder) Build() (string, error) {
	if b.err != nil {
		return "", b.err
	}
	if b.table == "" {
		return "", fmt.Errorf("FROM table is required")
	}

	parts := make([]string, 0, 8)

	selectClause := "SELECT "
	if b.distinct {
		selectClause += "DISTINCT "
	}
	if len(b.columns) == 0 {
		selectClause += "*"
	} else {
		selectClause += strings.Join(b.columns, ", ")
	}
	parts = append(parts, selectClause, "FROM "+b.table)
	parts = append(parts, b.joins...)

	if len(b.wheres) > 0 {
		parts = append(parts, "WHERE "+b.wheres[0])
		parts = append(parts, b.wheres[1:]...)
	}
	if len(b.groupBy) > 0 {
		parts = append(parts, "GROUP BY "+strings.Join(b.groupBy, ", "))
	}
	if len(b.orderBy) > 0 {
		parts = append(parts, "ORDER BY "+strings.Join(b.orderBy, ", "))
	}
	if b.limit != nil {
		parts = append(parts, "LIMIT "+strconv.Itoa(*b.limit))
	}
	if b.offset > 0 {
		parts = append(parts, "OFFSET "+strconv.Itoa(b.offset))
	}

	return strings.Join(parts, " "), nil
}

// MustBuild returns the assembled SQL or panics on error.
func (b *Builder) MustBuild() string {
	sql, err := b.Build()
	if err != nil {
		panic(err)
	}
	return sql
}
