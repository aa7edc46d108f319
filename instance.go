package condql

import (
	"fmt"
	"strings"

	"github.com/zoobzio/dbml"

	"github.com/zoobzio/condql/internal/types"
)

// Instance validates expressions against a DBML schema.
type Instance struct {
	project *dbml.Project
	parser  *Parser
	// Internal indexes for fast validation
	tables map[string]*dbml.Table
	fields map[string]map[string]*dbml.Column // table -> field -> column
}

// NewFromDBML creates a new Instance from a DBML project.
func NewFromDBML(project *dbml.Project, opts ...Option) (*Instance, error) {
	if project == nil {
		return nil, fmt.Errorf("project cannot be nil")
	}

	inst := &Instance{
		project: project,
		parser:  NewParser(opts...),
		tables:  make(map[string]*dbml.Table),
		fields:  make(map[string]map[string]*dbml.Column),
	}

	for _, table := range project.Tables {
		inst.tables[table.Name] = table
		inst.fields[table.Name] = make(map[string]*dbml.Column)
		for _, col := range table.Columns {
			inst.fields[table.Name][col.Name] = col
		}
	}

	return inst, nil
}

// Project returns the schema the instance validates against.
func (inst *Instance) Project() *dbml.Project {
	return inst.project
}

// Parse resolves a condition literal and validates every column it names.
func (inst *Instance) Parse(c Condition) (Expr, error) {
	expr, err := inst.parser.Parse(c)
	if err != nil {
		return nil, err
	}
	if err := inst.Validate(expr); err != nil {
		return nil, err
	}
	return expr, nil
}

// Build filters, parses and validates a condition literal.
func (inst *Instance) Build(c Condition) (Expr, error) {
	expr, err := inst.parser.Build(c)
	if err != nil {
		return nil, err
	}
	if err := inst.Validate(expr); err != nil {
		return nil, err
	}
	return expr, nil
}

// Select creates a query builder whose table, joins and conditions are
// checked against the schema.
func (inst *Instance) Select(columns ...string) *Builder {
	b := Select(columns...).WithParser(inst.parser)
	b.validate = inst.Validate
	b.validateTable = inst.validateTable
	return b
}

// Validate walks an expression and checks that every plain column and
// joined table exists in the schema. Columns that are not identifiers
// (function calls, Raw fragments) are not checked.
func (inst *Instance) Validate(e Expr) error {
	switch c := types.Deref(e).(type) {
	case nil:
		return nil
	case types.Simple:
		if err := inst.validateField(c.Column); err != nil {
			return err
		}
		return inst.validateValue(c.Value)
	case types.Null:
		return inst.validateField(c.Column)
	case types.In:
		if err := inst.validateField(c.Column); err != nil {
			return err
		}
		for _, v := range c.Values {
			if err := inst.validateValue(v); err != nil {
				return err
			}
		}
		return nil
	case types.Like:
		if err := inst.validateField(c.Column); err != nil {
			return err
		}
		return inst.validateValue(c.Pattern)
	case types.Between:
		if col, ok := c.Subject.(string); ok {
			if err := inst.validateField(col); err != nil {
				return err
			}
		} else if err := inst.validateValue(c.Subject); err != nil {
			return err
		}
		if err := inst.validateValue(c.Lower); err != nil {
			return err
		}
		return inst.validateValue(c.Upper)
	case types.Join:
		if err := inst.validateTable(c.Table); err != nil {
			return err
		}
		if err := inst.validateField(c.Left); err != nil {
			return err
		}
		return inst.validateField(c.Right)
	case types.Not:
		return inst.Validate(c.Inner)
	case types.Composite:
		for _, child := range c.Children {
			if err := inst.Validate(child); err != nil {
				return err
			}
		}
		return nil
	default:
		return fmt.Errorf("unknown expression type %T", e)
	}
}

// validateValue checks nested expressions used as values.
func (inst *Instance) validateValue(v any) error {
	if e, ok := v.(types.Expr); ok {
		return inst.Validate(e)
	}
	return nil
}

// validateTable checks if a table exists in the schema.
func (inst *Instance) validateTable(name string) error {
	if _, ok := inst.tables[name]; !ok {
		return fmt.Errorf("table '%s' not found in schema", name)
	}
	return nil
}

// validateField checks if a column exists in the schema. A table-qualified
// column is checked against that table; an alias-qualified or bare column
// may come from any table.
func (inst *Instance) validateField(field string) error {
	qualifier, name := "", field
	if dot := strings.LastIndexByte(field, '.'); dot != -1 {
		qualifier, name = field[:dot], field[dot+1:]
	}
	if !isValidSQLIdentifier(name) || (qualifier != "" && !isValidSQLIdentifier(qualifier)) {
		return nil
	}

	if cols, ok := inst.fields[qualifier]; ok {
		if _, ok := cols[name]; ok {
			return nil
		}
		return fmt.Errorf("field '%s' not found in table '%s'", name, qualifier)
	}

	for _, cols := range inst.fields {
		if _, ok := cols[name]; ok {
			return nil
		}
	}
	return fmt.Errorf("field '%s' not found in schema", field)
}

// isValidSQLIdentifier checks if a string is a valid SQL identifier.
func isValidSQLIdentifier(s string) bool {
	if s == "" {
		return false
	}

	// Must start with letter or underscore
	first := s[0]
	if !((first >= 'a' && first <= 'z') ||
		(first >= 'A' && first <= 'Z') ||
		first == '_') {
		return false
	}

	// Rest must be alphanumeric or underscore
	for i := 1; i < len(s); i++ {
		ch := s[i]
		if !((ch >= 'a' && ch <= 'z') ||
			(ch >= 'A' && ch <= 'Z') ||
			(ch >= '0' && ch <= '9') ||
			ch == '_') {
			return false
		}
	}

	return true
}
