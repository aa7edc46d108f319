package command

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"

	"github.com/zoobzio/condql"
	"github.com/zoobzio/condql/mariadb"
	"github.com/zoobzio/condql/mssql"
	"github.com/zoobzio/condql/postgres"
	"github.com/zoobzio/condql/sqlite"
)

// Output formats.
const (
	formatInline = "inline"
	formatBind   = "bind"
)

var dialects = map[string]func() condql.Renderer{
	"postgres": func() condql.Renderer { return postgres.New() },
	"sqlite":   func() condql.Renderer { return sqlite.New() },
	"mssql":    func() condql.Renderer { return mssql.New() },
	"mariadb":  func() condql.Renderer { return mariadb.New() },
}

func (cc *CondqlCommand) newRenderCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [file|-]",
		Short: "Render a YAML or JSON condition literal",
		Long: `Render reads a condition literal from a file, or from stdin when the
file is "-" or omitted, and prints the SQL fragment.

In bind format the SQL uses placeholders and each argument is printed on
its own line after it.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			source := "-"
			if len(args) == 1 {
				source = args[0]
			}
			return cc.runRender(cmd.OutOrStdout(), source)
		},
	}

	flags := cmd.Flags()
	flags.String(keyFormat, formatInline, "output format (inline, bind)")
	flags.String(keyDialect, "", "placeholder dialect for bind format (postgres, sqlite, mssql, mariadb)")
	flags.String(keyClause, "", "clause keyword to prefix, e.g. WHERE")
	flags.Bool(keyNoFilter, false, "parse the literal as-is without dropping empty values")
	cc.bindFlags(flags, keyFormat, keyDialect, keyClause, keyNoFilter)

	return cmd
}

func (cc *CondqlCommand) runRender(out io.Writer, source string) error {
	data, err := cc.read(source)
	if err != nil {
		return err
	}

	var literal condql.Condition
	if strings.EqualFold(filepath.Ext(source), ".json") {
		literal, err = condql.FromJSON(data)
	} else {
		literal, err = condql.FromYAML(data)
	}
	if err != nil {
		return fmt.Errorf("failed to decode %s: %w", source, err)
	}

	var expr condql.Expr
	if cc.v.GetBool(keyNoFilter) {
		expr, err = condql.Parse(literal)
	} else {
		expr, err = condql.Build(literal)
	}
	if err != nil {
		return err
	}

	sql, args, err := cc.render(expr)
	if err != nil {
		return err
	}
	if clause := cc.v.GetString(keyClause); clause != "" {
		sql = strings.ToUpper(clause) + " " + sql
	}

	condql.Logger().WithFields(log.Fields{"source": source, "args": len(args)}).Debug("rendered condition")

	fmt.Fprintln(out, sql)
	for _, arg := range args {
		fmt.Fprintln(out, condql.FormatValue(arg))
	}
	return nil
}

func (cc *CondqlCommand) render(expr condql.Expr) (string, []any, error) {
	format := strings.ToLower(cc.v.GetString(keyFormat))
	dialect := strings.ToLower(cc.v.GetString(keyDialect))

	switch format {
	case formatInline:
		return condql.Render(expr), nil, nil
	case formatBind:
		if dialect == "" {
			result := condql.Bind(expr)
			return result.SQL, result.Args, nil
		}
		newRenderer, ok := dialects[dialect]
		if !ok {
			return "", nil, fmt.Errorf("unknown dialect: %s", dialect)
		}
		result, err := newRenderer().Render(expr)
		if err != nil {
			return "", nil, err
		}
		return result.SQL, result.Args, nil
	default:
		return "", nil, fmt.Errorf("unknown format: %s", format)
	}
}

func (cc *CondqlCommand) read(source string) ([]byte, error) {
	if source == "-" {
		data, err := io.ReadAll(cc.stdin)
		if err != nil {
			return nil, fmt.Errorf("failed to read stdin: %w", err)
		}
		return data, nil
	}
	data, err := afero.ReadFile(cc.fs, source)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", source, err)
	}
	return data, nil
}
