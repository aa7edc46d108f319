// Package command implements the condql CLI commands.
package command

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/zoobzio/condql"
)

// Config keys.
const (
	keyConfigFile = "config-file"
	keyLogLevel   = "log-level"
	keyFormat     = "format"
	keyDialect    = "dialect"
	keyClause     = "clause"
	keyNoFilter   = "no-filter"
)

// CondqlCommand holds the state shared by condql commands.
type CondqlCommand struct {
	fs    afero.Fs
	v     *viper.Viper
	stdin io.Reader
}

// GetRootCommand creates the root command backed by the OS filesystem and stdin.
func GetRootCommand() *cobra.Command {
	return NewRootCommand(afero.NewOsFs(), os.Stdin)
}

// NewRootCommand creates the root command with all subcommands.
func NewRootCommand(fs afero.Fs, stdin io.Reader) *cobra.Command {
	cc := &CondqlCommand{
		fs:    fs,
		v:     viper.New(),
		stdin: stdin,
	}

	root := &cobra.Command{
		Use:   "condql",
		Short: "Render condition literals as SQL boolean expressions",
		Long: `condql reads a condition literal written in YAML or JSON and prints the
SQL fragment it describes.

Configuration:
  Flags override environment variables (CONDQL_FORMAT, CONDQL_DIALECT, ...),
  which override a condql.yaml file in the working directory or the file
  given by --config-file.`,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Flag errors still show usage; everything after parsing does not.
			cmd.SilenceUsage = true
			if err := cc.loadConfig(); err != nil {
				return err
			}
			return cc.configureLogging(cmd.ErrOrStderr())
		},
	}

	flags := root.PersistentFlags()
	flags.String(keyConfigFile, "", "path to a condql config file")
	flags.String(keyLogLevel, "warn", "log level (trace, debug, info, warn, error)")
	cc.bindFlags(flags, keyConfigFile, keyLogLevel)

	root.AddCommand(cc.newRenderCommand())
	root.AddCommand(cc.newOperatorsCommand())

	return root
}

// bindFlags makes each named flag the highest-priority source for its key.
func (cc *CondqlCommand) bindFlags(flags *pflag.FlagSet, keys ...string) {
	for _, key := range keys {
		if err := cc.v.BindPFlag(key, flags.Lookup(key)); err != nil {
			panic(fmt.Sprintf("condql: flag %q not registered: %v", key, err))
		}
	}
}

// loadConfig wires env and file sources into the command's viper instance.
func (cc *CondqlCommand) loadConfig() error {
	cc.v.SetFs(cc.fs)
	cc.v.SetEnvPrefix("CONDQL")
	cc.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	cc.v.AutomaticEnv()

	if path := cc.v.GetString(keyConfigFile); path != "" {
		cc.v.SetConfigFile(path)
		if err := cc.v.ReadInConfig(); err != nil {
			return fmt.Errorf("failed to read config file %s: %w", path, err)
		}
		return nil
	}

	cc.v.SetConfigName("condql")
	cc.v.SetConfigType("yaml")
	cc.v.AddConfigPath(".")
	if err := cc.v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("failed to read config: %w", err)
		}
	}
	return nil
}

func (cc *CondqlCommand) configureLogging(w io.Writer) error {
	level, err := log.ParseLevel(cc.v.GetString(keyLogLevel))
	if err != nil {
		return fmt.Errorf("invalid log level: %w", err)
	}

	logger := log.New()
	logger.SetOutput(w)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{DisableTimestamp: true})
	condql.SetLogger(logger)
	return nil
}

func (cc *CondqlCommand) newOperatorsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "operators",
		Short: "List the supported condition operators",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, op := range condql.SupportedOperators() {
				fmt.Fprintln(cmd.OutOrStdout(), op)
			}
			return nil
		},
	}
}
