// Package cli implements the chamados-sql command line.
package cli

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/controlplane-com/chamados-sql/pkg/import/config"
	"github.com/controlplane-com/chamados-sql/pkg/import/locator"
	"github.com/spf13/cobra"
)

// Exit codes returned by the binary.
const (
	ExitOK       = 0
	ExitNotFound = 1 // no candidate input path exists
	ExitFailure  = 2 // configuration, malformed row or I/O failure
)

// globalOptions are shared by every command.
type globalOptions struct {
	configFile string
	logLevel   string
}

// convertOptions override individual config fields from the command line.
type convertOptions struct {
	input         string
	output        string
	table         string
	rowPolicy     string
	numericPolicy string
	dryRun        bool
	toStdout      bool
}

// NewRootCmd builds the command tree. Running the root command without a
// subcommand converts the ticket export using the configured defaults.
func NewRootCmd() *cobra.Command {
	global := &globalOptions{}
	opts := &convertOptions{}

	rootCmd := &cobra.Command{
		Use:   "chamados-sql",
		Short: "Convert the support-ticket CSV export into a SQL import script",
		Long: `chamados-sql reads the support-ticket export (CSV, TSV or XLSX), escapes every
value for embedding in SQL, and writes a script of INSERT statements wrapped in
a single transaction, ready to be reviewed and pasted into a SQL editor.

Without flags it searches for "` + config.DefaultInputName + `" in ~/Downloads,
<program dir>/../public/data and the program directory, and writes
` + config.DefaultOutputPath + ` in the current directory.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setupLogging(global.logLevel)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(cmd, global, opts)
			if err != nil {
				return err
			}
			return runConvert(cfg, opts, cmd.OutOrStdout(), cmd.ErrOrStderr())
		},
	}

	rootCmd.PersistentFlags().StringVarP(&global.configFile, "config", "c", "", "Path to a YAML configuration file")
	rootCmd.PersistentFlags().StringVar(&global.logLevel, "log-level", "info", "Log level: debug, info, warn, error")

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.input, "input", "i", "", "Input file path (skips the directory search)")
	flags.StringVarP(&opts.output, "output", "o", "", "Output SQL file path")
	flags.StringVarP(&opts.table, "table", "t", "", "Target table name")
	flags.StringVar(&opts.rowPolicy, "row-policy", "", "Malformed row handling: skip, fail or pad")
	flags.StringVar(&opts.numericPolicy, "numeric-policy", "", "Minute column handling: strict or quote")
	flags.BoolVar(&opts.dryRun, "dry-run", false, "Convert and report without writing the output file")
	flags.BoolVar(&opts.toStdout, "stdout", false, "Write the script to stdout instead of the output file")
	rootCmd.MarkFlagsMutuallyExclusive("dry-run", "stdout")

	rootCmd.AddCommand(newServeCmd(global))
	rootCmd.AddCommand(newVersionCmd())

	return rootCmd
}

// Execute runs the command line with os.Args.
func Execute() error {
	return NewRootCmd().Execute()
}

// ExitCode maps an error returned by Execute to the process exit code.
func ExitCode(err error) int {
	if err == nil {
		return ExitOK
	}
	var notFound *locator.NotFoundError
	if errors.As(err, &notFound) {
		return ExitNotFound
	}
	return ExitFailure
}

func setupLogging(logLevel string) error {
	var level slog.Level
	switch logLevel {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("unknown log level %q", logLevel)
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	return nil
}

// loadConfig layers defaults, the optional config file and flag overrides.
func loadConfig(cmd *cobra.Command, global *globalOptions, opts *convertOptions) (*config.Config, error) {
	cfg := config.Default()
	if global.configFile != "" {
		loaded, err := config.LoadConfig(global.configFile)
		if err != nil {
			return nil, err
		}
		cfg = loaded
		slog.Debug("loaded config file", "path", global.configFile)
	}

	if opts == nil {
		return cfg, nil
	}

	flags := cmd.Flags()
	if flags.Changed("input") {
		cfg.InputPath = opts.input
	}
	if flags.Changed("output") {
		cfg.OutputPath = opts.output
	}
	if flags.Changed("table") {
		cfg.Table = opts.table
	}
	if flags.Changed("row-policy") {
		cfg.RowPolicy = config.RowPolicy(opts.rowPolicy)
	}
	if flags.Changed("numeric-policy") {
		cfg.NumericPolicy = config.NumericPolicy(opts.numericPolicy)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
