package commands

import (
	"fmt"

	"github.com/dyluth/belay/internal/config"
	"github.com/dyluth/belay/internal/logging"
	"github.com/dyluth/belay/internal/printer"
	"github.com/dyluth/belay/pkg/grade"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

// rootOptions holds the global flags and the state built from them before
// any subcommand runs.
type rootOptions struct {
	configPath string
	verbose    bool

	logger *zap.Logger
	config *config.BelayConfig

	// newLogger builds the logger once flags are parsed. Defaults to logging.New.
	newLogger func(verbose bool) (*zap.Logger, error)
}

// syncLogger flushes buffered log entries, if a logger was built.
func (o *rootOptions) syncLogger() {
	if o.logger != nil {
		_ = o.logger.Sync()
	}
}

// renderer builds a grade renderer from the loaded configuration.
func (o *rootOptions) renderer() *grade.Renderer {
	return grade.NewRenderer(
		grade.WithResolver(o.config.Registry()),
		grade.WithContexts(o.config.ContextTable()),
		grade.WithLogger(o.logger),
	)
}

// resolveContext picks the --context value, falling back to the configured default.
func (o *rootOptions) resolveContext(cmd *cobra.Command, flag string) (grade.Context, error) {
	if flag == "" {
		flag = o.config.DefaultContext
	}

	table := o.config.ContextTable()
	ctx, err := table.ParseContext(flag)
	if err != nil {
		known := make([]string, 0, len(table))
		for _, c := range table.Contexts() {
			known = append(known, string(c))
		}
		return "", printer.Error(
			cmd.ErrOrStderr(),
			"unknown grade context",
			fmt.Sprintf("Context '%s' is not built in and not defined in %s.", flag, o.configPath),
			[]string{fmt.Sprintf("Known contexts: %v", known), "List them with their scales:\n  belay contexts"},
		)
	}
	return ctx, nil
}

// newRootCmd builds the command tree around opts, which receives the parsed
// global flags and the state built from them.
func newRootCmd(opts *rootOptions) *cobra.Command {
	if opts.newLogger == nil {
		opts.newLogger = logging.New
	}

	rootCmd := &cobra.Command{
		Use:   "belay",
		Short: "Belay - climbing discipline and grade codec",
		Long: `Belay converts climbing discipline records to and from their compact forms
and renders a climb's grades for display.

Discipline records are JSON objects such as '{"trad":true,"aid":true}'.
They encode to display names ("Trad", "Aid") or short codes ("T A").
Only the codes S, T, A, TR and B decode back to disciplines.`,
		Version: fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, date),
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logger, err := opts.newLogger(opts.verbose)
			if err != nil {
				return err
			}
			opts.logger = logger

			if cmd.Flags().Changed("config") {
				opts.config, err = config.Load(opts.configPath)
			} else {
				opts.config, err = config.LoadOrDefault(opts.configPath)
			}
			if err != nil {
				return printer.ErrorWithContext(
					cmd.ErrOrStderr(),
					"failed to load configuration",
					err.Error(),
					map[string]string{"Config": opts.configPath},
					[]string{"Fix the file or point --config at a valid belay.yml"},
				)
			}

			opts.logger.Debug("configuration loaded",
				zap.String("path", opts.configPath),
				zap.String("default_context", opts.config.DefaultContext))
			return nil
		},
		// Prevent silent success when unknown flags are passed to root command
		RunE: func(cmd *cobra.Command, args []string) error {
			// If no subcommand is specified, show help
			return cmd.Help()
		},
		// Enable strict flag parsing - unknown flags will cause an error
		FParseErrWhitelist: cobra.FParseErrWhitelist{},
		// We print formatted colored errors directly in the printer package
		SilenceErrors: true,
		SilenceUsage:  true,
	}

	rootCmd.PersistentFlags().StringVarP(&opts.configPath, "config", "c", config.DefaultPath, "Path to belay.yml")
	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Enable debug logging")

	rootCmd.AddCommand(
		newNamesCmd(),
		newCodesCmd(),
		newDecodeCmd(opts),
		newDefaultCmd(),
		newGradeCmd(opts),
		newRenderCmd(opts),
		newContextsCmd(opts),
	)

	return rootCmd
}

// Execute builds the command tree and runs it.
// This is called by main.main().
func Execute() error {
	opts := &rootOptions{}
	return executeCommand(newRootCmd(opts), opts)
}

// executeCommand runs cmd and syncs the logger afterwards. Cobra skips
// PersistentPostRun when RunE fails, so the sync cannot live there.
func executeCommand(cmd *cobra.Command, opts *rootOptions) error {
	defer opts.syncLogger()
	return cmd.Execute()
}

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(v, c, d string) {
	version = v
	commit = c
	date = d
}
