package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/amp-labs/sortedlist/logger"
	"github.com/kelseyhightower/envconfig"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

var (
	errUnknownType   = errors.New("unknown element type")
	errUnknownFormat = errors.New("unknown output format")
	errInvalidValue  = errors.New("invalid value")
	errConflicting   = errors.New("conflicting flags")
)

// config holds defaults that flags override, read from SORTEDLIST_TYPE and
// SORTEDLIST_FORMAT.
type config struct {
	Type   string `envconfig:"TYPE" default:"int"`
	Format string `envconfig:"FORMAT" default:"text"`
}

type options struct {
	elemType string
	format   string
	removes  []string
	first    bool
	last     bool
	get      int
	getSet   bool
	logLevel string
	logJSON  bool
}

type app struct {
	log  *slog.Logger
	opts options
}

// newApp returns an app. With a nil logger, logging is configured from the environment
// and flags when the command runs.
func newApp(log *slog.Logger) *app {
	return &app{log: log}
}

func (a *app) command() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "sortedlist [values...]",
		Short: "Build a sorted list and print it",
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			values := args
			if len(values) == 0 {
				var err error

				values, err = readValues(cmd.InOrStdin())
				if err != nil {
					return err
				}
			}

			return a.run(cmd.Context(), cmd.OutOrStdout(), values)
		},
	}

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	a.bindFlags(cmd.Flags(), cmd.PersistentFlags())

	return cmd
}

func (a *app) bindFlags(flags, persistent *pflag.FlagSet) {
	flags.StringVar(&a.opts.elemType, "type", "", "Element type: int, float, string or natural (default int)")
	flags.StringVar(&a.opts.format, "format", "", "Output format: text, json or yaml (default text)")
	flags.StringArrayVar(&a.opts.removes, "remove", nil, "Value to remove after inserting (repeatable)")
	flags.BoolVar(&a.opts.first, "first", false, "Print only the first element")
	flags.BoolVar(&a.opts.last, "last", false, "Print only the last element")
	flags.IntVar(&a.opts.get, "get", 0, "Print only the element at this index")

	persistent.StringVar(&a.opts.logLevel, "log-level", "", "Log level (overrides LOG_LEVEL)")
	persistent.BoolVar(&a.opts.logJSON, "log-json", false, "Output log in JSON format (overrides LOG_JSON)")
}

// setup fills unset flags from the environment and configures logging.
func (a *app) setup(cmd *cobra.Command) error {
	var cfg config

	if err := envconfig.Process("sortedlist", &cfg); err != nil {
		return fmt.Errorf("reading config: %w", err)
	}

	if a.opts.elemType == "" {
		a.opts.elemType = cfg.Type
	}

	if a.opts.format == "" {
		a.opts.format = cfg.Format
	}

	a.opts.getSet = cmd.Flags().Changed("get")

	selected := 0

	for _, set := range []bool{a.opts.first, a.opts.last, a.opts.getSet} {
		if set {
			selected++
		}
	}

	if selected > 1 {
		return fmt.Errorf("%w: use only one of --first, --last and --get", errConflicting)
	}

	if a.log != nil {
		return nil
	}

	var logOpts []logger.Option

	logOpts = append(logOpts, logger.WithOutput(cmd.ErrOrStderr()))

	if cmd.Flags().Changed("log-json") {
		logOpts = append(logOpts, logger.WithJSON(a.opts.logJSON))
	}

	if a.opts.logLevel != "" {
		var level slog.Level

		if err := level.UnmarshalText([]byte(a.opts.logLevel)); err != nil {
			return fmt.Errorf("parsing --log-level: %w", err)
		}

		logOpts = append(logOpts, logger.WithLevel(level))
	}

	if _, err := logger.ConfigureLogging("sortedlist", logOpts...); err != nil {
		return err
	}

	a.log = logger.Get(cmd.Context())

	return nil
}
