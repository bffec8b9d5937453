package cli

import (
	"fmt"
	"io"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rhaeguard/pfx"
	"github.com/rhaeguard/pfx/internal/config"
)

var version = "dev"

// options holds global flag values and the state built from them before
// any subcommand runs.
type options struct {
	jsonOutput bool
	lenient    bool
	logLevel   string
	logFile    string

	cfg    *config.Config
	log    *logrus.Logger
	closer io.Closer
}

// NewRootCmd builds the pfx command tree.
func NewRootCmd() *cobra.Command {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:     "pfx",
		Version: version,
		Short:   "Convert regular expressions to postfix notation",
		Long: `pfx rewrites infix regular expressions into postfix (reverse-Polish) token order.

Implicit concatenation is made explicit with the '·' marker, then a shunting-yard
pass orders the operators by precedence: * + ? bind tighter than concatenation,
which binds tighter than |.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			return opts.teardown()
		},
	}
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	// Global flags
	rootCmd.PersistentFlags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")
	rootCmd.PersistentFlags().BoolVar(&opts.lenient, "lenient", false, "Drop unknown characters and tolerate unbalanced parentheses")
	rootCmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "Log level (overrides "+config.EnvLogLevel+")")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "Write logs to a rotated file (overrides "+config.EnvLogFile+")")

	rootCmd.AddCommand(newConvertCmd(opts))
	rootCmd.AddCommand(newExpandCmd(opts))
	rootCmd.AddCommand(newTreeCmd(opts))
	rootCmd.AddCommand(&cobra.Command{
		Use:   "version",
		Short: "Print the pfx CLI version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), version)
		},
	})

	return rootCmd
}

// setup loads the environment configuration and applies flag overrides.
func (o *options) setup(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	if cmd.Flags().Changed("lenient") {
		cfg.Mode = pfx.Strict
		if o.lenient {
			cfg.Mode = pfx.Lenient
		}
	}
	if o.logLevel != "" {
		level, err := logrus.ParseLevel(o.logLevel)
		if err != nil {
			return fmt.Errorf("invalid --log-level: %w", err)
		}
		cfg.LogLevel = level
	}
	if o.logFile != "" {
		cfg.LogFile = o.logFile
	}

	o.cfg = cfg
	o.log, o.closer = newLogger(cfg, cmd.ErrOrStderr())
	o.log.WithFields(logrus.Fields{
		"command": cmd.CommandPath(),
		"mode":    cfg.Mode.String(),
	}).Debug("configured")
	return nil
}

func (o *options) teardown() error {
	if o.closer == nil {
		return nil
	}
	err := o.closer.Close()
	o.closer = nil
	return err
}

func SetVersion(v string) {
	if v == "" {
		return
	}
	version = v
}

// Execute executes the root command.
func Execute() error {
	return NewRootCmd().Execute()
}
